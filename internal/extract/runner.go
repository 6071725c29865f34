package extract

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner is the seam to the external PDF toolchain (poppler's pdftotext,
// pdftoppm and pdfinfo, plus tesseract). Extractors talk to the binaries
// only through it, so tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, tool string, args ...string) (stdout, stderr []byte, err error)
}

// toolRunner shells out via exec.CommandContext and logs every invocation
// with timing, so slow or failing toolchain calls show up per document.
type toolRunner struct {
	logger *slog.Logger
}

func newToolRunner(logger *slog.Logger) *toolRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &toolRunner{logger: logger}
}

func (r *toolRunner) Run(ctx context.Context, tool string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, tool, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		r.logger.Error("toolchain command failed",
			"tool", tool,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed,
			"error", err,
			"stderr", clipOutput(stderr.String()),
		)
	} else {
		r.logger.Debug("toolchain command ok",
			"tool", tool,
			"args", strings.Join(args, " "),
			"elapsed_ms", elapsed,
			"stdout_bytes", stdout.Len(),
		)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// Tesseract in particular can spray pages of warnings; cap what we log.
const maxLoggedOutput = 4 << 10

func clipOutput(s string) string {
	if len(s) <= maxLoggedOutput {
		return s
	}
	return s[:maxLoggedOutput] + "...(clipped)"
}
