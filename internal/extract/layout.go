package extract

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

// LayoutExtractor runs pdftotext in layout-preserving mode. Column-heavy
// scans that confuse the in-process reader often extract better here.
type LayoutExtractor struct {
	cfg    common.OCRConfig
	runner Runner
}

func NewLayoutExtractor(cfg common.OCRConfig, logger *slog.Logger) *LayoutExtractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &LayoutExtractor{cfg: cfg, runner: newToolRunner(logger)}
}

func (e *LayoutExtractor) Extract(ctx context.Context, path string) ([]entity.Page, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, common.NewAppError("PDFTOTEXT_FAILED", strings.TrimSpace(string(errb)), err)
	}

	// pdftotext terminates every page with a form feed.
	parts := strings.Split(string(out), "\f")
	if n := len(parts); n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}

	pages := make([]entity.Page, 0, len(parts))
	for i, part := range parts {
		txt := textutil.NormalizeText(part)
		pages = append(pages, entity.Page{
			PageIndex: i,
			Text:      txt,
			CharCount: utf8.RuneCountInString(txt),
		})
	}
	return pages, nil
}
