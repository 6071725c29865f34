package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

var rePdfinfoPages = regexp.MustCompile(`(?m)^Pages:\s+(\d+)\s*$`)

// OCRExtractor rasterizes PDF pages with pdftoppm and recognizes them with
// tesseract. It is the most expensive strategy and invoked last.
type OCRExtractor struct {
	cfg    common.OCRConfig
	runner Runner
}

func NewOCRExtractor(cfg common.OCRConfig, logger *slog.Logger) *OCRExtractor {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "deu+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 140
	}
	return &OCRExtractor{cfg: cfg, runner: newToolRunner(logger)}
}

func (e *OCRExtractor) Extract(ctx context.Context, path string) ([]entity.Page, error) {
	total, err := e.pageCount(ctx, path)
	if err != nil {
		return nil, err
	}
	// Unknown page count: nothing to OCR.
	if total <= 0 {
		return nil, nil
	}
	if e.cfg.MaxPages > 0 && total > e.cfg.MaxPages {
		total = e.cfg.MaxPages
	}

	tmpDir, err := os.MkdirTemp("", "mt-ocr-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			fmt.Printf("warning: failed to remove temp dir %q: %v\n", tmpDir, rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png -f 1 -l <total> <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", strconv.Itoa(e.cfg.DPI), "-png",
		"-f", "1", "-l", strconv.Itoa(total),
		path, prefix)
	if err != nil {
		return nil, common.NewAppError("PDFTOPPM_FAILED", strings.TrimSpace(string(errb)), err)
	}

	// pdftoppm zero-pads page numbers, so a lexical sort is positional.
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no images for %s", path)
	}

	pages := make([]entity.Page, 0, len(matches))
	for i, img := range matches {
		raw, err := e.tesseract(ctx, img)
		if err != nil {
			return nil, err
		}
		txt := textutil.NormalizeText(raw)
		pages = append(pages, entity.Page{
			PageIndex: i,
			Text:      txt,
			CharCount: utf8.RuneCountInString(txt),
		})
	}
	return pages, nil
}

func (e *OCRExtractor) pageCount(ctx context.Context, path string) (int, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdfinfo, path)
	if err != nil {
		return 0, common.NewAppError("PDFINFO_FAILED", strings.TrimSpace(string(errb)), err)
	}
	m := rePdfinfoPages.FindStringSubmatch(string(out))
	if m == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (e *OCRExtractor) tesseract(ctx context.Context, imgPath string) (string, error) {
	// tesseract <img> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, imgPath, "stdout", "-l", e.cfg.Lang)
	if err != nil {
		return "", common.NewAppError("TESSERACT_FAILED", strings.TrimSpace(string(errb)), err)
	}
	return string(out), nil
}
