package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/extract"
)

// Pipeline selects the best extraction strategy per document from a
// measured yield signal (mean extracted characters per page).
//
// Order: plain first; layout if the plain yield is weak and layout beats it
// by the gain ratio; OCR last, gated by its own gain ratio plus an absolute
// floor so that a spray of OCR noise cannot beat a near-empty extraction.
// OCR failures are never fatal: the best non-OCR result is kept.
type Pipeline struct {
	primary extract.TextExtractor
	layout  extract.TextExtractor
	ocr     extract.TextExtractor
	cfg     common.IngestConfig
	logger  *slog.Logger
}

func NewPipeline(primary, layout, ocr extract.TextExtractor, cfg common.IngestConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinAvgCharsPerPage <= 0 {
		cfg.MinAvgCharsPerPage = 250
	}
	if cfg.LayoutGainRatio <= 0 {
		cfg.LayoutGainRatio = 1.2
	}
	if cfg.OCRGainRatio <= 0 {
		cfg.OCRGainRatio = 1.5
	}
	if cfg.OCRMinCharsPerPage <= 0 {
		cfg.OCRMinCharsPerPage = 200
	}
	return &Pipeline{primary: primary, layout: layout, ocr: ocr, cfg: cfg, logger: logger}
}

// Ingest extracts the document with the winning strategy and returns its
// corpus snapshot.
func (p *Pipeline) Ingest(ctx context.Context, path string) (entity.IngestedDocument, error) {
	pages, err := p.primary.Extract(ctx, path)
	if err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("plain extraction: %w", err)
	}
	avg := avgChars(pages)
	usedLayout := false
	usedOCR := false

	if p.layout != nil && avg < p.cfg.MinAvgCharsPerPage {
		layoutPages, err := p.layout.Extract(ctx, path)
		if err != nil {
			return entity.IngestedDocument{}, fmt.Errorf("layout extraction: %w", err)
		}
		// Strictly greater: equal yield keeps the plain result.
		if a := avgChars(layoutPages); a > avg*p.cfg.LayoutGainRatio {
			pages = layoutPages
			avg = a
			usedLayout = true
		}
	}

	if p.ocr != nil && avg < p.cfg.MinAvgCharsPerPage {
		ocrPages, err := p.ocr.Extract(ctx, path)
		if err != nil {
			// OCR is best-effort; keep the best non-OCR result.
			p.logger.Warn("ocr failed, keeping non-ocr extraction",
				"path", path, "avg_chars", avg, "error", err)
		} else if a := avgChars(ocrPages); a > avg*p.cfg.OCRGainRatio && a > p.cfg.OCRMinCharsPerPage {
			pages = ocrPages
			usedOCR = true
		}
	}

	doc := entity.IngestedDocument{
		SourcePath:      path,
		Pages:           pages,
		UsedLayout:      usedLayout,
		UsedOCR:         usedOCR,
		AvgCharsPerPage: avgChars(pages),
	}
	p.logger.Info("ingested document",
		"path", path,
		"pages", len(doc.Pages),
		"avg_chars_per_page", doc.AvgCharsPerPage,
		"used_layout", doc.UsedLayout,
		"used_ocr", doc.UsedOCR,
	)
	return doc, nil
}

func avgChars(pages []entity.Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	sum := 0
	for _, p := range pages {
		sum += p.CharCount
	}
	return float64(sum) / float64(len(pages))
}
