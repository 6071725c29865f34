// Package processor coordinates the per-document stages: ingest (strategy
// selection), corpus snapshot persistence, and agenda-item parsing.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/wegtools/minutes-tracker/internal/corpus"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/ingest"
	"github.com/wegtools/minutes-tracker/internal/parser"
)

// Processor runs one document end to end. Stateless across documents.
type Processor struct {
	Logger    *slog.Logger
	Ingest    *ingest.Pipeline
	Parser    *parser.Parser
	CorpusDir string // empty disables snapshot persistence
}

func NewProcessor(logger *slog.Logger, ing *ingest.Pipeline, prs *parser.Parser, corpusDir string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Ingest: ing, Parser: prs, CorpusDir: corpusDir}
}

// DocumentResult is one document's complete, ordered output.
type DocumentResult struct {
	File  string
	Items []entity.AgendaItem
	QA    entity.QASummary
}

// ProcessDocument ingests, snapshots, and parses one document.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (DocumentResult, error) {
	file := filepath.Base(path)

	doc, err := p.Ingest.Ingest(ctx, path)
	if err != nil {
		return DocumentResult{File: file}, fmt.Errorf("ingest %s: %w", file, err)
	}

	if p.CorpusDir != "" {
		snapPath := corpus.SnapshotPath(p.CorpusDir, path)
		if err := corpus.Save(doc, snapPath); err != nil {
			return DocumentResult{File: file}, fmt.Errorf("snapshot %s: %w", file, err)
		}
	}

	items := p.Parser.Parse(doc)
	qa := BuildQASummary(file, doc, items)

	p.Logger.Info("processed document",
		"file", file,
		"items", qa.ItemCount,
		"approved", qa.ApprovedCount,
		"used_ocr", doc.UsedOCR,
		"avg_chars_per_page", doc.AvgCharsPerPage,
	)
	return DocumentResult{File: file, Items: items, QA: qa}, nil
}

// BuildQASummary aggregates the per-document counts for reporting.
func BuildQASummary(file string, doc entity.IngestedDocument, items []entity.AgendaItem) entity.QASummary {
	qa := entity.QASummary{
		File:            file,
		ItemCount:       len(items),
		UsedOCR:         doc.UsedOCR,
		UsedLayout:      doc.UsedLayout,
		AvgCharsPerPage: doc.AvgCharsPerPage,
	}
	if len(items) > 0 {
		qa.MeetingDate = items[0].MeetingDate
	}
	for _, it := range items {
		switch {
		case it.Approved == nil:
			qa.UnknownCount++
		case *it.Approved:
			qa.ApprovedCount++
		default:
			qa.RejectedCount++
		}
	}
	return qa
}
