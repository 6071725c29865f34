package processor

import (
	"context"
	"errors"
	"os"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/corpus"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/ingest"
	"github.com/wegtools/minutes-tracker/internal/parser"
)

// mapExtractor serves canned page text per path, failing unknown paths.
type mapExtractor struct {
	texts map[string]string
}

func (m *mapExtractor) Extract(_ context.Context, path string) ([]entity.Page, error) {
	text, ok := m.texts[path]
	if !ok {
		return nil, errors.New("unreadable pdf")
	}
	return []entity.Page{{PageIndex: 0, Text: text, CharCount: utf8.RuneCountInString(text)}}, nil
}

const approvedDoc = "Protokoll der Eigentümerversammlung vom 01.02.2023\n\n" +
	"TOP 1 Wirtschaftsplan\n" +
	"Ja-Stimmen: 4\nNein-Stimmen: 1\nEnthaltungen: 0\n" +
	"Der Wirtschaftsplan wird beschlossen.\n"

const rejectedDoc = "Protokoll der Eigentümerversammlung vom 15.06.2023\n\n" +
	"TOP 1 Dachsanierung\n" +
	"Ja-Stimmen: 2\nNein-Stimmen: 7\nEnthaltungen: 1\n" +
	"Der Antrag wurde abgelehnt.\n"

func newTestProcessor(texts map[string]string, corpusDir string) *Processor {
	ing := ingest.NewPipeline(&mapExtractor{texts: texts}, nil, nil, common.IngestConfig{}, nil)
	return NewProcessor(nil, ing, parser.New(parser.DefaultRepairConfig(), nil), corpusDir)
}

func TestProcessDocumentProducesItemsAndSummary(t *testing.T) {
	p := newTestProcessor(map[string]string{"/in/a.pdf": approvedDoc}, "")

	res, err := p.ProcessDocument(context.Background(), "/in/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", res.File)
	require.Len(t, res.Items, 1)

	assert.Equal(t, 1, res.QA.ItemCount)
	assert.Equal(t, 1, res.QA.ApprovedCount)
	assert.Equal(t, 0, res.QA.RejectedCount)
	assert.Equal(t, 0, res.QA.UnknownCount)
	require.NotNil(t, res.QA.MeetingDate)
	assert.Equal(t, "2023-02-01", *res.QA.MeetingDate)
}

func TestProcessDocumentWritesCorpusSnapshot(t *testing.T) {
	dir := t.TempDir()
	p := newTestProcessor(map[string]string{"/in/a.pdf": approvedDoc}, dir)

	_, err := p.ProcessDocument(context.Background(), "/in/a.pdf")
	require.NoError(t, err)

	snapPath := corpus.SnapshotPath(dir, "/in/a.pdf")
	_, statErr := os.Stat(snapPath)
	require.NoError(t, statErr)

	doc, err := corpus.Load(snapPath)
	require.NoError(t, err)
	assert.Equal(t, "/in/a.pdf", doc.SourcePath)
	require.Len(t, doc.Pages, 1)
}

func TestProcessDocumentIngestFailure(t *testing.T) {
	p := newTestProcessor(map[string]string{}, "")

	_, err := p.ProcessDocument(context.Background(), "/in/missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest missing.pdf")
}

func TestBuildQASummaryCountsDecisions(t *testing.T) {
	approved, rejected := true, false
	items := []entity.AgendaItem{
		{Number: "1", Approved: &approved},
		{Number: "2", Approved: &rejected},
		{Number: "3", Approved: nil},
		{Number: "4", Approved: &approved},
	}
	qa := BuildQASummary("a.pdf", entity.IngestedDocument{UsedOCR: true}, items)

	assert.Equal(t, 4, qa.ItemCount)
	assert.Equal(t, 2, qa.ApprovedCount)
	assert.Equal(t, 1, qa.RejectedCount)
	assert.Equal(t, 1, qa.UnknownCount)
	assert.True(t, qa.UsedOCR)
	assert.Nil(t, qa.MeetingDate)
}

func TestBatchRunAggregatesInInputOrder(t *testing.T) {
	p := newTestProcessor(map[string]string{
		"/in/a.pdf": approvedDoc,
		"/in/b.pdf": rejectedDoc,
	}, "")
	b := NewBatch(p, nil, WithWorkers(2))

	results, errs, err := b.Run(context.Background(), []string{"/in/a.pdf", "/in/bad.pdf", "/in/b.pdf"})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "a.pdf", results[0].File)
	assert.Equal(t, "b.pdf", results[1].File)
	assert.Equal(t, 1, results[0].QA.ApprovedCount)
	assert.Equal(t, 1, results[1].QA.RejectedCount)

	require.Len(t, errs, 1)
	assert.Equal(t, "bad.pdf", errs[0].File)
	assert.Contains(t, errs[0].Error, "unreadable pdf")
}

func TestBatchRunFailFastReturnsFirstError(t *testing.T) {
	p := newTestProcessor(map[string]string{}, "")
	b := NewBatch(p, nil, WithWorkers(2), WithFailFast(true))

	results, errs, err := b.Run(context.Background(), []string{"/in/bad.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable pdf")
	assert.Nil(t, results)
	assert.Nil(t, errs)
}

func TestBatchRunEmptyInput(t *testing.T) {
	p := newTestProcessor(map[string]string{}, "")
	b := NewBatch(p, nil)

	results, errs, err := b.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, errs)
}
