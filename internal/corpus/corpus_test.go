package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegtools/minutes-tracker/internal/entity"
)

func sampleDoc() entity.IngestedDocument {
	return entity.IngestedDocument{
		SourcePath: "/in/protokoll.pdf",
		Pages: []entity.Page{
			{PageIndex: 0, Text: "TOP 1 Wirtschaftsplan", CharCount: 21},
			{PageIndex: 1, Text: "Anlagen", CharCount: 7},
		},
		UsedOCR:         true,
		AvgCharsPerPage: 14,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus", "protokoll.json")
	require.NoError(t, Save(sampleDoc(), path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read corpus snapshot")
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParseRejectsMissingSourcePath(t *testing.T) {
	_, err := Parse([]byte(`{"pages": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParseRejectsPagesNotArray(t *testing.T) {
	_, err := Parse([]byte(`{"source_path": "a.pdf", "pages": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParseRejectsPageWithoutText(t *testing.T) {
	_, err := Parse([]byte(`{"source_path": "a.pdf", "pages": [{"page_index": 0}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseAcceptsMinimalSnapshot(t *testing.T) {
	doc, err := Parse([]byte(`{"source_path": "a.pdf", "pages": []}`))
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", doc.SourcePath)
	assert.Empty(t, doc.Pages)
}

func TestSnapshotPath(t *testing.T) {
	got := SnapshotPath("/out/corpus", "/in/Protokoll 2024.pdf")
	assert.Equal(t, filepath.Join("/out/corpus", "Protokoll 2024.json"), got)
}
