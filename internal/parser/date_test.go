package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMeetingDateFromBody(t *testing.T) {
	d := ExtractMeetingDate("Protokoll der Eigentümerversammlung vom 12.12.2024 in München", "x.pdf")
	require.NotNil(t, d)
	assert.Equal(t, "2024-12-12", *d)
}

func TestExtractMeetingDateFromBodyAmForm(t *testing.T) {
	d := ExtractMeetingDate("Die Versammlung fand am 3.7.2023 statt.", "x.pdf")
	require.NotNil(t, d)
	assert.Equal(t, "2023-07-03", *d)
}

func TestExtractMeetingDateFromFilename(t *testing.T) {
	d := ExtractMeetingDate("kein Datum im Text", "Protokoll-12022024.pdf")
	require.NotNil(t, d)
	assert.Equal(t, "2024-02-12", *d)
}

func TestExtractMeetingDateBodyWinsOverFilename(t *testing.T) {
	d := ExtractMeetingDate("Versammlung vom 01.06.2022", "Protokoll-12022024.pdf")
	require.NotNil(t, d)
	assert.Equal(t, "2022-06-01", *d)
}

func TestExtractMeetingDateAbsent(t *testing.T) {
	assert.Nil(t, ExtractMeetingDate("kein Datum", "Protokoll.pdf"))
	// Dotted dates in the filename are not the DDMMYYYY run.
	assert.Nil(t, ExtractMeetingDate("kein Datum", "Protokoll vom 12.12.2024.pdf"))
}
