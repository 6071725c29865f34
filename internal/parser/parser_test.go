package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegtools/minutes-tracker/internal/entity"
)

func TestParseSingleItemDocument(t *testing.T) {
	doc := entity.IngestedDocument{
		SourcePath: "/in/Protokoll Eigentümerversammlung vom 12.12.2024.pdf",
		Pages: []entity.Page{
			{PageIndex: 0, Text: "Protokoll der Eigentümerversammlung vom 12.12.2024\n\n" +
				"TOP 1 Wirtschaftsplan\n" +
				"Ja-Stimmen: 10\nNein-Stimmen: 1\nEnthaltungen: 0\n" +
				"Der Wirtschaftsplan wird beschlossen.\n"},
		},
	}

	items := New(DefaultRepairConfig(), nil).Parse(doc)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "1", it.Number)
	assert.Equal(t, "Protokoll Eigentümerversammlung vom 12.12.2024.pdf", it.SourceFile)

	require.NotNil(t, it.MeetingDate)
	assert.Equal(t, "2024-12-12", *it.MeetingDate)

	require.NotNil(t, it.Title)
	assert.Equal(t, "Wirtschaftsplan", *it.Title)
	assert.Empty(t, it.TitleIssues)

	require.NotNil(t, it.Approved)
	assert.True(t, *it.Approved)
	require.NotNil(t, it.ExplicitDecision)
	assert.True(t, *it.ExplicitDecision)

	require.NotNil(t, it.VotesYes)
	require.NotNil(t, it.VotesNo)
	require.NotNil(t, it.VotesAbstain)
	assert.Equal(t, 10, *it.VotesYes)
	assert.Equal(t, 1, *it.VotesNo)
	assert.Equal(t, 0, *it.VotesAbstain)

	require.NotNil(t, it.PageStart)
	assert.Equal(t, 0, *it.PageStart)
	assert.NotEmpty(t, it.RawExcerpt)
}

// Regression: a 2021 protocol scan merged "2.1" into "21" and spelled other
// subpoints with spaces and commas. The run-together repair must rewrite the
// merged number without inventing an item 21.
func TestParseRunTogetherNumberRepair(t *testing.T) {
	doc := entity.IngestedDocument{
		SourcePath: "/in/protokoll-2021.pdf",
		Pages: []entity.Page{
			{PageIndex: 0, Text: "Protokoll der Eigentümerversammlung vom 26.10.2021\n\n" +
				"TOP 2 Formalia\nDer Versammlungsleiter stellt die Beschlussfähigkeit fest.\n" +
				"TOP 21 Wirtschaftsplan 2022\nJa-Stimmen: 8\nNein-Stimmen: 0\nEnthaltungen: 1\n" +
				"TOP 6 2 Bestellung des Verwaltungsbeirats\nJa-Stimmen: 9\nNein-Stimmen: 0\nEnthaltungen: 0\n" +
				"TOP 17,1 Genehmigung der Jahresabrechnung\nJa-Stimmen: 7\nNein-Stimmen: 2\nEnthaltungen: 0\n"},
		},
	}

	items := New(DefaultRepairConfig(), nil).Parse(doc)

	numbers := make(map[string]bool)
	for _, it := range items {
		numbers[it.Number] = true
		require.NotNil(t, it.MeetingDate)
		assert.Equal(t, "2021-10-26", *it.MeetingDate)
	}
	assert.True(t, numbers["2"])
	assert.True(t, numbers["2.1"], "merged 21 should be repaired to 2.1")
	assert.True(t, numbers["6.2"])
	assert.True(t, numbers["17.1"])
	assert.False(t, numbers["21"], "no item 21 in a meeting of this size")
}

func TestParseDeduplicatesListingAndDetail(t *testing.T) {
	doc := entity.IngestedDocument{
		SourcePath: "/in/protokoll.pdf",
		Pages: []entity.Page{
			{PageIndex: 0, Text: "Tagesordnung\nTOP 1 Beschlussfassung über die Dachsanierung\nTOP 2 Verschiedenes\n"},
			{PageIndex: 1, Text: "TOP 1 DSZ_GARBLED\n" +
				"Abstimmungsergebnis:\nJa-Stimmen: 5\nNein-Stimmen: 1\nEnthaltungen: 0\nDer Antrag wird beschlossen.\n" +
				"TOP 2 Verschiedenes\nKeine Beschlüsse.\n"},
		},
	}

	items := New(DefaultRepairConfig(), nil).Parse(doc)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "1", first.Number)
	require.NotNil(t, first.VotesYes)
	assert.Equal(t, 5, *first.VotesYes)
	require.NotNil(t, first.Approved)
	assert.True(t, *first.Approved)

	// The detail block's own title is scan garbage; the listing page title
	// fills in.
	require.NotNil(t, first.Title)
	assert.Equal(t, "Beschlussfassung über die Dachsanierung", *first.Title)

	require.NotNil(t, first.PageStart)
	assert.Equal(t, 1, *first.PageStart)
}

func TestSortItemsOrdersByDateThenNumber(t *testing.T) {
	d1, d2 := "2022-05-01", "2024-01-15"
	items := []entity.AgendaItem{
		{MeetingDate: nil, Number: "1"},
		{MeetingDate: &d2, Number: "10"},
		{MeetingDate: &d2, Number: "2"},
		{MeetingDate: &d2, Number: "2.1"},
		{MeetingDate: &d1, Number: "3"},
	}
	SortItems(items)

	assert.Equal(t, "3", items[0].Number)
	assert.Equal(t, "2", items[1].Number)
	assert.Equal(t, "2.1", items[2].Number)
	assert.Equal(t, "10", items[3].Number)
	assert.Nil(t, items[4].MeetingDate)
}
