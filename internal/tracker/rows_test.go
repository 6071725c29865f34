package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegtools/minutes-tracker/constants"
	"github.com/wegtools/minutes-tracker/internal/entity"
)

func TestBuildRowsKeepsOnlyApprovedItems(t *testing.T) {
	approved, rejected := true, false
	date := "2024-03-20"
	title := "Dachsanierung"
	yes, no := 8, 1

	items := []entity.AgendaItem{
		{Number: "1", Approved: &approved, MeetingDate: &date, Title: &title,
			VotesYes: &yes, VotesNo: &no, SourceFile: "a.pdf"},
		{Number: "2", Approved: &rejected, SourceFile: "a.pdf"},
		{Number: "3", Approved: nil, SourceFile: "a.pdf"},
	}

	rows := BuildRows(items)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "1", row.Number)
	assert.Equal(t, constants.DefaultOwner, row.Owner)
	assert.Equal(t, constants.StatusNew, row.Status)
	assert.Equal(t, &date, row.MeetingDate)
	assert.Equal(t, &title, row.Title)
	assert.Empty(t, row.NextSteps)
	assert.Empty(t, row.DueDate)
}

func TestBuildRowsEmptyInput(t *testing.T) {
	assert.Empty(t, BuildRows(nil))
}
