// Package tracker turns approved agenda items into action-tracker rows
// for the property manager workflow.
package tracker

import (
	"github.com/wegtools/minutes-tracker/constants"
	"github.com/wegtools/minutes-tracker/internal/entity"
)

// Row is one open action derived from an approved decision. Follow-up
// columns start empty and are maintained by hand in the exported sheet.
type Row struct {
	MeetingDate     *string
	Number          string
	Title           *string
	VotesYes        *int
	VotesNo         *int
	VotesAbstain    *int
	SourceFile      string
	PageStart       *int
	PageEnd         *int
	Owner           string
	Status          constants.TrackerStatus
	LastBoardAction string
	NextSteps       string
	DueDate         string
	RiskFlag        string
	Notes           string
}

// BuildRows keeps only explicitly or inferably approved items; unknown
// outcomes never become open actions.
func BuildRows(items []entity.AgendaItem) []Row {
	var rows []Row
	for _, it := range items {
		if it.Approved == nil || !*it.Approved {
			continue
		}
		rows = append(rows, Row{
			MeetingDate:  it.MeetingDate,
			Number:       it.Number,
			Title:        it.Title,
			VotesYes:     it.VotesYes,
			VotesNo:      it.VotesNo,
			VotesAbstain: it.VotesAbstain,
			SourceFile:   it.SourceFile,
			PageStart:    it.PageStart,
			PageEnd:      it.PageEnd,
			Owner:        constants.DefaultOwner,
			Status:       constants.StatusNew,
		})
	}
	return rows
}
