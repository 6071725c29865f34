// Package parser turns a corpus snapshot into canonical agenda-item
// records: segmentation, number repair, titles, votes, decisions, and
// deduplication, all on normalized text.
package parser

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

const maxExcerptLen = 2000

// sentinelDate sorts records without a meeting date last.
const sentinelDate = "9999-99-99"

type Parser struct {
	repair RepairConfig
	logger *slog.Logger
}

func New(repair RepairConfig, logger *slog.Logger) *Parser {
	if repair.MinBareValue <= 0 {
		repair = DefaultRepairConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{repair: repair, logger: logger}
}

// Parse extracts one record per agenda item from the document. Stateless
// across documents; safe to call from parallel pipelines.
func (p *Parser) Parse(doc entity.IngestedDocument) []entity.AgendaItem {
	pages := make([]entity.Page, len(doc.Pages))
	for i, pg := range doc.Pages {
		pg.Text = textutil.NormalizeText(pg.Text)
		pages[i] = pg
	}

	fullText := JoinPages(pages)
	sourceFile := filepath.Base(doc.SourcePath)
	meetingDate := ExtractMeetingDate(fullText, sourceFile)

	blocks := SplitBlocks(fullText)
	for i := range blocks {
		blocks[i].Number = NormalizeNumber(blocks[i].Number)
	}

	numbers := make([]string, len(blocks))
	for i, b := range blocks {
		numbers[i] = b.Number
	}
	rewrites := RepairRunTogether(numbers, p.repair)
	for i := range blocks {
		if repaired, ok := rewrites[blocks[i].Number]; ok {
			p.logger.Debug("repaired run-together item number",
				"file", sourceFile, "from", blocks[i].Number, "to", repaired)
			blocks[i].Number = repaired
		}
	}

	// Listing pages often carry the cleanest titles; remember them for
	// blocks whose own title is OCR garbage.
	agendaTitles := make(map[string]string)
	for _, b := range blocks {
		if ClassifyBlockKind(b.Text, b.Len) != KindAgendaOrHeader {
			continue
		}
		if t := ExtractTitle(b.Text); t != nil && !IsGarbageTitle(t) {
			if _, ok := agendaTitles[b.Number]; !ok {
				agendaTitles[b.Number] = *t
			}
		}
	}

	best := DeduplicateBlocks(blocks)

	items := make([]entity.AgendaItem, 0, len(best))
	for number, b := range best {
		yes, no, abstain := ParseVotes(b.Text)
		explicit := DetectExplicitDecision(b.Text)
		approved := InferApproved(explicit, yes, no, b.Text)

		title := ExtractTitle(b.Text)
		if IsGarbageTitle(title) {
			if fallback, ok := agendaTitles[number]; ok {
				title = &fallback
			} else {
				title = nil
			}
		}

		var issues []string
		if title != nil {
			issues = textutil.DetectTitleOrthographyIssues(*title)
		}

		items = append(items, entity.AgendaItem{
			MeetingDate:      meetingDate,
			SourceFile:       sourceFile,
			Number:           number,
			Title:            title,
			TitleIssues:      issues,
			Approved:         approved,
			ExplicitDecision: explicit,
			VotesYes:         yes,
			VotesNo:          no,
			VotesAbstain:     abstain,
			PageStart:        b.PageStart,
			PageEnd:          b.PageEnd,
			BlockLen:         b.Len,
			RawExcerpt:       truncateRunes(b.Text, maxExcerptLen),
		})
	}

	SortItems(items)
	return items
}

var reSortLead = regexp.MustCompile(`^(\d+)(.*)$`)

// numberSortKey splits an item number into its leading integer and the
// remainder string for ordering.
func numberSortKey(number string) (int, string) {
	m := reSortLead.FindStringSubmatch(number)
	if m == nil {
		return int(^uint(0) >> 1), number
	}
	lead, _ := strconv.Atoi(m[1])
	return lead, m[2]
}

// SortItems orders records by meeting date (absent dates last), then item
// number (numeric lead, then remainder).
func SortItems(items []entity.AgendaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := sentinelDate, sentinelDate
		if items[i].MeetingDate != nil {
			di = *items[i].MeetingDate
		}
		if items[j].MeetingDate != nil {
			dj = *items[j].MeetingDate
		}
		if di != dj {
			return di < dj
		}
		li, ri := numberSortKey(items[i].Number)
		lj, rj := numberSortKey(items[j].Number)
		if li != lj {
			return li < lj
		}
		return ri < rj
	})
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
