package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

// reHeader matches an agenda-item header at a line start: an optional
// page-number prefix, any of the TOP/Tagesordnungspunkt spellings (OCR
// sometimes spaces out "T O P"), then the item number with an optional
// decimal/comma/slash/space subpoint and letter suffix.
var reHeader = regexp.MustCompile(`(?mi)^[ \t]*(?:(?:seite|page)\s+\d+\s+)?(?:T\s*O\s*P|Tagesordnungs(?:punkt|p\.)?)\s+(\d+(?:\s*[.,/]\s*\d{1,2}|[ \t]+\d{1,2})?[a-z]?)\b`)

var rePageMarker = regexp.MustCompile(`<<<PAGE:(\d+)>>>`)

// TextBlock is a contiguous span of full text attributed to one header
// occurrence. Transient: owned by the parsing pass, discarded afterwards.
type TextBlock struct {
	Number    string
	Start     int
	End       int
	PageStart *int
	PageEnd   *int
	Len       int
	Text      string
}

type pageMarker struct {
	offset int
	page   int
}

// JoinPages joins normalized page texts into one stream with a marker
// token before each page, then re-normalizes the joined stream.
func JoinPages(pages []entity.Page) string {
	var b strings.Builder
	for _, p := range pages {
		fmt.Fprintf(&b, "\n<<<PAGE:%d>>>\n", p.PageIndex)
		b.WriteString(p.Text)
	}
	return textutil.NormalizeText(b.String())
}

func computeMarkers(fullText string) []pageMarker {
	ms := rePageMarker.FindAllStringSubmatchIndex(fullText, -1)
	markers := make([]pageMarker, 0, len(ms))
	for _, m := range ms {
		page, err := strconv.Atoi(fullText[m[2]:m[3]])
		if err != nil {
			continue
		}
		markers = append(markers, pageMarker{offset: m[0], page: page})
	}
	return markers
}

// pageAt resolves an offset to the page of the last marker at or before it.
func pageAt(markers []pageMarker, pos int) *int {
	var page *int
	for i := range markers {
		if markers[i].offset <= pos {
			page = &markers[i].page
		} else {
			break
		}
	}
	return page
}

// SplitBlocks locates all header occurrences and cuts the full text into
// per-occurrence blocks. A block ends where the next header starts. The
// end page is resolved from the block's last character, so a block closing
// exactly at a page marker belongs to the page it closes on.
func SplitBlocks(fullText string) []TextBlock {
	headers := reHeader.FindAllStringSubmatchIndex(fullText, -1)
	markers := computeMarkers(fullText)

	blocks := make([]TextBlock, 0, len(headers))
	for i, h := range headers {
		start := h[0]
		end := len(fullText)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		text := strings.TrimSpace(fullText[start:end])
		blocks = append(blocks, TextBlock{
			Number:    fullText[h[2]:h[3]],
			Start:     start,
			End:       end,
			PageStart: pageAt(markers, start),
			PageEnd:   pageAt(markers, end-1),
			Len:       utf8.RuneCountInString(text),
			Text:      text,
		})
	}
	return blocks
}
