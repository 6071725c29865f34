package parser

import (
	"regexp"
	"strings"

	"github.com/wegtools/minutes-tracker/constants"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

const (
	maxTitleLines = 12
	maxTitleAccum = 200
	maxTitleLen   = 240
)

var (
	reInlineHeader = regexp.MustCompile(`(?i)^(?:T\s*O\s*P|Tagesordnungs(?:punkt|p\.)?)\s+\d+(?:\s*[.,/]\s*\d{1,2}|[ \t]+\d{1,2})?[a-z]?\s*(.*)$`)
	rePureHeader   = regexp.MustCompile(`(?i)^(?:T\s*O\s*P|Tagesordnungspunkt)\s+\d`)
)

// IsGarbageTitle reports whether a candidate title is unusable noise
// (empty, or containing a known signature/role/scan-artifact token).
func IsGarbageTitle(title *string) bool {
	if title == nil {
		return true
	}
	t := strings.ToLower(strings.TrimSpace(*title))
	if t == "" {
		return true
	}
	for _, tok := range constants.GarbageTitleTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}

// headerInlineTitle returns the text trailing the header token on its own
// line, or nil when the line is not a header or carries no trailing text.
func headerInlineTitle(line string) *string {
	m := reInlineHeader.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil
	}
	rest := strings.TrimSpace(m[1])
	if rest == "" {
		return nil
	}
	return &rest
}

// ExtractTitle derives a human-readable title for a block. It prefers the
// inline form ("TOP 4 Beschlussfassung über ..."); otherwise it accumulates
// the following non-garbage lines until a section-boundary keyword, a line
// cap, or a length cap. Returns nil when nothing usable remains.
func ExtractTitle(blockText string) *string {
	var lines []string
	for _, ln := range strings.Split(blockText, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	if t := headerInlineTitle(lines[0]); t != nil {
		cleaned := textutil.CleanTitle(*t)
		if cleaned != "" && !IsGarbageTitle(&cleaned) {
			return truncateTitle(cleaned)
		}
	}

	if rePureHeader.MatchString(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil
	}

	var titleLines []string
	for i, ln := range lines {
		if i >= maxTitleLines {
			break
		}
		if startsWithStopMarker(ln) {
			break
		}
		if g := ln; IsGarbageTitle(&g) {
			continue
		}
		titleLines = append(titleLines, ln)
		if len(strings.Join(titleLines, " ")) > maxTitleAccum {
			break
		}
	}
	title := textutil.CleanTitle(strings.Join(titleLines, " "))
	if title == "" {
		return nil
	}
	return truncateTitle(title)
}

func startsWithStopMarker(line string) bool {
	l := strings.ToLower(line)
	for _, marker := range constants.TitleStopMarkers {
		if strings.HasPrefix(l, marker) {
			return true
		}
	}
	return false
}

func truncateTitle(title string) *string {
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}
	return &title
}
