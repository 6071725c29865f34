package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reBodyDate     = regexp.MustCompile(`(?i)\b(?:vom|am)\s+(\d{1,2})\.(\d{1,2})\.(\d{4})\b`)
	reFilenameDate = regexp.MustCompile(`\b([0-3]\d)(0[1-9]|1[0-2])(20\d{2})\b`)
)

// ExtractMeetingDate derives the meeting date (YYYY-MM-DD) from body text
// ("vom 12.12.2024") or, failing that, a DDMMYYYY run in the filename.
func ExtractMeetingDate(fullText, filename string) *string {
	if m := reBodyDate.FindStringSubmatch(fullText); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := reFilenameDate.FindStringSubmatch(filename); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	return nil
}

func isoDate(year, month, day string) *string {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	s := fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
	return &s
}
