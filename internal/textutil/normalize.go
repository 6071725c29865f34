package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHyphenWrap = regexp.MustCompile(`([\p{L}\p{N}_])-\n([\p{L}\p{N}_])`)
	reHSpace     = regexp.MustCompile(`[ \t]+`)
	reMultiBlank = regexp.MustCompile(`\n{4,}`)

	// System-generated banner lines from the scan transport.
	reNoiseLines = regexp.MustCompile(`(?m)(?:^DSZ_[A-Z].*$)|(?:^ALTMP_.*\.PDF$)`)

	// Known OCR/scan artifacts inside titles.
	reTitleNoise = regexp.MustCompile(`(?i)(?:<<<page:\d+>>>)|(?:\bdsz_[a-z0-9_]+\b)|(?:\baltmp_[a-z0-9_]+\b)|(?:\bp\d{2,}\|\|)|(?:\bclwti\b)|(?:\bbmp\b)`)

	reLeadJunk  = regexp.MustCompile(`^[\W_]+`)
	reTrailJunk = regexp.MustCompile(`[\W_]+$`)
)

// umlautRepair fixes the combining-diaeresis OCR corruption where the
// diaeresis lands next to the base vowel instead of on it, in either order.
var umlautRepair = strings.NewReplacer(
	"ä", "ä", "ö", "ö", "ü", "ü",
	"Ä", "Ä", "Ö", "Ö", "Ü", "Ü",
	"a¨", "ä", "o¨", "ö", "u¨", "ü",
	"A¨", "Ä", "O¨", "Ö", "U¨", "Ü",
	"¨a", "ä", "¨o", "ö", "¨u", "ü",
	"¨A", "Ä", "¨O", "Ö", "¨U", "Ü",
)

// NormalizeText canonicalizes raw page text: line endings, de-hyphenation
// of line-wrapped words, umlaut repair, transport noise lines, whitespace.
// Idempotent.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = reCRLF.ReplaceAllString(text, "\n")
	text = reHyphenWrap.ReplaceAllString(text, "$1$2")
	text = umlautRepair.Replace(text)
	text = reNoiseLines.ReplaceAllString(text, "")
	text = reHSpace.ReplaceAllString(text, " ")
	text = reMultiBlank.ReplaceAllString(text, "\n\n\n")
	return strings.TrimSpace(text)
}

// CleanTitle strips known OCR noise from an agenda-item title: artifact
// substrings, stutter tokens (>=6 chars with a 4+ run of one character),
// and leading/trailing non-word characters.
func CleanTitle(text string) string {
	if text == "" {
		return ""
	}
	t := strings.TrimSpace(text)
	t = reTitleNoise.ReplaceAllString(t, " ")

	fields := strings.Fields(t)
	kept := fields[:0]
	for _, tok := range fields {
		if isStutterToken(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	t = strings.Join(kept, " ")

	t = reLeadJunk.ReplaceAllString(t, "")
	t = reTrailJunk.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// isStutterToken reports whether a token of length >= 6 contains a run of
// 4 or more identical characters, a typical OCR smear.
func isStutterToken(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 6 {
		return false
	}
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 4 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// SafeInt parses a numeral string tolerant of thousands separators and
// stray spaces. Returns nil if the string is not a number.
func SafeInt(s string) *int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
