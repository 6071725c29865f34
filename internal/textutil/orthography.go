package textutil

import (
	"sort"
	"strings"
	"unicode"
)

// Issue tags reported by DetectTitleOrthographyIssues.
const (
	IssueRepeatedPunctuation = "repeated_punctuation"
	IssueRepeatedCharacters  = "repeated_characters"
	IssueAllCapsLong         = "all_caps_long"
	IssueNoVowelToken        = "no_vowel_token"
	IssueMixedAlnumToken     = "mixed_alnum_token"
)

const vowels = "aeiouyäöü"

// DetectTitleOrthographyIssues flags suspect spellings in an already
// cleaned, non-empty title. Returns a sorted set of issue tags.
func DetectTitleOrthographyIssues(title string) []string {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	issues := map[string]bool{}

	if hasRun(title, 3, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }) {
		issues[IssueRepeatedPunctuation] = true
	}
	if hasRepeatedRune(title, 3) {
		issues[IssueRepeatedCharacters] = true
	}

	for _, tok := range strings.Fields(title) {
		runes := []rune(tok)
		letters, digits, uppers, vowelCount := 0, 0, 0, 0
		for _, r := range runes {
			switch {
			case unicode.IsLetter(r):
				letters++
				if unicode.IsUpper(r) {
					uppers++
				}
				if strings.ContainsRune(vowels, unicode.ToLower(r)) {
					vowelCount++
				}
			case unicode.IsDigit(r):
				digits++
			}
		}
		// Upper-case means every letter is upper-case; digits and
		// punctuation in the token do not break the run.
		if len(runes) >= 8 && letters > 0 && uppers == letters {
			issues[IssueAllCapsLong] = true
		}
		if letters == len(runes) && letters >= 6 && vowelCount == 0 {
			issues[IssueNoVowelToken] = true
		}
		if len(runes) >= 6 && letters > 0 && digits > 0 {
			issues[IssueMixedAlnumToken] = true
		}
	}

	if len(issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(issues))
	for k := range issues {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// hasRepeatedRune reports a run of n identical consecutive runes.
func hasRepeatedRune(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// hasRun reports a run of n consecutive runes all matching pred.
func hasRun(s string, n int, pred func(rune) bool) bool {
	run := 0
	for _, r := range s {
		if pred(r) {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
