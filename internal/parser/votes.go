package parser

import (
	"regexp"
	"strings"

	"github.com/wegtools/minutes-tracker/internal/textutil"
)

var (
	// Labeled form: yes/no/abstain labels with German inflections, numbers
	// possibly containing thousands dots, non-greedy across the block.
	reLabeledVotes = regexp.MustCompile(`(?is)(?:Ja(?:-Stimmen)?|Jastimmen)\s*[:=]?\s*([\d.]+).*?(?:Nein(?:-Stimmen)?|Neinstimmen)\s*[:=]?\s*([\d.]+).*?Enthaltung(?:en)?\s*[:=]?\s*([\d.]+)`)

	// Unlabeled x/y/z triple, accepted only on lines with vote context.
	reVoteContext = regexp.MustCompile(`(?i)\b(stimmen|ja|nein|enth)\b`)
	reTriple      = regexp.MustCompile(`\b([\d.]{1,10})\s*/\s*([\d.]{1,10})\s*/\s*([\d.]{1,10})\b`)
)

// ParseVotes extracts (yes, no, abstain) from a block. The labeled form
// wins; otherwise an unlabeled num/num/num triple counts only on a line
// that also carries a vote keyword, to avoid matching unrelated fractions.
// Absent matches yield nil counts; that is a valid outcome.
func ParseVotes(block string) (yes, no, abstain *int) {
	if m := reLabeledVotes.FindStringSubmatch(block); m != nil {
		return textutil.SafeInt(m[1]), textutil.SafeInt(m[2]), textutil.SafeInt(m[3])
	}

	for _, ln := range strings.Split(block, "\n") {
		if !strings.Contains(ln, "/") || !reVoteContext.MatchString(ln) {
			continue
		}
		if m := reTriple.FindStringSubmatch(ln); m != nil {
			return textutil.SafeInt(m[1]), textutil.SafeInt(m[2]), textutil.SafeInt(m[3])
		}
	}
	return nil, nil, nil
}
