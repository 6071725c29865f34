package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNumberParts = regexp.MustCompile(`^(\d+)(.*)$`)
	reSubpoint    = regexp.MustCompile(`^[.,/]?\s*(\d+)([a-zA-Z]?)$`)
	reBareRun     = regexp.MustCompile(`^\d{2,3}$`)
	reLeadingInt  = regexp.MustCompile(`^(\d+)`)
)

// NormalizeNumber canonicalizes an item-number spelling: subpoints written
// with ".", ",", "/" or a space all become "lead.sub", letter suffixes are
// lower-cased. Purely syntactic; never looks at document context.
func NormalizeNumber(raw string) string {
	s := strings.TrimSpace(raw)
	m := reNumberParts.FindStringSubmatch(s)
	if m == nil {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}
	lead, rest := m[1], strings.TrimSpace(m[2])
	if rest == "" {
		return lead
	}
	if mm := reSubpoint.FindStringSubmatch(rest); mm != nil {
		return lead + "." + mm[1] + strings.ToLower(mm[2])
	}
	rest = strings.NewReplacer(",", ".", "/", ".", " ", "").Replace(rest)
	return lead + strings.ToLower(rest)
}

// RepairConfig tunes the run-together repair heuristic. The defaults were
// calibrated on one organization's scan corpus; treat them as knobs.
type RepairConfig struct {
	MinBareValue     int // bare numbers at or above this are suspects
	MaxIndexDistance int // base item must be this close in document order
	MinJump          int // suspect must exceed the largest lead by this much
}

func DefaultRepairConfig() RepairConfig {
	return RepairConfig{MinBareValue: 20, MaxIndexDistance: 1, MinJump: 2}
}

// RepairRunTogether detects OCR-merged subpoint numbers ("2.1" read as
// "21") using document-wide context and returns the rewrites to apply.
// A bare 2-3 digit number >= MinBareValue is suspect: meetings with that
// many items are implausible. It is rewritten to base.sub only when the
// candidate does not collide with an existing number, the base item exists
// adjacent in document order, and the suspect value is an anomalous jump
// over every other leading value. All rewrites are decided against the
// original number set; no cascading.
func RepairRunTogether(ordered []string, cfg RepairConfig) map[string]string {
	if cfg.MinBareValue <= 0 {
		cfg = DefaultRepairConfig()
	}

	present := make(map[string]bool, len(ordered))
	leads := make([]int, len(ordered))
	leadPositions := make(map[int][]int)
	for i, n := range ordered {
		present[n] = true
		leads[i] = -1
		if m := reLeadingInt.FindStringSubmatch(n); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				leads[i] = v
				leadPositions[v] = append(leadPositions[v], i)
			}
		}
	}

	rewrites := make(map[string]string)
	for i, n := range ordered {
		if !reBareRun.MatchString(n) {
			continue
		}
		v, _ := strconv.Atoi(n)
		if v < cfg.MinBareValue {
			continue
		}
		base := n[:len(n)-1]
		sub := n[len(n)-1:]
		candidate := base + "." + sub
		if present[candidate] {
			continue
		}
		baseValue, _ := strconv.Atoi(base)

		adjacent := false
		for _, j := range leadPositions[baseValue] {
			if j != i && abs(j-i) <= cfg.MaxIndexDistance {
				adjacent = true
				break
			}
		}
		if !adjacent {
			continue
		}

		maxOtherLead := -1
		for j, l := range leads {
			if j == i || l < 0 {
				continue
			}
			if l > maxOtherLead {
				maxOtherLead = l
			}
		}
		if maxOtherLead < 0 || v < maxOtherLead+cfg.MinJump {
			continue
		}

		rewrites[n] = candidate
	}
	return rewrites
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
