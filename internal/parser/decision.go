package parser

import (
	"strings"

	"github.com/wegtools/minutes-tracker/constants"
)

// BlockKind classifies a block as a full decision record or a short
// listing-page mention.
type BlockKind string

const (
	KindDetail         BlockKind = "detail"
	KindAgendaOrHeader BlockKind = "agenda_or_header"
)

const detailMinLen = 500

// DetectExplicitDecision scans for explicit approval/rejection language.
// Rejection cues are checked first and win when both lists match. No match
// returns nil.
func DetectExplicitDecision(block string) *bool {
	b := strings.ToLower(block)
	for _, cue := range constants.RejectionCues {
		if strings.Contains(b, cue) {
			return boolPtr(false)
		}
	}
	for _, cue := range constants.ApprovalCues {
		if strings.Contains(b, cue) {
			return boolPtr(true)
		}
	}
	return nil
}

// MentionsSpecialQuorum reports unanimity/supermajority language.
func MentionsSpecialQuorum(block string) bool {
	b := strings.ToLower(block)
	for _, cue := range constants.QuorumCues {
		if strings.Contains(b, cue) {
			return true
		}
	}
	return false
}

// InferApproved decides approval. Explicit language always wins. Under a
// special quorum mention a simple majority proves nothing, so the result
// stays unknown. Otherwise both tallies present give strict yes > no;
// ties count as not approved.
func InferApproved(explicit *bool, yes, no *int, block string) *bool {
	if explicit != nil {
		return explicit
	}
	if MentionsSpecialQuorum(block) {
		return nil
	}
	if yes != nil && no != nil {
		return boolPtr(*yes > *no)
	}
	return nil
}

// ClassifyBlockKind: a block is "detail" when it carries both tallies, or
// explicit decision language, or enough length, or the announced-result
// phrase; everything else is a listing-page mention.
func ClassifyBlockKind(text string, length int) BlockKind {
	yes, no, _ := ParseVotes(text)
	explicit := DetectExplicitDecision(text)
	if (yes != nil && no != nil) || explicit != nil || length >= detailMinLen ||
		strings.Contains(strings.ToLower(text), constants.ResultAnnouncedPhrase) {
		return KindDetail
	}
	return KindAgendaOrHeader
}

func boolPtr(b bool) *bool { return &b }
