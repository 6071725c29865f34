package parser

// BlockScore ranks competing blocks for the same item number. Compared
// lexicographically: kind beats tally presence beats explicit-decision
// presence beats raw length, so a real decision record always wins over a
// longer but uninformative agenda mention.
type BlockScore struct {
	Detail      bool
	HasTallies  bool
	HasExplicit bool
	Length      int
}

// ScoreBlock computes the ranking tuple for one block.
func ScoreBlock(b TextBlock) BlockScore {
	yes, no, _ := ParseVotes(b.Text)
	explicit := DetectExplicitDecision(b.Text)
	return BlockScore{
		Detail:      ClassifyBlockKind(b.Text, b.Len) == KindDetail,
		HasTallies:  yes != nil && no != nil,
		HasExplicit: explicit != nil,
		Length:      b.Len,
	}
}

// Beats reports strict tuple dominance; equal scores keep the incumbent,
// so selection is stable in document order.
func (s BlockScore) Beats(other BlockScore) bool {
	if s.Detail != other.Detail {
		return s.Detail
	}
	if s.HasTallies != other.HasTallies {
		return s.HasTallies
	}
	if s.HasExplicit != other.HasExplicit {
		return s.HasExplicit
	}
	return s.Length > other.Length
}

// DeduplicateBlocks keeps the best block per item number.
func DeduplicateBlocks(blocks []TextBlock) map[string]TextBlock {
	best := make(map[string]TextBlock)
	scores := make(map[string]BlockScore)
	for _, b := range blocks {
		score := ScoreBlock(b)
		if incumbent, ok := scores[b.Number]; !ok || score.Beats(incumbent) {
			best[b.Number] = b
			scores[b.Number] = score
		}
	}
	return best
}
