package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectExplicitDecisionApproval(t *testing.T) {
	d := DetectExplicitDecision("Der Antrag wird beschlossen.")
	require.NotNil(t, d)
	assert.True(t, *d)
}

func TestDetectExplicitDecisionRejection(t *testing.T) {
	d := DetectExplicitDecision("Der Antrag wurde abgelehnt.")
	require.NotNil(t, d)
	assert.False(t, *d)
}

func TestDetectExplicitDecisionRejectionWinsOverApproval(t *testing.T) {
	// Contradictory cues in one block resolve to rejection.
	d := DetectExplicitDecision("Der Antrag wird angenommen, der Gegenantrag abgelehnt.")
	require.NotNil(t, d)
	assert.False(t, *d)
}

func TestDetectExplicitDecisionAbsent(t *testing.T) {
	assert.Nil(t, DetectExplicitDecision("Der Verwalter berichtet."))
}

func TestMentionsSpecialQuorum(t *testing.T) {
	assert.True(t, MentionsSpecialQuorum("Erforderlich ist eine 2/3 Mehrheit."))
	assert.True(t, MentionsSpecialQuorum("Es besteht Einstimmigkeit."))
	assert.False(t, MentionsSpecialQuorum("Einfache Mehrheit genügt."))
}

func TestInferApprovedExplicitWins(t *testing.T) {
	yes, no := 1, 10
	d := InferApproved(boolPtr(true), &yes, &no, "")
	require.NotNil(t, d)
	assert.True(t, *d)
}

func TestInferApprovedQuorumBlocksTallyInference(t *testing.T) {
	yes, no := 10, 1
	assert.Nil(t, InferApproved(nil, &yes, &no, "qualifizierte Mehrheit erforderlich"))
}

func TestInferApprovedStrictMajority(t *testing.T) {
	yes, no := 5, 1
	d := InferApproved(nil, &yes, &no, "")
	require.NotNil(t, d)
	assert.True(t, *d)
}

func TestInferApprovedTieIsNotApproved(t *testing.T) {
	yes, no := 3, 3
	d := InferApproved(nil, &yes, &no, "")
	require.NotNil(t, d)
	assert.False(t, *d)
}

func TestInferApprovedMissingTallies(t *testing.T) {
	yes := 5
	assert.Nil(t, InferApproved(nil, &yes, nil, ""))
	assert.Nil(t, InferApproved(nil, nil, nil, ""))
}

func TestClassifyBlockKind(t *testing.T) {
	assert.Equal(t, KindDetail,
		ClassifyBlockKind("Ja-Stimmen: 5 Nein-Stimmen: 1 Enthaltungen: 0", 46))
	assert.Equal(t, KindDetail,
		ClassifyBlockKind("Der Antrag wird beschlossen.", 28))
	assert.Equal(t, KindDetail,
		ClassifyBlockKind(strings.Repeat("x", 600), 600))
	assert.Equal(t, KindDetail,
		ClassifyBlockKind("Der Vorsitzende verkündet das Beschlussergebnis.", 48))
	assert.Equal(t, KindAgendaOrHeader,
		ClassifyBlockKind("TOP 4 Wirtschaftsplan", 21))
}
