package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTitleOrthographyIssuesCleanTitle(t *testing.T) {
	assert.Nil(t, DetectTitleOrthographyIssues("Beschlussfassung über den Wirtschaftsplan 2025"))
	assert.Nil(t, DetectTitleOrthographyIssues(""))
	assert.Nil(t, DetectTitleOrthographyIssues("   "))
}

func TestDetectTitleOrthographyIssuesSmearedTitle(t *testing.T) {
	got := DetectTitleOrthographyIssues("WIRTSCHAAAFTSPLAN!!! 2025")
	assert.Equal(t, []string{
		IssueAllCapsLong,
		IssueRepeatedCharacters,
		IssueRepeatedPunctuation,
	}, got)
}

func TestDetectTitleOrthographyIssuesNoVowelToken(t *testing.T) {
	got := DetectTitleOrthographyIssues("Bschlssfssng zum Plan")
	assert.Equal(t, []string{IssueNoVowelToken}, got)
}

func TestDetectTitleOrthographyIssuesMixedAlnumToken(t *testing.T) {
	got := DetectTitleOrthographyIssues("Antrag Abc123 zur Sanierung")
	assert.Equal(t, []string{IssueMixedAlnumToken}, got)
}

func TestDetectTitleOrthographyIssuesAllCapsGatesOnTokenLength(t *testing.T) {
	// Token length counts, not letter count: digits and punctuation inside
	// an upper-case token do not break the run.
	got := DetectTitleOrthographyIssues("Antrag AB-12345")
	assert.Equal(t, []string{IssueAllCapsLong, IssueMixedAlnumToken}, got)

	// Mixed case, short all-caps, and letterless tokens stay unflagged.
	assert.Nil(t, DetectTitleOrthographyIssues("Abcdefghij Antrag"))
	assert.Nil(t, DetectTitleOrthographyIssues("WEG Antrag"))
	assert.Nil(t, DetectTitleOrthographyIssues("Nachtrag 2025/2026"))
}

func TestDetectTitleOrthographyIssuesYearIsNotMixed(t *testing.T) {
	// Plain digit tokens and short letter tokens stay unflagged.
	assert.Nil(t, DetectTitleOrthographyIssues("Wirtschaftsplan 2025"))
}
