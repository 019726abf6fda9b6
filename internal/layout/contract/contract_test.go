package contract

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PsychoPunkSage/templar/internal/layout/fontmetrics"
	"github.com/PsychoPunkSage/templar/internal/resume"
)

func cfg() fontmetrics.PageConfig {
	return fontmetrics.DefaultPageConfig(fontmetrics.Inter)
}

func TestCheckContractEmptyBulletIsTooShort(t *testing.T) {
	res := CheckContract(0, "", fontmetrics.Get(fontmetrics.Inter), cfg())
	assert.Equal(t, TooShort, res.Verdict)
	assert.Equal(t, 0, res.LineCount)
	assert.Equal(t, 0, res.Index)
}

func TestCheckContractThreeLinesAlwaysTooLong(t *testing.T) {
	text := "Architected and delivered a multi region payments platform migration " +
		"reducing checkout latency by 42 percent while coordinating across six " +
		"engineering teams spanning three continents and a dozen external vendor " +
		"integrations over eighteen months of sustained delivery"

	res := CheckContract(3, text, fontmetrics.Get(fontmetrics.Inter), cfg())
	require.GreaterOrEqual(t, res.LineCount, 3)
	assert.Equal(t, TooLong, res.Verdict)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, text, res.Text)
}

func TestCheckContractOneLineBelowThresholdIsTooShort(t *testing.T) {
	res := CheckContract(0, "Led the team", fontmetrics.Get(fontmetrics.Inter), cfg())
	require.Equal(t, 1, res.LineCount)
	assert.Equal(t, TooShort, res.Verdict)
}

func TestCheckContractTwoLineSecondLineTooShort(t *testing.T) {
	text := "Architected and delivered a multi region payments platform migration " +
		"reducing checkout latency across the org by a lot overall this year ok"

	res := CheckContract(0, text, fontmetrics.Get(fontmetrics.Inter), cfg())
	require.Equal(t, 2, res.LineCount)
	require.Less(t, res.Fills[1], Min2LineL2Fill)
	assert.Equal(t, SecondLineTooShort, res.Verdict)

	l2, ok := res.Line2Fill()
	require.True(t, ok)
	assert.Equal(t, res.Fills[1], l2)
}

func TestTwoLineCountCountsOnlyTwoLineResults(t *testing.T) {
	results := []Result{
		{LineCount: 1},
		{LineCount: 2},
		{LineCount: 2},
		{LineCount: 3},
	}
	assert.Equal(t, 2, TwoLineCount(results))
}

func TestHasQuantifiedOutcomePercent(t *testing.T) {
	assert.True(t, hasQuantifiedOutcome("Reduced latency by 42%"))
}

func TestHasQuantifiedOutcomeDollar(t *testing.T) {
	assert.True(t, hasQuantifiedOutcome("Managed a $2M budget"))
}

func TestHasQuantifiedOutcomeMultiplier(t *testing.T) {
	assert.True(t, hasQuantifiedOutcome("Grew throughput 3x in one quarter"))
}

func TestHasQuantifiedOutcomeNone(t *testing.T) {
	assert.False(t, hasQuantifiedOutcome("Led the backend team"))
}

func TestComputeTechnicalDepthNeutralWhenNoHighWeightKeywords(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "collaboration", PositionWeight: 0.3},
		},
	}
	assert.Equal(t, TechnicalDepthNeutral, computeTechnicalDepth("anything at all", jd))
}

func TestComputeTechnicalDepthMatchesHighWeightKeywordsInText(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", PositionWeight: 1.0},
			{Keyword: "Go", PositionWeight: 0.8},
		},
	}
	depth := computeTechnicalDepth("Deployed services on Kubernetes clusters", jd)
	assert.InDelta(t, 0.5, depth, 0.001)
}

func TestComputeTechnicalDepthZeroWhenTextMatchesNoHighWeightKeyword(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", PositionWeight: 1.0},
		},
	}
	depth := computeTechnicalDepth("Organized team standups", jd)
	assert.Equal(t, float32(0), depth)
}

func TestComputeJDRelevanceZeroWhenNoKeywordsUsed(t *testing.T) {
	jd := resume.ParsedJD{KeywordInventory: []resume.KeywordEntry{{Keyword: "Go", PositionWeight: 1.0}}}
	assert.Equal(t, float32(0), computeJDRelevance(nil, jd))
}

func TestComputeJDRelevanceIsFractionOfUsedKeywords(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", PositionWeight: 1.0},
		},
	}
	// Two used keywords declared, only one is a high-weight JD keyword: 0.5.
	relevance := computeJDRelevance([]string{"Kubernetes", "Figma"}, jd)
	assert.InDelta(t, 0.5, relevance, 0.001)
}

func TestScorePromotionEligibleBullet(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", PositionWeight: 1.0},
		},
	}

	score := ScorePromotion(
		"Reduced deployment time by 40% using Kubernetes",
		[]string{"Kubernetes"},
		jd,
	)

	assert.Equal(t, float32(1), score.QuantifiedOutcome)
	assert.Equal(t, float32(1), score.TechnicalDepth)
	assert.Equal(t, float32(1), score.JDRelevance)
	assert.True(t, score.Eligible)
}

func TestScorePromotionIneligibleWhenAnySubScoreBelowThreshold(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", PositionWeight: 1.0},
		},
	}

	// No quantified outcome in the text forfeits eligibility even though the
	// other two sub-scores are perfect.
	score := ScorePromotion(
		"Operated Kubernetes clusters for the platform team",
		[]string{"Kubernetes"},
		jd,
	)

	assert.Equal(t, float32(0), score.QuantifiedOutcome)
	assert.False(t, score.Eligible)
}

// A bullet matching every high-weight keyword but carrying no number still
// fails the promotion gate.
func TestScorePromotionRejectsMissingQuantification(t *testing.T) {
	jd := resume.ParsedJD{
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Rust", PositionWeight: 0.8},
			{Keyword: "distributed", PositionWeight: 0.6},
		},
	}

	score := ScorePromotion(
		"Improved system performance using Rust and distributed techniques",
		[]string{"Rust", "distributed"},
		jd,
	)

	assert.Equal(t, float32(0), score.QuantifiedOutcome)
	assert.False(t, score.Eligible)
}

func TestCheckAllContractsPreservesOrder(t *testing.T) {
	texts := []string{"", "Led the team"}
	results := CheckAllContracts(texts, fontmetrics.Get(fontmetrics.Inter), cfg())
	require.Len(t, results, 2)
	assert.Equal(t, TooShort, results[0].Verdict)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, TooShort, results[1].Verdict)
	assert.Equal(t, 1, results[1].Index)
}

// sourceEntryID only exercised to confirm DraftBullet round-trips through
// package boundaries without contract needing to know about uuid directly.
func TestDraftBulletCarriesSourceEntryID(t *testing.T) {
	id := uuid.New()
	b := resume.DraftBullet{SourceEntryID: id}
	assert.Equal(t, id, b.SourceEntryID)
}
