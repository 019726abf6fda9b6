package pagefill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PsychoPunkSage/templar/internal/layout/simulator"
	"github.com/PsychoPunkSage/templar/internal/resume"
)

func TestAnalyzeAcceptable(t *testing.T) {
	a := Analyze(43, 45)
	assert.Equal(t, Acceptable, a.Verdict)
	assert.Equal(t, 43, a.TotalLinesUsed)
	assert.Equal(t, 45, a.LinesAvailable)
	assert.InDelta(t, 0.0444, a.WhitespaceFraction, 0.001)
	assert.Equal(t, float32(0), a.OverflowFraction)
}

func TestTotalLinesUsedSumsVerifiedCounts(t *testing.T) {
	bullets := []simulator.SimulatedBullet{
		{LineCount: 1},
		{LineCount: 2},
		{LineCount: 1},
	}
	assert.Equal(t, 4, TotalLinesUsed(bullets))
}

func TestAnalyzeTooMuchWhitespace(t *testing.T) {
	a := Analyze(35, 45)
	assert.Equal(t, TooMuchWhitespace, a.Verdict)
}

func TestAnalyzeMinorOverflow(t *testing.T) {
	a := Analyze(47, 45)
	assert.Equal(t, MinorOverflow, a.Verdict)
}

func TestAnalyzeMajorOverflow(t *testing.T) {
	a := Analyze(50, 45)
	assert.Equal(t, MajorOverflow, a.Verdict)
}

func TestAnalyzeExactlyOneOhFiveIsMinorOverflow(t *testing.T) {
	a := Analyze(105, 100)
	assert.Equal(t, MinorOverflow, a.Verdict)
}

func TestAnalyzeExactlyOneIsAcceptable(t *testing.T) {
	a := Analyze(100, 100)
	assert.Equal(t, Acceptable, a.Verdict)
}

func jdWithKeyword(k string) resume.ParsedJD {
	return resume.ParsedJD{KeywordInventory: []resume.KeywordEntry{{Keyword: k}}}
}

// Fifty single-line bullets on a 45-line page is major overflow; the one
// bullet with no used keywords is the removal candidate.
func TestMajorOverflowRecommendsRemovalOfLowestScoringBullet(t *testing.T) {
	jd := jdWithKeyword("Rust")

	bullets := make([]simulator.SimulatedBullet, 50)
	for i := range bullets {
		bullets[i] = simulator.SimulatedBullet{
			LineCount: 1,
			Source:    resume.DraftBullet{JDKeywordsUsed: []string{"Rust"}},
		}
	}
	bullets[1].Source.JDKeywordsUsed = nil

	analysis := Analyze(50, 45)
	assert.Equal(t, MajorOverflow, analysis.Verdict)

	rec := Recommend(analysis, bullets, jd)
	assert.Equal(t, RemoveBullet, rec.Action)
	assert.Equal(t, 1, rec.BulletIndex)
}

func TestAcceptablePageFillYieldsNoAction(t *testing.T) {
	analysis := Analyze(43, 45)
	rec := Recommend(analysis, nil, resume.ParsedJD{})
	assert.Equal(t, NoAction, rec.Action)
	assert.Equal(t, -1, rec.BulletIndex)
}

func TestTooMuchWhitespaceRecommendsPromotionOfBestCandidate(t *testing.T) {
	jd := jdWithKeyword("Kubernetes")

	bullets := []simulator.SimulatedBullet{
		{LineCount: 2, Source: resume.DraftBullet{JDKeywordsUsed: []string{"Kubernetes"}}},
		{LineCount: 1, FlaggedForReview: true, Source: resume.DraftBullet{JDKeywordsUsed: []string{"Kubernetes"}}},
		{LineCount: 1, Source: resume.DraftBullet{JDKeywordsUsed: []string{"Kubernetes"}}},
	}

	analysis := Analyze(35, 45)
	rec := Recommend(analysis, bullets, jd)
	assert.Equal(t, PromoteBullet, rec.Action)
	assert.Equal(t, 2, rec.BulletIndex)
}

func TestTooMuchWhitespaceWithNoEligibleBulletIsNoAction(t *testing.T) {
	bullets := []simulator.SimulatedBullet{{LineCount: 2}, {LineCount: 1, FlaggedForReview: true}}
	analysis := Analyze(35, 45)
	rec := Recommend(analysis, bullets, resume.ParsedJD{})
	assert.Equal(t, NoAction, rec.Action)
}

func TestOverflowWithNoBulletsFallsBackToTightenSpacing(t *testing.T) {
	analysis := Analyze(50, 45)
	rec := Recommend(analysis, nil, resume.ParsedJD{})
	assert.Equal(t, TightenSpacing, rec.Action)
	assert.Equal(t, -1, rec.BulletIndex)
}

func TestJDKeywordMatchCountIgnoresCase(t *testing.T) {
	jd := jdWithKeyword("Kubernetes")
	b := simulator.SimulatedBullet{Source: resume.DraftBullet{JDKeywordsUsed: []string{"kubernetes"}}}
	assert.Equal(t, 1, jdKeywordMatchCount(b, jd))
}
