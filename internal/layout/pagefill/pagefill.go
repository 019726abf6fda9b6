// Package pagefill implements the page fill analyzer: given a page's total
// verified line usage, classify how well the page is filled and recommend
// which single bullet-level action would most improve it.
package pagefill

import (
	"strings"

	"github.com/PsychoPunkSage/templar/internal/layout/simulator"
	"github.com/PsychoPunkSage/templar/internal/resume"
)

// Overflow/whitespace thresholds, calibrated alongside the width tables; not
// re-derived here.
const (
	majorOverflowRatio    float32 = 1.05
	minorOverflowRatio    float32 = 1.00
	maxWhitespaceFraction float32 = 0.08
)

// Verdict classifies how well a page's verified line usage fits its budget.
type Verdict int

const (
	Acceptable Verdict = iota
	TooMuchWhitespace
	MinorOverflow
	MajorOverflow
)

func (v Verdict) String() string {
	switch v {
	case Acceptable:
		return "acceptable"
	case TooMuchWhitespace:
		return "too_much_whitespace"
	case MinorOverflow:
		return "minor_overflow"
	case MajorOverflow:
		return "major_overflow"
	default:
		return "unknown"
	}
}

// Analysis is the result of measuring one page's aggregate line usage. It is
// a pure function of total lines used and lines available.
type Analysis struct {
	Verdict            Verdict
	TotalLinesUsed     int
	LinesAvailable     int
	FillRatio          float32
	WhitespaceFraction float32
	OverflowFraction   float32
}

// TotalLinesUsed sums the verified line counts across a simulated bullet set.
func TotalLinesUsed(bullets []simulator.SimulatedBullet) int {
	total := 0
	for _, b := range bullets {
		total += b.LineCount
	}

	return total
}

// Analyze classifies a page given how many lines its bullets verified to use
// against how many lines the page configuration makes available.
func Analyze(usedLines int, usableLines int) Analysis {
	ratio := float32(usedLines) / float32(usableLines)

	whitespace := float32(0)
	if ratio < 1 {
		whitespace = 1 - ratio
	}

	overflow := float32(0)
	if ratio > 1 {
		overflow = ratio - 1
	}

	a := Analysis{
		TotalLinesUsed:     usedLines,
		LinesAvailable:     usableLines,
		FillRatio:          ratio,
		WhitespaceFraction: whitespace,
		OverflowFraction:   overflow,
	}

	switch {
	case ratio > majorOverflowRatio:
		a.Verdict = MajorOverflow
	case ratio > minorOverflowRatio:
		a.Verdict = MinorOverflow
	case whitespace > maxWhitespaceFraction:
		a.Verdict = TooMuchWhitespace
	default:
		a.Verdict = Acceptable
	}

	return a
}

// FillAction is a single recommended remediation for a page's fill verdict.
type FillAction int

const (
	NoAction FillAction = iota
	PromoteBullet
	CompressBullet
	RemoveBullet
	// TightenSpacing is a layout-level knob (inter-item spacing, not bullet
	// text); its exact semantics are left to the renderer. Recommend only
	// falls back to it when overflow demands an action but no bullet exists
	// to act on.
	TightenSpacing
)

func (a FillAction) String() string {
	switch a {
	case NoAction:
		return "no_action"
	case PromoteBullet:
		return "promote_bullet"
	case CompressBullet:
		return "compress_bullet"
	case RemoveBullet:
		return "remove_bullet"
	case TightenSpacing:
		return "tighten_spacing"
	default:
		return "unknown"
	}
}

// Recommendation is a single FillAction plus the bullet index it targets,
// when the action names one. BulletIndex is -1 for NoAction and
// TightenSpacing.
type Recommendation struct {
	Action      FillAction
	BulletIndex int
}

// Recommend picks the single next action most likely to move the page
// toward Acceptable, given the final simulated bullets and the job
// description used to rank them. Callers re-run the whole pipeline after
// applying the action rather than receiving a multi-step plan.
func Recommend(a Analysis, bullets []simulator.SimulatedBullet, jd resume.ParsedJD) Recommendation {
	switch a.Verdict {
	case TooMuchWhitespace:
		idx := findBestPromotionCandidate(bullets, jd)
		if idx == -1 {
			return Recommendation{Action: NoAction, BulletIndex: -1}
		}

		return Recommendation{Action: PromoteBullet, BulletIndex: idx}
	case MinorOverflow:
		idx := findLowestScoringBullet(bullets, jd)
		if idx == -1 {
			return Recommendation{Action: TightenSpacing, BulletIndex: -1}
		}

		return Recommendation{Action: CompressBullet, BulletIndex: idx}
	case MajorOverflow:
		idx := findLowestScoringBullet(bullets, jd)
		if idx == -1 {
			return Recommendation{Action: TightenSpacing, BulletIndex: -1}
		}

		return Recommendation{Action: RemoveBullet, BulletIndex: idx}
	default:
		return Recommendation{Action: NoAction, BulletIndex: -1}
	}
}

// findLowestScoringBullet returns the index of the bullet with the smallest
// JD-keyword match count among all bullets, ties broken by lowest index.
// Returns -1 when bullets is empty.
func findLowestScoringBullet(bullets []simulator.SimulatedBullet, jd resume.ParsedJD) int {
	best := -1
	bestScore := 0

	for i, b := range bullets {
		score := jdKeywordMatchCount(b, jd)

		if best == -1 || score < bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}

// findBestPromotionCandidate returns the index of the eligible bullet with
// the largest JD-keyword match count, ties broken by lowest index.
// Eligibility requires a verified single line and no outstanding review
// flag: promoting a bullet still under review would compound two problems
// at once. Returns -1 when no bullet is eligible.
func findBestPromotionCandidate(bullets []simulator.SimulatedBullet, jd resume.ParsedJD) int {
	best := -1
	bestScore := -1

	for i, b := range bullets {
		if b.LineCount != 1 || b.FlaggedForReview {
			continue
		}

		score := jdKeywordMatchCount(b, jd)

		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}

// jdKeywordMatchCount is the number of a bullet's declared used-keywords
// that appear, case-insensitively, in the union of all JD keyword strings.
// Deliberately a breadth count, not the weighted score: removal decisions
// favor keeping bullets that touch many keywords over bullets that lean on
// one heavy keyword.
func jdKeywordMatchCount(b simulator.SimulatedBullet, jd resume.ParsedJD) int {
	all := make(map[string]struct{}, len(jd.KeywordInventory))
	for _, k := range jd.KeywordInventory {
		all[strings.ToLower(k.Keyword)] = struct{}{}
	}

	count := 0

	for _, k := range b.Source.JDKeywordsUsed {
		if _, ok := all[strings.ToLower(k)]; ok {
			count++
		}
	}

	return count
}
