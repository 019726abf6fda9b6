// Package contract implements the line coverage contract: the verdict state
// machine that decides whether a single simulated bullet satisfies its
// line-fill requirements, and the promotion scoring that gates 1-to-2-line
// expansion.
package contract

import (
	"strings"
	"unicode"

	"github.com/PsychoPunkSage/templar/internal/layout/fontmetrics"
	"github.com/PsychoPunkSage/templar/internal/resume"
)

// Threshold constants, calibrated against the reference tables; not
// re-derived here.
const (
	// Min1LineFill is the minimum acceptable fill fraction for a one-line bullet.
	Min1LineFill float32 = 0.80
	// Min2LineL2Fill is the minimum acceptable fill fraction for the second
	// line of a two-line bullet.
	Min2LineL2Fill float32 = 0.70
	// HighWeightThreshold is the JD keyword position weight at or above
	// which a keyword counts toward technical depth and JD relevance.
	HighWeightThreshold float32 = 0.6
	// EligibilityThreshold is the minimum every promotion sub-score must
	// clear for a bullet to be eligible for a second line.
	EligibilityThreshold float32 = 0.7
	// TechnicalDepthNeutral is returned by computeTechnicalDepth when the job
	// description carries no high-weight keywords to measure against: the
	// absence of a JD keyword inventory never penalizes a bullet it had no
	// way to match.
	TechnicalDepthNeutral float32 = 0.5
)

// Verdict is the outcome of checking one simulated bullet against the line
// coverage contract.
type Verdict int

const (
	// Satisfies means the bullet's line count and fill fractions are within
	// contract.
	Satisfies Verdict = iota
	// TooShort means a one-line (or empty) bullet's fill fraction is below
	// Min1LineFill.
	TooShort
	// TooLong means the bullet wraps to three or more lines.
	TooLong
	// SecondLineTooShort means a two-line bullet's second line is below
	// Min2LineL2Fill.
	SecondLineTooShort
)

func (v Verdict) String() string {
	switch v {
	case Satisfies:
		return "satisfies"
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	case SecondLineTooShort:
		return "second_line_too_short"
	default:
		return "unknown"
	}
}

// Result is the full outcome of one contract check: the verdict paired with
// the bullet's index, the text it was checked against, the simulated line
// count, and the per-line fill fractions that produced the verdict.
type Result struct {
	Index     int
	Text      string
	Verdict   Verdict
	LineCount int
	Fills     []float32
}

// Line1Fill returns the first line's fill fraction, or 0 for an empty
// bullet that never wrapped to any line.
func (r Result) Line1Fill() float32 {
	if len(r.Fills) == 0 {
		return 0
	}

	return r.Fills[0]
}

// Line2Fill returns the second line's fill fraction and whether one exists.
func (r Result) Line2Fill() (float32, bool) {
	if len(r.Fills) < 2 {
		return 0, false
	}

	return r.Fills[1], true
}

// CheckContract simulates the wrap of text under cfg and classifies the
// result. An empty or all-whitespace bullet has line count 0 and line-1
// fill 0.0, which is always TooShort.
func CheckContract(index int, text string, tbl *fontmetrics.Table, cfg fontmetrics.PageConfig) Result {
	fills := tbl.Wrap(text, cfg)
	lineCount := len(fills)

	res := Result{Index: index, Text: text, LineCount: lineCount, Fills: fills}

	switch {
	case lineCount <= 1:
		if res.Line1Fill() < Min1LineFill {
			res.Verdict = TooShort
		} else {
			res.Verdict = Satisfies
		}
	case lineCount == 2:
		if fills[1] < Min2LineL2Fill {
			res.Verdict = SecondLineTooShort
		} else {
			res.Verdict = Satisfies
		}
	default:
		// Three or more lines is always TooLong regardless of fill: there is
		// no fill at which a 3-line bullet belongs on a single-page resume.
		res.Verdict = TooLong
	}

	return res
}

// CheckAllContracts runs CheckContract over a batch of bullet texts sharing
// the same font table and page configuration, in index order.
func CheckAllContracts(texts []string, tbl *fontmetrics.Table, cfg fontmetrics.PageConfig) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = CheckContract(i, text, tbl, cfg)
	}

	return results
}

// TwoLineCount reports how many results wrapped to exactly two lines. This is
// informational only: the contract does not cap the number of two-line
// bullets on a page, it only reports the count for the caller's own budget
// decisions.
func TwoLineCount(results []Result) int {
	count := 0

	for _, r := range results {
		if r.LineCount == 2 {
			count++
		}
	}

	return count
}

// PromotionScore holds the three sub-scores that together gate two-line
// expansion, plus the eligibility predicate derived from them.
type PromotionScore struct {
	QuantifiedOutcome float32
	TechnicalDepth    float32
	JDRelevance       float32
	// Eligible is true exactly when all three sub-scores are at least
	// EligibilityThreshold: any single deficiency forfeits the extra line.
	Eligible bool
}

// ScorePromotion scores a single bullet's promotion candidacy. usedKeywords
// is the set of JD keywords the bullet's text already claims to use
// (resume.DraftBullet.JDKeywordsUsed).
func ScorePromotion(text string, usedKeywords []string, jd resume.ParsedJD) PromotionScore {
	quant := float32(0)
	if hasQuantifiedOutcome(text) {
		quant = 1
	}

	depth := computeTechnicalDepth(text, jd)
	relevance := computeJDRelevance(usedKeywords, jd)

	return PromotionScore{
		QuantifiedOutcome: quant,
		TechnicalDepth:    depth,
		JDRelevance:       relevance,
		Eligible: quant >= EligibilityThreshold &&
			depth >= EligibilityThreshold &&
			relevance >= EligibilityThreshold,
	}
}

// hasQuantifiedOutcome reports whether text contains a number paired with a
// unit signal: a percent/multiplier/scale suffix (%, x, k, m) immediately
// after a digit, or a dollar amount (a digit immediately after $).
func hasQuantifiedOutcome(text string) bool {
	lower := strings.ToLower(text)
	runes := []rune(lower)

	for i, r := range runes {
		if r == '$' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			return true
		}

		if unicode.IsDigit(r) && i+1 < len(runes) {
			switch runes[i+1] {
			case '%', 'x', 'k', 'm':
				return true
			}
		}
	}

	return false
}

// computeTechnicalDepth scores the fraction of the job description's
// high-weight keywords (position weight >= HighWeightThreshold) that appear
// as case-insensitive substrings of text. When no high-weight keywords
// exist, depth is neutral: there is nothing for this bullet to have missed.
func computeTechnicalDepth(text string, jd resume.ParsedJD) float32 {
	highWeight := jd.HighWeightKeywords(HighWeightThreshold)
	if len(highWeight) == 0 {
		return TechnicalDepthNeutral
	}

	lower := strings.ToLower(text)
	matched := 0

	for _, k := range highWeight {
		if strings.Contains(lower, strings.ToLower(k)) {
			matched++
		}
	}

	frac := float32(matched) / float32(len(highWeight))
	if frac > 1 {
		frac = 1
	}

	return frac
}

// computeJDRelevance is the fraction of the bullet's declared used-keywords
// whose lower-case form is one of the job description's high-weight
// keywords. A bullet declaring no used-keywords has zero relevance.
func computeJDRelevance(usedKeywords []string, jd resume.ParsedJD) float32 {
	if len(usedKeywords) == 0 {
		return 0
	}

	highWeight := make(map[string]struct{}, len(jd.KeywordInventory))
	for _, k := range jd.HighWeightKeywords(HighWeightThreshold) {
		highWeight[strings.ToLower(k)] = struct{}{}
	}

	matched := 0

	for _, k := range usedKeywords {
		if _, ok := highWeight[strings.ToLower(k)]; ok {
			matched++
		}
	}

	frac := float32(matched) / float32(len(usedKeywords))
	if frac > 1 {
		frac = 1
	}

	return frac
}
