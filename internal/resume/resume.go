// Package resume holds the data shapes the layout engine accepts from and
// returns to its upstream and downstream collaborators. These are plain
// records: upstream projection from JSON happens before the layout engine is
// called, and nothing in here reaches back into a free-form map.
package resume

import "github.com/google/uuid"

// JDTone is the job description's detected tone. The layout engine passes it
// through without interpreting it.
type JDTone string

// Detected tone values, mirrored from the upstream JD parser.
const (
	ToneAggressiveStartup       JDTone = "aggressive_startup"
	ToneCollaborativeEnterprise JDTone = "collaborative_enterprise"
	ToneResearchOriented        JDTone = "research_oriented"
	ToneProductOriented         JDTone = "product_oriented"
)

// KeywordEntry is a single keyword from the job description's keyword
// inventory, already weighted by the (out of scope) JD parser.
type KeywordEntry struct {
	Keyword string `json:"keyword"`
	// Frequency is the raw occurrence count in the job description.
	Frequency int `json:"frequency"`
	// PositionWeight is in [0,1]: title=1.0, requirements=0.8, responsibilities=0.6, about=0.3.
	PositionWeight float32 `json:"position_weight"`
	// WeightedScore is Frequency * PositionWeight.
	WeightedScore float32 `json:"weighted_score"`
}

// ParsedJD is the read-only structure supplied by the upstream job
// description parser. Layout code only reads KeywordInventory; DetectedTone
// is carried for passthrough only.
type ParsedJD struct {
	KeywordInventory []KeywordEntry `json:"keyword_inventory"`
	DetectedTone     JDTone         `json:"detected_tone"`
}

// HighWeightKeywords returns the keywords whose position weight is at least
// the given threshold. Used by contract scoring; the page fill analyzer's
// keyword-match ranking uses the full inventory instead. Callers lower-case
// as needed.
func (p ParsedJD) HighWeightKeywords(minWeight float32) []string {
	var out []string

	for _, k := range p.KeywordInventory {
		if k.PositionWeight >= minWeight {
			out = append(out, k.Keyword)
		}
	}

	return out
}

// DraftBullet is a single draft resume bullet produced by the upstream
// content selector and draft generator. The simulator does not validate
// SourceEntryID; it preserves it on all outputs.
type DraftBullet struct {
	Text string `json:"text"`
	// SourceEntryID points into a selected-entry set known to the caller.
	SourceEntryID uuid.UUID `json:"source_entry_id"`
	Section       string    `json:"section"`
	// LineEstimate is the draft generator's advisory line count. The
	// simulator's verified line count always replaces it.
	LineEstimate int `json:"line_estimate"`
	// JDKeywordsUsed is the set of JD keywords the generator claims to have
	// woven into Text.
	JDKeywordsUsed []string `json:"jd_keywords_used"`
}
