// Package prompts holds the LLM prompt templates the simulation loop uses to
// remediate bullets that fail the line coverage contract, plus the small
// helpers that fill them in.
package prompts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PsychoPunkSage/templar/internal/resume"
)

// ExpandSystem is the system prompt for the expand-bullet remediation call.
const ExpandSystem = "You are an expert resume editor. You rewrite a single resume " +
	"bullet so that it fills more of its allotted line width without padding " +
	"it with filler words. You preserve every factual claim in the original " +
	"bullet. You respond with JSON only: {\"text\": \"<rewritten bullet>\"}."

// expandTemplate placeholders: bullet_text, fill_percent, required_percent,
// char_budget, jd_keywords.
const expandTemplate = `The following resume bullet is too short for its line:

"%s"

It currently fills %s of the line; it needs to fill at least %s. You have
roughly %s characters of budget to work with. Add concrete, relevant detail
(scope, tooling, outcome) rather than adjectives. Where natural, weave in
these job description keywords: %s.

Respond with JSON only: {"text": "<rewritten bullet>"}`

// CompressSystem is the system prompt for the compress-bullet remediation
// call.
const CompressSystem = "You are an expert resume editor. You rewrite a single " +
	"resume bullet so it fits in fewer lines without losing its core claim. " +
	"You respond with JSON only: {\"text\": \"<rewritten bullet>\"}."

// compressTemplate placeholders: bullet_text, actual_lines, char_budget,
// jd_keywords.
const compressTemplate = `The following resume bullet wraps to %s lines, which is
too many for a single-page resume:

"%s"

Rewrite it to fit in roughly %s characters while keeping its strongest claim.
Where possible, keep these job description keywords: %s.

Respond with JSON only: {"text": "<rewritten bullet>"}`

// BuildExpandPrompt fills the expand-bullet template.
func BuildExpandPrompt(bulletText string, fillFraction, requiredFraction float32, charBudget int, jd resume.ParsedJD) string {
	return fmt.Sprintf(expandTemplate,
		bulletText,
		formatPercent(fillFraction),
		formatPercent(requiredFraction),
		strconv.Itoa(charBudget),
		TopJDKeywords(jd, 5),
	)
}

// BuildCompressPrompt fills the compress-bullet template.
func BuildCompressPrompt(bulletText string, actualLines, charBudget int, jd resume.ParsedJD) string {
	return fmt.Sprintf(compressTemplate,
		strconv.Itoa(actualLines),
		bulletText,
		strconv.Itoa(charBudget),
		TopJDKeywords(jd, 5),
	)
}

// TopJDKeywords returns the top n keywords by weighted score, comma
// joined, falling back to "none specified" when the job description carries
// no keyword inventory.
func TopJDKeywords(jd resume.ParsedJD, n int) string {
	entries := append([]resume.KeywordEntry(nil), jd.KeywordInventory...)
	if len(entries) == 0 {
		return "none specified"
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeightedScore > entries[j].WeightedScore
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	keywords := make([]string, len(entries))
	for i, e := range entries {
		keywords[i] = e.Keyword
	}

	return strings.Join(keywords, ", ")
}

func formatPercent(f float32) string {
	return strconv.Itoa(int(f*100)) + "%"
}
