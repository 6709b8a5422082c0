package evaluator

import (
	"regexp"
	"strings"
)

// The heuristic rules scan for fixed marker vocabularies. Keeping them as
// named tables keeps the rules data, not scattered literals.
var (
	// starMarkers signal STAR-style structure in behavioral answers.
	// "responsib" covers both "responsible" and "responsibility".
	starMarkers = []string{
		"situation", "task", "action", "result", "challenge",
		"led", "implemented", "outcome", "impact", "responsib",
	}

	// stepMarkers signal a stepwise approach in scenario answers.
	stepMarkers = []string{"step", "first", "then"}

	// metricPattern matches measurable results: percentages, duration
	// quantities, or change verbs.
	metricPattern = regexp.MustCompile(`\b(\d+%|\d+\s+(days|weeks|months|years)|reduced|improved|decreased|increased)\b`)
)

// countKeywords returns how many keywords appear in the lowercased answer.
// Matching is case-insensitive substring containment.
func countKeywords(lowerAnswer string, keywords []string) int {
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lowerAnswer, strings.ToLower(kw)) {
			matched++
		}
	}
	return matched
}

func containsAny(lowerAnswer string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lowerAnswer, m) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	return max(0, min(10, score))
}
