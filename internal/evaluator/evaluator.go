// Package evaluator scores free-text interview answers with deterministic,
// auditable heuristics: keyword coverage, STAR-structure detection and length
// signals. Evaluate is a pure function with no I/O and no process state, so it
// is safe to call concurrently.
package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/interview-coach/internal/question"
)

// Result is the outcome of evaluating one answer against one question.
// Slices are always non-nil so the result serializes to JSON arrays.
type Result struct {
	Score      int      `json:"score"`
	Reason     string   `json:"reason"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Tips       []string `json:"tips"`
}

// Evaluate scores an answer against a question. It never fails: an empty or
// whitespace-only answer is a defined zero-score outcome. The question is
// assumed valid; resolving ids is the caller's job.
func Evaluate(q *question.Question, answer string) *Result {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return &Result{
			Score:      0,
			Reason:     "No answer provided.",
			Strengths:  []string{},
			Weaknesses: []string{"No response."},
			Tips:       []string{"Try to answer the question; use STAR for behavioral answers or outline steps for technical ones."},
		}
	}

	r := &Result{
		Strengths:  []string{},
		Weaknesses: []string{},
		Tips:       []string{},
	}

	var reason string
	switch q.Type {
	case question.Behavioral:
		reason = scoreBehavioral(answer, r)
	case question.Scenario:
		reason = scoreScenario(q, answer, r)
	default:
		reason = scoreTechnical(q, answer, r)
	}

	// Single clamping point for every branch. The scenario branch may carry
	// its stepwise bonus past the keyword base before landing here.
	r.Score = clamp(r.Score)

	if r.Score >= 8 {
		r.Strengths = append(r.Strengths, "Good answer — clear and thorough")
	} else if r.Score >= 5 {
		r.Strengths = append(r.Strengths, "Decent answer; with room to add more specifics or examples")
	}

	r.Reason = fmt.Sprintf("Score: %d/10. %s", r.Score, reason)

	return r
}

// scoreTechnical rates keyword coverage (up to 8 points) with a length
// adjustment, falling back to a pure length proxy when the question declares
// no keywords.
func scoreTechnical(q *question.Question, answer string, r *Result) string {
	reason := "Evaluated technical response by heuristics."
	lower := strings.ToLower(answer)
	words := len(strings.Fields(answer))

	if len(q.Keywords) > 0 {
		matched := countKeywords(lower, q.Keywords)
		coverage := float64(matched) / float64(len(q.Keywords))
		r.Score = int(math.Round(coverage * 8))
		reason = fmt.Sprintf("Keyword coverage: %d/%d", matched, len(q.Keywords))

		if coverage > 0.7 {
			r.Strengths = append(r.Strengths, "Covered most key concepts")
		} else {
			r.Weaknesses = append(r.Weaknesses, "Missed some important concepts")
			r.Tips = append(r.Tips, "Make sure to mention the core terms and explain how they fit together. Consider a short definition followed by an example.")
		}
	} else {
		r.Score = min(6, words/20)
	}

	if words > 120 {
		r.Score = min(10, r.Score+1)
		r.Strengths = append(r.Strengths, "Provided detailed answer")
	} else if words < 30 {
		r.Score = max(0, r.Score-1)
		r.Weaknesses = append(r.Weaknesses, "Answer was short; expand with steps or examples")
	}

	if q.Explanation != "" && r.Score < 6 {
		r.Tips = append(r.Tips, "Review the key concept: "+q.Explanation)
	}

	return reason
}

// scoreBehavioral rates STAR-structure markers (presence, not frequency) with
// a bonus for measurable results.
func scoreBehavioral(answer string, r *Result) string {
	lower := strings.ToLower(answer)

	hits := 0
	for _, m := range starMarkers {
		if strings.Contains(lower, m) {
			hits++
		}
	}

	r.Score = min(10, hits*2)

	if metricPattern.MatchString(lower) {
		r.Score = min(10, r.Score+2)
		r.Strengths = append(r.Strengths, "Included measurable results or metrics")
	}

	if hits >= 3 {
		r.Strengths = append(r.Strengths, "Clear structure — covers multiple STAR elements")
	} else {
		r.Weaknesses = append(r.Weaknesses, "Missing parts of the STAR structure (Situation, Task, Action, Result)")
		r.Tips = append(r.Tips, "Use the STAR method: briefly state the Situation and Task, describe Actions you took, and end with the Result (preferably quantifiable).")
	}

	return fmt.Sprintf("Detected STAR-like keywords: %d", hits)
}

// scoreScenario rates keyword coverage (up to 7 points) with a bonus for
// stepwise language. The bonus is added before the final clamp on purpose.
func scoreScenario(q *question.Question, answer string, r *Result) string {
	lower := strings.ToLower(answer)

	matched := countKeywords(lower, q.Keywords)
	coverage := 0.0
	if len(q.Keywords) > 0 {
		coverage = float64(matched) / float64(len(q.Keywords))
	}
	r.Score = int(math.Round(coverage * 7))

	if containsAny(lower, stepMarkers) {
		r.Score += 2
		r.Strengths = append(r.Strengths, "Provided a stepwise approach")
	}

	if coverage < 0.5 {
		r.Weaknesses = append(r.Weaknesses, "Missed some technical or process-oriented items")
		r.Tips = append(r.Tips, "Outline a clear step-by-step plan and mention key controls or mitigations.")
	}

	return fmt.Sprintf("Scenario heuristic: %d/%d keywords matched", matched, len(q.Keywords))
}
