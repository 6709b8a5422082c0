package render

import (
	"strings"
	"testing"

	"github.com/spigell/interview-coach/internal/evaluator"
	"github.com/spigell/interview-coach/internal/question"
)

func TestFeedbackPlain(t *testing.T) {
	result := &evaluator.Result{
		Score:      7,
		Reason:     "Score: 7/10. Keyword coverage: 3/3",
		Strengths:  []string{"Covered most key concepts"},
		Weaknesses: []string{"Answer was short; expand with steps or examples"},
		Tips:       []string{},
	}

	out := Feedback(result, true)

	if !strings.Contains(out, "Score: 7/10") {
		t.Fatalf("expected score line, got %q", out)
	}
	if !strings.Contains(out, " - Covered most key concepts") {
		t.Fatalf("expected strength bullet, got %q", out)
	}
	if !strings.Contains(out, "Areas to improve:") {
		t.Fatalf("expected weaknesses header, got %q", out)
	}
	if strings.Contains(out, "Actionable tips:") {
		t.Fatalf("did not expect tips header without tips, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output must not contain ANSI sequences: %q", out)
	}
}

func TestExplanationPlain(t *testing.T) {
	q := &question.Question{
		ID:          "q1",
		Text:        "What is the CIA triad?",
		Explanation: "The base model of information security.",
		References:  []string{"NIST SP 800-12"},
	}

	out := Explanation(q, true)

	if !strings.Contains(out, q.Explanation) {
		t.Fatalf("expected explanation text, got %q", out)
	}
	if !strings.Contains(out, " - NIST SP 800-12") {
		t.Fatalf("expected reference bullet, got %q", out)
	}
}

func TestExplanationMissing(t *testing.T) {
	q := &question.Question{ID: "q2", Text: "whatever"}

	out := Explanation(q, true)

	if !strings.Contains(out, "No detailed explanation available") {
		t.Fatalf("expected missing-explanation notice, got %q", out)
	}
}
