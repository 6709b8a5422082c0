package session

import (
	"testing"

	"github.com/spigell/interview-coach/internal/question"
)

func TestSessionSummary(t *testing.T) {
	s := New()
	if s.ID == "" {
		t.Fatalf("expected a session id")
	}

	q1 := &question.Question{ID: "1", Text: "a"}
	q2 := &question.Question{ID: "2", Text: "b"}
	q3 := &question.Question{ID: "3", Text: "c"}

	s.Record(q1, 8, "Score: 8/10. ok")
	s.Skip(q2)
	s.Record(q3, 4, "Score: 4/10. meh")

	summary := s.Summary()
	if summary.Answered != 2 || summary.Skipped != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	// Skipped questions are not scored and stay out of the average.
	if summary.Average != 6 {
		t.Fatalf("expected average 6, got %v", summary.Average)
	}

	if got := s.Scores(); len(got) != 2 {
		t.Fatalf("expected 2 scores, got %v", got)
	}

	asked := s.AskedIDs()
	if len(asked) != 3 || asked[1] != "2" {
		t.Fatalf("unexpected asked ids: %v", asked)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Fatalf("expected 0 for no scores, got %v", got)
	}
	if got := Average([]int{7, 8}); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
}

func TestPolicyAdvise(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		name    string
		current question.Difficulty
		scores  []int
		want    question.Difficulty
		changed bool
	}{
		{name: "no scores holds", current: question.Intermediate, scores: nil, want: question.Intermediate},
		{name: "strong run raises", current: question.Intermediate, scores: []int{8, 9}, want: question.Advanced, changed: true},
		{name: "already advanced holds", current: question.Advanced, scores: []int{10}, want: question.Advanced},
		{name: "weak run lowers", current: question.Intermediate, scores: []int{2, 3}, want: question.Basic, changed: true},
		{name: "already basic holds", current: question.Basic, scores: []int{1}, want: question.Basic},
		{name: "middling holds", current: question.Intermediate, scores: []int{5, 6}, want: question.Intermediate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := policy.Advise(tc.current, tc.scores)
			if got != tc.want || changed != tc.changed {
				t.Fatalf("Advise(%s, %v) = (%s, %v), want (%s, %v)",
					tc.current, tc.scores, got, changed, tc.want, tc.changed)
			}
		})
	}
}
