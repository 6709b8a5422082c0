// Package session holds caller-side orchestration around the evaluator: the
// per-run outcome record, the adaptive difficulty policy and the append-only
// log sink. None of it is consulted by the evaluator itself.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/spigell/interview-coach/internal/question"
)

// Outcome records one asked question within a session.
type Outcome struct {
	Question *question.Question
	Score    int
	Reason   string
	Skipped  bool
}

// Session accumulates outcomes for a single practice run.
type Session struct {
	ID       string
	Started  time.Time
	Outcomes []Outcome
}

func New() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
	}
}

// Record stores the outcome of an evaluated question.
func (s *Session) Record(q *question.Question, score int, reason string) {
	s.Outcomes = append(s.Outcomes, Outcome{Question: q, Score: score, Reason: reason})
}

// Skip stores a skipped question as a zero-score outcome.
func (s *Session) Skip(q *question.Question) {
	s.Outcomes = append(s.Outcomes, Outcome{Question: q, Score: 0, Reason: "skipped", Skipped: true})
}

// Scores returns the scores of answered questions. Skipped ones carry no
// score and do not weigh on the adaptive policy or the average.
func (s *Session) Scores() []int {
	scores := make([]int, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Skipped {
			continue
		}
		scores = append(scores, o.Score)
	}
	return scores
}

// AskedIDs returns the ids of all questions asked so far.
func (s *Session) AskedIDs() []string {
	ids := make([]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		ids = append(ids, o.Question.ID)
	}
	return ids
}

// Summary aggregates a finished session.
type Summary struct {
	Answered int
	Skipped  int
	Average  float64
}

func (s *Session) Summary() Summary {
	summary := Summary{}
	for _, o := range s.Outcomes {
		if o.Skipped {
			summary.Skipped++
			continue
		}
		summary.Answered++
	}
	summary.Average = Average(s.Scores())
	return summary
}

// Average returns the mean of the given scores, 0 for an empty slice.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}
