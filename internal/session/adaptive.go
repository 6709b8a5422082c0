package session

import "github.com/spigell/interview-coach/internal/question"

// Policy suggests a difficulty for upcoming questions based on past scores.
// It is deliberately decoupled from the evaluator: it only consumes scores.
type Policy struct {
	// RaiseAt is the rolling average that moves practice up to Advanced.
	RaiseAt float64
	// LowerAt is the rolling average that moves practice back to Basic.
	LowerAt float64
}

func DefaultPolicy() Policy {
	return Policy{RaiseAt: 8, LowerAt: 3}
}

// Advise returns the difficulty to use next and whether it differs from the
// current one. With no scores yet the current difficulty is kept.
func (p Policy) Advise(current question.Difficulty, scores []int) (question.Difficulty, bool) {
	if len(scores) == 0 {
		return current, false
	}

	avg := Average(scores)
	switch {
	case avg >= p.RaiseAt && current != question.Advanced:
		return question.Advanced, true
	case avg <= p.LowerAt && current != question.Basic:
		return question.Basic, true
	}

	return current, false
}
