// Package selection narrows the question pool before a session or a single
// pick. Filters run sequentially; when they leave nothing the whole pool is
// restored so a practice run can always proceed.
package selection

import (
	"fmt"

	"github.com/spigell/interview-coach/internal/question"
	"go.uber.org/zap"
)

// Filter represents a single narrowing step applied to the question pool.
type Filter interface {
	Name() string
	Apply(s *question.Set) (*question.Set, Step, error)
}

// Step describes the result of executing a selection step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, returning the narrowed pool.
func Run(logger *zap.Logger, steps []Filter, s *question.Set) (*question.Set, error) {
	initial := s

	for _, step := range steps {
		next, info, err := step.Apply(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Debug("selection step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		s = next
	}

	if s.Len() == 0 {
		if logger != nil {
			logger.Info("selection left no questions, falling back to the whole pool",
				zap.Int("pool", initial.Len()),
			)
		}
		return initial, nil
	}

	return s, nil
}
