package selection

import (
	"github.com/spigell/interview-coach/internal/question"
)

type byDifficultyFilter struct {
	difficulty question.Difficulty
}

// NewByDifficulty creates a filter that keeps only questions with the given
// difficulty label.
func NewByDifficulty(d question.Difficulty) Filter {
	return &byDifficultyFilter{difficulty: d}
}

func (f *byDifficultyFilter) Name() string { return "by_difficulty" }

func (f *byDifficultyFilter) Apply(s *question.Set) (*question.Set, Step, error) {
	initial := s.Len()
	next := s.ByDifficulty(f.difficulty)

	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

type byTypeFilter struct {
	qtype question.Type
}

// NewByType creates a filter that keeps only questions of the given type.
func NewByType(t question.Type) Filter {
	return &byTypeFilter{qtype: t}
}

func (f *byTypeFilter) Name() string { return "by_type" }

func (f *byTypeFilter) Apply(s *question.Set) (*question.Set, Step, error) {
	initial := s.Len()
	next := s.ByType(f.qtype)

	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}

type excludeAskedFilter struct {
	asked map[string]struct{}
}

// NewExcludeAsked creates a filter that removes questions already asked in the
// current session.
func NewExcludeAsked(ids []string) Filter {
	asked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		asked[id] = struct{}{}
	}
	return &excludeAskedFilter{asked: asked}
}

func (f *excludeAskedFilter) Name() string { return "exclude_asked" }

func (f *excludeAskedFilter) Apply(s *question.Set) (*question.Set, Step, error) {
	initial := s.Len()

	next := &question.Set{}
	for _, q := range s.Items {
		if _, ok := f.asked[q.ID]; ok {
			continue
		}
		next.Items = append(next.Items, q)
	}

	return next, Step{Initial: initial, Dropped: initial - next.Len(), Left: next.Len()}, nil
}
