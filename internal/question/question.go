package question

import (
	"math/rand/v2"
	"strings"
)

// Type selects which scoring rule applies to an answer.
type Type string

const (
	Technical  Type = "technical"
	Behavioral Type = "behavioral"
	Scenario   Type = "scenario"
)

// ParseType maps a free-form type label to a known Type. Absent or
// unrecognized labels fall back to Technical.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Behavioral):
		return Behavioral
	case string(Scenario):
		return Scenario
	default:
		return Technical
	}
}

// Difficulty labels a question for selection and filtering only. It never
// affects scoring.
type Difficulty string

const (
	Basic        Difficulty = "Basic"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// ParseDifficulty normalizes a free-form difficulty label. Absent or
// unrecognized labels fall back to Intermediate.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return Basic
	case "advanced":
		return Advanced
	default:
		return Intermediate
	}
}

// Question is a single interview prompt. Questions are loaded once at startup
// and never mutated afterwards, so a Set can be shared across concurrent
// evaluation calls without locking.
type Question struct {
	ID          string     `json:"id" yaml:"id"`
	Text        string     `json:"question" yaml:"question"`
	Type        Type       `json:"type,omitempty" yaml:"type,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Keywords    []string   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Explanation string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	References  []string   `json:"references,omitempty" yaml:"references,omitempty"`
}

// Set is a read-only pool of questions.
type Set struct {
	Items []*Question
}

func (s *Set) Len() int {
	return len(s.Items)
}

func (s *Set) FindByID(id string) *Question {
	for _, q := range s.Items {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// ByDifficulty returns a new Set containing only questions with the given
// difficulty. Comparison is done on normalized labels.
func (s *Set) ByDifficulty(d Difficulty) *Set {
	next := &Set{}
	for _, q := range s.Items {
		if strings.EqualFold(string(q.Difficulty), string(d)) {
			next.Items = append(next.Items, q)
		}
	}
	return next
}

// ByType returns a new Set containing only questions of the given type.
func (s *Set) ByType(t Type) *Set {
	next := &Set{}
	for _, q := range s.Items {
		if q.Type == t {
			next.Items = append(next.Items, q)
		}
	}
	return next
}

// IDs returns the ids of all questions in the set.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, q := range s.Items {
		ids = append(ids, q.ID)
	}
	return ids
}

// Pick returns up to count questions in shuffled order. The receiver is not
// modified.
func (s *Set) Pick(count int) []*Question {
	picked := make([]*Question, len(s.Items))
	copy(picked, s.Items)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if count > 0 && count < len(picked) {
		picked = picked[:count]
	}
	return picked
}

// Random returns a random question from the set, or nil when the set is empty.
func (s *Set) Random() *Question {
	if len(s.Items) == 0 {
		return nil
	}
	return s.Items[rand.IntN(len(s.Items))]
}
