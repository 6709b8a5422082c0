package question

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a question file (JSON or YAML, decided by extension), normalizes
// type and difficulty labels and validates the set. A malformed file is a
// startup failure, not something to degrade around.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questions file: %w", err)
	}

	var items []*Question
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parsing questions file %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parsing questions file %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported questions file format: %s", filepath.Ext(path))
	}

	set := &Set{Items: items}
	if err := normalize(set); err != nil {
		return nil, fmt.Errorf("validating questions file %q: %w", path, err)
	}

	return set, nil
}

func normalize(s *Set) error {
	if s.Len() == 0 {
		return fmt.Errorf("no questions found")
	}

	seen := make(map[string]struct{}, s.Len())
	for i, q := range s.Items {
		if q == nil {
			return fmt.Errorf("question %d is empty", i)
		}

		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			return fmt.Errorf("question %d has no id", i)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("duplicate question id: %s", q.ID)
		}
		seen[q.ID] = struct{}{}

		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %s has no text", q.ID)
		}

		for _, kw := range q.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("question %s has an empty keyword", q.ID)
			}
		}

		q.Type = ParseType(string(q.Type))
		q.Difficulty = ParseDifficulty(string(q.Difficulty))
	}

	return nil
}
