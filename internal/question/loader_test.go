package question

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
- id: q1
  question: What is the CIA triad?
  type: technical
  difficulty: Basic
  keywords: [confidentiality, integrity, availability]
  explanation: The base model of information security.
  references:
    - NIST SP 800-12
- id: q2
  question: Tell me about an incident you handled.
  type: behavioral
  difficulty: intermediate
`)

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", set.Len())
	}

	q1 := set.FindByID("q1")
	if q1 == nil || q1.Type != Technical || q1.Difficulty != Basic {
		t.Fatalf("unexpected q1: %+v", q1)
	}
	if len(q1.Keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %v", q1.Keywords)
	}

	// Labels are normalized on load.
	q2 := set.FindByID("q2")
	if q2.Difficulty != Intermediate {
		t.Fatalf("expected normalized difficulty, got %q", q2.Difficulty)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "questions.json", `[
		{"id": "j1", "question": "Explain TLS.", "type": "weird", "difficulty": "ADVANCED", "keywords": ["handshake"]}
	]`)

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := set.FindByID("j1")
	if q == nil {
		t.Fatalf("question j1 not loaded")
	}
	if q.Type != Technical {
		t.Fatalf("unrecognized type must fall back to technical, got %q", q.Type)
	}
	if q.Difficulty != Advanced {
		t.Fatalf("expected Advanced, got %q", q.Difficulty)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
- id: dup
  question: one
- id: dup
  question: two
`)

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "duplicate question id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadRejectsEmptyKeyword(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
- id: q1
  question: something
  keywords: ["tls", "  "]
`)

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "empty keyword") {
		t.Fatalf("expected empty keyword error, got %v", err)
	}
}

func TestLoadRejectsMissingText(t *testing.T) {
	path := writeFile(t, "questions.json", `[{"id": "q1"}]`)

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "no text") {
		t.Fatalf("expected missing text error, got %v", err)
	}
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "questions.txt", "whatever")

	if _, err := Load(path); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := writeFile(t, "questions.yaml", "[]")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "no questions") {
		t.Fatalf("expected no questions error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
