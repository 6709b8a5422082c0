package session

import (
	"fmt"
	"os"
	"time"

	"github.com/spigell/interview-coach/internal/question"
)

// Log is the append-only session log sink: one tab-separated line per
// evaluated question.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// Entry is a single evaluated question to be logged.
type Entry struct {
	Time       time.Time
	SessionID  string
	Difficulty question.Difficulty
	QuestionID string
	Score      int
	Reason     string
}

// Append writes the entry as one line at the end of the log file, creating it
// when missing.
func (l *Log) Append(e Entry) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer file.Close()

	when := e.Time
	if when.IsZero() {
		when = time.Now().UTC()
	}

	line := fmt.Sprintf("%s\t%s\t%s\tQ:%s\tScore:%d\tReason:%s\n",
		when.UTC().Format(time.RFC3339),
		e.SessionID,
		e.Difficulty,
		e.QuestionID,
		e.Score,
		e.Reason,
	)

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("appending to session log: %w", err)
	}

	return nil
}
