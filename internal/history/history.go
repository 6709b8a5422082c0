// Package history persists evaluated attempts in a sqlite database so past
// practice can be reviewed across runs. The store is optional: the session
// log sink alone satisfies the logging contract.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed attempt store.
type Store struct {
	db *sql.DB
}

// Attempt is one evaluated answer.
type Attempt struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	QuestionID string    `json:"question_id"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		type TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		score INTEGER NOT NULL,
		reason TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating attempts table: %w", err)
	}
	return nil
}

// RecordAttempt inserts the attempt, assigning an id and timestamp when the
// caller left them empty.
func (s *Store) RecordAttempt(a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		"INSERT INTO attempts (id, session_id, question_id, type, difficulty, score, reason, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		a.ID, a.SessionID, a.QuestionID, a.Type, a.Difficulty, a.Score, a.Reason, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}
	return nil
}

// RecentAttempts returns up to limit attempts, newest first.
func (s *Store) RecentAttempts(limit int) ([]*Attempt, error) {
	rows, err := s.db.Query(
		"SELECT id, session_id, question_id, type, difficulty, score, reason, created_at FROM attempts ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]*Attempt, 0, limit)
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &a.Type, &a.Difficulty, &a.Score, &a.Reason, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		attempts = append(attempts, &a)
	}

	return attempts, rows.Err()
}

// SessionAverage returns the average score and attempt count for a session.
func (s *Store) SessionAverage(sessionID string) (float64, int, error) {
	var avg sql.NullFloat64
	var count int

	err := s.db.QueryRow(
		"SELECT AVG(score), COUNT(*) FROM attempts WHERE session_id = ?",
		sessionID,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("querying session average: %w", err)
	}

	return avg.Float64, count, nil
}

// OverallAverage returns the average score over all recorded attempts.
func (s *Store) OverallAverage() (float64, int, error) {
	var avg sql.NullFloat64
	var count int

	err := s.db.QueryRow("SELECT AVG(score), COUNT(*) FROM attempts").Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("querying overall average: %w", err)
	}

	return avg.Float64, count, nil
}
