package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldSession is the structured log field key for the session identifier.
	FieldSession = "session_id"
	// FieldQuestion is the structured log field key for the question identifier.
	FieldQuestion = "question_id"
	// FieldType is the structured log field key for the question type.
	FieldType = "question_type"
	// FieldDifficulty is the structured log field key for the difficulty label.
	FieldDifficulty = "difficulty"
	// FieldScore is the structured log field key for the evaluation score.
	FieldScore = "score"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// EvaluationFields returns the standard fields describing one evaluated
// answer. Empty string values are skipped to keep entries compact. The session
// id is attached to the logger once via WithFields, not repeated per call.
func EvaluationFields(questionID, qtype, difficulty string, score int) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldQuestion, Value: questionID},
		StringField{Key: FieldType, Value: qtype},
		StringField{Key: FieldDifficulty, Value: difficulty},
	)

	return append(fields, zap.Int(FieldScore, score))
}
