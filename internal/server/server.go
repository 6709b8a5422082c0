// Package server exposes the evaluator over a small HTTP API plus a static
// practice page, mirroring what the CLI session does per request.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/spigell/interview-coach/internal/evaluator"
	"github.com/spigell/interview-coach/internal/history"
	"github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/question"
	"github.com/spigell/interview-coach/internal/selection"
	"github.com/spigell/interview-coach/internal/session"
)

//go:embed static
var staticFS embed.FS

// Options configures optional collaborators of the server. Sink and Store may
// be nil; evaluation requests are then served without persistence.
type Options struct {
	Address string
	Logger  *zap.Logger
	Sink    *session.Log
	Store   *history.Store
}

// Server serves the question pool and the evaluator over HTTP. The pool is
// read-only after construction, so handlers share it without locking.
type Server struct {
	questions *question.Set
	logger    *zap.Logger
	sink      *session.Log
	store     *history.Store
	address   string

	// sessionID tags all attempts recorded during one server run.
	sessionID string
}

func New(questions *question.Set, opts Options) *Server {
	sessionID := uuid.NewString()

	return &Server{
		questions: questions,
		logger:    logger.WithFields(opts.Logger, zap.String(logger.FieldSession, sessionID)),
		sink:      opts.Sink,
		store:     opts.Store,
		address:   opts.Address,
		sessionID: sessionID,
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/question", s.handleQuestion)
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /api/explain", s.handleExplain)
	mux.HandleFunc("GET /api/summary", s.handleSummary)

	return mux
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type questionPayload struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
	Type       string `json:"type"`
}

// handleQuestion returns a random question matching the difficulty and type
// query parameters. When the filters leave nothing, the whole pool is used.
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	difficulty := question.ParseDifficulty(r.URL.Query().Get("difficulty"))

	steps := []selection.Filter{selection.NewByDifficulty(difficulty)}
	if raw := r.URL.Query().Get("type"); raw != "" {
		steps = append(steps, selection.NewByType(question.ParseType(raw)))
	}

	pool, err := selection.Run(s.logger, steps, s.questions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "selection failed")
		return
	}

	q := pool.Random()
	if q == nil {
		writeError(w, http.StatusNotFound, "no questions available")
		return
	}

	// Only safe fields: keywords and explanation stay server-side.
	writeJSON(w, http.StatusOK, questionPayload{
		ID:         q.ID,
		Question:   q.Text,
		Difficulty: string(q.Difficulty),
		Type:       string(q.Type),
	})
}

type evaluateRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := s.questions.FindByID(req.QuestionID)
	if q == nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	result := evaluator.Evaluate(q, req.Answer)

	s.logger.Info("answer evaluated",
		logger.EvaluationFields(q.ID, string(q.Type), string(q.Difficulty), result.Score)...,
	)

	s.persist(q, result)

	writeJSON(w, http.StatusOK, result)
}

// persist writes the evaluation to the configured sinks. Failures are logged,
// not surfaced: the client already has its result.
func (s *Server) persist(q *question.Question, result *evaluator.Result) {
	if s.sink != nil {
		err := s.sink.Append(session.Entry{
			SessionID:  s.sessionID,
			Difficulty: q.Difficulty,
			QuestionID: q.ID,
			Score:      result.Score,
			Reason:     result.Reason,
		})
		if err != nil {
			s.logger.Warn("appending to session log", zap.Error(err))
		}
	}

	if s.store != nil {
		err := s.store.RecordAttempt(&history.Attempt{
			SessionID:  s.sessionID,
			QuestionID: q.ID,
			Type:       string(q.Type),
			Difficulty: string(q.Difficulty),
			Score:      result.Score,
			Reason:     result.Reason,
		})
		if err != nil {
			s.logger.Warn("recording attempt", zap.Error(err))
		}
	}
}

type summaryPayload struct {
	SessionID string  `json:"session_id"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}

// handleSummary reports the running average of this server session. It needs
// the history store; the log sink alone keeps no queryable state.
func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "history is not configured")
		return
	}

	avg, count, err := s.store.SessionAverage(s.sessionID)
	if err != nil {
		s.logger.Error("querying session average", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "querying session average failed")
		return
	}

	writeJSON(w, http.StatusOK, summaryPayload{
		SessionID: s.sessionID,
		Average:   avg,
		Count:     count,
	})
}

type explainPayload struct {
	Explanation string   `json:"explanation"`
	References  []string `json:"references"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	q := s.questions.FindByID(r.URL.Query().Get("question_id"))
	if q == nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	refs := q.References
	if refs == nil {
		refs = []string{}
	}

	writeJSON(w, http.StatusOK, explainPayload{
		Explanation: q.Explanation,
		References:  refs,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
