package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/internal/presentation/graph"
	"github.com/aretw0/samuel/pkg/adapters/file"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/session"
	"github.com/aretw0/samuel/pkg/snapshot"
	"github.com/go-chi/chi/v5"
)

// Server exposes puzzles and the stateless solver over HTTP.
type Server struct {
	Sessions *session.Manager
	Streams  *StreamManager

	puzzleOpts []samuel.Option
	metrics    http.Handler
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPuzzleOptions applies opts to every puzzle the server advances.
func WithPuzzleOptions(opts ...samuel.Option) Option {
	return func(s *Server) {
		s.puzzleOpts = append(s.puzzleOpts, opts...)
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler backed by the session manager.
func NewHandler(sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		Sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams = NewStreamManager(s.logger)

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/rules", s.GetRules)
	r.Post("/solve", s.Solve)

	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", s.ListPuzzles)
		r.Post("/", s.CreatePuzzle)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetPuzzle)
			r.Delete("/", s.DeletePuzzle)
			r.Post("/stages", s.AdvancePuzzle)
			r.Post("/check", s.CheckSubmission)
			r.Get("/events", s.SubscribeEvents)
		})
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Displayed string                 `json:"displayed"`
	Stage     int                    `json:"stage"`
	Snapshot  domain.Snapshot        `json:"snapshot"`
	Cross     domain.CrossStageState `json:"cross"`
}

// SolveResponse carries the result and the updated cross-stage flags, which
// the caller passes back on the next stage.
type SolveResponse struct {
	Result *samuel.Result         `json:"result"`
	Cross  domain.CrossStageState `json:"cross"`
}

// CreatePuzzleRequest is the body of POST /puzzles. Exactly one of Bomb or
// Snapshot must be set.
type CreatePuzzleRequest struct {
	Bomb     json.RawMessage  `json:"bomb,omitempty"`
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`
}

// AdvanceRequest is the optional body of POST /puzzles/{id}/stages. Without
// a displayed sequence one is generated.
type AdvanceRequest struct {
	Displayed string `json:"displayed,omitempty"`
}

// CheckRequest is the body of POST /puzzles/{id}/check.
type CheckRequest struct {
	Submission string `json:"submission"`
}

// CheckResponse reports whether a submission matches the current stage.
type CheckResponse struct {
	Correct bool `json:"correct"`
	Stage   int  `json:"stage"`
}

// Solve handles POST /solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "Solve", "Invalid request body", err)
		return
	}
	displayed, err := domain.ParseSequence(body.Displayed)
	if err != nil {
		s.badRequest(w, "Solve", fmt.Sprintf("Invalid sequence: %v", err), err)
		return
	}

	cross := body.Cross
	res, err := samuel.ExpectedSubmission(r.Context(), displayed, body.Stage, body.Snapshot, &cross, s.puzzleOpts...)
	if err != nil {
		s.writeError(w, "Solve", err)
		return
	}
	s.writeJSON(w, http.StatusOK, SolveResponse{Result: res, Cross: cross})
}

// CreatePuzzle handles POST /puzzles.
func (s *Server) CreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var body CreatePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "CreatePuzzle", "Invalid request body", err)
		return
	}

	var snap domain.Snapshot
	switch {
	case len(body.Bomb) > 0 && body.Snapshot != nil:
		s.badRequest(w, "CreatePuzzle", "Provide either bomb or snapshot, not both", nil)
		return
	case len(body.Bomb) > 0:
		bomb, err := file.Parse(body.Bomb, "json")
		if err != nil {
			s.badRequest(w, "CreatePuzzle", fmt.Sprintf("Invalid bomb: %v", err), err)
			return
		}
		snap = snapshot.Capture(bomb)
	case body.Snapshot != nil:
		snap = *body.Snapshot
	default:
		s.badRequest(w, "CreatePuzzle", "Missing bomb or snapshot", nil)
		return
	}

	state, err := s.Sessions.Create(r.Context(), snap)
	if err != nil {
		s.writeError(w, "CreatePuzzle", err)
		return
	}
	w.Header().Set("Location", "/puzzles/"+state.ID)
	s.writeJSON(w, http.StatusCreated, state)
}

// ListPuzzles handles GET /puzzles.
func (s *Server) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Sessions.List(r.Context())
	if err != nil {
		s.writeError(w, "ListPuzzles", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"puzzles": ids})
}

// GetPuzzle handles GET /puzzles/{id}.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	state, err := s.Sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "GetPuzzle", err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// DeletePuzzle handles DELETE /puzzles/{id}.
func (s *Server) DeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, "DeletePuzzle", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdvancePuzzle handles POST /puzzles/{id}/stages.
func (s *Server) AdvancePuzzle(w http.ResponseWriter, r *http.Request) {
	var body AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		s.badRequest(w, "AdvancePuzzle", "Invalid request body", err)
		return
	}

	var displayed domain.Sequence
	if strings.TrimSpace(body.Displayed) != "" {
		var err error
		displayed, err = domain.ParseSequence(body.Displayed)
		if err != nil {
			s.badRequest(w, "AdvancePuzzle", fmt.Sprintf("Invalid sequence: %v", err), err)
			return
		}
	}

	id := chi.URLParam(r, "id")
	var stage *samuel.Stage
	_, err := s.Sessions.Update(r.Context(), id, func(ctx context.Context, state *domain.PuzzleState) error {
		p := samuel.FromState(state, s.puzzleOpts...)
		var err error
		if displayed == nil {
			stage, err = p.Advance(ctx)
		} else {
			stage, err = p.AdvanceWith(ctx, displayed)
		}
		if err != nil {
			return err
		}
		*state = *p.State()
		return nil
	})
	if err != nil {
		s.writeError(w, "AdvancePuzzle", err)
		return
	}

	if payload, err := json.Marshal(stage); err == nil {
		s.Streams.Broadcast(id, string(payload))
	}
	s.writeJSON(w, http.StatusOK, stage)
}

// CheckSubmission handles POST /puzzles/{id}/check.
func (s *Server) CheckSubmission(w http.ResponseWriter, r *http.Request) {
	var body CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.badRequest(w, "CheckSubmission", "Invalid request body", err)
		return
	}
	submission, err := domain.ParseColouredSymbol(body.Submission)
	if err != nil {
		s.badRequest(w, "CheckSubmission", fmt.Sprintf("Invalid submission: %v", err), err)
		return
	}

	state, err := s.Sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "CheckSubmission", err)
		return
	}
	s.writeJSON(w, http.StatusOK, CheckResponse{
		Correct: samuel.FromState(state).Check(submission),
		Stage:   state.Stage,
	})
}

// SubscribeEvents handles GET /puzzles/{id}/events (SSE). Every stage
// advanced on the puzzle is pushed as a JSON data frame.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := s.Sessions.Load(r.Context(), id); err != nil {
		s.writeError(w, "SubscribeEvents", err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "puzzle", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: stage\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// GetRules handles GET /rules. With ?format=mermaid the tables are returned
// as a Mermaid flowchart.
func (s *Server) GetRules(w http.ResponseWriter, r *http.Request) {
	rules := samuel.Rules()
	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, graph.GenerateMermaid(rules, nil))
		return
	}
	s.writeJSON(w, http.StatusOK, rules)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "samuel-http",
		"version": strings.TrimSpace(samuel.Version),
	})
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, op, msg string, err error) {
	http.Error(w, msg, http.StatusBadRequest)
	s.logger.Warn(op+": "+msg, "err", err)
}

// writeError maps domain errors to status codes. Anything unrecognised,
// including the engine's internal consistency failures, is a 500.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPuzzleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPuzzleSolved):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidSequence), errors.Is(err, domain.ErrInvalidStage):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	if status == http.StatusInternalServerError {
		s.logger.Error(op+" failed", "err", err)
	} else {
		s.logger.Debug(op+" rejected", "err", err, "status", status)
	}
}
