package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/suitey/go-example/arith"
	"github.com/suitey/go-example/combined"
	"github.com/suitey/go-example/internal/config"
)

// Server represents the API server
type Server struct {
	cfg    *config.Config
	router *chi.Mux
}

// NewServer creates a new API server
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(corsMiddleware)
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.healthCheck)
	s.router.Get("/ready", s.readyCheck)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/add", s.evalAdd)
		r.Post("/multiply", s.evalMultiply)
		r.Post("/is-even", s.evalIsEven)
		r.Post("/combined-add", s.evalCombinedAdd)
	})
}

// Health check handlers
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) readyCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// EvalRequest is the request body for an arithmetic evaluation
type EvalRequest struct {
	A int32 `json:"a"`
	B int32 `json:"b,omitempty"`
}

// EvalResponse is the API response for an arithmetic evaluation. ID lets a
// harness correlate results across runs. Result and Even are pointers so a
// zero result still serializes while the field that does not apply to the
// operation is dropped.
type EvalResponse struct {
	ID     uuid.UUID `json:"id"`
	Op     string    `json:"op"`
	A      int32     `json:"a"`
	B      int32     `json:"b"`
	Result *int32    `json:"result,omitempty"`
	Even   *bool     `json:"even,omitempty"`
}

func (s *Server) evalAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEvalRequest(w, r)
	if !ok {
		return
	}

	result := arith.Add(req.A, req.B)
	respondJSON(w, http.StatusOK, EvalResponse{
		ID:     uuid.New(),
		Op:     "add",
		A:      req.A,
		B:      req.B,
		Result: &result,
	})
}

func (s *Server) evalMultiply(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEvalRequest(w, r)
	if !ok {
		return
	}

	result := arith.Multiply(req.A, req.B)
	respondJSON(w, http.StatusOK, EvalResponse{
		ID:     uuid.New(),
		Op:     "multiply",
		A:      req.A,
		B:      req.B,
		Result: &result,
	})
}

func (s *Server) evalIsEven(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEvalRequest(w, r)
	if !ok {
		return
	}

	even := arith.IsEven(req.A)
	respondJSON(w, http.StatusOK, EvalResponse{
		ID:   uuid.New(),
		Op:   "is_even",
		A:    req.A,
		Even: &even,
	})
}

func (s *Server) evalCombinedAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEvalRequest(w, r)
	if !ok {
		return
	}

	result := combined.CombinedAdd(req.A, req.B)
	respondJSON(w, http.StatusOK, EvalResponse{
		ID:     uuid.New(),
		Op:     "combined_add",
		A:      req.A,
		B:      req.B,
		Result: &result,
	})
}

func decodeEvalRequest(w http.ResponseWriter, r *http.Request) (EvalRequest, bool) {
	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return EvalRequest{}, false
	}
	return req, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
