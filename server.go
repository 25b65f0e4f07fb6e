package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PuzzleRunner produces one verified puzzle per call.
type PuzzleRunner interface {
	Run(ctx context.Context) (*Puzzle, error)
}

// Server is the main HTTP server.
type Server struct {
	mux      *http.ServeMux
	pipeline PuzzleRunner
	logger   *zap.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(pipeline PuzzleRunner, logger *zap.Logger) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		pipeline: pipeline,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := r.Header.Get("X-Request-ID")
	if reqID == "" {
		reqID = uuid.NewString()
	}

	h := w.Header()
	h.Set("X-Request-ID", reqID)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Access-Control-Allow-Origin", "*")

	if r.Method == http.MethodOptions {
		h.Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
		if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
			h.Set("Access-Control-Allow-Headers", reqHeaders)
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ctx := withLogger(r.Context(), s.logger.With(zap.String("request_id", reqID)))
	s.mux.ServeHTTP(w, r.WithContext(ctx))
}

// POST /generate — build a puzzle from the news feed.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	log := loggerFrom(r.Context(), s.logger)
	log.Info("generating puzzle", zap.String("remote_addr", r.RemoteAddr))

	puzzle, err := s.pipeline.Run(r.Context())
	if err != nil {
		log.Error("generate request failed", zap.Error(err))
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Reply *Puzzle `json:"reply"`
	}{puzzle})
}

// GET /healthz — liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// --- Helpers ---

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the request-scoped logger, or fallback.
func loggerFrom(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return fallback
}
