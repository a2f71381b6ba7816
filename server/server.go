// Package server exposes an Engine and a Store over HTTP.
//
// The surface is a small JSON API:
//
//	POST /filter   render submitted text with selected entities highlighted
//	POST /upload   extract plain text from an uploaded PDF or DOCX
//	POST /save     export highlighted text as a stored DOCX artifact
//	POST /stats    descriptive statistics for submitted text
//	GET  /labels   entity labels the engine can recognize
//	GET  /healthz  liveness probe
//	GET  /metrics  Prometheus exposition
//
// Every response body is JSON. Failures carry {"error": "..."}.
//
// Usage:
//
//	srv := server.New(server.Config{Engine: eng, Store: st})
//	http.ListenAndServe(":8080", srv.Handler())
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tsawler/rubrica"
	"github.com/tsawler/rubrica/overlay"
	"github.com/tsawler/rubrica/store"
)

const defaultMaxUploadBytes = 32 << 20

// Config carries the server's collaborators.
type Config struct {
	// Engine performs recognition, rendering, export, and text
	// extraction. Required.
	Engine *rubrica.Engine

	// Store persists the DOCX artifacts written by /save. Required.
	Store store.Store

	// Logger receives one entry per request plus handler failures.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// MaxUploadBytes caps the request body accepted by /upload.
	// Defaults to 32 MiB.
	MaxUploadBytes int64
}

// Server routes HTTP requests to a single shared Engine. The Engine and
// Store are read-only after New, so one Server handles any number of
// concurrent requests.
type Server struct {
	engine    *rubrica.Engine
	store     store.Store
	logger    *slog.Logger
	maxUpload int64
	metrics   *metrics
}

// New creates a Server from the configuration.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Server{
		engine:    cfg.Engine,
		store:     cfg.Store,
		logger:    logger,
		maxUpload: maxUpload,
		metrics:   newMetrics(),
	}
}

// Handler returns the fully wired http.Handler: all routes behind the
// request id, logging, and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.route(mux, "/filter", s.handleFilter)
	s.route(mux, "/upload", s.handleUpload)
	s.route(mux, "/save", s.handleSave)
	s.route(mux, "/stats", s.handleStats)
	s.route(mux, "/labels", s.handleLabels)
	s.route(mux, "/healthz", s.handleHealthz)
	s.route(mux, "/", s.handleNotFound)
	mux.Handle("/metrics", s.instrument("/metrics", s.metrics.handler()))
	return mux
}

// route registers a handler wrapped in the middleware stack, using the
// registered pattern as the metric route label.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(pattern, h))
}

// errorResponse is the JSON envelope for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// jobError maps a failed terminal operation to a response. Empty input is
// the caller's fault and gets the route's own message; anything else means
// the recognizer or its output is broken, which is ours.
func (s *Server) jobError(w http.ResponseWriter, err error, emptyMsg string) {
	switch {
	case errors.Is(err, rubrica.ErrEmptyText):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: emptyMsg})
	case errors.Is(err, overlay.ErrSpanBounds), errors.Is(err, overlay.ErrSpanOrder):
		s.logger.Error("overlay precondition violated", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		s.logger.Error("recognition failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "entity recognition failed"})
	}
}
