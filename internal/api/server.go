// Package api provides a small read-only HTTP surface for operating shoebot:
// health, catalog availability, and session inspection.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/flow"
	"github.com/kykylib/shoebot/internal/models"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 5 * time.Second

// Server wires the operational HTTP endpoints.
type Server struct {
	catalog  catalog.Store
	sessions *flow.SessionStore
	httpSrv  *http.Server
}

// NewServer creates an API server listening on addr.
func NewServer(addr string, cat catalog.Store, sessions *flow.SessionStore) *Server {
	s := &Server{catalog: cat, sessions: sessions}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sizes", s.handleSizes)
		r.Get("/sessions/{userID}", s.handleSession)
	})

	s.httpSrv = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start serves HTTP until Shutdown is called. It returns once the listener
// closes.
func (s *Server) Start() error {
	slog.Info("API server listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.catalog.Count(r.Context())
	if err != nil {
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("catalog store unavailable"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(map[string]interface{}{
		"catalog_items":   count,
		"active_sessions": s.sessions.Count(),
	}))
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := s.catalog.ListDistinctSizes(r.Context())
	if err != nil {
		slog.Error("Server.handleSizes failed", "error", err)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("failed to list sizes"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(sizes))
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	// Marshal a snapshot copy; the live session may be mid-mutation in a
	// dispatcher worker.
	sess, ok := s.sessions.Snapshot(userID)
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, models.Error("session not found"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(sess))
}
