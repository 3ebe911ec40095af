// Package httpapi exposes draw execution and the run ledger over a JSON
// HTTP API.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"govariate/app"
	"govariate/internal"
	"govariate/ports"
)

// Server routes JSON API requests to the draw service and run ledger.
type Server struct {
	router *chi.Mux
	draws  *app.DrawService
	reader ports.RunReaderPort
	logger *internal.Logger
}

// NewServer creates the API server.
func NewServer(draws *app.DrawService, reader ports.RunReaderPort) *Server {
	s := &Server{
		router: chi.NewRouter(),
		draws:  draws,
		reader: reader,
		logger: internal.NewDefaultLogger(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	// Draw execution
	s.router.Post("/api/draws", s.handleDraw)
	s.router.Post("/api/draws/batch", s.handleDrawBatch)

	// Run ledger queries
	s.router.Get("/api/runs", s.handleListRuns)
	s.router.Get("/api/runs/{id}", s.handleGetRun)
	s.router.Get("/api/runs/{id}/report", s.handleRunReport)
}

// Handler returns the root http.Handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}
