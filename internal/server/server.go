// Package server assembles the HTTP router: global middleware, static
// assets, the UI routes, and the 404 fallback.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/membergate/internal/config"
	"github.com/me/membergate/internal/store"
	"github.com/me/membergate/internal/ui"
)

// Server is the MemberGate web server.
type Server struct {
	router chi.Router
	logger *slog.Logger
	config config.ServerConfig
	store  store.Store
	ui     *ui.UI
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, st store.Store, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.With("component", "server"),
		config: cfg,
		store:  st,
	}

	s.ui = ui.New(st, logger, ui.Config{
		Secure:     false, // TODO: derive from TLS config once the server terminates TLS
		SessionTTL: cfg.SessionTTL,
	})

	s.routes()
	return s
}

// UI returns the UI handler (used for session cleanup wiring).
func (s *Server) UI() *ui.UI {
	return s.ui
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// Static files (member images)
	r.Handle("/static/*", ui.StaticHandler(s.config.AssetsDir))

	// UI routes (HTML)
	s.ui.RegisterRoutes(r)

	// Everything else is a 404 page.
	r.NotFound(s.ui.HandleNotFound)
	r.MethodNotAllowed(s.ui.HandleNotFound)
}
