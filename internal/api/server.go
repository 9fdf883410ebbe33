// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jkamin61/wmm-sub000/internal/core/browse"
	"github.com/jkamin61/wmm-sub000/internal/core/catalog"
	"github.com/jkamin61/wmm-sub000/internal/core/language"
	"github.com/jkamin61/wmm-sub000/internal/core/search"
	"github.com/jkamin61/wmm-sub000/internal/core/tasting"
	"github.com/jkamin61/wmm-sub000/internal/platform/config"
	"github.com/jkamin61/wmm-sub000/internal/platform/constants"
	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
	"github.com/jkamin61/wmm-sub000/internal/platform/middleware"
	"github.com/jkamin61/wmm-sub000/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 503 while a dependency is down.
	Readiness http.HandlerFunc

	Languages *language.Handler
	Catalog   *catalog.Handler
	Tasting   *tasting.Handler
	Search    *search.Handler
	Browse    *browse.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, collectors *metrics.Catalog, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Instrument(collectors))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", collectors.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		// Public, language-resolved reads.
		api.Route("/languages", h.Languages.RegisterRoutes)
		h.Tasting.RegisterRoutes(api)
		h.Search.RegisterRoutes(api)
		h.Browse.RegisterRoutes(api)

		// Admin surface. Every route needs a verified editor token.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.Authenticate(verifier))
			admin.Use(middleware.RequireRole(sec.RoleEditor))

			h.Catalog.RegisterAdminRoutes(admin, h.Tasting.RegisterItemRoutes)
			h.Tasting.RegisterAdminRoutes(admin)
			admin.Route("/languages", h.Languages.RegisterAdminRoutes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
