// Package api exposes person search over HTTP as GraphQL and a small REST mirror.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/application/handlers"
	"github.com/ersonp/person-search/internal/infrastructure/metrics"
	"github.com/ersonp/person-search/internal/interfaces/http/middleware"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// Metrics enables request instrumentation and the /metrics endpoint when set.
	Metrics *metrics.Collector
}

// Router creates and configures the HTTP router.
type Router struct {
	search   *handlers.SearchHandler
	research *handlers.ResearchHandler
	store    Pinger
	opts     Options
	logger   *zap.Logger
}

// NewRouter creates a new router. research may be nil.
func NewRouter(
	search *handlers.SearchHandler,
	research *handlers.ResearchHandler,
	store Pinger,
	opts Options,
	logger *zap.Logger,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		search:   search,
		research: research,
		store:    store,
		opts:     opts,
		logger:   logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() (http.Handler, error) {
	graphQL, err := newGraphQLHandler(rt.search, rt.research, rt.opts.Metrics, rt.logger)
	if err != nil {
		return nil, fmt.Errorf("building graphql schema: %w", err)
	}
	persons := &personsHandler{search: rt.search, metrics: rt.opts.Metrics, logger: rt.logger}

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.opts.Metrics != nil {
		router.Use(middleware.Metrics(rt.opts.Metrics))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.opts.Metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/graphql", graphQL)
		r.Method(http.MethodPost, "/graphql", graphQL)
		r.Get("/persons/search", persons.Search)
	})

	return router, nil
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, rt.logger, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports ready only when the store answers a ping.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	if err := rt.store.Ping(r.Context()); err != nil {
		rt.logger.Warn("readiness check failed", zap.Error(err))
		respondJSON(w, rt.logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondJSON(w, rt.logger, http.StatusOK, map[string]string{"status": "ready"})
}
