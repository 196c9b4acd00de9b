package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
	"carbon-backend/app/src/shared/constants"
)

// Server exposes the HTTP transport for the carbon backend.
type Server struct {
	handler http.Handler
}

// NewServer wires the router, instrumentation and handlers. defaultLimit
// bounds /readings queries that carry no limit parameter.
func NewServer(ingest domain.IngestService, cache domain.LatestCache, readings domain.ReadingsService, defaultLimit int, logger *infra.Logger) *Server {
	if defaultLimit <= 0 {
		defaultLimit = constants.DefaultReadingsLimit
	}

	h := &handler{
		ingest:       ingest,
		cache:        cache,
		readings:     readings,
		defaultLimit: defaultLimit,
		logger:       logger,
	}

	router := chi.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(infra.HTTPMiddleware(func(r *http.Request) string {
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				return pattern
			}
		}
		return r.URL.Path
	}))
	registerRoutes(router, h)

	return &Server{handler: router}
}

// Router returns the configured handler for reuse in tests or external
// HTTP servers.
func (s *Server) Router() http.Handler {
	return s.handler
}

// ServeHTTP allows Server to satisfy the http.Handler interface directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// requestIDMiddleware tags every request with a correlation ID that flows
// through the context into log entries.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = constants.NewRequestID()
		}
		ctx := infra.WithCorrelationID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
