package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		middleware.StripSlashes,
		middleware.GetHead,
		cors.Handler(corsOptions(h.corsAllowedOrigins)),
		withGZip,
	)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Get("/", h.root)
	router.Get("/health", h.health)
	router.Get("/health/upstream", h.upstreamHealth)

	router.Get("/docs", h.docs)
	router.Get("/openapi.yaml", h.openAPISpec)
	router.Method("GET", "/metrics", h.metricsHandler())

	router.Route("/api/v1/users", func(r chi.Router) {
		r.Use(middleware.GetHead)

		r.Get("/", h.listUsers)
		r.Get("/batch", h.getUsersBatch)
		r.Get("/{id}", h.getUser)
		r.Get("/{id}/contact", h.getUserContact)
		r.Get("/{id}/address", h.getUserAddress)
	})

	return router
}

// corsOptions allows credentialed requests. Browsers reject a literal "*"
// origin for those, so a wildcard list echoes the request origin instead.
func corsOptions(allowedOrigins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}

	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	}

	return opts
}
