// Package router sets up all HTTP routes and middleware chains for the
// generation API. Write endpoints sit behind a per-IP rate limiter;
// metrics and health stay open.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sitesmith/internal/handlers"
	"sitesmith/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(generation *handlers.Generation, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check and metrics — no rate limiting.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Enqueueing a generation is the expensive operation; throttle it.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/businesses/{id}/generate", generation.Enqueue)
		})

		r.Get("/businesses/{id}/website", generation.Website)
		r.Get("/jobs/{jobID}/status", generation.Status)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
