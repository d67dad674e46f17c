package server

import (
	"math/rand"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterOptions tunes the router beyond the handler itself.
type RouterOptions struct {
	// FailureRate is the share of API requests answered with 503.
	FailureRate float64
	// Rand overrides the random source used for fault injection.
	Rand *rand.Rand
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(h.logger))
	r.Use(h.metrics.Middleware)
	r.Use(middleware.Recoverer)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	faults := &faultInjector{rng: rng, rate: opts.FailureRate, metrics: h.metrics}

	r.Method("GET", "/metrics", h.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(faults.Middleware)
			r.Get("/checks", h.ListChecks)
			r.Post("/checks", h.AddCheck)
			r.Delete("/checks/{id}", h.DeleteCheck)
			r.Post("/results", h.SubmitResults)
			r.Get("/submissions", h.ListSubmissions)
			r.Get("/submissions/{id}", h.GetSubmission)
		})
	})

	return r
}
