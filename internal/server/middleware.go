package server

import (
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware logs HTTP requests.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info("request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// faultInjector fails a share of requests with 503 so clients can exercise
// their retry and breaker paths against a real backend.
type faultInjector struct {
	mu      sync.Mutex
	rng     *rand.Rand
	rate    float64
	metrics *Metrics
}

func (f *faultInjector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.rate > 0 {
			f.mu.Lock()
			roll := f.rng.Float64()
			f.mu.Unlock()
			if roll < f.rate {
				f.metrics.InjectedFaults.Inc()
				WriteProblem(w, r, http.StatusServiceUnavailable, "Simulated failure")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
