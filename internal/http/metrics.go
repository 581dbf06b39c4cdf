package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/taskhive/taskhive-api/internal/observability/statsd"
)

// Metrics returns a middleware that emits a request counter and latency
// timing for every handled request, tagged by method, matched route
// pattern, and response status.
func Metrics(sink statsd.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			// r.Pattern is populated by ServeMux once a route matches.
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			tags := map[string]string{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(ww.status),
			}
			sink.Count("http.requests", 1, tags)
			sink.Timing("http.request_duration", time.Since(start), tags)
		})
	}
}
