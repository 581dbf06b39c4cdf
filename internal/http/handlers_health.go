package httpx

import (
	"io"
	"net/http"
)

// healthHandler answers readiness/liveness probes. It reports process
// liveness only and deliberately does not touch Postgres or Redis, so a
// degraded dependency never knocks the service out of the load balancer.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, `{"status":"ok"}`); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
