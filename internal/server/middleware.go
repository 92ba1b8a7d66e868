package server

import (
	"log"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"

	"soc-api/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// withRequestLog tags each request with an id, logs it once it completes
// and records it in m.
func withRequestLog(next http.Handler, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		stats := httpsnoop.CaptureMetrics(next, w, r)

		// r.Pattern is filled in by the mux; empty means no route matched.
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.Observe(route, stats.Code, stats.Duration)
		log.Printf("%s %s %d %s req=%s", r.Method, r.URL.Path, stats.Code, stats.Duration, reqID)
	})
}
