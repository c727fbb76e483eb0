package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics считает запросы и их длительность по шаблону маршрута chi,
// чтобы коды ссылок не раздували кардинальность меток.
func Metrics(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(recorder.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
