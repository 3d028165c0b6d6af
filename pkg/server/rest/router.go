package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"lintang/mapagent/pkg/server"
)

func MapRouter(r *chi.Mux, svc MapService, m *server.Metrics, logger *slog.Logger) {
	handler := NewMapHandler(svc, m, logger)

	r.Group(func(r chi.Router) {
		r.Route("/api/map", func(r chi.Router) {
			r.Post("/radius-search", handler.RadiusSearch)
			r.Post("/next-edges", handler.NextEdges)
		})
	})
}

// PromeHttpMiddleware counts and times every request by its chi route pattern.
func PromeHttpMiddleware(m *server.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveHTTP(route, status, time.Since(start))
		}
		return http.HandlerFunc(fn)
	}
}

// Throttle caps requests served at once, extra requests wait in a backlog until timeout.
func Throttle(limit, backlog int, timeout time.Duration) func(http.Handler) http.Handler {
	return middleware.ThrottleBacklog(limit, backlog, timeout)
}

func Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "ok"})
}
