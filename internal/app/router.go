package app

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, auth *middleware.AuthMiddleware, m *metrics.Metrics, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Metrics(m))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Маршруты, которым нужен пользователь; без токена он будет создан
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Post("/", h.CreateShortLink)
		r.Post("/api/shorten", h.CreateShortLinkJSON)
		r.Get("/user/status", h.GetUserLinks)
		r.Get("/api/user/urls", h.GetUserLinks)
		r.Patch("/{id}", h.UpdateShortLink)
	})

	r.Get("/{id}/status", h.GetLinkStatus)
	r.With(auth.OptionalAuth).Get("/{id}", h.ResolveShortLink)
	r.Delete("/{id}", h.DeleteShortLink)

	return r
}
