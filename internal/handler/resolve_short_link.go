package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// ResolveShortLink перенаправляет на оригинальный URL с кодом 307
func (h *Handler) ResolveShortLink(w http.ResponseWriter, req *http.Request) {
	shortID := chi.URLParam(req, "id")
	requester := middleware.IdentityFromContext(req.Context())

	originalURL, err := h.usecase.ResolveShortLink(req.Context(), shortID, requester)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusTemporaryRedirect)
}
