package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"go.uber.org/zap"
)

// GetUserLinks возвращает все ссылки аутентифицированного пользователя
func (h *Handler) GetUserLinks(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFromContext(r.Context())

	links, err := h.usecase.GetUserLinks(r.Context(), owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Если нет ссылок, возвращаем 204 No Content
	if len(links) == 0 {
		h.logger.Debug("user has no links", zap.Stringer("owner", owner))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, links)
}
