package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateShortLink обрабатывает PATCH /{id} с телом {"type": ..., "is_deleted": ...}
func (h *Handler) UpdateShortLink(w http.ResponseWriter, req *http.Request) {
	shortID := chi.URLParam(req, "id")
	requester := middleware.IdentityFromContext(req.Context())

	var request model.UpdateLinkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodySize)).Decode(&request); err != nil {
		h.logger.Warn("failed to decode update request", zap.String("short_id", shortID), zap.Error(err))
		h.handleError(w, fmt.Errorf("%w: malformed JSON: %w", service.ErrValidation, err))
		return
	}

	link, err := h.usecase.UpdateShortLink(req.Context(), shortID, requester, request)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, link)
}

// DeleteShortLink обрабатывает DELETE /{id}; всегда отвечает 405
func (h *Handler) DeleteShortLink(w http.ResponseWriter, req *http.Request) {
	shortID := chi.URLParam(req, "id")

	if err := h.usecase.DeleteShortLink(req.Context(), shortID); err != nil {
		h.handleError(w, err)
		return
	}

	h.handleError(w, service.ErrDeleteNotAllowed)
}
