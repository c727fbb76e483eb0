package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"go.uber.org/zap"
)

const maxBodySize = 4 << 10

// CreateShortLink обрабатывает POST / с URL в теле запроса (текст или JSON-строка)
func (h *Handler) CreateShortLink(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("failed to read request body",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.handleError(w, fmt.Errorf("%w: unreadable body: %w", service.ErrValidation, err))
		return
	}

	h.createShortLink(w, req, string(body))
}

// CreateShortLinkJSON обрабатывает POST /api/shorten с телом {"url": "..."}
func (h *Handler) CreateShortLinkJSON(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodySize)).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.handleError(w, fmt.Errorf("%w: malformed JSON: %w", service.ErrValidation, err))
		return
	}

	h.createShortLink(w, req, request.URL)
}

func (h *Handler) createShortLink(w http.ResponseWriter, req *http.Request, rawURL string) {
	owner := middleware.IdentityFromContext(req.Context())

	link, err := h.usecase.CreateShortLink(req.Context(), rawURL, owner)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, link)
}
