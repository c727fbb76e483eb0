package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет операции, доступные через HTTP
type URLUsecase interface {
	CreateShortLink(ctx context.Context, rawURL string, owner model.Identity) (model.LinkResponse, error)
	ResolveShortLink(ctx context.Context, shortID string, requester model.Identity) (string, error)
	UpdateShortLink(ctx context.Context, shortID string, requester model.Identity, req model.UpdateLinkRequest) (model.LinkResponse, error)
	DeleteShortLink(ctx context.Context, shortID string) error
	GetLinkStatus(ctx context.Context, shortID string, detailed bool, page model.Page) (model.ClickStats, error)
	GetUserLinks(ctx context.Context, owner model.Identity) ([]model.LinkResponse, error)
	HealthCheck(ctx context.Context) model.HealthStatus
}

// Handler HTTP-обработчики сервиса
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает обработчики
func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// errorMapping порядок важен: более частные ошибки проверяются раньше общих
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{service.ErrLinkNotFound, http.StatusNotFound, "not_found"},
	{service.ErrLinkDeleted, http.StatusGone, "link_deleted"},
	{service.ErrLinkPrivate, http.StatusForbidden, "link_private"},
	{service.ErrNotOwner, http.StatusMethodNotAllowed, "not_owner"},
	{service.ErrDeleteNotAllowed, http.StatusMethodNotAllowed, "delete_not_allowed"},
	{service.ErrCodeConflict, http.StatusConflict, "conflict"},
	{service.ErrValidation, http.StatusBadRequest, "validation_error"},
	{service.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
}

// handleError обрабатывает ошибки и возвращает соответствующий HTTP статус
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			h.logger.Debug("request rejected", zap.String("code", m.code), zap.Error(err))
			h.writeJSON(w, m.status, ErrorResponse{Error: m.code, Detail: err.Error()})
			return
		}
	}

	h.logger.Error("internal error", zap.Error(err))
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:  "internal_error",
		Detail: http.StatusText(http.StatusInternalServerError),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}
