package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const defaultMaxResult = 100

// StatusResponse краткая статистика: только число переходов
type StatusResponse struct {
	Clicks int64 `json:"clicks"`
}

// DetailedStatusResponse число переходов и выбранные события
type DetailedStatusResponse struct {
	Clicks int64         `json:"clicks"`
	Events []ClickRecord `json:"events"`
}

// ClickRecord событие перехода в ответе API
type ClickRecord struct {
	ID         uuid.UUID  `json:"id"`
	URLID      uuid.UUID  `json:"url_id"`
	UserID     *uuid.UUID `json:"user_id"`
	AccessTime string     `json:"access_time"`
}

// GetLinkStatus обрабатывает GET /{id}/status?full-info=&max-result=&offset=
func (h *Handler) GetLinkStatus(w http.ResponseWriter, req *http.Request) {
	shortID := chi.URLParam(req, "id")

	detailed, page, err := parseStatusQuery(req.URL.Query())
	if err != nil {
		h.handleError(w, err)
		return
	}

	stats, err := h.usecase.GetLinkStatus(req.Context(), shortID, detailed, page)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if !detailed {
		h.writeJSON(w, http.StatusOK, StatusResponse{Clicks: stats.Count})
		return
	}

	h.writeJSON(w, http.StatusOK, DetailedStatusResponse{
		Clicks: stats.Count,
		Events: lo.Map(stats.Events, func(event model.ClickEvent, _ int) ClickRecord {
			return ClickRecord{
				ID:         event.ID,
				URLID:      event.LinkID,
				UserID:     event.UserID,
				AccessTime: event.AccessTime.UTC().Format(time.RFC3339Nano),
			}
		}),
	})
}

// parseStatusQuery разбирает параметры статистики.
// full-info без значения считается true. События выбираются с позиции offset
// до позиции max-result, не включая ее.
func parseStatusQuery(query url.Values) (bool, model.Page, error) {
	page := model.Page{Limit: defaultMaxResult}

	detailed := false
	if query.Has("full-info") {
		value := query.Get("full-info")
		if value == "" {
			detailed = true
		} else {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return false, page, fmt.Errorf("%w: full-info must be a boolean", service.ErrValidation)
			}
			detailed = parsed
		}
	}

	if value := query.Get("max-result"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return false, page, fmt.Errorf("%w: max-result must be an integer", service.ErrInvalidPagination)
		}
		page.Limit = limit
	}

	if value := query.Get("offset"); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil {
			return false, page, fmt.Errorf("%w: offset must be an integer", service.ErrInvalidPagination)
		}
		page.Offset = offset
	}

	return detailed, page, nil
}
