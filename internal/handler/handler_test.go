package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withRouteID добавляет chi-параметр id и идентичность в контекст запроса
func withRouteID(req *http.Request, id string, identity model.Identity) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(middleware.WithIdentity(ctx, identity))
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleError_Mapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", service.ErrLinkNotFound, http.StatusNotFound, "not_found"},
		{"deleted", service.ErrLinkDeleted, http.StatusGone, "link_deleted"},
		{"private", service.ErrLinkPrivate, http.StatusForbidden, "link_private"},
		{"not owner", service.ErrNotOwner, http.StatusMethodNotAllowed, "not_owner"},
		{"delete", service.ErrDeleteNotAllowed, http.StatusMethodNotAllowed, "delete_not_allowed"},
		{"conflict", service.ErrCodeConflict, http.StatusConflict, "conflict"},
		{"too long", service.ErrURLTooLong, http.StatusBadRequest, "validation_error"},
		{"pagination", service.ErrInvalidPagination, http.StatusBadRequest, "validation_error"},
		{"invalid url", usecase.ErrInvalidURL, http.StatusBadRequest, "validation_error"},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"storage", fmt.Errorf("%w: boom", usecase.ErrServiceUnavailable), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(mocks.NewMockURLUsecase(t), zap.NewNop())
			w := httptest.NewRecorder()

			// Act
			h.handleError(w, tt.err)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.expectedCode, decodeError(t, resp).Error)
		})
	}
}

// TestHandleError_HidesInternalDetails внутренние ошибки не раскрываются клиенту
func TestHandleError_HidesInternalDetails(t *testing.T) {
	h := New(mocks.NewMockURLUsecase(t), zap.NewNop())
	w := httptest.NewRecorder()

	h.handleError(w, errors.New("pq: password authentication failed for user admin"))

	resp := w.Result()
	defer resp.Body.Close()
	assert.NotContains(t, decodeError(t, resp).Detail, "password")
}

func TestCreateShortLink(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedURL string
	}{
		{name: "plain text body", body: "https://example.com", expectedURL: "https://example.com"},
		{name: "json string body", body: `"https://example.com/path"`, expectedURL: `"https://example.com/path"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := mocks.NewMockURLUsecase(t)
			h := New(uc, zap.NewNop())
			owner := model.UserIdentity(uuid.New())
			response := model.LinkResponse{
				ShortLink: model.ShortLink{ID: uuid.New(), ShortCode: "aB3xY", Visibility: model.VisibilityPublic},
				ShortURL:  "http://localhost:8080/aB3xY",
			}

			uc.EXPECT().CreateShortLink(mock.Anything, tt.expectedURL, owner).Return(response, nil).Once()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithIdentity(req.Context(), owner))
			w := httptest.NewRecorder()

			// Act
			h.CreateShortLink(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusCreated, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "http://localhost:8080/aB3xY", body["short_link"])
			assert.Equal(t, "aB3xY", body["short_url"])
			assert.Equal(t, "public", body["type"])
			assert.Equal(t, false, body["is_deleted"])
		})
	}
}

func TestCreateShortLinkJSON(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		// Arrange
		uc := mocks.NewMockURLUsecase(t)
		h := New(uc, zap.NewNop())
		owner := model.UserIdentity(uuid.New())

		uc.EXPECT().CreateShortLink(mock.Anything, "https://example.com", owner).
			Return(model.LinkResponse{ShortURL: "http://localhost:8080/aB3xY"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"https://example.com"}`))
		req = req.WithContext(middleware.WithIdentity(req.Context(), owner))
		w := httptest.NewRecorder()

		// Act
		h.CreateShortLinkJSON(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		// Arrange
		h := New(mocks.NewMockURLUsecase(t), zap.NewNop())
		req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":`))
		w := httptest.NewRecorder()

		// Act
		h.CreateShortLinkJSON(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation_error", decodeError(t, resp).Error)
	})

	t.Run("too long url", func(t *testing.T) {
		// Arrange
		uc := mocks.NewMockURLUsecase(t)
		h := New(uc, zap.NewNop())
		uc.EXPECT().CreateShortLink(mock.Anything, mock.Anything, mock.Anything).
			Return(model.LinkResponse{}, service.ErrURLTooLong).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"https://example.com/long"}`))
		w := httptest.NewRecorder()

		// Act
		h.CreateShortLinkJSON(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestResolveShortLink(t *testing.T) {
	tests := []struct {
		name             string
		resolvedURL      string
		resolveErr       error
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:             "redirects to original url",
			resolvedURL:      "https://example.com/page#section",
			expectedStatus:   http.StatusTemporaryRedirect,
			expectedLocation: "https://example.com/page#section",
		},
		{name: "unknown link", resolveErr: service.ErrLinkNotFound, expectedStatus: http.StatusNotFound},
		{name: "deleted link", resolveErr: service.ErrLinkDeleted, expectedStatus: http.StatusGone},
		{name: "private link", resolveErr: service.ErrLinkPrivate, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := mocks.NewMockURLUsecase(t)
			h := New(uc, zap.NewNop())
			uc.EXPECT().ResolveShortLink(mock.Anything, "aB3xY", model.Anonymous()).
				Return(tt.resolvedURL, tt.resolveErr).Once()

			req := withRouteID(httptest.NewRequest(http.MethodGet, "/aB3xY", nil), "aB3xY", model.Anonymous())
			w := httptest.NewRecorder()

			// Act
			h.ResolveShortLink(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedLocation, resp.Header.Get("Location"))
		})
	}
}

func TestUpdateShortLink(t *testing.T) {
	owner := model.UserIdentity(uuid.New())

	tests := []struct {
		name           string
		body           string
		expectedReq    *model.UpdateLinkRequest
		updateErr      error
		expectedStatus int
	}{
		{
			name:           "full update",
			body:           `{"type":"private","is_deleted":true}`,
			expectedReq:    &model.UpdateLinkRequest{Visibility: "private", Deleted: true},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty object resets to defaults",
			body:           `{}`,
			expectedReq:    &model.UpdateLinkRequest{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not owner",
			body:           `{"type":"private"}`,
			expectedReq:    &model.UpdateLinkRequest{Visibility: "private"},
			updateErr:      service.ErrNotOwner,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid type",
			body:           `{"type":"secret"}`,
			expectedReq:    &model.UpdateLinkRequest{Visibility: "secret"},
			updateErr:      service.ErrInvalidVisibility,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := mocks.NewMockURLUsecase(t)
			h := New(uc, zap.NewNop())
			if tt.expectedReq != nil {
				uc.EXPECT().UpdateShortLink(mock.Anything, "aB3xY", owner, *tt.expectedReq).
					Return(model.LinkResponse{ShortLink: model.ShortLink{ShortCode: "aB3xY"}}, tt.updateErr).Once()
			}

			req := httptest.NewRequest(http.MethodPatch, "/aB3xY", strings.NewReader(tt.body))
			req = withRouteID(req, "aB3xY", owner)
			w := httptest.NewRecorder()

			// Act
			h.UpdateShortLink(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestDeleteShortLink(t *testing.T) {
	// Arrange
	uc := mocks.NewMockURLUsecase(t)
	h := New(uc, zap.NewNop())
	uc.EXPECT().DeleteShortLink(mock.Anything, "aB3xY").Return(service.ErrDeleteNotAllowed).Once()

	req := withRouteID(httptest.NewRequest(http.MethodDelete, "/aB3xY", nil), "aB3xY", model.Anonymous())
	w := httptest.NewRecorder()

	// Act
	h.DeleteShortLink(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "delete_not_allowed", decodeError(t, resp).Error)
}

func TestGetLinkStatus(t *testing.T) {
	linkID := uuid.New()
	userID := uuid.New()
	accessTime := time.Date(2025, 3, 1, 12, 0, 0, 123456000, time.UTC)
	events := []model.ClickEvent{
		{ID: uuid.New(), LinkID: linkID, AccessTime: accessTime},
		{ID: uuid.New(), LinkID: linkID, UserID: &userID, AccessTime: accessTime.Add(time.Second)},
	}

	tests := []struct {
		name         string
		query        string
		detailed     bool
		page         model.Page
		expectEvents bool
	}{
		{name: "count only", query: "", detailed: false, page: model.Page{Limit: 100}},
		{name: "flag without value", query: "?full-info", detailed: true, page: model.Page{Limit: 100}, expectEvents: true},
		{name: "explicit true with paging", query: "?full-info=true&max-result=2&offset=1", detailed: true, page: model.Page{Limit: 2, Offset: 1}, expectEvents: true},
		{name: "explicit false", query: "?full-info=false", detailed: false, page: model.Page{Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := mocks.NewMockURLUsecase(t)
			h := New(uc, zap.NewNop())

			stats := model.ClickStats{Count: 7}
			if tt.detailed {
				stats.Events = events
			}
			uc.EXPECT().GetLinkStatus(mock.Anything, "aB3xY", tt.detailed, tt.page).Return(stats, nil).Once()

			req := withRouteID(httptest.NewRequest(http.MethodGet, "/aB3xY/status"+tt.query, nil), "aB3xY", model.Anonymous())
			w := httptest.NewRecorder()

			// Act
			h.GetLinkStatus(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.JSONEq(t, "7", string(body["clicks"]))

			if !tt.expectEvents {
				assert.NotContains(t, body, "events")
				return
			}

			var records []ClickRecord
			require.NoError(t, json.Unmarshal(body["events"], &records))
			require.Len(t, records, 2)
			assert.Equal(t, events[0].ID, records[0].ID)
			assert.Equal(t, linkID, records[0].URLID)
			assert.Nil(t, records[0].UserID)
			assert.Equal(t, "2025-03-01T12:00:00.123456Z", records[0].AccessTime)
			require.NotNil(t, records[1].UserID)
			assert.Equal(t, userID, *records[1].UserID)
		})
	}
}

func TestGetLinkStatus_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non boolean full-info", query: "?full-info=maybe"},
		{name: "non numeric max-result", query: "?full-info&max-result=ten"},
		{name: "non numeric offset", query: "?full-info&offset=first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(mocks.NewMockURLUsecase(t), zap.NewNop())
			req := withRouteID(httptest.NewRequest(http.MethodGet, "/aB3xY/status"+tt.query, nil), "aB3xY", model.Anonymous())
			w := httptest.NewRecorder()

			// Act
			h.GetLinkStatus(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetUserLinks(t *testing.T) {
	t.Run("returns links", func(t *testing.T) {
		// Arrange
		uc := mocks.NewMockURLUsecase(t)
		h := New(uc, zap.NewNop())
		owner := model.UserIdentity(uuid.New())
		uc.EXPECT().GetUserLinks(mock.Anything, owner).Return([]model.LinkResponse{
			{ShortLink: model.ShortLink{ShortCode: "aaaaa"}, ShortURL: "http://localhost:8080/aaaaa"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/user/status", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), owner))
		w := httptest.NewRecorder()

		// Act
		h.GetUserLinks(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "http://localhost:8080/aaaaa", body[0]["short_link"])
	})

	t.Run("no links", func(t *testing.T) {
		// Arrange
		uc := mocks.NewMockURLUsecase(t)
		h := New(uc, zap.NewNop())
		uc.EXPECT().GetUserLinks(mock.Anything, mock.Anything).Return([]model.LinkResponse{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/user/status", nil)
		w := httptest.NewRecorder()

		// Act
		h.GetUserLinks(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestPing(t *testing.T) {
	tests := []struct {
		name   string
		status model.HealthStatus
	}{
		{name: "available", status: model.HealthStatus{Available: true}},
		{name: "unavailable", status: model.HealthStatus{Available: false, Error: "connection refused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := mocks.NewMockURLUsecase(t)
			h := New(uc, zap.NewNop())
			uc.EXPECT().HealthCheck(mock.Anything).Return(tt.status).Once()

			w := httptest.NewRecorder()

			// Act
			h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			// Assert
			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body model.HealthStatus
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.status, body)
		})
	}
}
