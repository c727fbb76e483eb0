package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseFixture struct {
	links   *mocks.MockLinkService
	clicks  *mocks.MockClickTracker
	health  *mocks.MockHealthChecker
	usecase *URLUsecase
}

func newUsecaseFixture(t *testing.T) *usecaseFixture {
	t.Helper()

	f := &usecaseFixture{
		links:  mocks.NewMockLinkService(t),
		clicks: mocks.NewMockClickTracker(t),
		health: mocks.NewMockHealthChecker(t),
	}
	f.usecase = NewURLUsecase(f.links, f.clicks, f.health, config.NewDefaultConfig(), zap.NewNop())

	return f
}

func TestCreateShortLink_Success(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedURL model.URL
	}{
		{
			name:        "plain url",
			inputURL:    "https://example.com",
			expectedURL: "https://example.com",
		},
		{
			name:        "url with path and query",
			inputURL:    "https://example.com/path?param=value&other=test",
			expectedURL: "https://example.com/path?param=value&other=test",
		},
		{
			name:        "url surrounded by spaces and quotes",
			inputURL:    "  \"https://example.com/путь\"\n",
			expectedURL: "https://example.com/путь",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newUsecaseFixture(t)
			owner := model.UserIdentity(uuid.New())
			link := model.ShortLink{ID: uuid.New(), ShortCode: "aB3xY", OriginalURL: tt.expectedURL}

			f.links.EXPECT().Create(mock.Anything, tt.expectedURL, owner).Return(link, nil).Once()

			// Act
			response, err := f.usecase.CreateShortLink(context.Background(), tt.inputURL, owner)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "http://localhost:8080/aB3xY", response.ShortURL)
			assert.Equal(t, link, response.ShortLink)
		})
	}
}

func TestCreateShortLink_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedErr error
	}{
		{name: "empty", inputURL: "", expectedErr: ErrEmptyURL},
		{name: "only spaces", inputURL: "   ", expectedErr: ErrEmptyURL},
		{name: "no scheme", inputURL: "example.com", expectedErr: ErrInvalidURL},
		{name: "no host", inputURL: "https://", expectedErr: ErrInvalidURL},
		{name: "garbage", inputURL: "://bad url", expectedErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newUsecaseFixture(t)

			// Act
			_, err := f.usecase.CreateShortLink(context.Background(), tt.inputURL, model.UserIdentity(uuid.New()))

			// Assert
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestCreateShortLink_ErrorClassification(t *testing.T) {
	tests := []struct {
		name            string
		serviceErr      error
		wantUnavailable bool
	}{
		{name: "code conflict stays domain error", serviceErr: service.ErrCodeConflict},
		{name: "too long stays domain error", serviceErr: service.ErrURLTooLong},
		{name: "storage failure", serviceErr: errors.New("connection reset"), wantUnavailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newUsecaseFixture(t)
			f.links.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(model.ShortLink{}, tt.serviceErr).Once()

			// Act
			_, err := f.usecase.CreateShortLink(context.Background(), "https://example.com", model.UserIdentity(uuid.New()))

			// Assert
			assert.ErrorIs(t, err, tt.serviceErr)
			assert.Equal(t, tt.wantUnavailable, errors.Is(err, ErrServiceUnavailable))
		})
	}
}

func TestResolveShortLink(t *testing.T) {
	t.Run("returns original url", func(t *testing.T) {
		// Arrange
		f := newUsecaseFixture(t)
		f.links.EXPECT().Resolve(mock.Anything, "aB3xY", model.Anonymous()).Return(model.URL("https://example.com"), nil).Once()

		// Act
		originalURL, err := f.usecase.ResolveShortLink(context.Background(), "aB3xY", model.Anonymous())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", originalURL)
	})

	t.Run("passes forbidden through", func(t *testing.T) {
		// Arrange
		f := newUsecaseFixture(t)
		f.links.EXPECT().Resolve(mock.Anything, "aB3xY", model.Anonymous()).Return(model.URL(""), service.ErrLinkPrivate).Once()

		// Act
		_, err := f.usecase.ResolveShortLink(context.Background(), "aB3xY", model.Anonymous())

		// Assert
		assert.ErrorIs(t, err, service.ErrLinkPrivate)
		assert.NotErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestUpdateShortLink(t *testing.T) {
	tests := []struct {
		name          string
		req           model.UpdateLinkRequest
		expectedState model.LinkState
	}{
		{
			name:          "missing fields fall back to defaults",
			req:           model.UpdateLinkRequest{},
			expectedState: model.LinkState{Visibility: model.VisibilityPublic, Deleted: false},
		},
		{
			name:          "private and deleted",
			req:           model.UpdateLinkRequest{Visibility: "private", Deleted: true},
			expectedState: model.LinkState{Visibility: model.VisibilityPrivate, Deleted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newUsecaseFixture(t)
			requester := model.UserIdentity(uuid.New())
			updated := model.ShortLink{ID: uuid.New(), ShortCode: "aB3xY", Visibility: tt.expectedState.Visibility, Deleted: tt.expectedState.Deleted}

			f.links.EXPECT().Update(mock.Anything, "aB3xY", requester, tt.expectedState).Return(updated, nil).Once()

			// Act
			response, err := f.usecase.UpdateShortLink(context.Background(), "aB3xY", requester, tt.req)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedState.Visibility, response.Visibility)
			assert.Equal(t, tt.expectedState.Deleted, response.Deleted)
			assert.Equal(t, "http://localhost:8080/aB3xY", response.ShortURL)
		})
	}
}

func TestUpdateShortLink_InvalidType(t *testing.T) {
	// Arrange
	f := newUsecaseFixture(t)

	// Act
	_, err := f.usecase.UpdateShortLink(context.Background(), "aB3xY", model.UserIdentity(uuid.New()),
		model.UpdateLinkRequest{Visibility: "hidden"})

	// Assert
	assert.ErrorIs(t, err, service.ErrInvalidVisibility)
}

func TestUpdateShortLink_NotOwner(t *testing.T) {
	// Arrange
	f := newUsecaseFixture(t)
	f.links.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(model.ShortLink{}, service.ErrNotOwner).Once()

	// Act
	_, err := f.usecase.UpdateShortLink(context.Background(), "aB3xY", model.UserIdentity(uuid.New()),
		model.UpdateLinkRequest{Visibility: "private"})

	// Assert
	assert.ErrorIs(t, err, service.ErrNotOwner)
}

func TestDeleteShortLink(t *testing.T) {
	// Arrange
	f := newUsecaseFixture(t)
	f.links.EXPECT().Delete(mock.Anything, "aB3xY").Return(service.ErrDeleteNotAllowed).Once()

	// Act
	err := f.usecase.DeleteShortLink(context.Background(), "aB3xY")

	// Assert
	assert.ErrorIs(t, err, service.ErrDeleteNotAllowed)
}

func TestGetLinkStatus(t *testing.T) {
	t.Run("uses link id for stats", func(t *testing.T) {
		// Arrange
		f := newUsecaseFixture(t)
		link := model.ShortLink{ID: uuid.New(), ShortCode: "aB3xY"}
		page := model.Page{Limit: 100}
		stats := model.ClickStats{Count: 2, Events: []model.ClickEvent{
			{ID: uuid.New(), LinkID: link.ID, AccessTime: time.Unix(1, 0).UTC()},
			{ID: uuid.New(), LinkID: link.ID, AccessTime: time.Unix(2, 0).UTC()},
		}}

		f.links.EXPECT().Find(mock.Anything, "aB3xY").Return(link, nil).Once()
		f.clicks.EXPECT().GetClickStats(mock.Anything, link.ID, true, page).Return(stats, nil).Once()

		// Act
		result, err := f.usecase.GetLinkStatus(context.Background(), "aB3xY", true, page)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})

	t.Run("invalid pagination is a validation error", func(t *testing.T) {
		f := newUsecaseFixture(t)
		link := model.ShortLink{ID: uuid.New(), ShortCode: "aB3xY"}
		page := model.Page{Limit: 0}
		f.links.EXPECT().Find(mock.Anything, "aB3xY").Return(link, nil).Once()
		f.clicks.EXPECT().GetClickStats(mock.Anything, link.ID, true, page).
			Return(model.ClickStats{}, fmt.Errorf("%w: limit=0 offset=0", service.ErrInvalidPagination)).Once()

		_, err := f.usecase.GetLinkStatus(context.Background(), "aB3xY", true, page)

		assert.ErrorIs(t, err, service.ErrInvalidPagination)
		assert.NotErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("unknown link", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.links.EXPECT().Find(mock.Anything, "zzzzz").Return(model.ShortLink{}, service.ErrLinkNotFound).Once()

		_, err := f.usecase.GetLinkStatus(context.Background(), "zzzzz", false, model.Page{Limit: 100})

		assert.ErrorIs(t, err, service.ErrLinkNotFound)
	})
}

func TestGetUserLinks(t *testing.T) {
	t.Run("maps links to responses", func(t *testing.T) {
		// Arrange
		f := newUsecaseFixture(t)
		owner := model.UserIdentity(uuid.New())
		links := []model.ShortLink{
			{ID: uuid.New(), ShortCode: "aaaaa"},
			{ID: uuid.New(), ShortCode: "bbbbb", Deleted: true},
		}
		f.links.EXPECT().ListByOwner(mock.Anything, owner).Return(links, nil).Once()

		// Act
		result, err := f.usecase.GetUserLinks(context.Background(), owner)

		// Assert
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "http://localhost:8080/aaaaa", result[0].ShortURL)
		assert.Equal(t, "http://localhost:8080/bbbbb", result[1].ShortURL)
		assert.True(t, result[1].Deleted)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.links.EXPECT().ListByOwner(mock.Anything, mock.Anything).Return(nil, nil).Once()

		result, err := f.usecase.GetUserLinks(context.Background(), model.UserIdentity(uuid.New()))

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.health.EXPECT().Ping(mock.Anything).Return(nil).Once()

		status := f.usecase.HealthCheck(context.Background())

		assert.Equal(t, model.HealthStatus{Available: true}, status)
	})

	t.Run("unavailable", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.health.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

		status := f.usecase.HealthCheck(context.Background())

		assert.False(t, status.Available)
		assert.Equal(t, "connection refused", status.Error)
	})

	t.Run("panic is reported as unavailable", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.health.EXPECT().Ping(mock.Anything).RunAndReturn(func(context.Context) error {
			panic("pool is nil")
		}).Once()

		var status model.HealthStatus
		assert.NotPanics(t, func() {
			status = f.usecase.HealthCheck(context.Background())
		})

		assert.False(t, status.Available)
		assert.Equal(t, "pool is nil", status.Error)
	})
}
