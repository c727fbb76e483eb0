package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type linkServiceFixture struct {
	links     *mocks.MockLinkRepository
	clicks    *mocks.MockClickRecorder
	generator *mocks.MockGenerator
	service   *LinkService
}

func newLinkServiceFixture(t *testing.T, maxAttempts int) *linkServiceFixture {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = maxAttempts

	f := &linkServiceFixture{
		links:     mocks.NewMockLinkRepository(t),
		clicks:    mocks.NewMockClickRecorder(t),
		generator: mocks.NewMockGenerator(t),
	}
	f.service = NewLinkService(f.links, f.clicks, f.generator, cfg, zap.NewNop())
	f.service.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	return f
}

// TestCreate_Success проверяет успешное создание публичной ссылки
func TestCreate_Success(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)
	ownerID := uuid.New()

	f.generator.EXPECT().GenerateCode().Return(model.Code("aB3xY")).Once()
	f.links.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(link model.ShortLink) bool {
			return link.ShortCode == "aB3xY" &&
				link.OwnerID == ownerID &&
				link.OriginalURL == "https://example.com" &&
				link.Visibility == model.VisibilityPublic &&
				!link.Deleted &&
				link.ID != uuid.Nil
		})).
		Return(nil).
		Once()

	// Act
	link, err := f.service.Create(context.Background(), "https://example.com", model.UserIdentity(ownerID))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("aB3xY"), link.ShortCode)
	assert.Equal(t, ownerID, link.OwnerID)
	assert.Equal(t, model.VisibilityPublic, link.Visibility)
	assert.False(t, link.Deleted)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), link.CreatedAt)
}

// TestCreate_RetriesOnCollision проверяет, что на каждую попытку генерируется новый код
func TestCreate_RetriesOnCollision(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)

	f.generator.EXPECT().GenerateCode().Return(model.Code("taken")).Once()
	f.generator.EXPECT().GenerateCode().Return(model.Code("fresh")).Once()

	f.links.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(link model.ShortLink) bool { return link.ShortCode == "taken" })).
		Return(fmt.Errorf("failed to create link: %w", store.ErrAlreadyExists)).
		Once()
	f.links.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(link model.ShortLink) bool { return link.ShortCode == "fresh" })).
		Return(nil).
		Once()

	// Act
	link, err := f.service.Create(context.Background(), "https://example.com", model.UserIdentity(uuid.New()))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("fresh"), link.ShortCode)
}

// TestCreate_ConflictAfterMaxAttempts проверяет исчерпание попыток
func TestCreate_ConflictAfterMaxAttempts(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 3)

	f.generator.EXPECT().GenerateCode().Return(model.Code("taken")).Times(3)
	f.links.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(store.ErrAlreadyExists).
		Times(3)

	// Act
	_, err := f.service.Create(context.Background(), "https://example.com", model.UserIdentity(uuid.New()))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodeConflict)
}

func TestCreate_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		url         model.URL
		owner       model.Identity
		expectedErr error
	}{
		{
			name:        "anonymous owner",
			url:         "https://example.com",
			owner:       model.Anonymous(),
			expectedErr: ErrUnauthenticated,
		},
		{
			name:        "url longer than 300 characters",
			url:         model.URL("https://example.com/" + strings.Repeat("a", 281)),
			owner:       model.UserIdentity(uuid.New()),
			expectedErr: ErrURLTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newLinkServiceFixture(t, 5)

			// Act
			_, err := f.service.Create(context.Background(), tt.url, tt.owner)

			// Assert
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestCreate_URLOfExactlyMaxLength граница длины допустима
func TestCreate_URLOfExactlyMaxLength(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)
	originalURL := model.URL("https://example.com/" + strings.Repeat("я", MaxURLLength-len("https://example.com/")))

	f.generator.EXPECT().GenerateCode().Return(model.Code("abcde")).Once()
	f.links.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	// Act
	_, err := f.service.Create(context.Background(), originalURL, model.UserIdentity(uuid.New()))

	// Assert
	require.NoError(t, err)
}

// TestCreate_StoreFailureIsNotRetried проверяет, что повторяются только коллизии
func TestCreate_StoreFailureIsNotRetried(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)
	storeErr := errors.New("connection refused")

	f.generator.EXPECT().GenerateCode().Return(model.Code("abcde")).Once()
	f.links.EXPECT().Create(mock.Anything, mock.Anything).Return(storeErr).Once()

	// Act
	_, err := f.service.Create(context.Background(), "https://example.com", model.UserIdentity(uuid.New()))

	// Assert
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrCodeConflict)
}

func TestResolve(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name        string
		link        model.ShortLink
		requester   model.Identity
		expectClick bool
		expectedErr error
	}{
		{
			name:        "public link for anonymous",
			link:        model.ShortLink{Visibility: model.VisibilityPublic},
			requester:   model.Anonymous(),
			expectClick: true,
		},
		{
			name:        "public link for stranger",
			link:        model.ShortLink{Visibility: model.VisibilityPublic},
			requester:   model.UserIdentity(strangerID),
			expectClick: true,
		},
		{
			name:        "private link for owner",
			link:        model.ShortLink{Visibility: model.VisibilityPrivate},
			requester:   model.UserIdentity(ownerID),
			expectClick: true,
		},
		{
			name:        "private link for anonymous",
			link:        model.ShortLink{Visibility: model.VisibilityPrivate},
			requester:   model.Anonymous(),
			expectedErr: ErrLinkPrivate,
		},
		{
			name:        "private link for stranger",
			link:        model.ShortLink{Visibility: model.VisibilityPrivate},
			requester:   model.UserIdentity(strangerID),
			expectedErr: ErrLinkPrivate,
		},
		{
			name:        "deleted link for owner",
			link:        model.ShortLink{Visibility: model.VisibilityPublic, Deleted: true},
			requester:   model.UserIdentity(ownerID),
			expectedErr: ErrLinkDeleted,
		},
		{
			name:        "deleted private link reports deletion first",
			link:        model.ShortLink{Visibility: model.VisibilityPrivate, Deleted: true},
			requester:   model.Anonymous(),
			expectedErr: ErrLinkDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newLinkServiceFixture(t, 5)
			link := tt.link
			link.ID = uuid.New()
			link.OwnerID = ownerID
			link.ShortCode = "aB3xY"
			link.OriginalURL = "https://example.com/target"

			f.links.EXPECT().GetByID(mock.Anything, link.ID).Return(link, nil).Once()
			if tt.expectClick {
				f.clicks.EXPECT().RecordClick(mock.Anything, link.ID, tt.requester).Return(nil).Once()
			}

			// Act
			originalURL, err := f.service.Resolve(context.Background(), link.ID.String(), tt.requester)

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, ErrForbidden)
				assert.Empty(t, originalURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, link.OriginalURL, originalURL)
		})
	}
}

func TestResolve_ByShortCode(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)
	link := model.ShortLink{ID: uuid.New(), OwnerID: uuid.New(), ShortCode: "aB3xY", OriginalURL: "https://example.com", Visibility: model.VisibilityPublic}

	f.links.EXPECT().GetByShortCode(mock.Anything, model.Code("aB3xY")).Return(link, nil).Once()
	f.clicks.EXPECT().RecordClick(mock.Anything, link.ID, model.Anonymous()).Return(nil).Once()

	// Act
	originalURL, err := f.service.Resolve(context.Background(), "aB3xY", model.Anonymous())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, link.OriginalURL, originalURL)
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		shortID string
		arrange func(f *linkServiceFixture, shortID string)
	}{
		{
			name:    "unknown uuid",
			shortID: uuid.NewString(),
			arrange: func(f *linkServiceFixture, shortID string) {
				f.links.EXPECT().GetByID(mock.Anything, uuid.MustParse(shortID)).
					Return(model.ShortLink{}, fmt.Errorf("failed to get link by id: %w", store.ErrNotFound)).Once()
			},
		},
		{
			name:    "unknown code",
			shortID: "zzzzz",
			arrange: func(f *linkServiceFixture, shortID string) {
				f.links.EXPECT().GetByShortCode(mock.Anything, model.Code(shortID)).
					Return(model.ShortLink{}, store.ErrNotFound).Once()
			},
		},
		{
			name:    "malformed identifier",
			shortID: "not-a-link!",
			arrange: func(f *linkServiceFixture, shortID string) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newLinkServiceFixture(t, 5)
			tt.arrange(f, tt.shortID)

			// Act
			_, err := f.service.Resolve(context.Background(), tt.shortID, model.Anonymous())

			// Assert
			assert.ErrorIs(t, err, ErrLinkNotFound)
		})
	}
}

// TestResolve_ClickFailureIsTolerated переход не ломается из-за ошибки записи клика
func TestResolve_ClickFailureIsTolerated(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.ErrorLevel)
	f := newLinkServiceFixture(t, 5)
	f.service.logger = zap.New(core)

	link := model.ShortLink{ID: uuid.New(), OwnerID: uuid.New(), ShortCode: "aB3xY", OriginalURL: "https://example.com", Visibility: model.VisibilityPublic}
	f.links.EXPECT().GetByID(mock.Anything, link.ID).Return(link, nil).Once()
	f.clicks.EXPECT().RecordClick(mock.Anything, link.ID, mock.Anything).Return(errors.New("disk full")).Once()

	// Act
	originalURL, err := f.service.Resolve(context.Background(), link.ID.String(), model.Anonymous())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, link.OriginalURL, originalURL)
	assert.Equal(t, 1, logs.FilterMessage("failed to record click").Len())
}

func TestUpdate(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name        string
		requester   model.Identity
		state       model.LinkState
		expectWrite bool
		expectedErr error
	}{
		{
			name:        "owner makes link private",
			requester:   model.UserIdentity(ownerID),
			state:       model.LinkState{Visibility: model.VisibilityPrivate},
			expectWrite: true,
		},
		{
			name:        "owner soft-deletes link",
			requester:   model.UserIdentity(ownerID),
			state:       model.LinkState{Visibility: model.VisibilityPublic, Deleted: true},
			expectWrite: true,
		},
		{
			name:        "owner restores link with full replace",
			requester:   model.UserIdentity(ownerID),
			state:       model.LinkState{Visibility: model.VisibilityPublic, Deleted: false},
			expectWrite: true,
		},
		{
			name:        "stranger is rejected",
			requester:   model.UserIdentity(uuid.New()),
			state:       model.LinkState{Visibility: model.VisibilityPrivate},
			expectedErr: ErrNotOwner,
		},
		{
			name:        "anonymous is rejected",
			requester:   model.Anonymous(),
			state:       model.LinkState{Visibility: model.VisibilityPrivate},
			expectedErr: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newLinkServiceFixture(t, 5)
			link := model.ShortLink{
				ID:          uuid.New(),
				OwnerID:     ownerID,
				ShortCode:   "aB3xY",
				OriginalURL: "https://example.com",
				Visibility:  model.VisibilityPrivate,
				Deleted:     true,
			}

			f.links.EXPECT().GetByID(mock.Anything, link.ID).Return(link, nil).Once()
			if tt.expectWrite {
				updated := link
				updated.Visibility = tt.state.Visibility
				updated.Deleted = tt.state.Deleted
				f.links.EXPECT().UpdateState(mock.Anything, link.ID, tt.state).Return(updated, nil).Once()
			}

			// Act
			result, err := f.service.Update(context.Background(), link.ID.String(), tt.requester, tt.state)

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.state.Visibility, result.Visibility)
			assert.Equal(t, tt.state.Deleted, result.Deleted)
			assert.Equal(t, link.OriginalURL, result.OriginalURL)
		})
	}
}

func TestUpdate_InvalidVisibility(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)

	// Act
	_, err := f.service.Update(context.Background(), uuid.NewString(), model.UserIdentity(uuid.New()),
		model.LinkState{Visibility: "secret"})

	// Assert
	assert.ErrorIs(t, err, ErrInvalidVisibility)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_NotFound(t *testing.T) {
	// Arrange
	f := newLinkServiceFixture(t, 5)
	id := uuid.New()
	f.links.EXPECT().GetByID(mock.Anything, id).Return(model.ShortLink{}, store.ErrNotFound).Once()

	// Act
	_, err := f.service.Update(context.Background(), id.String(), model.UserIdentity(uuid.New()),
		model.LinkState{Visibility: model.VisibilityPublic})

	// Assert
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestDelete_AlwaysRejected(t *testing.T) {
	for _, shortID := range []string{uuid.NewString(), "aB3xY", ""} {
		f := newLinkServiceFixture(t, 5)

		err := f.service.Delete(context.Background(), shortID)

		assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	}
}

func TestListByOwner(t *testing.T) {
	t.Run("returns owner links", func(t *testing.T) {
		// Arrange
		f := newLinkServiceFixture(t, 5)
		ownerID := uuid.New()
		links := []model.ShortLink{
			{ID: uuid.New(), OwnerID: ownerID, ShortCode: "aaaaa"},
			{ID: uuid.New(), OwnerID: ownerID, ShortCode: "bbbbb", Deleted: true},
		}
		f.links.EXPECT().ListByOwner(mock.Anything, ownerID).Return(links, nil).Once()

		// Act
		result, err := f.service.ListByOwner(context.Background(), model.UserIdentity(ownerID))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, links, result)
	})

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		f := newLinkServiceFixture(t, 5)

		_, err := f.service.ListByOwner(context.Background(), model.Anonymous())

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
