package store

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractStore общий набор операций всех реализаций хранилища
type contractStore interface {
	CreateLink(ctx context.Context, link model.ShortLink) error
	GetLinkByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error)
	GetLinkByCode(ctx context.Context, code model.Code) (model.ShortLink, error)
	ListLinksByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShortLink, error)
	UpdateLinkState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error)
	CreateClick(ctx context.Context, click model.ClickEvent) error
	CountClicksByLinkID(ctx context.Context, linkID uuid.UUID) (int64, error)
	ListClicksByLinkID(ctx context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error)
	Ping(ctx context.Context) error
}

var contractBaseTime = time.Date(2025, 3, 1, 12, 0, 0, 123456000, time.UTC)

func newTestLink(ownerID uuid.UUID, code model.Code, createdAt time.Time) model.ShortLink {
	return model.ShortLink{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ShortCode:   code,
		OriginalURL: model.URL("https://example.com/" + string(code)),
		Visibility:  model.VisibilityPublic,
		CreatedAt:   createdAt,
	}
}

func assertSameLink(t *testing.T, expected, actual model.ShortLink) {
	t.Helper()

	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.OwnerID, actual.OwnerID)
	assert.Equal(t, expected.ShortCode, actual.ShortCode)
	assert.Equal(t, expected.OriginalURL, actual.OriginalURL)
	assert.Equal(t, expected.Visibility, actual.Visibility)
	assert.Equal(t, expected.Deleted, actual.Deleted)
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt), "created_at %v != %v", expected.CreatedAt, actual.CreatedAt)
}

// runStoreContract проверяет поведение, одинаковое для всех хранилищ
func runStoreContract(t *testing.T, newStore func(t *testing.T) contractStore) {
	ctx := context.Background()

	t.Run("create and get link", func(t *testing.T) {
		s := newStore(t)
		link := newTestLink(uuid.New(), "aB3xY", contractBaseTime)

		require.NoError(t, s.CreateLink(ctx, link))

		byID, err := s.GetLinkByID(ctx, link.ID)
		require.NoError(t, err)
		assertSameLink(t, link, byID)

		byCode, err := s.GetLinkByCode(ctx, link.ShortCode)
		require.NoError(t, err)
		assertSameLink(t, link, byCode)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		s := newStore(t)
		first := newTestLink(uuid.New(), "dupli", contractBaseTime)
		second := newTestLink(uuid.New(), "dupli", contractBaseTime)

		require.NoError(t, s.CreateLink(ctx, first))
		err := s.CreateLink(ctx, second)

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("code stays taken after soft delete", func(t *testing.T) {
		s := newStore(t)
		link := newTestLink(uuid.New(), "gone1", contractBaseTime)
		require.NoError(t, s.CreateLink(ctx, link))
		_, err := s.UpdateLinkState(ctx, link.ID, model.LinkState{Visibility: model.VisibilityPublic, Deleted: true})
		require.NoError(t, err)

		err = s.CreateLink(ctx, newTestLink(uuid.New(), "gone1", contractBaseTime))

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown link", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetLinkByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.GetLinkByCode(ctx, "zzzzz")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.UpdateLinkState(ctx, uuid.New(), model.LinkState{Visibility: model.VisibilityPrivate})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by owner in creation order", func(t *testing.T) {
		s := newStore(t)
		ownerID := uuid.New()
		later := newTestLink(ownerID, "later", contractBaseTime.Add(time.Minute))
		earlier := newTestLink(ownerID, "early", contractBaseTime)
		foreign := newTestLink(uuid.New(), "other", contractBaseTime)

		for _, link := range []model.ShortLink{later, earlier, foreign} {
			require.NoError(t, s.CreateLink(ctx, link))
		}
		_, err := s.UpdateLinkState(ctx, later.ID, model.LinkState{Visibility: model.VisibilityPrivate, Deleted: true})
		require.NoError(t, err)

		links, err := s.ListLinksByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, earlier.ID, links[0].ID)
		assert.Equal(t, later.ID, links[1].ID)
		assert.True(t, links[1].Deleted)

		empty, err := s.ListLinksByOwner(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("update replaces both fields", func(t *testing.T) {
		s := newStore(t)
		link := newTestLink(uuid.New(), "updat", contractBaseTime)
		require.NoError(t, s.CreateLink(ctx, link))

		updated, err := s.UpdateLinkState(ctx, link.ID, model.LinkState{Visibility: model.VisibilityPrivate, Deleted: true})
		require.NoError(t, err)
		assert.Equal(t, model.VisibilityPrivate, updated.Visibility)
		assert.True(t, updated.Deleted)

		restored, err := s.UpdateLinkState(ctx, link.ID, model.LinkState{Visibility: model.VisibilityPublic})
		require.NoError(t, err)
		assert.Equal(t, model.VisibilityPublic, restored.Visibility)
		assert.False(t, restored.Deleted)

		stored, err := s.GetLinkByCode(ctx, "updat")
		require.NoError(t, err)
		assertSameLink(t, restored, stored)
		assert.Equal(t, link.OriginalURL, stored.OriginalURL)
	})

	t.Run("click for unknown link", func(t *testing.T) {
		s := newStore(t)

		err := s.CreateClick(ctx, model.ClickEvent{ID: uuid.New(), LinkID: uuid.New(), AccessTime: contractBaseTime})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("clicks are counted and listed in time order", func(t *testing.T) {
		s := newStore(t)
		link := newTestLink(uuid.New(), "click", contractBaseTime)
		other := newTestLink(uuid.New(), "notme", contractBaseTime)
		require.NoError(t, s.CreateLink(ctx, link))
		require.NoError(t, s.CreateLink(ctx, other))

		userID := uuid.New()
		offsets := []time.Duration{3 * time.Second, time.Second, 2 * time.Second, 0}
		for i, offset := range offsets {
			click := model.ClickEvent{ID: uuid.New(), LinkID: link.ID, AccessTime: contractBaseTime.Add(offset)}
			if i%2 == 0 {
				click.UserID = &userID
			}
			require.NoError(t, s.CreateClick(ctx, click))
		}
		require.NoError(t, s.CreateClick(ctx, model.ClickEvent{ID: uuid.New(), LinkID: other.ID, AccessTime: contractBaseTime}))

		count, err := s.CountClicksByLinkID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		all, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 100})
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i, click := range all {
			assert.True(t, contractBaseTime.Add(time.Duration(i)*time.Second).Equal(click.AccessTime),
				"click %d has access time %v", i, click.AccessTime)
			assert.Equal(t, link.ID, click.LinkID)
		}
		// первый и третий вставленные клики принадлежат пользователю
		assert.Nil(t, all[0].UserID)
		require.NotNil(t, all[3].UserID)
		assert.Equal(t, userID, *all[3].UserID)

		// Limit задает конечную позицию
		window, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, window, 1)
		assert.Equal(t, all[1].ID, window[0].ID)

		tail, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 10, Offset: 2})
		require.NoError(t, err)
		require.Len(t, tail, 2)
		assert.Equal(t, all[2].ID, tail[0].ID)
		assert.Equal(t, all[3].ID, tail[1].ID)

		collapsed, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 2, Offset: 3})
		require.NoError(t, err)
		assert.Empty(t, collapsed)

		beyond, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 10, Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})

	t.Run("no clicks", func(t *testing.T) {
		s := newStore(t)
		link := newTestLink(uuid.New(), "quiet", contractBaseTime)
		require.NoError(t, s.CreateLink(ctx, link))

		count, err := s.CountClicksByLinkID(ctx, link.ID)
		require.NoError(t, err)
		assert.Zero(t, count)

		events, err := s.ListClicksByLinkID(ctx, link.ID, model.Page{Limit: 100})
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
