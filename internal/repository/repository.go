package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

//go:generate mockery --name Store

// Store низкоуровневое хранилище ссылок и переходов.
// Реализации: store.Store, store.FileStore, store.DatabaseStore, store.SQLiteStore, cache.LinkCache.
type Store interface {
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

// Repository точка доступа к типизированным репозиториям
type Repository struct {
	underlying Store
	links      *LinkRepository
	clicks     *ClickRepository
}

func New(underlying Store) *Repository {
	return &Repository{
		underlying: underlying,
		links:      &LinkRepository{underlying: underlying},
		clicks:     &ClickRepository{underlying: underlying},
	}
}

func (r *Repository) Links() *LinkRepository {
	return r.links
}

func (r *Repository) Clicks() *ClickRepository {
	return r.clicks
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("store is unavailable: %w", err)
	}
	return nil
}
