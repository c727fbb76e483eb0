package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// LinkRepository репозиторий коротких ссылок
type LinkRepository struct {
	underlying Store
}

func (r *LinkRepository) Create(ctx context.Context, link model.ShortLink) error {
	if err := r.underlying.CreateLink(ctx, link); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

func (r *LinkRepository) GetByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error) {
	link, err := r.underlying.GetLinkByID(ctx, id)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to get link by id: %w", err)
	}
	return link, nil
}

func (r *LinkRepository) GetByShortCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	link, err := r.underlying.GetLinkByCode(ctx, code)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to get link by code: %w", err)
	}
	return link, nil
}

func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShortLink, error) {
	links, err := r.underlying.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links by owner: %w", err)
	}
	return links, nil
}

func (r *LinkRepository) UpdateState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	link, err := r.underlying.UpdateLinkState(ctx, id, state)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to update link state: %w", err)
	}
	return link, nil
}
