package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// ClickRepository репозиторий переходов
type ClickRepository struct {
	underlying Store
}

func (r *ClickRepository) Create(ctx context.Context, click model.ClickEvent) error {
	if err := r.underlying.CreateClick(ctx, click); err != nil {
		return fmt.Errorf("failed to create click: %w", err)
	}
	return nil
}

func (r *ClickRepository) CountByLinkID(ctx context.Context, linkID uuid.UUID) (int64, error) {
	count, err := r.underlying.CountClicksByLinkID(ctx, linkID)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

func (r *ClickRepository) ListByLinkID(ctx context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error) {
	events, err := r.underlying.ListClicksByLinkID(ctx, linkID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	return events, nil
}
