package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ClickTracker записывает переходы и отдает статистику по ним
type ClickTracker struct {
	clicks    ClickRepository
	publisher ClickPublisher
	counter   prometheus.Counter
	logger    *zap.Logger
	now       func() time.Time
}

// NewClickTracker создает трекер. publisher и counter могут быть nil.
func NewClickTracker(clicks ClickRepository, publisher ClickPublisher, counter prometheus.Counter, logger *zap.Logger) *ClickTracker {
	return &ClickTracker{
		clicks:    clicks,
		publisher: publisher,
		counter:   counter,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordClick сохраняет один переход с текущим временем.
// Существование ссылки не проверяется, это делает вызывающий.
func (t *ClickTracker) RecordClick(ctx context.Context, linkID uuid.UUID, user model.Identity) error {
	click := model.ClickEvent{
		ID:         uuid.New(),
		LinkID:     linkID,
		UserID:     user.UserIDPtr(),
		AccessTime: t.now().UTC().Truncate(time.Microsecond),
	}

	if err := t.clicks.Create(ctx, click); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	if t.counter != nil {
		t.counter.Inc()
	}

	if t.publisher != nil {
		if err := t.publisher.PublishClick(ctx, click); err != nil {
			t.logger.Warn("failed to publish click event",
				zap.String("click_id", click.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// GetClickStats возвращает число переходов, а для detailed еще и события
// с позициями [Offset, Limit) в порядке возрастания времени.
// Существование ссылки проверяет вызывающий.
func (t *ClickTracker) GetClickStats(ctx context.Context, linkID uuid.UUID, detailed bool, page model.Page) (model.ClickStats, error) {
	if page.Limit <= 0 || page.Offset < 0 {
		return model.ClickStats{}, fmt.Errorf("%w: limit=%d offset=%d", ErrInvalidPagination, page.Limit, page.Offset)
	}

	count, err := t.clicks.CountByLinkID(ctx, linkID)
	if err != nil {
		return model.ClickStats{}, err
	}

	stats := model.ClickStats{Count: count}
	if !detailed {
		return stats, nil
	}

	events, err := t.clicks.ListByLinkID(ctx, linkID, page)
	if err != nil {
		return model.ClickStats{}, err
	}
	stats.Events = events

	return stats, nil
}
