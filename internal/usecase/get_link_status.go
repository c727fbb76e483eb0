package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// GetLinkStatus возвращает статистику переходов по существующей ссылке.
// Видимость ссылки не проверяется.
func (u *URLUsecase) GetLinkStatus(ctx context.Context, shortID string, detailed bool, page model.Page) (model.ClickStats, error) {
	link, err := u.links.Find(ctx, shortID)
	if err != nil {
		return model.ClickStats{}, u.classify("find short link", err, zap.String("short_id", shortID))
	}

	stats, err := u.clicks.GetClickStats(ctx, link.ID, detailed, page)
	if err != nil {
		return model.ClickStats{}, u.classify("get click stats", err,
			zap.String("link_id", link.ID.String()),
			zap.Bool("detailed", detailed),
		)
	}

	return stats, nil
}
