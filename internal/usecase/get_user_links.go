package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// GetUserLinks возвращает все ссылки пользователя
func (u *URLUsecase) GetUserLinks(ctx context.Context, owner model.Identity) ([]model.LinkResponse, error) {
	links, err := u.links.ListByOwner(ctx, owner)
	if err != nil {
		return nil, u.classify("list user links", err, zap.Stringer("owner", owner))
	}

	result := make([]model.LinkResponse, 0, len(links))
	for _, link := range links {
		response, err := u.toResponse(link)
		if err != nil {
			return nil, err
		}
		result = append(result, response)
	}

	u.logger.Debug("user links listed", zap.Stringer("owner", owner), zap.Int("links_count", len(result)))
	return result, nil
}
