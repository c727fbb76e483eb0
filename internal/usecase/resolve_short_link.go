package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// ResolveShortLink возвращает оригинальный URL для перехода
func (u *URLUsecase) ResolveShortLink(ctx context.Context, shortID string, requester model.Identity) (string, error) {
	originalURL, err := u.links.Resolve(ctx, shortID, requester)
	if err != nil {
		return "", u.classify("resolve short link", err,
			zap.String("short_id", shortID),
			zap.Stringer("requester", requester),
		)
	}

	return originalURL.String(), nil
}
