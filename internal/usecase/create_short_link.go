package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// CreateShortLink создает ссылку из строки оригинального URL.
// Выполняет очистку и валидацию URL перед созданием.
func (u *URLUsecase) CreateShortLink(ctx context.Context, rawURL string, owner model.Identity) (model.LinkResponse, error) {
	urlString := strings.TrimSpace(rawURL)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return model.LinkResponse{}, ErrEmptyURL
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return model.LinkResponse{}, ErrInvalidURL
	}

	link, err := u.links.Create(ctx, model.URL(urlString), owner)
	if err != nil {
		return model.LinkResponse{}, u.classify("create short link", err,
			zap.String("original_url", urlString),
			zap.Stringer("owner", owner),
		)
	}

	u.logger.Info("short link created",
		zap.String("link_id", link.ID.String()),
		zap.String("code", link.ShortCode.String()),
	)

	return u.toResponse(link)
}
