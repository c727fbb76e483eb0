package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkService

// LinkService определяет интерфейс жизненного цикла ссылок
type LinkService interface {
	Create(ctx context.Context, originalURL model.URL, owner model.Identity) (model.ShortLink, error)
	Resolve(ctx context.Context, shortID string, requester model.Identity) (model.URL, error)
	Update(ctx context.Context, shortID string, requester model.Identity, state model.LinkState) (model.ShortLink, error)
	Delete(ctx context.Context, shortID string) error
	ListByOwner(ctx context.Context, owner model.Identity) ([]model.ShortLink, error)
	Find(ctx context.Context, shortID string) (model.ShortLink, error)
}

//go:generate mockery --name ClickTracker

// ClickTracker определяет интерфейс чтения статистики переходов
type ClickTracker interface {
	GetClickStats(ctx context.Context, linkID uuid.UUID, detailed bool, page model.Page) (model.ClickStats, error)
}

//go:generate mockery --name HealthChecker

// HealthChecker проверяет доступность хранилища
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// URLUsecase нормализует входные данные, логирует и классифицирует ошибки
type URLUsecase struct {
	links  LinkService
	clicks ClickTracker
	health HealthChecker
	cfg    *config.Config
	logger *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(links LinkService, clicks ClickTracker, health HealthChecker, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		links:  links,
		clicks: clicks,
		health: health,
		cfg:    cfg,
		logger: logger,
	}
}

// toResponse дополняет ссылку полным коротким адресом
func (u *URLUsecase) toResponse(link model.ShortLink) (model.LinkResponse, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), link.ShortCode.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", link.ShortCode.String()),
			zap.Error(err),
		)
		return model.LinkResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return model.LinkResponse{ShortLink: link, ShortURL: shortURL}, nil
}

// classify оставляет доменные ошибки как есть, остальные считает отказом хранилища
func (u *URLUsecase) classify(op string, err error, fields ...zap.Field) error {
	if isDomainError(err) {
		u.logger.Debug(op+" rejected", append(fields, zap.Error(err))...)
		return err
	}

	u.logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		service.ErrLinkNotFound,
		service.ErrForbidden,
		service.ErrNotOwner,
		service.ErrDeleteNotAllowed,
		service.ErrCodeConflict,
		service.ErrValidation,
		service.ErrUnauthenticated,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
