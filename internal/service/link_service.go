package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// MaxURLLength максимальная длина оригинального адреса в символах
const MaxURLLength = 300

const collisionBackoff = time.Millisecond

// LinkService содержит бизнес-логику жизненного цикла коротких ссылок
type LinkService struct {
	links       LinkRepository
	clicks      ClickRecorder
	generator   Generator
	maxAttempts int
	logger      *zap.Logger
	now         func() time.Time
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(links LinkRepository, clicks ClickRecorder, generator Generator, cfg *config.Config, logger *zap.Logger) *LinkService {
	return &LinkService{
		links:       links,
		clicks:      clicks,
		generator:   generator,
		maxAttempts: max(cfg.Retry.MaxAttempts, 1),
		logger:      logger,
		now:         time.Now,
	}
}

// Create создает публичную ссылку владельца owner.
// При коллизии кода генерируется новый, не более maxAttempts раз.
func (s *LinkService) Create(ctx context.Context, originalURL model.URL, owner model.Identity) (model.ShortLink, error) {
	ownerID, ok := owner.UserID()
	if !ok {
		return model.ShortLink{}, ErrUnauthenticated
	}
	if utf8.RuneCountInString(string(originalURL)) > MaxURLLength {
		return model.ShortLink{}, fmt.Errorf("%w: %d characters max", ErrURLTooLong, MaxURLLength)
	}

	var link model.ShortLink
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewConstant(collisionBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		link = model.ShortLink{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			ShortCode:   s.generator.GenerateCode(),
			OriginalURL: originalURL,
			Visibility:  model.VisibilityPublic,
			CreatedAt:   s.now().UTC().Truncate(time.Microsecond),
		}

		err := s.links.Create(ctx, link)
		if errors.Is(err, store.ErrAlreadyExists) {
			s.logger.Debug("short code collision", zap.String("code", link.ShortCode.String()))
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return model.ShortLink{}, fmt.Errorf("%w after %d attempts", ErrCodeConflict, s.maxAttempts)
	}
	if err != nil {
		return model.ShortLink{}, err
	}

	return link, nil
}

// Resolve возвращает оригинальный адрес и фиксирует переход.
// Удаленность проверяется до приватности и не зависит от вызывающего.
func (s *LinkService) Resolve(ctx context.Context, shortID string, requester model.Identity) (model.URL, error) {
	link, err := s.Find(ctx, shortID)
	if err != nil {
		return "", err
	}

	if link.Deleted {
		return "", ErrLinkDeleted
	}
	if link.IsPrivate() && !requester.Is(link.OwnerID) {
		return "", ErrLinkPrivate
	}

	if err := s.clicks.RecordClick(ctx, link.ID, requester); err != nil {
		s.logger.Error("failed to record click",
			zap.String("link_id", link.ID.String()),
			zap.Error(err),
		)
	}

	return link.OriginalURL, nil
}

// Update полностью заменяет видимость и признак удаления. Доступно только владельцу.
func (s *LinkService) Update(ctx context.Context, shortID string, requester model.Identity, state model.LinkState) (model.ShortLink, error) {
	if state.Visibility != model.VisibilityPublic && state.Visibility != model.VisibilityPrivate {
		return model.ShortLink{}, fmt.Errorf("%w: %q", ErrInvalidVisibility, state.Visibility)
	}

	link, err := s.Find(ctx, shortID)
	if err != nil {
		return model.ShortLink{}, err
	}

	if !requester.Is(link.OwnerID) {
		return model.ShortLink{}, ErrNotOwner
	}

	updated, err := s.links.UpdateState(ctx, link.ID, state)
	if errors.Is(err, store.ErrNotFound) {
		return model.ShortLink{}, ErrLinkNotFound
	}
	if err != nil {
		return model.ShortLink{}, err
	}

	return updated, nil
}

// Delete всегда отклоняется: ссылки не удаляются физически
func (s *LinkService) Delete(_ context.Context, shortID string) error {
	s.logger.Debug("rejected delete request", zap.String("short_id", shortID))
	return ErrDeleteNotAllowed
}

// ListByOwner возвращает все ссылки пользователя, включая удаленные
func (s *LinkService) ListByOwner(ctx context.Context, owner model.Identity) ([]model.ShortLink, error) {
	ownerID, ok := owner.UserID()
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.links.ListByOwner(ctx, ownerID)
}

// Find ищет ссылку по uuid или по короткому коду
func (s *LinkService) Find(ctx context.Context, shortID string) (model.ShortLink, error) {
	var (
		link model.ShortLink
		err  error
	)

	if id, parseErr := uuid.Parse(shortID); parseErr == nil {
		link, err = s.links.GetByID(ctx, id)
	} else if IsValidCode(shortID) {
		link, err = s.links.GetByShortCode(ctx, model.Code(shortID))
	} else {
		return model.ShortLink{}, ErrLinkNotFound
	}

	if errors.Is(err, store.ErrNotFound) {
		return model.ShortLink{}, ErrLinkNotFound
	}
	if err != nil {
		return model.ShortLink{}, err
	}

	return link, nil
}
