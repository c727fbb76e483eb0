// Package cache содержит read-through кэш коротких ссылок поверх Redis.
//
// Кэшируются только записи ShortLink. Изменение состояния ссылки сначала
// пишется в хранилище, затем обновленная запись перезаписывает оба ключа.
// Чтение при промахе заполняет кэш только если ключа еще нет, поэтому
// запоздавшее заполнение старой записью не затирает новую.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCacheMiss возвращается клиентом, когда ключа нет в кэше
var ErrCacheMiss = errors.New("cache miss")

const defaultTTL = time.Hour

//go:generate mockery --name Client

// Client минимальный набор операций Redis, нужный кэшу
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// SetNX записывает значение, только если ключ отсутствует
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// LinkCache декоратор над repository.Store. Все неизмененные методы
// обслуживаются хранилищем напрямую.
type LinkCache struct {
	repository.Store
	client Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLinkCache создает кэш; ttl == 0 означает один час
func NewLinkCache(backend repository.Store, client Client, ttl time.Duration, logger *zap.Logger) *LinkCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &LinkCache{
		Store:  backend,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *LinkCache) GetLinkByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error) {
	return c.readThrough(ctx, idKey(id), func() (model.ShortLink, error) {
		return c.Store.GetLinkByID(ctx, id)
	})
}

func (c *LinkCache) GetLinkByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	return c.readThrough(ctx, codeKey(code), func() (model.ShortLink, error) {
		return c.Store.GetLinkByCode(ctx, code)
	})
}

// UpdateLinkState пишет в хранилище и кладет обновленную запись под оба ключа.
// Ошибка кэша не отменяет сохраненное изменение: при неудачной записи ключи
// удаляются, а неудача удаления только логируется.
func (c *LinkCache) UpdateLinkState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	link, err := c.Store.UpdateLinkState(ctx, id, state)
	if err != nil {
		return model.ShortLink{}, err
	}

	keys := []string{idKey(link.ID), codeKey(link.ShortCode)}

	data, err := json.Marshal(link)
	if err == nil {
		for _, key := range keys {
			if err = c.client.Set(ctx, key, string(data), c.ttl); err != nil {
				break
			}
		}
	}
	if err == nil {
		return link, nil
	}

	c.logger.Warn("failed to refresh cached link",
		zap.String("link_id", link.ID.String()),
		zap.Error(err),
	)
	if err := c.client.Del(ctx, keys...); err != nil {
		c.logger.Error("failed to invalidate cached link",
			zap.String("link_id", link.ID.String()),
			zap.Error(err),
		)
	}

	return link, nil
}

// Ping проверяет хранилище; недоступность Redis только логируется,
// так как кэш не обязателен для работы.
func (c *LinkCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		c.logger.Warn("redis is unavailable", zap.Error(err))
	}
	return c.Store.Ping(ctx)
}

func (c *LinkCache) readThrough(ctx context.Context, key string, load func() (model.ShortLink, error)) (model.ShortLink, error) {
	cached, err := c.client.Get(ctx, key)
	switch {
	case err == nil:
		var link model.ShortLink
		if err := json.Unmarshal([]byte(cached), &link); err == nil {
			return link, nil
		}
		c.logger.Warn("dropping malformed cache entry", zap.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	link, err := load()
	if err != nil {
		return model.ShortLink{}, err
	}

	data, err := json.Marshal(link)
	if err != nil {
		c.logger.Warn("failed to encode link for cache", zap.String("key", key), zap.Error(err))
		return link, nil
	}
	if _, err := c.client.SetNX(ctx, key, string(data), c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}

	return link, nil
}

func idKey(id uuid.UUID) string {
	return "shortlinks:link:id:" + id.String()
}

func codeKey(code model.Code) string {
	return "shortlinks:link:code:" + string(code)
}
