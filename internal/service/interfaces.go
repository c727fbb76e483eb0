package service

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

//go:generate mockery --name LinkRepository

// LinkRepository определяет методы для работы с хранилищем ссылок
type LinkRepository interface {
	// Create сохраняет ссылку. Занятый код приводит к store.ErrAlreadyExists.
	Create(ctx context.Context, link model.ShortLink) error
	GetByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error)
	GetByShortCode(ctx context.Context, code model.Code) (model.ShortLink, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShortLink, error)
	// UpdateState заменяет видимость и признак удаления одним обновлением
	UpdateState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error)
}

//go:generate mockery --name ClickRepository

// ClickRepository определяет методы для работы с хранилищем переходов
type ClickRepository interface {
	Create(ctx context.Context, click model.ClickEvent) error
	CountByLinkID(ctx context.Context, linkID uuid.UUID) (int64, error)
	ListByLinkID(ctx context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error)
}

//go:generate mockery --name ClickRecorder

// ClickRecorder фиксирует переход после успешного разрешения ссылки
type ClickRecorder interface {
	RecordClick(ctx context.Context, linkID uuid.UUID, user model.Identity) error
}

//go:generate mockery --name ClickPublisher

// ClickPublisher отправляет записанный переход во внешнюю шину
type ClickPublisher interface {
	PublishClick(ctx context.Context, click model.ClickEvent) error
}
