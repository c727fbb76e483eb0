package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Code короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который ведет короткая ссылка
type URL string

func (u URL) String() string {
	return string(u)
}

// Visibility определяет, кто может переходить по ссылке
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility разбирает строковое значение видимости.
// Пустая строка означает public.
func ParseVisibility(value string) (Visibility, error) {
	switch Visibility(value) {
	case "", VisibilityPublic:
		return VisibilityPublic, nil
	case VisibilityPrivate:
		return VisibilityPrivate, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", value)
	}
}

// ShortLink запись короткой ссылки
type ShortLink struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"user_id"`
	ShortCode   Code       `json:"short_url"`
	OriginalURL URL        `json:"original_url"`
	Visibility  Visibility `json:"type"`
	Deleted     bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsPrivate сообщает, закрыта ли ссылка для всех, кроме владельца
func (l ShortLink) IsPrivate() bool {
	return l.Visibility == VisibilityPrivate
}

// LinkState изменяемая часть ShortLink. Обновление всегда заменяет оба поля.
type LinkState struct {
	Visibility Visibility
	Deleted    bool
}
