package model

import (
	"time"

	"github.com/google/uuid"
)

// ClickEvent один переход по короткой ссылке
type ClickEvent struct {
	ID         uuid.UUID  `json:"id"`
	LinkID     uuid.UUID  `json:"url_id"`
	UserID     *uuid.UUID `json:"user_id"`
	AccessTime time.Time  `json:"access_time"`
}

// Page выборка позиций [Offset, Limit) из упорядоченного списка.
// Limit задает конечную позицию, а не размер страницы; нулевой Limit снимает ограничение.
type Page struct {
	Limit  int
	Offset int
}

// Size число позиций в выборке. Для Offset >= Limit выборка пуста.
func (p Page) Size() int {
	return max(p.Limit-max(p.Offset, 0), 0)
}

// ClickStats статистика переходов по ссылке.
// Events заполняется только для детального запроса.
type ClickStats struct {
	Count  int64        `json:"clicks"`
	Events []ClickEvent `json:"events,omitempty"`
}
