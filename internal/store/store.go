package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Store in-memory хранилище ссылок и переходов
type Store struct {
	links  map[uuid.UUID]model.ShortLink
	codes  map[model.Code]uuid.UUID
	clicks map[uuid.UUID][]model.ClickEvent
	mutex  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		links:  make(map[uuid.UUID]model.ShortLink),
		codes:  make(map[model.Code]uuid.UUID),
		clicks: make(map[uuid.UUID][]model.ClickEvent),
	}
}

// CreateLink сохраняет ссылку. Код уникален среди всех записей, включая удаленные.
func (s *Store) CreateLink(_ context.Context, link model.ShortLink) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.codes[link.ShortCode]; exists {
		return fmt.Errorf("short code %s: %w", link.ShortCode, ErrAlreadyExists)
	}
	if _, exists := s.links[link.ID]; exists {
		return fmt.Errorf("link %s: %w", link.ID, ErrAlreadyExists)
	}

	s.links[link.ID] = link
	s.codes[link.ShortCode] = link.ID

	return nil
}

func (s *Store) GetLinkByID(_ context.Context, id uuid.UUID) (model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	return link, nil
}

func (s *Store) GetLinkByCode(_ context.Context, code model.Code) (model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.codes[code]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}

	return s.links[id], nil
}

// ListLinksByOwner возвращает ссылки пользователя в порядке создания
func (s *Store) ListLinksByOwner(_ context.Context, ownerID uuid.UUID) ([]model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var links []model.ShortLink
	for _, link := range s.links {
		if link.OwnerID == ownerID {
			links = append(links, link)
		}
	}

	slices.SortFunc(links, func(a, b model.ShortLink) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	return links, nil
}

// UpdateLinkState заменяет видимость и признак удаления
func (s *Store) UpdateLinkState(_ context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	link.Visibility = state.Visibility
	link.Deleted = state.Deleted
	s.links[id] = link

	return link, nil
}

// CreateClick сохраняет переход. Ссылка должна существовать.
func (s *Store) CreateClick(_ context.Context, click model.ClickEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.links[click.LinkID]; !ok {
		return fmt.Errorf("link %s: %w", click.LinkID, ErrNotFound)
	}

	s.clicks[click.LinkID] = append(s.clicks[click.LinkID], click)

	return nil
}

func (s *Store) CountClicksByLinkID(_ context.Context, linkID uuid.UUID) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.clicks[linkID])), nil
}

// ListClicksByLinkID возвращает переходы с позициями [Offset, Limit) по возрастанию времени доступа
func (s *Store) ListClicksByLinkID(_ context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error) {
	s.mutex.RLock()
	events := slices.Clone(s.clicks[linkID])
	s.mutex.RUnlock()

	SortClicks(events)

	return paginate(events, page), nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// InitializeWith загружает данные без проверок на существование.
// Используется для восстановления состояния из файла.
func (s *Store) InitializeWith(snapshot model.StorageSnapshot) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, link := range snapshot.Links {
		s.links[link.ID] = link
		s.codes[link.ShortCode] = link.ID
	}
	for _, click := range snapshot.Clicks {
		s.clicks[click.LinkID] = append(s.clicks[click.LinkID], click)
	}
}

// Snapshot возвращает копию всех данных хранилища
func (s *Store) Snapshot() model.StorageSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snapshot := model.StorageSnapshot{
		Links:  s.copyLinks(),
		Clicks: []model.ClickEvent{},
	}
	for _, events := range s.clicks {
		snapshot.Clicks = append(snapshot.Clicks, events...)
	}

	return snapshot
}

// LinksSnapshot возвращает копию ссылок без переходов
func (s *Store) LinksSnapshot() model.StorageSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return model.StorageSnapshot{Links: s.copyLinks()}
}

func (s *Store) copyLinks() []model.ShortLink {
	links := make([]model.ShortLink, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, link)
	}
	return links
}

// SortClicks упорядочивает переходы по (access_time, id)
func SortClicks(events []model.ClickEvent) {
	slices.SortStableFunc(events, func(a, b model.ClickEvent) int {
		if c := a.AccessTime.Compare(b.AccessTime); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}

func paginate(events []model.ClickEvent, page model.Page) []model.ClickEvent {
	start := min(max(page.Offset, 0), len(events))
	end := len(events)
	if page.Limit > 0 {
		end = max(min(page.Limit, len(events)), start)
	}

	return events[start:end]
}
