package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// Изменения ссылок сохраняют снимок всех ссылок, переход дописывается в журнал,
// поэтому его запись не зависит от объема накопленных данных.
type FileStore struct {
	*Store
	fileStorage *FileStorage
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		Store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	snapshot, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	clicks, err := fs.fileStorage.LoadClicks()
	if err != nil {
		return nil, fmt.Errorf("failed to load clicks: %w", err)
	}

	// переходы из снимков старого формата переносятся в журнал
	if len(snapshot.Clicks) > 0 {
		for _, click := range snapshot.Clicks {
			if err := fs.fileStorage.AppendClick(click); err != nil {
				return nil, err
			}
		}
		if err := fs.fileStorage.Save(model.StorageSnapshot{Links: snapshot.Links}); err != nil {
			return nil, fmt.Errorf("failed to save to file: %w", err)
		}
	}

	snapshot.Clicks = append(snapshot.Clicks, clicks...)
	fs.Store.InitializeWith(snapshot)

	return fs, nil
}

// CreateLink записывает ссылку в память и сохраняет снимок
func (fs *FileStore) CreateLink(ctx context.Context, link model.ShortLink) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.Store.CreateLink(ctx, link); err != nil {
		return err
	}

	return fs.persist()
}

func (fs *FileStore) UpdateLinkState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	link, err := fs.Store.UpdateLinkState(ctx, id, state)
	if err != nil {
		return model.ShortLink{}, err
	}

	if err := fs.persist(); err != nil {
		return model.ShortLink{}, err
	}

	return link, nil
}

func (fs *FileStore) CreateClick(ctx context.Context, click model.ClickEvent) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.Store.CreateClick(ctx, click); err != nil {
		return err
	}

	if err := fs.fileStorage.AppendClick(click); err != nil {
		return fmt.Errorf("failed to save click: %w", err)
	}
	return nil
}

func (fs *FileStore) persist() error {
	if err := fs.fileStorage.Save(fs.Store.LinksSnapshot()); err != nil {
		return fmt.Errorf("failed to save to file: %w", err)
	}
	return nil
}
