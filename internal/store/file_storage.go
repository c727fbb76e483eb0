package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/shortlinks/internal/model"
)

// FileStorage управляет снимком ссылок в JSON файле и журналом переходов
// рядом с ним (<файл>.clicks, одна JSON запись на строку)
type FileStorage struct {
	filePath   string
	clicksPath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath:   filePath,
		clicksPath: filePath + ".clicks",
	}
}

// Load загружает снимок из файла. Отсутствующий или пустой файл дает пустой снимок.
func (fs *FileStorage) Load() (model.StorageSnapshot, error) {
	data, err := os.ReadFile(fs.filePath)
	if os.IsNotExist(err) {
		return model.StorageSnapshot{}, nil
	}
	if err != nil {
		return model.StorageSnapshot{}, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return model.StorageSnapshot{}, nil
	}

	var snapshot model.StorageSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return model.StorageSnapshot{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return snapshot, nil
}

// Save атомарно перезаписывает файл: пишет во временный файл и переименовывает его
func (fs *FileStorage) Save(snapshot model.StorageSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.filePath), filepath.Base(fs.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), fs.filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}

// AppendClick дописывает переход в конец журнала
func (fs *FileStorage) AppendClick(click model.ClickEvent) error {
	data, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("failed to marshal click: %w", err)
	}

	file, err := os.OpenFile(fs.clicksPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open click log: %w", err)
	}

	if _, err := file.Write(append(data, '\n')); err != nil {
		file.Close()
		return fmt.Errorf("failed to append click: %w", err)
	}

	return file.Close()
}

// LoadClicks читает журнал переходов. Отсутствующий журнал дает пустой список.
func (fs *FileStorage) LoadClicks() ([]model.ClickEvent, error) {
	file, err := os.Open(fs.clicksPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open click log: %w", err)
	}
	defer file.Close()

	var clicks []model.ClickEvent
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var click model.ClickEvent
		if err := json.Unmarshal(scanner.Bytes(), &click); err != nil {
			return nil, fmt.Errorf("failed to unmarshal click at line %d: %w", line, err)
		}
		clicks = append(clicks, click)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read click log: %w", err)
	}

	return clicks, nil
}
