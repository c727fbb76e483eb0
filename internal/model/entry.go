package model

// StorageSnapshot содержимое файла файлового хранилища.
// Переходы файловое хранилище держит в отдельном журнале, Clicks читается
// только из старых файлов.
type StorageSnapshot struct {
	Links  []ShortLink  `json:"links"`
	Clicks []ClickEvent `json:"clicks,omitempty"`
}

// ShortenRequest тело запроса POST /api/shorten
type ShortenRequest struct {
	URL string `json:"url"`
}

// UpdateLinkRequest тело запроса PATCH /{id}.
// Отсутствующие поля принимают значения по умолчанию: public и false.
type UpdateLinkRequest struct {
	Visibility string `json:"type"`
	Deleted    bool   `json:"is_deleted"`
}

// LinkResponse ссылка в ответе API вместе с полным коротким адресом
type LinkResponse struct {
	ShortLink
	ShortURL string `json:"short_link"`
}

// HealthStatus ответ проверки доступности хранилища
type HealthStatus struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}
