package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес, к которому добавляется короткий код
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// Set принимает только абсолютный http(s) адрес; завершающий слеш отбрасывается
func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base URL %q has no host", value)
	}

	*p = URLPrefix(strings.TrimRight(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
