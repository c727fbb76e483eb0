package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/service"
)

var (
	ErrInvalidURL         = fmt.Errorf("%w: invalid URL", service.ErrValidation)
	ErrEmptyURL           = fmt.Errorf("%w: empty URL", service.ErrValidation)
	ErrServiceUnavailable = errors.New("service unavailable")
)
