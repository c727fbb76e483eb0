package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// HealthCheck сообщает о доступности хранилища. Никогда не возвращает ошибку,
// паника при проверке тоже превращается в статус недоступности.
func (u *URLUsecase) HealthCheck(ctx context.Context) (status model.HealthStatus) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("health check panicked", zap.Any("panic", r))
			status = model.HealthStatus{Available: false, Error: fmt.Sprint(r)}
		}
	}()

	if err := u.health.Ping(ctx); err != nil {
		u.logger.Warn("health check failed", zap.Error(err))
		return model.HealthStatus{Available: false, Error: err.Error()}
	}

	return model.HealthStatus{Available: true}
}
