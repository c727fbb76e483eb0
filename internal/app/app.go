package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/cache"
	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App представляет приложение сокращения ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	router  http.Handler
	usecase *usecase.URLUsecase

	dbPool    db.Database
	cache     *cache.RedisClient
	publisher *service.NATSPublisher
}

// New создает приложение из конфигурации окружения и флагов
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app, err := NewWithConfig(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return app, nil
}

// NewWithConfig создает приложение с готовой конфигурацией и логгером
func NewWithConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	if err := app.initDependencies(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Router возвращает HTTP-обработчик приложения
func (a *App) Router() http.Handler {
	return a.router
}

// Close освобождает внешние ресурсы в порядке, обратном созданию
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to drain NATS connection", zap.Error(err))
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
	}
}

// Run запускает приложение
func Run() error {
	ctx := context.Background()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if parsed == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	return cfg.Build()
}
