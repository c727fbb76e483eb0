package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/cache"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/handler"
	"github.com/avc-dev/shortlinks/internal/middleware"
	"github.com/avc-dev/shortlinks/internal/migrations"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	storage, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	storage = a.initCache(ctx, storage)
	publisher := a.initPublisher()

	repo := repository.New(storage)
	tracker := service.NewClickTracker(repo.Clicks(), publisher, a.metrics.ClicksTotal, a.logger)
	links := service.NewLinkService(repo.Links(), tracker, service.NewCodeGenerator(), a.config, a.logger)

	a.usecase = usecase.NewURLUsecase(links, tracker, repo, a.config, a.logger)

	authService := service.NewAuthService(a.config.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService, a.logger)
	a.router = newRouter(handler.New(a.usecase, a.logger), authMiddleware, a.metrics, a.logger)

	return nil
}

// initStorage создает хранилище на основе конфигурации: DSN, затем файл, затем память
func (a *App) initStorage(ctx context.Context) (repository.Store, error) {
	if a.config.DatabaseDSN != "" {
		return a.initDatabaseStorage(ctx)
	}

	if a.config.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(a.config.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		a.logger.Info("Using file storage", zap.String("path", a.config.FileStoragePath))
		return fileStore, nil
	}

	a.logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

func (a *App) initDatabaseStorage(ctx context.Context) (repository.Store, error) {
	kind, err := db.DetectKind(a.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if kind == db.KindPostgres {
		database, err := db.NewConfig(a.config.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.NewMigrator(database.DB(), migrations.DialectPostgres, a.logger).RunUp(); err != nil {
			return nil, err
		}

		a.logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database), nil
	}

	database, err := db.OpenSQLite(ctx, a.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	a.dbPool = database

	if err := migrations.NewMigrator(database.DB(), migrations.DialectSQLite, a.logger).RunUp(); err != nil {
		return nil, err
	}

	a.logger.Info("Using SQLite storage", zap.String("kind", string(kind)))
	return store.NewSQLiteStore(database.DB()), nil
}

// initCache оборачивает хранилище кэшем Redis; без Redis сервис работает напрямую с хранилищем
func (a *App) initCache(ctx context.Context, storage repository.Store) repository.Store {
	if a.config.Redis.Addr == "" {
		return storage
	}

	client, err := cache.NewRedisClient(ctx, a.config.Redis.Addr)
	if err != nil {
		a.logger.Warn("link cache disabled", zap.String("addr", a.config.Redis.Addr), zap.Error(err))
		return storage
	}
	a.cache = client

	a.logger.Info("Using redis link cache", zap.String("addr", a.config.Redis.Addr))
	return cache.NewLinkCache(storage, client, a.config.Redis.TTL, a.logger)
}

// initPublisher подключается к NATS; nil означает, что события не публикуются
func (a *App) initPublisher() service.ClickPublisher {
	if a.config.NATS.URL == "" {
		return nil
	}

	publisher, err := service.NewNATSPublisher(a.config.NATS.URL, a.config.NATS.Subject)
	if err != nil {
		a.logger.Warn("click events publishing disabled", zap.String("url", a.config.NATS.URL), zap.Error(err))
		return nil
	}
	a.publisher = publisher

	a.logger.Info("Publishing click events", zap.String("subject", a.config.NATS.Subject))
	return publisher
}
