package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 10 * time.Second
	grpcServiceName     = "shortlinks"
)

// start запускает HTTP сервер и, если задан адрес, gRPC health.
// Останавливается по SIGINT/SIGTERM с ожиданием активных запросов.
func (a *App) start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if !a.config.GRPCAddress.IsZero() {
		var err error
		grpcServer, err = a.startHealthServer(ctx, errCh)
		if err != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			server.Shutdown(shutdownCtx)
			return err
		}
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down")
	case runErr = <-errCh:
		a.logger.Error("Server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", zap.Error(err))
		return errors.Join(runErr, err)
	}

	return runErr
}

// startHealthServer поднимает grpc.health.v1 и периодически обновляет статус
// по результату проверки хранилища.
func (a *App) startHealthServer(ctx context.Context, errCh chan<- error) (*grpc.Server, error) {
	listener, err := net.Listen("tcp", a.config.GRPCAddress.String())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddress, err)
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	a.updateHealth(ctx, healthServer)
	go a.watchHealth(ctx, healthServer)

	go func() {
		a.logger.Info("Starting gRPC health server", zap.String("address", listener.Addr().String()))
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	return grpcServer, nil
}

func (a *App) watchHealth(ctx context.Context, healthServer *health.Server) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			healthServer.Shutdown()
			return
		case <-ticker.C:
			a.updateHealth(ctx, healthServer)
		}
	}
}

// updateHealth выставляет статус для общего сервиса "" и для shortlinks
func (a *App) updateHealth(ctx context.Context, healthServer *health.Server) {
	status := healthpb.HealthCheckResponse_SERVING
	if !a.usecase.HealthCheck(ctx).Available {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	healthServer.SetServingStatus("", status)
	healthServer.SetServingStatus(grpcServiceName, status)
}
