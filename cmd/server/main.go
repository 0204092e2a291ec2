package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Elzoidbergo/HostPilot/internal/client/lodgify"
	"github.com/Elzoidbergo/HostPilot/internal/config"
	"github.com/Elzoidbergo/HostPilot/internal/migrations/postgres"
	xredis "github.com/Elzoidbergo/HostPilot/internal/redis"
	"github.com/Elzoidbergo/HostPilot/internal/server"
	"github.com/Elzoidbergo/HostPilot/internal/server/handler"
	"github.com/Elzoidbergo/HostPilot/internal/service/webhook"
	"github.com/Elzoidbergo/HostPilot/internal/storage"
	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

const (
	keyPort = "port"
	keyEnv  = "env"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	pool, err := initPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer pool.Close()

	redisClient, err := xredis.New(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("failed to initialize redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close redis client", xslog.Error(err))
		}
	}()

	// Storage
	updates := storage.NewPostgresReservationStore(pool)
	cleanerQueue := storage.NewRedisCleanerQueue(redisClient, cfg.Notify.QueueKey)

	// Services
	webhookService := webhook.NewProcessor(updates, cleanerQueue, cfg.LeadTime())
	lodgifyClient := lodgify.New(cfg.Lodgify.APIKey,
		lodgify.WithBaseURL(cfg.Lodgify.BaseURL),
		lodgify.WithLogger(logger))

	// Handlers
	router := server.NewRouter(server.Deps{
		Logger:  logger,
		Webhook: handler.NewWebhook(webhookService),
		Booking: handler.NewBooking(lodgifyClient.Booking),
		Health:  handler.NewHealth(updates, cleanerQueue),
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port),
			slog.String(keyEnv, string(cfg.Env)),
			xslog.LeadTime(cfg.LeadTime()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initPostgres(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.InfoContext(ctx, "initializing PostgreSQL")

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := postgres.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return pool, nil
}
