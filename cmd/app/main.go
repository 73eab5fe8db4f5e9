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

	"kitchen/cmd"
	kitchenhttp "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/broadcast"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	sink, closeSink, err := newBroadcaster(config, logger)
	if err != nil {
		log.Fatalf("Failed to set up broadcaster: %v", err)
	}
	dispatcher := broadcast.NewAsyncBroadcaster(sink, config.BroadcastQueueSize, logger)

	app := cmd.NewCompositionRoot(config, gormDB, dispatcher, logger)
	if config.SeedMenu {
		if err = app.SeedMenu(ctx); err != nil {
			log.Fatalf("Failed to seed menu: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	server := kitchenhttp.NewServer(app.CreateHTTPHandlers(), config.Location(), logger)
	e := kitchenhttp.NewRouter(server, kitchenhttp.RouterConfig{
		RateLimit: config.HTTPRateLimit,
		RateBurst: config.HTTPRateBurst,
	})

	go func() {
		logger.InfoContext(ctx, "HTTP server started", "port", config.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server failed", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err = dispatcher.Close(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "Broadcast queue was not drained", "error", err)
	}
	closeSink()
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func newBroadcaster(config cmd.Config, logger *slog.Logger) (ports.Broadcaster, func(), error) {
	switch config.BroadcastDriver {
	case cmd.BroadcastRedis:
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		return broadcast.NewRedisBroadcaster(client, config.RedisChannelPrefix), func() { _ = client.Close() }, nil
	case cmd.BroadcastAMQP:
		conn, ch, err := broadcast.DialAMQP(config.AMQPURL)
		if err != nil {
			return nil, nil, err
		}
		b, err := broadcast.NewAMQPBroadcaster(ch, config.AMQPExchange)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return b, func() {
			_ = ch.Close()
			_ = conn.Close()
		}, nil
	default:
		return broadcast.NewLogBroadcaster(logger), func() {}, nil
	}
}
