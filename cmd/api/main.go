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

	"github.com/redis/go-redis/v9"

	"foliocms/internal/api"
	"foliocms/internal/config"
	"foliocms/internal/content"
	"foliocms/internal/database"
	"foliocms/internal/seed"
	"foliocms/internal/session"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("api bootstrapped",
		slog.String("driver", cfg.Database.Driver),
		slog.String("session_store", cfg.Session.Store),
		slog.Int("port", cfg.API.Port),
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logger.Error("init database failed", slog.Any("error", err))
		os.Exit(1)
	}

	// 迁移与种子数据是独立于路由注册的显式步骤，失败直接退出。
	ctx := context.Background()
	if err := seed.Run(ctx, db, cfg.Seed, logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrated and seeded")

	var redisClient redis.UniversalClient
	var sessions session.Store
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.RedisAddr()})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("redis ping failed", slog.Any("error", err))
			os.Exit(1)
		}
		redisClient = client
		sessions = session.NewRedisStore(client)
	default:
		sessions = session.NewMemoryStore()
	}

	stores := content.NewStores(db)

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, db, stores, sessions, redisClient, logger, cfg)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", slog.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info("shutting down")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(timeoutCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := database.Close(db); err != nil {
		logger.Error("close database failed", slog.Any("error", err))
	}
	logger.Info("shutdown complete")
}
