package main

import (
	"context"
	"log/slog"
	"os"

	"foliocms/internal/config"
	"foliocms/internal/database"
	"foliocms/internal/seed"
)

// 独立的迁移/种子入口，适合在部署流程中先于 api 运行。
func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logger.Error("init database failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("close database failed", slog.Any("error", err))
		}
	}()

	if err := seed.Run(context.Background(), db, cfg.Seed, logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seed complete")
}
