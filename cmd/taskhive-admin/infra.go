package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive-api/config"
	"github.com/taskhive/taskhive-api/internal/bootstrap"
)

func connectDB(logger *slog.Logger, cfg *config.AppConfig) (*sql.DB, error) {
	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cfg.Postgres,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return db, nil
}

func closeDB(logger *slog.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		logger.Warn("db close failed", "error", err)
	}
}
