package database

import (
	"fmt"
	"log/slog" // use slog for structured logging
	"time"

	"groanzone/internal/config"
	"groanzone/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection and migrates the schema.
// TranslateError is on so unique-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver. NowFunc is pinned to UTC
// so every timestamp the ORM writes comes from the same clock.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// Migrate creates or updates the schema for the domain entities,
// including the composite unique index on ratings (user_id, joke_id).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Joke{},
		&models.Rating{},
	)
}
