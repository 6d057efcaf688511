package database

import (
	"context"
	"fmt"

	"analytics-api/internal/configuration"
	"analytics-api/internal/database/migrations"
	"analytics-api/internal/models"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	db, err := Open(config)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.String("type", config.Type), zap.Error(err))
	}

	if config.AutoMigrate {
		if err = Migrate(context.Background(), db); err != nil {
			zap.L().Fatal("Failed to apply database migrations", zap.Error(err))
		}
	}

	return db
}

func Open(config models.DatabaseConfiguration) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch config.Type {
	case configuration.DatabaseTypeSQLite:
		return gorm.Open(sqlite.Open(config.Path), gormConfig)
	case configuration.DatabaseTypePostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			config.Host,
			config.User,
			config.Password,
			config.Name,
			config.Port,
			config.SSLMode,
		)
		return gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type %q", config.Type)
	}
}

// Migrate applies the embedded goose migrations to db.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	dialect := goose.DialectPostgres
	if db.Dialector.Name() == "sqlite" {
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, result := range results {
		zap.L().Info("Applied migration",
			zap.String("source", result.Source.Path),
			zap.Duration("duration", result.Duration))
	}

	return nil
}
