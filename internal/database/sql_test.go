package database

import (
	"context"
	"path/filepath"
	"testing"

	"analytics-api/internal/configuration"
	"analytics-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("should reject unknown database types", func(t *testing.T) {
		_, err := Open(models.DatabaseConfiguration{Type: "mysql"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database type")
	})

	t.Run("should open a sqlite database", func(t *testing.T) {
		db, err := Open(models.DatabaseConfiguration{
			Type: configuration.DatabaseTypeSQLite,
			Path: filepath.Join(t.TempDir(), "open.db"),
		})
		require.NoError(t, err)

		assert.Equal(t, "sqlite", db.Dialector.Name())
	})
}

func TestMigrate(t *testing.T) {
	db, err := Open(models.DatabaseConfiguration{
		Type: configuration.DatabaseTypeSQLite,
		Path: filepath.Join(t.TempDir(), "migrate.db"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	t.Run("should create the users table and index", func(t *testing.T) {
		assert.True(t, db.Migrator().HasTable(&models.User{}))
		assert.True(t, db.Migrator().HasIndex("users", "idx_users_created_at"))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		require.NoError(t, Migrate(ctx, db))
	})
}
