package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connaissance/fest-api/internal/config"
	"github.com/connaissance/fest-api/internal/db"
)

func TestOpen_SQLiteFileCreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connaissance.db")

	store, err := db.Open(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		SQLite: &config.SQLiteConfig{Path: path},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := store.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	for _, table := range []string{"events", "participants", "site_config"} {
		assert.True(t, store.Migrator().HasTable(table), table)
	}
	assert.FileExists(t, path)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open(&config.DatabaseConfig{Driver: "mongo"})
	assert.Error(t, err)
}
