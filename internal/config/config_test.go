package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abeage1/earwise/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:earwise.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, 60, cfg.BackupInterval)
	assert.Equal(t, 10, cfg.BackupKeep)
	assert.Equal(t, 1, cfg.BackupWorkers)
	assert.Equal(t, 8, cfg.BackupQueueSize)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DB_PATH", "file:test.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("BACKUP_INTERVAL_MINUTES", "0")
	t.Setenv("BACKUP_KEEP", "3")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "file:test.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 0, cfg.BackupInterval)
	assert.Equal(t, 3, cfg.BackupKeep)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("BACKUP_WORKER_COUNT", "many")

	cfg := config.Load()

	assert.Equal(t, 1, cfg.BackupWorkers)
}
