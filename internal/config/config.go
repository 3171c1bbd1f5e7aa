package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	BackupDir       string
	BackupInterval  int // minutes; 0 disables periodic backups
	BackupKeep      int
	BackupWorkers   int
	BackupQueueSize int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:earwise.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		BackupDir:       envOr("BACKUP_DIR", "backups"),
		BackupInterval:  envIntOr("BACKUP_INTERVAL_MINUTES", 60),
		BackupKeep:      envIntOr("BACKUP_KEEP", 10),
		BackupWorkers:   envIntOr("BACKUP_WORKER_COUNT", 1),
		BackupQueueSize: envIntOr("BACKUP_QUEUE_SIZE", 8),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
