package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abeage1/earwise/internal/api"
	"github.com/abeage1/earwise/internal/audio"
	"github.com/abeage1/earwise/internal/config"
	"github.com/abeage1/earwise/internal/db"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/repository/sqlite"
	"github.com/abeage1/earwise/internal/services"
	"github.com/abeage1/earwise/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Earwise Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("backup_dir=%s", cfg.BackupDir)
	log.Debug("backup_interval_minutes=%d", cfg.BackupInterval)
	log.Debug("backup_keep=%d", cfg.BackupKeep)
	log.Debug("backup_worker_count=%d", cfg.BackupWorkers)
	log.Debug("backup_queue_size=%d", cfg.BackupQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories and services
	stateRepo := sqlite.NewStateRepository(database.DB)
	sessionRepo := sqlite.NewSessionLogRepository(database.DB)
	practice := services.NewPracticeService(stateRepo, sessionRepo, audio.NewTimedPlayer())

	// Initialize backup worker pool
	backupPool := worker.NewPool(cfg.BackupWorkers, cfg.BackupQueueSize)

	srv := &api.Server{
		Practice: practice,
		DB:       database,
	}

	ctx, cancel := context.WithCancel(context.Background())
	backupPool.Start(ctx)

	if cfg.BackupInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.BackupInterval) * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					backupPool.Submit(&worker.BackupJob{
						Exporter: practice,
						Dir:      cfg.BackupDir,
						Keep:     cfg.BackupKeep,
					})
				}
			}
		}()
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping backup pool")
	backupPool.Stop()

	log.Info("===========================================")
	log.Info("Earwise Server Stopped")
	log.Info("===========================================")
}
