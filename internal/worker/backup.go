package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
)

// Exporter produces the portable state bundle the backup writes out.
type Exporter interface {
	Export(ctx context.Context) (*models.ExportBundle, error)
}

const backupPrefix = "earwise-"

// BackupJob writes a timestamped export bundle to Dir and prunes old
// backups beyond Keep.
type BackupJob struct {
	Exporter Exporter
	Dir      string
	Keep     int
}

func (j *BackupJob) Name() string {
	return "backup"
}

func (j *BackupJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	bundle, err := j.Exporter.Export(ctx)
	if err != nil {
		return fmt.Errorf("export state: %w", err)
	}

	if err := os.MkdirAll(j.Dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := backupPrefix + bundle.ExportedAt.UTC().Format("20060102-150405") + ".json"
	path := filepath.Join(j.Dir, name)

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	log.Info("wrote backup %s (%d bytes)", name, len(data))

	return j.prune(log)
}

// prune removes the oldest backups beyond Keep. Timestamped names sort
// chronologically.
func (j *BackupJob) prune(log *logger.Logger) error {
	if j.Keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		return fmt.Errorf("list backup dir: %w", err)
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), backupPrefix) && strings.HasSuffix(e.Name(), ".json") {
			backups = append(backups, e.Name())
		}
	}
	sort.Strings(backups)

	for len(backups) > j.Keep {
		victim := backups[0]
		backups = backups[1:]
		if err := os.Remove(filepath.Join(j.Dir, victim)); err != nil {
			log.Warn("failed to prune backup %s: %v", victim, err)
			continue
		}
		log.Debug("pruned backup %s", victim)
	}
	return nil
}
