package worker_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/worker"
)

type stubExporter struct {
	exportedAt time.Time
}

func (s *stubExporter) Export(ctx context.Context) (*models.ExportBundle, error) {
	return &models.ExportBundle{
		Version:    models.BundleVersion,
		ExportedAt: s.exportedAt,
		Domains: map[catalog.Domain]models.DomainState{
			catalog.DomainIntervals: {
				Deck: models.DeckState{
					SchemaVersion: models.DeckSchemaVersion,
					Cards:         map[string]models.CardState{},
				},
			},
		},
	}, nil
}

func TestBackupJob_WritesBundle(t *testing.T) {
	dir := t.TempDir()
	job := &worker.BackupJob{
		Exporter: &stubExporter{exportedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)},
		Dir:      dir,
		Keep:     5,
	}

	require.NoError(t, job.Run(context.Background()))

	path := filepath.Join(dir, "earwise-20260301-123000.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var bundle models.ExportBundle
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.Equal(t, models.BundleVersion, bundle.Version)
	_, ok := bundle.Domains[catalog.DomainIntervals]
	assert.True(t, ok)
}

func TestBackupJob_PrunesOldBackups(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		job := &worker.BackupJob{
			Exporter: &stubExporter{exportedAt: base.Add(time.Duration(i) * time.Minute)},
			Dir:      dir,
			Keep:     2,
		}
		require.NoError(t, job.Run(context.Background()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "only the newest backups survive")
	assert.Equal(t, "earwise-20260301-120200.json", entries[0].Name())
	assert.Equal(t, "earwise-20260301-120300.json", entries[1].Name())
}

func TestBackupJob_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "backups")
	job := &worker.BackupJob{
		Exporter: &stubExporter{exportedAt: time.Now()},
		Dir:      dir,
		Keep:     1,
	}

	require.NoError(t, job.Run(context.Background()))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
