package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/repository"
)

// Snapshot kinds in the snapshots table.
const (
	kindDeck        = "deck"
	kindProgression = "progression"
	kindSettings    = "settings"
	kindStats       = "stats"
)

type stateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new StateRepository implementation
func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) save(ctx context.Context, kind, domain string, v any) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")

	payload, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to marshal %s snapshot: %v", kind, err)
		return err
	}
	log.Debug("saving snapshot: kind=%s, domain=%s, bytes=%d", kind, domain, len(payload))

	_, err = r.db.ExecContext(ctx, `
INSERT INTO snapshots (kind, domain, payload, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(kind, domain) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, kind, domain, string(payload))
	if err != nil {
		log.Error("failed to save %s snapshot: %v", kind, err)
	}
	return err
}

func (r *stateRepository) load(ctx context.Context, kind, domain string, v any) (found bool, err error) {
	log := logger.FromContext(ctx).WithPrefix("state_repo")
	log.Debug("loading snapshot: kind=%s, domain=%s", kind, domain)

	var payload string
	err = r.db.QueryRowContext(ctx, `
SELECT payload FROM snapshots WHERE kind = ? AND domain = ?
`, kind, domain).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshot: kind=%s, domain=%s", kind, domain)
		return false, nil
	}
	if err != nil {
		log.Error("failed to load %s snapshot: %v", kind, err)
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("malformed %s snapshot for %q: %w", kind, domain, err)
	}
	return true, nil
}

func (r *stateRepository) SaveDeck(ctx context.Context, domain catalog.Domain, state models.DeckState) error {
	return r.save(ctx, kindDeck, string(domain), state)
}

func (r *stateRepository) LoadDeck(ctx context.Context, domain catalog.Domain) (*models.DeckState, error) {
	var state models.DeckState
	found, err := r.load(ctx, kindDeck, string(domain), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) SaveProgression(ctx context.Context, domain catalog.Domain, state models.ProgressionState) error {
	return r.save(ctx, kindProgression, string(domain), state)
}

func (r *stateRepository) LoadProgression(ctx context.Context, domain catalog.Domain) (*models.ProgressionState, error) {
	var state models.ProgressionState
	found, err := r.load(ctx, kindProgression, string(domain), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	return r.save(ctx, kindSettings, "", settings)
}

func (r *stateRepository) LoadSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	found, err := r.load(ctx, kindSettings, "", &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

func (r *stateRepository) SaveStats(ctx context.Context, stats models.Stats) error {
	return r.save(ctx, kindStats, "", stats)
}

func (r *stateRepository) LoadStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	found, err := r.load(ctx, kindStats, "", &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

func (r *stateRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")
	log.Info("clearing all snapshots")

	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		log.Error("failed to clear snapshots: %v", err)
	}
	return err
}
