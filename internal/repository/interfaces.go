package repository

import (
	"context"
	"time"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/models"
)

// StateRepository is the durable key-value snapshot store for engine state.
// Load methods return (nil, nil) when no snapshot exists; a malformed
// snapshot is an error the caller substitutes defaults for.
type StateRepository interface {
	SaveDeck(ctx context.Context, domain catalog.Domain, state models.DeckState) error
	LoadDeck(ctx context.Context, domain catalog.Domain) (*models.DeckState, error)
	SaveProgression(ctx context.Context, domain catalog.Domain, state models.ProgressionState) error
	LoadProgression(ctx context.Context, domain catalog.Domain) (*models.ProgressionState, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
	LoadSettings(ctx context.Context) (*models.Settings, error)
	SaveStats(ctx context.Context, stats models.Stats) error
	LoadStats(ctx context.Context) (*models.Stats, error)
	Clear(ctx context.Context) error
}

// SessionLogFilter narrows a session-log query.
type SessionLogFilter struct {
	Domain catalog.Domain // empty = all domains
	Since  *time.Time
	Limit  int
}

// SessionLogRepository records completed sessions.
type SessionLogRepository interface {
	Insert(ctx context.Context, rec models.SessionRecord) error
	List(ctx context.Context, filter SessionLogFilter) ([]models.SessionRecord, error)
}
