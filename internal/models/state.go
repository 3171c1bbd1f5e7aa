package models

import (
	"time"

	"github.com/abeage1/earwise/internal/srs"
)

// Schema versions for persisted snapshots. Bumped when a persisted shape
// changes; load-time migration upgrades older snapshots in place.
const (
	DeckSchemaVersion        = 1
	ProgressionSchemaVersion = 1
)

// CardState is the persisted form of one review card.
type CardState struct {
	EaseFactor   float64      `json:"ease_factor"`
	IntervalDays int          `json:"interval_days"`
	Repetitions  int          `json:"repetitions"`
	Mastery      float64      `json:"mastery"`
	DueAt        time.Time    `json:"due_at"`
	IntroducedAt *time.Time   `json:"introduced_at,omitempty"`
	Locked       bool         `json:"locked"`
	History      []srs.Answer `json:"history,omitempty"`
	TotalAnswers int          `json:"total_answers"`
}

// DeckState is the persisted form of one domain's deck, keyed by the
// "item:variant" card key string.
type DeckState struct {
	SchemaVersion int                  `json:"schema_version"`
	Cards         map[string]CardState `json:"cards"`
}

// ProgressionState is the persisted form of one domain's unlock engine.
type ProgressionState struct {
	SchemaVersion int `json:"schema_version"`
	UnlockedTier  int `json:"unlocked_tier"`
}

// SnapshotDeck captures a deck's full card state for persistence.
func SnapshotDeck(d *srs.Deck) DeckState {
	state := DeckState{
		SchemaVersion: DeckSchemaVersion,
		Cards:         make(map[string]CardState, len(d.Cards())),
	}
	for _, c := range d.Cards() {
		cs := CardState{
			EaseFactor:   c.EaseFactor,
			IntervalDays: c.IntervalDays,
			Repetitions:  c.Repetitions,
			Mastery:      c.Mastery,
			DueAt:        c.DueAt,
			Locked:       c.Locked,
			History:      append([]srs.Answer(nil), c.History...),
			TotalAnswers: c.TotalAnswers,
		}
		if !c.IntroducedAt.IsZero() {
			t := c.IntroducedAt
			cs.IntroducedAt = &t
		}
		state.Cards[c.Key.String()] = cs
	}
	return state
}

// RestoreDeck applies a persisted snapshot onto a freshly constructed deck.
// Keys absent from the current catalog are dropped and returned, so catalog
// changes never break a load.
func RestoreDeck(d *srs.Deck, state DeckState) (dropped []string) {
	migrateDeckState(&state)
	for keyStr, cs := range state.Cards {
		key, err := srs.ParseKey(keyStr)
		if err != nil {
			dropped = append(dropped, keyStr)
			continue
		}
		c := d.Get(key)
		if c == nil {
			dropped = append(dropped, keyStr)
			continue
		}
		c.EaseFactor = cs.EaseFactor
		if c.EaseFactor < srs.MinEaseFactor {
			c.EaseFactor = srs.MinEaseFactor
		}
		c.IntervalDays = cs.IntervalDays
		c.Repetitions = cs.Repetitions
		c.Mastery = clamp01(cs.Mastery)
		c.DueAt = cs.DueAt
		c.Locked = cs.Locked
		if cs.IntroducedAt != nil {
			c.IntroducedAt = *cs.IntroducedAt
		}
		c.History = append([]srs.Answer(nil), cs.History...)
		if len(c.History) > srs.HistoryCap {
			c.History = c.History[len(c.History)-srs.HistoryCap:]
		}
		c.TotalAnswers = cs.TotalAnswers
		if c.TotalAnswers < len(c.History) {
			c.TotalAnswers = len(c.History)
		}
	}
	return dropped
}

// migrateDeckState upgrades older persisted deck snapshots to the current
// schema version.
func migrateDeckState(s *DeckState) {
	if s.SchemaVersion >= DeckSchemaVersion {
		return
	}
	// Version 0 predates explicit versioning; the card shape is unchanged.
	s.SchemaVersion = DeckSchemaVersion
}

// MigrateProgressionState upgrades older persisted progression snapshots.
func MigrateProgressionState(s *ProgressionState) {
	if s.SchemaVersion >= ProgressionSchemaVersion {
		return
	}
	s.SchemaVersion = ProgressionSchemaVersion
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
