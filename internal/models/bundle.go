package models

import (
	"time"

	"github.com/abeage1/earwise/internal/catalog"
)

// BundleVersion is the current export bundle format version.
const BundleVersion = 3

// DomainState pairs one domain's deck snapshot with its progression record.
type DomainState struct {
	Deck        DeckState        `json:"deck"`
	Progression ProgressionState `json:"progression"`
}

// ExportBundle wraps all domains' states plus settings and stats for
// export/import. Version is required on import.
type ExportBundle struct {
	Version    int                              `json:"version"`
	ExportedAt time.Time                        `json:"exported_at"`
	Domains    map[catalog.Domain]DomainState   `json:"domains"`
	Settings   *Settings                        `json:"settings,omitempty"`
	Stats      *Stats                           `json:"stats,omitempty"`
}

// Validate checks the structural requirements for import: a recognized
// version and the core interval deck. Older bundle versions up to the
// current one are accepted.
func (b *ExportBundle) Validate() (reason string, ok bool) {
	if b.Version <= 0 || b.Version > BundleVersion {
		return "missing or unrecognized version", false
	}
	domain, found := b.Domains[catalog.DomainIntervals]
	if !found || domain.Deck.Cards == nil {
		return "missing interval deck", false
	}
	return "", true
}
