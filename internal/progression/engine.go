package progression

import (
	"time"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/srs"
)

// Engine is the gated unlock state machine for one domain: an ordered list
// of tiers advanced on aggregate mastery, plus an optional per-item variant
// ladder evaluated independently of tiers.
//
// Peek and Apply are deliberately split: unlock evaluation is side-effect
// free so the session summary can offer unlocks as a confirmable event, and
// Apply re-runs the evaluation instead of replaying a stored Peek result so
// it stays correct if state changed in between.
type Engine struct {
	cfg          *catalog.Config
	deck         *srs.Deck
	unlockedTier int
}

// New creates an engine with no tier unlocked yet. Call Restore with
// persisted state and then Bootstrap; a fresh engine bootstraps tier 0.
func New(cfg *catalog.Config, deck *srs.Deck) *Engine {
	return &Engine{cfg: cfg, deck: deck, unlockedTier: -1}
}

// UnlockedTier returns the highest fully unlocked tier index (-1 = none).
func (e *Engine) UnlockedTier() int {
	return e.unlockedTier
}

// Restore sets the tier index from persisted state, clamped to the
// configured tier range.
func (e *Engine) Restore(tier int) {
	if tier < -1 {
		tier = -1
	}
	if max := len(e.cfg.Tiers) - 1; tier > max {
		tier = max
	}
	e.unlockedTier = tier
}

// Bootstrap unlocks tier 0 if no tier has ever been unlocked, so a fresh
// deck always starts with something practiceable. No-op once restored or
// bootstrapped.
func (e *Engine) Bootstrap(now time.Time) []srs.Key {
	if e.unlockedTier >= 0 || len(e.cfg.Tiers) == 0 {
		return nil
	}
	unlocked := e.unlockTier(0, now)
	e.unlockedTier = 0
	return unlocked
}

func (e *Engine) unlockTier(tier int, now time.Time) []srs.Key {
	var unlocked []srs.Key
	for _, itemID := range e.cfg.Tiers[tier].Items {
		key := srs.Key{ItemID: itemID, Variant: e.cfg.BaseVariant}
		if e.deck.Unlock(key, now) {
			unlocked = append(unlocked, key)
		}
	}
	return unlocked
}

// evaluate runs the two-step unlock check shared by Peek and Apply:
// ladder transitions first, and only when none qualify, tier advancement.
// Per-item refinement always precedes widening the catalog.
func (e *Engine) evaluate() (pending []srs.Key, tierAdvance bool) {
	for _, step := range e.cfg.Ladder {
		for _, item := range e.cfg.Items {
			from := e.deck.Card(item.ID, step.From)
			to := e.deck.Card(item.ID, step.To)
			if from == nil || to == nil || from.Locked || !to.Locked {
				continue
			}
			if from.Mastery >= step.MinMastery && from.TotalAnswers >= e.cfg.MinAnswers {
				pending = append(pending, to.Key)
			}
		}
	}
	if len(pending) > 0 {
		return pending, false
	}

	next := e.unlockedTier + 1
	if e.unlockedTier < 0 || next >= len(e.cfg.Tiers) {
		return nil, false
	}

	var members []*srs.Card
	for _, itemID := range e.cfg.Tiers[e.unlockedTier].Items {
		if c := e.deck.Card(itemID, e.cfg.BaseVariant); c != nil {
			members = append(members, c)
		}
	}
	if len(members) == 0 {
		return nil, false
	}
	for _, c := range members {
		if c.TotalAnswers < e.cfg.MinAnswers {
			return nil, false
		}
	}
	if srs.AverageMastery(members) < e.cfg.Tiers[e.unlockedTier].MinMastery {
		return nil, false
	}

	for _, itemID := range e.cfg.Tiers[next].Items {
		if c := e.deck.Card(itemID, e.cfg.BaseVariant); c != nil && c.Locked {
			pending = append(pending, c.Key)
		}
	}
	return pending, true
}

// Peek computes what would unlock right now without mutating any state.
func (e *Engine) Peek() []srs.Key {
	pending, _ := e.evaluate()
	return pending
}

// Apply re-evaluates and commits the pending unlocks, advancing the tier
// index on a tier transition. Returns the keys actually unlocked. Safe to
// call repeatedly; a second call with unchanged state commits nothing new.
func (e *Engine) Apply(now time.Time) []srs.Key {
	pending, tierAdvance := e.evaluate()
	var committed []srs.Key
	for _, key := range pending {
		if e.deck.Unlock(key, now) {
			committed = append(committed, key)
		}
	}
	if tierAdvance {
		e.unlockedTier++
	}
	return committed
}

// TierStatus describes one tier for the progress overview.
type TierStatus struct {
	Index          int
	Items          []string
	Unlocked       bool
	AverageMastery float64
}

// Summary reports per-tier unlock status and aggregate mastery over the
// tier's base-variant cards.
func (e *Engine) Summary() []TierStatus {
	out := make([]TierStatus, 0, len(e.cfg.Tiers))
	for i, tier := range e.cfg.Tiers {
		var members []*srs.Card
		for _, itemID := range tier.Items {
			if c := e.deck.Card(itemID, e.cfg.BaseVariant); c != nil {
				members = append(members, c)
			}
		}
		out = append(out, TierStatus{
			Index:          i,
			Items:          tier.Items,
			Unlocked:       i <= e.unlockedTier,
			AverageMastery: srs.AverageMastery(members),
		})
	}
	return out
}
