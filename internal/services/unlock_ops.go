package services

import (
	"context"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/srs"
)

// ConfirmUnlocks commits the domain's pending unlocks. The unlock engine
// re-evaluates at commit time, so confirming a stale offer is harmless.
func (s *practiceService) ConfirmUnlocks(ctx context.Context, domain catalog.Domain) ([]UnlockView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.engine(domain)
	if err != nil {
		return nil, err
	}

	committed := eng.engine.Apply(s.now())
	if len(committed) > 0 {
		s.persistDomain(ctx, eng)
		logger.FromContext(ctx).WithField("domain", domain).
			Info("unlocked %d cards", len(committed))
	}
	return s.unlockViews(eng.cfg, committed), nil
}

// DeferUnlocks declines the current unlock offer. Nothing is persisted: the
// offer is recomputed from card state, so it simply reappears at the next
// session end if the learner still qualifies.
func (s *practiceService) DeferUnlocks(ctx context.Context, domain catalog.Domain) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine(domain); err != nil {
		return err
	}
	logger.FromContext(ctx).WithField("domain", domain).Debug("unlock offer deferred")
	return nil
}

// ManualUnlock puts a specific card into circulation ahead of the automatic
// progression. Reports whether the card state changed.
func (s *practiceService) ManualUnlock(ctx context.Context, domain catalog.Domain, key srs.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.engine(domain)
	if err != nil {
		return false, err
	}
	if eng.deck.Get(key) == nil {
		return false, errors.NewNotFoundError("card", key.String())
	}

	changed := eng.deck.Unlock(key, s.now())
	if changed {
		s.persistDomain(ctx, eng)
		logger.FromContext(ctx).WithField("domain", domain).Info("manually unlocked %s", key)
	}
	return changed, nil
}

// ManualRelock takes a card out of circulation, preserving its learning
// state for a later unlock.
func (s *practiceService) ManualRelock(ctx context.Context, domain catalog.Domain, key srs.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.engine(domain)
	if err != nil {
		return false, err
	}
	if eng.deck.Get(key) == nil {
		return false, errors.NewNotFoundError("card", key.String())
	}

	changed := eng.deck.Relock(key)
	if changed {
		s.persistDomain(ctx, eng)
		logger.FromContext(ctx).WithField("domain", domain).Info("manually relocked %s", key)
	}
	return changed, nil
}

// Progress returns the full tier-by-tier overview for one domain, including
// any unlocks currently pending confirmation.
func (s *practiceService) Progress(ctx context.Context, domain catalog.Domain) (*ProgressView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.engine(domain)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tiers := make([]TierView, 0, len(eng.cfg.Tiers))
	for _, status := range eng.engine.Summary() {
		tv := TierView{
			Index:          status.Index,
			Unlocked:       status.Unlocked,
			AverageMastery: status.AverageMastery,
		}
		for _, itemID := range status.Items {
			item, ok := eng.cfg.Item(itemID)
			if !ok {
				continue
			}
			for _, variant := range eng.cfg.Variants {
				c := eng.deck.Card(itemID, variant)
				if c == nil {
					continue
				}
				tv.Cards = append(tv.Cards, CardView{
					ItemID:         itemID,
					Name:           item.Name,
					Short:          item.Short,
					Variant:        variant,
					Mastery:        c.Mastery,
					Locked:         c.Locked,
					Due:            c.IsDue(now),
					TotalAnswers:   c.TotalAnswers,
					RecentAccuracy: c.RecentAccuracy(srs.HistoryCap),
				})
			}
		}
		tiers = append(tiers, tv)
	}

	return &ProgressView{
		Domain:         domain,
		UnlockedTier:   eng.engine.UnlockedTier(),
		Tiers:          tiers,
		PendingUnlocks: s.unlockViews(eng.cfg, eng.engine.Peek()),
	}, nil
}
