package services

import (
	"context"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/progression"
	"github.com/abeage1/earwise/internal/srs"
)

// Export captures all domains' state plus settings and stats as a portable
// bundle.
func (s *practiceService) Export(ctx context.Context) (*models.ExportBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := &models.ExportBundle{
		Version:    models.BundleVersion,
		ExportedAt: s.now(),
		Domains:    make(map[catalog.Domain]models.DomainState, len(s.engines)),
	}
	for domain, eng := range s.engines {
		bundle.Domains[domain] = models.DomainState{
			Deck: models.SnapshotDeck(eng.deck),
			Progression: models.ProgressionState{
				SchemaVersion: models.ProgressionSchemaVersion,
				UnlockedTier:  eng.engine.UnlockedTier(),
			},
		}
	}
	settings := s.settings
	stats := s.stats
	bundle.Settings = &settings
	bundle.Stats = &stats
	return bundle, nil
}

// Import replaces all in-memory and persisted state with a bundle's
// contents. Validation happens before any mutation, so a rejected bundle
// leaves current state untouched. Domains absent from the bundle reset to
// defaults. An active session is discarded.
func (s *practiceService) Import(ctx context.Context, bundle *models.ExportBundle) error {
	if bundle == nil {
		return errors.NewInvalidImportError("empty bundle")
	}
	if reason, ok := bundle.Validate(); !ok {
		return errors.NewInvalidImportError(reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).WithPrefix("practice")
	now := s.now()
	s.runner = nil

	for _, domain := range catalog.Domains() {
		cfg := catalog.ByDomain(domain)
		deck := srs.NewDeck(cfg)
		engine := progression.New(cfg, deck)

		if state, ok := bundle.Domains[domain]; ok {
			if dropped := models.RestoreDeck(deck, state.Deck); len(dropped) > 0 {
				log.Warn("import dropped %d unknown card keys for %s", len(dropped), domain)
			}
			prog := state.Progression
			models.MigrateProgressionState(&prog)
			engine.Restore(prog.UnlockedTier)
		}
		engine.Bootstrap(now)

		eng := &domainEngine{cfg: cfg, deck: deck, engine: engine}
		s.engines[domain] = eng
		s.persistDomain(ctx, eng)
	}

	if bundle.Settings != nil {
		if _, _, ok := bundle.Settings.Validate(); ok {
			s.settings = *bundle.Settings
		} else {
			log.Warn("import bundle carries invalid settings, keeping defaults")
			s.settings = models.DefaultSettings()
		}
	} else {
		s.settings = models.DefaultSettings()
	}
	if err := s.states.SaveSettings(ctx, s.settings); err != nil {
		log.Error("failed to persist settings: %v", err)
	}

	if bundle.Stats != nil {
		s.stats = *bundle.Stats
	} else {
		s.stats = models.DefaultStats()
	}
	s.persistStats(ctx)

	log.Info("imported bundle version %d covering %d domains", bundle.Version, len(bundle.Domains))
	return nil
}

// Reset wipes all persisted state and rebuilds every domain from defaults.
func (s *practiceService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.states.Clear(ctx); err != nil {
		return errors.NewInternalError(err)
	}

	now := s.now()
	s.runner = nil
	for _, domain := range catalog.Domains() {
		cfg := catalog.ByDomain(domain)
		deck := srs.NewDeck(cfg)
		engine := progression.New(cfg, deck)
		engine.Bootstrap(now)
		s.engines[domain] = &domainEngine{cfg: cfg, deck: deck, engine: engine}
	}
	s.settings = models.DefaultSettings()
	s.stats = models.DefaultStats()

	logger.FromContext(ctx).Info("all practice state reset")
	return nil
}
