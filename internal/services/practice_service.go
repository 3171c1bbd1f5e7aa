package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/abeage1/earwise/internal/audio"
	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/progression"
	"github.com/abeage1/earwise/internal/repository"
	"github.com/abeage1/earwise/internal/session"
	"github.com/abeage1/earwise/internal/srs"
)

// PracticeService orchestrates the practice engine across all domains:
// session flow, unlock confirmation, manual curriculum control, settings,
// stats and the export/import bundle.
type PracticeService interface {
	StartSession(ctx context.Context, domain catalog.Domain) (*QuestionView, error)
	CurrentQuestion(ctx context.Context) (*QuestionView, error)
	PlayQuestion(ctx context.Context) error
	SubmitAnswer(ctx context.Context, itemID string) (*AnswerView, error)
	NextQuestion(ctx context.Context) (*QuestionView, *SummaryView, error)
	AbandonSession(ctx context.Context) error

	ConfirmUnlocks(ctx context.Context, domain catalog.Domain) ([]UnlockView, error)
	DeferUnlocks(ctx context.Context, domain catalog.Domain) error
	ManualUnlock(ctx context.Context, domain catalog.Domain, key srs.Key) (bool, error)
	ManualRelock(ctx context.Context, domain catalog.Domain, key srs.Key) (bool, error)
	Progress(ctx context.Context, domain catalog.Domain) (*ProgressView, error)

	GetSettings(ctx context.Context) models.Settings
	UpdateSettings(ctx context.Context, settings models.Settings) error
	GetStats(ctx context.Context) models.Stats
	RecentSessions(ctx context.Context, domain catalog.Domain, limit int) ([]models.SessionRecord, error)

	Export(ctx context.Context) (*models.ExportBundle, error)
	Import(ctx context.Context, bundle *models.ExportBundle) error
	Reset(ctx context.Context) error
}

// domainEngine bundles one domain's deck and unlock engine.
type domainEngine struct {
	cfg    *catalog.Config
	deck   *srs.Deck
	engine *progression.Engine
}

type practiceService struct {
	mu       sync.Mutex
	engines  map[catalog.Domain]*domainEngine
	runner   *session.Runner
	settings models.Settings
	stats    models.Stats

	states   repository.StateRepository
	sessions repository.SessionLogRepository
	player   audio.Player
	rng      *rand.Rand
	now      func() time.Time
}

// Option configures a PracticeService.
type Option func(*practiceService)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *practiceService) {
		s.now = now
	}
}

// WithRand overrides the session-shuffle randomness source. Used in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *practiceService) {
		s.rng = rng
	}
}

// NewPracticeService loads persisted state for every domain (substituting
// defaults for absent or malformed snapshots) and returns a ready service.
func NewPracticeService(states repository.StateRepository, sessions repository.SessionLogRepository, player audio.Player, opts ...Option) PracticeService {
	s := &practiceService{
		engines:  make(map[catalog.Domain]*domainEngine),
		settings: models.DefaultSettings(),
		stats:    models.DefaultStats(),
		states:   states,
		sessions: sessions,
		player:   player,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadAll(context.Background())
	return s
}

// loadAll restores every domain plus settings and stats. Load failures are
// recoverable: defaults are substituted and the failure is only logged.
func (s *practiceService) loadAll(ctx context.Context) {
	log := logger.FromContext(ctx).WithPrefix("practice")
	now := s.now()

	for _, domain := range catalog.Domains() {
		s.engines[domain] = s.loadDomain(ctx, domain, now)
	}

	if settings, err := s.states.LoadSettings(ctx); err != nil {
		log.Warn("could not load settings, using defaults: %v", err)
	} else if settings != nil {
		s.settings = *settings
	}

	if stats, err := s.states.LoadStats(ctx); err != nil {
		log.Warn("could not load stats, using defaults: %v", err)
	} else if stats != nil {
		s.stats = *stats
	}
}

func (s *practiceService) loadDomain(ctx context.Context, domain catalog.Domain, now time.Time) *domainEngine {
	log := logger.FromContext(ctx).WithPrefix("practice").WithField("domain", domain)

	cfg := catalog.ByDomain(domain)
	deck := srs.NewDeck(cfg)
	engine := progression.New(cfg, deck)

	if state, err := s.states.LoadDeck(ctx, domain); err != nil {
		log.Warn("could not load deck, starting fresh: %v", err)
	} else if state != nil {
		if dropped := models.RestoreDeck(deck, *state); len(dropped) > 0 {
			log.Warn("dropped %d unknown card keys from persisted deck", len(dropped))
		}
	}

	if state, err := s.states.LoadProgression(ctx, domain); err != nil {
		log.Warn("could not load progression, starting fresh: %v", err)
	} else if state != nil {
		st := *state
		models.MigrateProgressionState(&st)
		engine.Restore(st.UnlockedTier)
	}

	if unlocked := engine.Bootstrap(now); len(unlocked) > 0 {
		log.Info("bootstrapped tier 0 with %d cards", len(unlocked))
	}

	return &domainEngine{cfg: cfg, deck: deck, engine: engine}
}

func (s *practiceService) engine(domain catalog.Domain) (*domainEngine, error) {
	eng, ok := s.engines[domain]
	if !ok {
		return nil, errors.NewNotFoundError("domain", domain)
	}
	return eng, nil
}

// persistDomain write-through saves one domain's deck and progression.
// Save failures are logged but never block: in-memory state stays
// authoritative for the rest of the session.
func (s *practiceService) persistDomain(ctx context.Context, eng *domainEngine) {
	log := logger.FromContext(ctx).WithPrefix("practice").WithField("domain", eng.cfg.Domain)
	if err := s.states.SaveDeck(ctx, eng.cfg.Domain, models.SnapshotDeck(eng.deck)); err != nil {
		log.Error("failed to persist deck: %v", err)
	}
	state := models.ProgressionState{
		SchemaVersion: models.ProgressionSchemaVersion,
		UnlockedTier:  eng.engine.UnlockedTier(),
	}
	if err := s.states.SaveProgression(ctx, eng.cfg.Domain, state); err != nil {
		log.Error("failed to persist progression: %v", err)
	}
}

func (s *practiceService) persistStats(ctx context.Context) {
	if err := s.states.SaveStats(ctx, s.stats); err != nil {
		logger.FromContext(ctx).WithPrefix("practice").Error("failed to persist stats: %v", err)
	}
}

func (s *practiceService) GetSettings(ctx context.Context) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *practiceService) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if field, reason, ok := settings.Validate(); !ok {
		return errors.NewValidationError(field, reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	if err := s.states.SaveSettings(ctx, settings); err != nil {
		logger.FromContext(ctx).WithPrefix("practice").Error("failed to persist settings: %v", err)
	}
	logger.FromContext(ctx).Info("settings updated: session_size=%d", settings.SessionSize)
	return nil
}

func (s *practiceService) GetStats(ctx context.Context) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *practiceService) RecentSessions(ctx context.Context, domain catalog.Domain, limit int) ([]models.SessionRecord, error) {
	if limit <= 0 || limit > models.SessionHistoryCap {
		limit = models.SessionHistoryCap
	}
	records, err := s.sessions.List(ctx, repository.SessionLogFilter{Domain: domain, Limit: limit})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return records, nil
}

func (s *practiceService) unlockViews(cfg *catalog.Config, keys []srs.Key) []UnlockView {
	views := make([]UnlockView, 0, len(keys))
	for _, key := range keys {
		name := key.ItemID
		if item, ok := cfg.Item(key.ItemID); ok {
			name = item.Name
		}
		views = append(views, UnlockView{ItemID: key.ItemID, Variant: key.Variant, Name: name})
	}
	return views
}
