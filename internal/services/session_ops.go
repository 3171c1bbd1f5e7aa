package services

import (
	"context"
	"time"

	"github.com/abeage1/earwise/internal/audio"
	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/progression"
	"github.com/abeage1/earwise/internal/session"
)

// StartSession builds and starts a practice session for one domain. Only one
// session can run at a time across domains.
func (s *practiceService) StartSession(ctx context.Context, domain catalog.Domain) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner != nil && s.runner.State() == session.InProgress {
		return nil, errors.NewConflictError("a session is already in progress")
	}

	eng, err := s.engine(domain)
	if err != nil {
		return nil, err
	}

	now := s.now()
	queue := progression.BuildSession(eng.deck, s.settings.SessionSize, now, s.rng)
	if len(queue) == 0 {
		return nil, errors.NewBadRequestError("no items to practice yet")
	}

	s.runner = session.NewRunner(domain, queue)
	s.runner.Start()

	logger.FromContext(ctx).WithField("domain", domain).
		Info("session started with %d questions", len(queue))

	return s.questionView(eng, now), nil
}

// CurrentQuestion returns the question being presented.
func (s *practiceService) CurrentQuestion(ctx context.Context) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.activeEngine()
	if err != nil {
		return nil, err
	}
	return s.questionView(eng, s.now()), nil
}

// PlayQuestion plays the current question's pattern and, once playback has
// completed, opens the answer gate. Playback happens outside the service
// lock so a long pattern never blocks unrelated calls.
func (s *practiceService) PlayQuestion(ctx context.Context) error {
	s.mu.Lock()
	eng, err := s.activeEngine()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	card := s.runner.Current()
	item, ok := eng.cfg.Item(card.Key.ItemID)
	if !ok {
		s.mu.Unlock()
		return errors.NewInternalError(nil)
	}
	runner := s.runner
	s.runner.MarkSeen()
	s.mu.Unlock()

	if err := s.player.Play(ctx, audio.SpecForItem(item), card.Key.Variant); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The session may have been abandoned or replaced while playing.
	if s.runner == runner && s.runner.Current() == card {
		s.runner.PlaybackFinished(s.now())
	}
	return nil
}

// SubmitAnswer routes an item choice into the current question. Out of
// protocol answers (no active question, playback not finished, duplicate
// submission) are reported as not accepted rather than errors.
func (s *practiceService) SubmitAnswer(ctx context.Context, itemID string) (*AnswerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.activeEngine()
	if err != nil {
		return nil, err
	}

	result, accepted := s.runner.Answer(itemID, s.now())
	if !accepted {
		return &AnswerView{Accepted: false}, nil
	}

	s.stats.RecordAnswer(result.Correct)
	s.persistDomain(ctx, eng)
	s.persistStats(ctx)

	view := &AnswerView{
		Accepted:      true,
		Correct:       result.Correct,
		CorrectItemID: result.Card.Key.ItemID,
		LatencyMs:     result.LatencyMs,
		Mastery:       result.Card.Mastery,
		AutoAdvance:   s.settings.AutoAdvance,
	}
	if item, ok := eng.cfg.Item(result.Card.Key.ItemID); ok {
		view.CorrectName = item.Name
		if s.showSongs(result.Correct) {
			view.Songs = item.Songs[result.Card.Key.Variant]
		}
	}
	return view, nil
}

func (s *practiceService) showSongs(correct bool) bool {
	switch s.settings.ShowSongsOn {
	case models.ShowSongsAlways:
		return true
	case models.ShowSongsWrong:
		return !correct
	default:
		return false
	}
}

// NextQuestion advances the session. When the queue is exhausted the session
// ends: the unlock engine is peeked for pending unlocks, the summary is
// built, lifetime stats and the session log are updated, and the finished
// session's state is persisted.
func (s *practiceService) NextQuestion(ctx context.Context) (*QuestionView, *SummaryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eng, err := s.activeEngine()
	if err != nil {
		return nil, nil, err
	}

	if s.runner.Advance() {
		return s.questionView(eng, s.now()), nil, nil
	}

	summary := s.finishSession(ctx, eng)
	return nil, summary, nil
}

// AbandonSession ends the session early, keeping answered-card mutations.
func (s *practiceService) AbandonSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner == nil || s.runner.State() != session.InProgress {
		return errors.NewBadRequestError("no active session")
	}

	domain := s.runner.Domain()
	s.runner.Abandon()
	s.runner = nil

	if eng, err := s.engine(domain); err == nil {
		s.persistDomain(ctx, eng)
	}
	s.persistStats(ctx)

	logger.FromContext(ctx).WithField("domain", domain).Info("session abandoned")
	return nil
}

// finishSession ends the active session and builds the summary view.
// Caller holds the lock.
func (s *practiceService) finishSession(ctx context.Context, eng *domainEngine) *SummaryView {
	now := s.now()
	pending := eng.engine.Peek()
	sum := s.runner.Finish(pending)
	s.runner = nil

	rec := models.SessionRecord{
		Date:       now,
		Domain:     eng.cfg.Domain,
		Correct:    sum.Correct,
		Total:      sum.Total,
		NewUnlocks: len(pending),
	}
	s.stats.RecordSession(rec, now)

	if err := s.sessions.Insert(ctx, rec); err != nil {
		logger.FromContext(ctx).WithPrefix("practice").Error("failed to log session: %v", err)
	}
	s.persistDomain(ctx, eng)
	s.persistStats(ctx)

	accuracy := 0.0
	if sum.Total > 0 {
		accuracy = float64(sum.Correct) / float64(sum.Total)
	}
	logger.FromContext(ctx).WithField("domain", eng.cfg.Domain).
		Info("session finished: %d/%d correct, %d pending unlocks", sum.Correct, sum.Total, len(pending))

	return &SummaryView{
		Domain:         eng.cfg.Domain,
		Correct:        sum.Correct,
		Total:          sum.Total,
		Accuracy:       accuracy,
		PendingUnlocks: s.unlockViews(eng.cfg, pending),
		MasteryDeltas:  sum.MasteryDeltas,
		Stats:          s.stats,
	}
}

// activeEngine returns the domain engine of the in-progress session.
// Caller holds the lock.
func (s *practiceService) activeEngine() (*domainEngine, error) {
	if s.runner == nil || s.runner.State() != session.InProgress || s.runner.Current() == nil {
		return nil, errors.NewBadRequestError("no active session")
	}
	return s.engine(s.runner.Domain())
}

// questionView renders the current question. Choices cover every item with
// an unlocked card in the domain, in catalog order, so the choice set grows
// with the learner's progress. Caller holds the lock.
func (s *practiceService) questionView(eng *domainEngine, now time.Time) *QuestionView {
	card := s.runner.Current()

	var choices []ChoiceView
	for _, item := range eng.cfg.Items {
		unlocked := false
		for _, variant := range eng.cfg.Variants {
			if c := eng.deck.Card(item.ID, variant); c != nil && !c.Locked {
				unlocked = true
				break
			}
		}
		if unlocked {
			choices = append(choices, ChoiceView{
				ID:    item.ID,
				Name:  item.Name,
				Short: item.Short,
				Color: item.Color,
			})
		}
	}

	return &QuestionView{
		Domain:   eng.cfg.Domain,
		Index:    s.runner.Index(),
		Total:    s.runner.Total(),
		Key:      card.Key.String(),
		Variant:  card.Key.Variant,
		IsNew:    s.runner.IsCurrentNew(now),
		AutoPlay: s.settings.AutoPlay,
		Choices:  choices,
	}
}
