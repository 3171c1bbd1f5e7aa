package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/catalog"
	appErrors "github.com/abeage1/earwise/internal/errors"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/services"
	"github.com/abeage1/earwise/internal/srs"
	"github.com/abeage1/earwise/internal/testutil/mocks"
)

type fixture struct {
	svc    services.PracticeService
	states *mocks.MockStateRepository
	log    *mocks.MockSessionLogRepository
	player *mocks.MockPlayer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	states := new(mocks.MockStateRepository)
	sessionLog := new(mocks.MockSessionLogRepository)
	player := new(mocks.MockPlayer)

	// Fresh install: no persisted state, every save succeeds.
	states.On("LoadDeck", mock.Anything, mock.Anything).Return(nil, nil)
	states.On("LoadProgression", mock.Anything, mock.Anything).Return(nil, nil)
	states.On("LoadSettings", mock.Anything).Return(nil, nil)
	states.On("LoadStats", mock.Anything).Return(nil, nil)
	states.On("SaveDeck", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	states.On("SaveProgression", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	states.On("SaveSettings", mock.Anything, mock.Anything).Return(nil)
	states.On("SaveStats", mock.Anything, mock.Anything).Return(nil)
	states.On("Clear", mock.Anything).Return(nil)
	sessionLog.On("Insert", mock.Anything, mock.Anything).Return(nil)
	player.On("Play", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := services.NewPracticeService(states, sessionLog, player,
		services.WithClock(func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }),
		services.WithRand(rand.New(rand.NewSource(7))),
	)
	return &fixture{svc: svc, states: states, log: sessionLog, player: player}
}

func TestStartSession_BootstrapGivesQuestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	q, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, catalog.DomainIntervals, q.Domain)
	assert.Greater(t, q.Total, 0)
	assert.Len(t, q.Choices, 2, "only the first tier's items are offered")
}

func TestStartSession_Conflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)

	_, err = f.svc.StartSession(ctx, catalog.DomainChords)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
}

func TestStartSession_NoUnlockedItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cfg := catalog.Intervals()

	for _, id := range cfg.Tiers[0].Items {
		_, err := f.svc.ManualRelock(ctx, catalog.DomainIntervals, srs.Key{ItemID: id, Variant: cfg.BaseVariant})
		require.NoError(t, err)
	}

	_, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
}

func TestSubmitAnswer_BeforePlaybackIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)

	view, err := f.svc.SubmitAnswer(ctx, "P5")
	require.NoError(t, err, "out-of-protocol answers are not errors")
	assert.False(t, view.Accepted)
}

func TestSessionFlow_FullRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	q, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	total := q.Total

	var summary *services.SummaryView
	for i := 0; i < total; i++ {
		require.NoError(t, f.svc.PlayQuestion(ctx))

		current, err := f.svc.CurrentQuestion(ctx)
		require.NoError(t, err)
		key, err := srs.ParseKey(current.Key)
		require.NoError(t, err)

		answer, err := f.svc.SubmitAnswer(ctx, key.ItemID)
		require.NoError(t, err)
		require.True(t, answer.Accepted)
		assert.True(t, answer.Correct)
		assert.Equal(t, key.ItemID, answer.CorrectItemID)

		next, sum, err := f.svc.NextQuestion(ctx)
		require.NoError(t, err)
		if i < total-1 {
			require.NotNil(t, next)
			require.Nil(t, sum)
		} else {
			require.Nil(t, next)
			require.NotNil(t, sum)
			summary = sum
		}
	}

	assert.Equal(t, total, summary.Total)
	assert.Equal(t, total, summary.Correct)
	assert.Equal(t, 1.0, summary.Accuracy)
	assert.Empty(t, summary.PendingUnlocks, "a handful of answers per card is far from seasoned")
	assert.NotEmpty(t, summary.MasteryDeltas)

	stats := f.svc.GetStats(ctx)
	assert.Equal(t, total, stats.TotalQuestions)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, 1, stats.CurrentStreak)

	f.log.AssertCalled(t, "Insert", mock.Anything, mock.Anything)

	// The session is gone; a new one can start.
	_, err = f.svc.StartSession(ctx, catalog.DomainIntervals)
	assert.NoError(t, err)
}

func TestSessionFlow_WrongAnswerFeedback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	require.NoError(t, f.svc.PlayQuestion(ctx))

	current, err := f.svc.CurrentQuestion(ctx)
	require.NoError(t, err)
	key, err := srs.ParseKey(current.Key)
	require.NoError(t, err)

	wrong := "P5"
	if key.ItemID == "P5" {
		wrong = "P8"
	}

	answer, err := f.svc.SubmitAnswer(ctx, wrong)
	require.NoError(t, err)
	require.True(t, answer.Accepted)
	assert.False(t, answer.Correct)
	assert.Equal(t, key.ItemID, answer.CorrectItemID)
	assert.NotEmpty(t, answer.Songs, "default settings show song hints on a miss")
}

func TestAbandonSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.StartSession(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	require.NoError(t, f.svc.AbandonSession(ctx))

	_, err = f.svc.CurrentQuestion(ctx)
	assert.Error(t, err)

	assert.Error(t, f.svc.AbandonSession(ctx), "nothing left to abandon")
}

func TestManualUnlock_UnknownCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.ManualUnlock(ctx, catalog.DomainIntervals, srs.Key{ItemID: "nope", Variant: catalog.VariantAscending})
	require.Error(t, err)
	appErr, ok := err.(*appErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}

func TestManualUnlockRelockCycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	key := srs.Key{ItemID: "TT", Variant: catalog.VariantAscending}

	changed, err := f.svc.ManualUnlock(ctx, catalog.DomainIntervals, key)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.svc.ManualUnlock(ctx, catalog.DomainIntervals, key)
	require.NoError(t, err)
	assert.False(t, changed, "already unlocked")

	changed, err = f.svc.ManualRelock(ctx, catalog.DomainIntervals, key)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestUpdateSettings_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bad := models.DefaultSettings()
	bad.SessionSize = 500
	err := f.svc.UpdateSettings(ctx, bad)
	require.Error(t, err)
	appErr, ok := err.(*appErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)

	good := models.DefaultSettings()
	good.SessionSize = 5
	require.NoError(t, f.svc.UpdateSettings(ctx, good))
	assert.Equal(t, 5, f.svc.GetSettings(ctx).SessionSize)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	progress, err := f.svc.Progress(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.UnlockedTier)
	require.Len(t, progress.Tiers, len(catalog.Intervals().Tiers))
	assert.True(t, progress.Tiers[0].Unlocked)
	assert.False(t, progress.Tiers[1].Unlocked)
	assert.Empty(t, progress.PendingUnlocks)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bundle, err := f.svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BundleVersion, bundle.Version)
	assert.Len(t, bundle.Domains, len(catalog.Domains()))
	require.NotNil(t, bundle.Settings)
	require.NotNil(t, bundle.Stats)

	intervals := bundle.Domains[catalog.DomainIntervals]
	assert.Equal(t, 0, intervals.Progression.UnlockedTier)
	assert.NotEmpty(t, intervals.Deck.Cards)
}

func TestImport_InvalidBundleRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.svc.Import(ctx, &models.ExportBundle{Version: 0})
	require.Error(t, err)
	appErr, ok := err.(*appErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeInvalidImport, appErr.Code)

	err = f.svc.Import(ctx, nil)
	require.Error(t, err)
}

func TestImport_ExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key := srs.Key{ItemID: "TT", Variant: catalog.VariantAscending}
	_, err := f.svc.ManualUnlock(ctx, catalog.DomainIntervals, key)
	require.NoError(t, err)

	bundle, err := f.svc.Export(ctx)
	require.NoError(t, err)

	other := newFixture(t)
	require.NoError(t, other.svc.Import(ctx, bundle))

	progress, err := other.svc.Progress(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	found := false
	for _, tier := range progress.Tiers {
		for _, card := range tier.Cards {
			if card.ItemID == "TT" && card.Variant == catalog.VariantAscending {
				found = true
				assert.False(t, card.Locked, "imported unlock survives")
			}
		}
	}
	assert.True(t, found)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key := srs.Key{ItemID: "TT", Variant: catalog.VariantAscending}
	_, err := f.svc.ManualUnlock(ctx, catalog.DomainIntervals, key)
	require.NoError(t, err)

	require.NoError(t, f.svc.Reset(ctx))
	f.states.AssertCalled(t, "Clear", mock.Anything)

	progress, err := f.svc.Progress(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.UnlockedTier, "reset re-bootstraps the first tier")

	for _, tier := range progress.Tiers {
		for _, card := range tier.Cards {
			if card.ItemID == "TT" && card.Variant == catalog.VariantAscending {
				assert.True(t, card.Locked, "manual unlock is gone after reset")
			}
		}
	}
}
