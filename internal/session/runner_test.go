package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/session"
	"github.com/abeage1/earwise/internal/srs"
)

func newQueue(now time.Time, ids ...string) []*srs.Card {
	var queue []*srs.Card
	cards := map[string]*srs.Card{}
	for _, id := range ids {
		c, ok := cards[id]
		if !ok {
			c = srs.NewCard(srs.Key{ItemID: id, Variant: catalog.VariantAscending})
			c.Unlock(now)
			cards[id] = c
		}
		queue = append(queue, c)
	}
	return queue
}

func TestRunner_Lifecycle(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5", "P8"))

	assert.Equal(t, session.NotStarted, r.State())
	assert.Nil(t, r.Current(), "no current question before start")

	require.True(t, r.Start())
	assert.Equal(t, session.InProgress, r.State())
	assert.False(t, r.Start(), "start is one-shot")
	assert.Equal(t, 2, r.Total())
	assert.Equal(t, 0, r.Index())
	require.NotNil(t, r.Current())
}

func TestRunner_EmptyQueueCannotStart(t *testing.T) {
	r := session.NewRunner(catalog.DomainIntervals, nil)
	assert.False(t, r.Start())
}

func TestRunner_AnswerGate(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5"))
	require.True(t, r.Start())

	// Answer before playback completion is ignored.
	_, accepted := r.Answer("P5", now)
	assert.False(t, accepted, "gate is closed until playback finishes")

	require.True(t, r.PlaybackFinished(now))
	assert.False(t, r.PlaybackFinished(now), "gate opens once per question")

	result, accepted := r.Answer("P5", now.Add(2*time.Second))
	require.True(t, accepted)
	assert.True(t, result.Correct)
	assert.Equal(t, int64(2000), result.LatencyMs)
	assert.Equal(t, 1, r.Correct())

	// Double submission is ignored.
	_, accepted = r.Answer("P5", now.Add(3*time.Second))
	assert.False(t, accepted)
}

func TestRunner_WrongAnswer(t *testing.T) {
	now := time.Now()
	queue := newQueue(now, "P5")
	queue[0].Mastery = 0.5
	r := session.NewRunner(catalog.DomainIntervals, queue)
	require.True(t, r.Start())
	require.True(t, r.PlaybackFinished(now))

	result, accepted := r.Answer("P8", now.Add(time.Second))
	require.True(t, accepted)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, r.Correct())
	assert.Less(t, queue[0].Mastery, 0.5, "the card took the penalty")
}

func TestRunner_AdvanceAndFinish(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5", "P8"))
	require.True(t, r.Start())

	r.PlaybackFinished(now)
	r.Answer("P5", now.Add(time.Second))
	require.True(t, r.Advance())
	assert.Equal(t, 1, r.Index())

	r.PlaybackFinished(now)
	r.Answer("P8", now.Add(time.Second))
	assert.False(t, r.Advance(), "queue exhausted")

	summary := r.Finish(nil)
	assert.Equal(t, session.Ended, r.State())
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 2, summary.Total)
	assert.Len(t, summary.MasteryDeltas, 2)
	for _, d := range summary.MasteryDeltas {
		assert.Greater(t, d.Delta, 0.0)
	}
}

func TestRunner_PaddedQueueSingleDelta(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5", "P5", "P5"))
	require.True(t, r.Start())

	for {
		r.PlaybackFinished(now)
		r.Answer("P5", now.Add(time.Second))
		if !r.Advance() {
			break
		}
	}

	summary := r.Finish(nil)
	assert.Equal(t, 3, summary.Correct)
	assert.Len(t, summary.MasteryDeltas, 1,
		"a repeated card reports one net delta from its first-seen snapshot")
}

func TestRunner_NoiseDeltaSuppressed(t *testing.T) {
	now := time.Now()
	queue := newQueue(now, "P5")
	queue[0].Mastery = 1.0 // correct answer moves mastery by ~0
	r := session.NewRunner(catalog.DomainIntervals, queue)
	require.True(t, r.Start())

	r.PlaybackFinished(now)
	r.Answer("P5", now.Add(time.Second))
	r.Advance()

	summary := r.Finish(nil)
	assert.Empty(t, summary.MasteryDeltas)
}

func TestRunner_UnansweredCardsHaveNoDelta(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5", "P8"))
	require.True(t, r.Start())

	r.PlaybackFinished(now)
	r.Answer("P5", now.Add(time.Second))

	summary := r.Finish(nil)
	assert.Len(t, summary.MasteryDeltas, 1, "only the answered card reports a delta")
}

func TestRunner_IsCurrentNew(t *testing.T) {
	now := time.Now()

	fresh := srs.NewCard(srs.Key{ItemID: "P5", Variant: catalog.VariantAscending})
	fresh.Unlock(now.Add(-30 * time.Second))
	old := srs.NewCard(srs.Key{ItemID: "P8", Variant: catalog.VariantAscending})
	old.Unlock(now.Add(-10 * time.Minute))

	r := session.NewRunner(catalog.DomainIntervals, []*srs.Card{fresh, old})
	require.True(t, r.Start())

	assert.True(t, r.IsCurrentNew(now), "recently introduced card is flagged new")
	r.MarkSeen()
	assert.False(t, r.IsCurrentNew(now), "only until first presented")

	r.PlaybackFinished(now)
	r.Answer("P5", now)
	require.True(t, r.Advance())
	assert.False(t, r.IsCurrentNew(now), "old unlock is not new")
}

func TestRunner_FinishCarriesPendingUnlocks(t *testing.T) {
	now := time.Now()
	r := session.NewRunner(catalog.DomainIntervals, newQueue(now, "P5"))
	require.True(t, r.Start())

	pending := []srs.Key{{ItemID: "P4", Variant: catalog.VariantAscending}}
	summary := r.Finish(pending)
	assert.Equal(t, pending, summary.PendingUnlocks)
}
