package audio

import (
	"context"
	"time"

	"github.com/abeage1/earwise/internal/catalog"
)

// PitchSpec is the pattern to be played for one question: a semitone
// pattern for interval and chord items, or a chord sequence for
// progression items.
type PitchSpec struct {
	Semitones []int
	Steps     []catalog.ChordStep
}

// SpecForItem derives the playable pattern from a catalog item.
func SpecForItem(item catalog.Item) PitchSpec {
	return PitchSpec{
		Semitones: item.Semitones,
		Steps:     item.Steps,
	}
}

// Player is the tone collaborator: Play blocks until playback has
// completed (or ctx is cancelled), which is the signal that gates answer
// submission.
type Player interface {
	Play(ctx context.Context, spec PitchSpec, mode catalog.Variant) error
}

// TimedPlayer paces playback in real time from the pitch pattern. Actual
// synthesis happens client-side; the server-side pacing keeps the answer
// gate honest about when the learner has finished hearing the question.
type TimedPlayer struct {
	NoteDuration  time.Duration
	ChordDuration time.Duration
}

// NewTimedPlayer returns a player with the default pacing.
func NewTimedPlayer() *TimedPlayer {
	return &TimedPlayer{
		NoteDuration:  700 * time.Millisecond,
		ChordDuration: 900 * time.Millisecond,
	}
}

func (p *TimedPlayer) duration(spec PitchSpec, mode catalog.Variant) time.Duration {
	if len(spec.Steps) > 0 {
		return time.Duration(len(spec.Steps)) * p.ChordDuration
	}
	switch mode {
	case catalog.VariantAscending, catalog.VariantDescending:
		// Two melodic notes: root plus the interval note.
		return 2 * p.NoteDuration
	case catalog.VariantHarmonic, catalog.VariantBlock:
		return p.ChordDuration
	default:
		return p.ChordDuration
	}
}

// Play waits out the playback duration, honoring cancellation.
func (p *TimedPlayer) Play(ctx context.Context, spec PitchSpec, mode catalog.Variant) error {
	timer := time.NewTimer(p.duration(spec, mode))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InstantPlayer completes immediately. Used in tests.
type InstantPlayer struct{}

func (InstantPlayer) Play(ctx context.Context, spec PitchSpec, mode catalog.Variant) error {
	return ctx.Err()
}
