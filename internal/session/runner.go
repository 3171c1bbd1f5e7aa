package session

import (
	"math"
	"time"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/srs"
)

// State is the session lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Ended
)

// Gate is the per-question playback gate: answers are only accepted once
// the audio collaborator has signalled playback completion.
type Gate int

const (
	GateIdle Gate = iota
	GateAwaitingPlayback
	GateAwaitingAnswer
)

const (
	// deltaEpsilon suppresses noise-level mastery changes in the summary.
	deltaEpsilon = 0.001
	// newCardWindow marks a card as "new" in the presentation when it was
	// introduced this recently and not yet seen this session.
	newCardWindow = 120 * time.Second
)

// MasteryDelta is one card's net mastery change over a session.
type MasteryDelta struct {
	ItemID  string          `json:"item_id"`
	Variant catalog.Variant `json:"variant"`
	Delta   float64         `json:"delta"`
}

// Summary is the end-of-session report.
type Summary struct {
	Correct        int            `json:"correct"`
	Total          int            `json:"total"`
	PendingUnlocks []srs.Key      `json:"pending_unlocks"`
	MasteryDeltas  []MasteryDelta `json:"mastery_deltas"`
}

// AnswerResult reports one accepted answer.
type AnswerResult struct {
	Correct   bool
	LatencyMs int64
	Card      *srs.Card
}

// Runner drives one practice session: it presents queue cards one at a
// time, enforces the playback gate, routes answers into card updates and
// produces the end-of-session summary. A card can appear more than once in
// a padded queue but contributes a single mastery delta.
type Runner struct {
	domain        catalog.Domain
	queue         []*srs.Card
	index         int
	state         State
	gate          Gate
	correct       int
	snapshots     map[srs.Key]float64
	answered      map[srs.Key]bool
	seen          map[srs.Key]bool
	questionStart time.Time
}

// NewRunner creates a runner over a built queue. The mastery snapshot for
// each card is taken at its first occurrence in the queue.
func NewRunner(domain catalog.Domain, queue []*srs.Card) *Runner {
	r := &Runner{
		domain:    domain,
		queue:     queue,
		state:     NotStarted,
		gate:      GateIdle,
		snapshots: make(map[srs.Key]float64, len(queue)),
		answered:  make(map[srs.Key]bool, len(queue)),
		seen:      make(map[srs.Key]bool, len(queue)),
	}
	for _, c := range queue {
		if _, ok := r.snapshots[c.Key]; !ok {
			r.snapshots[c.Key] = c.Mastery
		}
	}
	return r
}

// Domain returns the practice domain of this session.
func (r *Runner) Domain() catalog.Domain {
	return r.domain
}

// State returns the session lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Start transitions NotStarted -> InProgress. Reports whether it did.
func (r *Runner) Start() bool {
	if r.state != NotStarted || len(r.queue) == 0 {
		return false
	}
	r.state = InProgress
	r.gate = GateAwaitingPlayback
	return true
}

// Current returns the card being presented, or nil when the session is not
// in progress.
func (r *Runner) Current() *srs.Card {
	if r.state != InProgress || r.index >= len(r.queue) {
		return nil
	}
	return r.queue[r.index]
}

// Index returns the zero-based position in the queue.
func (r *Runner) Index() int {
	return r.index
}

// Total returns the queue length.
func (r *Runner) Total() int {
	return len(r.queue)
}

// Correct returns the running correct-answer tally.
func (r *Runner) Correct() int {
	return r.correct
}

// IsCurrentNew reports whether the current card should be flagged as newly
// introduced: unlocked within the last two minutes and not yet seen this
// session.
func (r *Runner) IsCurrentNew(now time.Time) bool {
	c := r.Current()
	if c == nil || c.IntroducedAt.IsZero() || r.seen[c.Key] {
		return false
	}
	return now.Sub(c.IntroducedAt) < newCardWindow
}

// MarkSeen records that the current card has been presented.
func (r *Runner) MarkSeen() {
	if c := r.Current(); c != nil {
		r.seen[c.Key] = true
	}
}

// PlaybackFinished opens the answer gate and starts the latency clock.
// Ignored unless a question is awaiting playback.
func (r *Runner) PlaybackFinished(now time.Time) bool {
	if r.state != InProgress || r.gate != GateAwaitingPlayback {
		return false
	}
	r.gate = GateAwaitingAnswer
	r.questionStart = now
	return true
}

// Answer submits an item choice for the current question. Answers arriving
// with no active question or before playback completion are ignored, not
// errors; the second return reports acceptance.
func (r *Runner) Answer(selectedItemID string, now time.Time) (AnswerResult, bool) {
	c := r.Current()
	if c == nil || r.gate != GateAwaitingAnswer {
		return AnswerResult{}, false
	}

	latency := now.Sub(r.questionStart).Milliseconds()
	correct := selectedItemID == c.Key.ItemID
	c.Update(correct, latency, now)

	if correct {
		r.correct++
	}
	r.answered[c.Key] = true
	r.gate = GateIdle

	return AnswerResult{Correct: correct, LatencyMs: latency, Card: c}, true
}

// Advance moves to the next question. Returns false once the queue is
// exhausted; the caller then builds the summary via Finish.
func (r *Runner) Advance() bool {
	if r.state != InProgress {
		return false
	}
	r.index++
	if r.index >= len(r.queue) {
		return false
	}
	r.gate = GateAwaitingPlayback
	return true
}

// Finish transitions to Ended and builds the summary. Pending unlocks come
// from the caller (the unlock engine's peek). Mastery deltas cover only
// cards answered this session, with noise below epsilon suppressed.
func (r *Runner) Finish(pendingUnlocks []srs.Key) Summary {
	r.state = Ended
	r.gate = GateIdle

	var deltas []MasteryDelta
	for _, c := range r.queue {
		if !r.answered[c.Key] {
			continue
		}
		before, ok := r.snapshots[c.Key]
		if !ok {
			continue
		}
		// A key can repeat in a padded queue; report it once.
		delete(r.snapshots, c.Key)
		delta := c.Mastery - before
		if math.Abs(delta) <= deltaEpsilon {
			continue
		}
		deltas = append(deltas, MasteryDelta{
			ItemID:  c.Key.ItemID,
			Variant: c.Key.Variant,
			Delta:   delta,
		})
	}

	return Summary{
		Correct:        r.correct,
		Total:          len(r.queue),
		PendingUnlocks: pendingUnlocks,
		MasteryDeltas:  deltas,
	}
}

// Abandon ends the session early. Card mutations already committed by
// answered questions are kept; only the remaining queue is discarded.
func (r *Runner) Abandon() {
	r.state = Ended
	r.gate = GateIdle
}
