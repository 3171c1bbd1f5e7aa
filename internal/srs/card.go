package srs

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abeage1/earwise/internal/catalog"
)

const (
	// MinEaseFactor is the SM-2 ease floor.
	MinEaseFactor = 1.3
	// InitialEaseFactor is the SM-2 starting ease for a fresh card.
	InitialEaseFactor = 2.5

	// HistoryCap bounds the per-card answer history ring.
	HistoryCap = 20

	masteryRate = 0.12
	failPenalty = 0.06

	fastAnswerMs   = 2500
	normalAnswerMs = 5000

	// relearnDelay reschedules a failed (or slow-correct) card within the
	// same session horizon instead of pushing it out a full day.
	relearnDelay = 10 * time.Minute
)

// Key identifies one (item, variant) pair within a deck.
type Key struct {
	ItemID  string
	Variant catalog.Variant
}

func (k Key) String() string {
	return k.ItemID + ":" + string(k.Variant)
}

// ParseKey parses the "item:variant" form produced by Key.String.
func ParseKey(s string) (Key, error) {
	id, variant, ok := strings.Cut(s, ":")
	if !ok || id == "" || variant == "" {
		return Key{}, fmt.Errorf("malformed card key %q", s)
	}
	return Key{ItemID: id, Variant: catalog.Variant(variant)}, nil
}

// Answer is one recorded response.
type Answer struct {
	Correct   bool      `json:"correct"`
	LatencyMs int64     `json:"latency_ms"`
	At        time.Time `json:"at"`
}

// Card is the atomic scheduling unit for one (item, variant) pair. It owns
// SM-2 scheduling state, a continuous mastery estimate and a bounded answer
// history. Cards start locked and enter circulation via Unlock.
type Card struct {
	Key          Key
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Mastery      float64
	DueAt        time.Time
	IntroducedAt time.Time // zero while the card has never been unlocked
	Locked       bool
	History      []Answer
	TotalAnswers int
}

// NewCard creates a locked card with fresh scheduling state.
func NewCard(key Key) *Card {
	return &Card{
		Key:        key,
		EaseFactor: InitialEaseFactor,
		Locked:     true,
	}
}

// Grade maps an answer outcome to the 4-level SM-2 quality scale:
// 0=again (incorrect), 1=hard (slow correct), 2=good, 3=easy (fast correct).
func Grade(correct bool, latencyMs int64) int {
	if !correct {
		return 0
	}
	if latencyMs < fastAnswerMs {
		return 3
	}
	if latencyMs < normalAnswerMs {
		return 2
	}
	return 1
}

// Update folds one answer into the card: mastery step, SM-2 interval and
// ease update, rescheduling, and history append.
//
// A slow correct answer (grade 1) counts as correct for mastery and
// accuracy but resets the SM-2 interval like a failure.
func (c *Card) Update(correct bool, latencyMs int64, now time.Time) {
	grade := Grade(correct, latencyMs)

	if correct {
		c.Mastery = math.Min(1, c.Mastery+masteryRate*(1-c.Mastery))
	} else {
		c.Mastery = math.Max(0, c.Mastery-masteryRate*c.Mastery-failPenalty)
	}

	if grade >= 2 {
		switch c.Repetitions {
		case 0:
			c.IntervalDays = 1
		case 1:
			c.IntervalDays = 4
		default:
			c.IntervalDays = int(math.Round(float64(c.IntervalDays) * c.EaseFactor))
		}
		c.Repetitions++
	} else {
		c.Repetitions = 0
		c.IntervalDays = 0
	}

	// SM-2 ease adjustment, applied on every answer.
	c.EaseFactor = math.Max(
		MinEaseFactor,
		c.EaseFactor+0.1-float64(3-grade)*(0.08+float64(3-grade)*0.02),
	)

	if c.IntervalDays == 0 {
		c.DueAt = now.Add(relearnDelay)
	} else {
		c.DueAt = now.Add(time.Duration(c.IntervalDays) * 24 * time.Hour)
	}

	c.History = append(c.History, Answer{Correct: correct, LatencyMs: latencyMs, At: now})
	if len(c.History) > HistoryCap {
		c.History = c.History[len(c.History)-HistoryCap:]
	}
	c.TotalAnswers++
}

// IsDue reports whether the card should appear in the due queue.
// A locked card is never due regardless of its due date.
func (c *Card) IsDue(now time.Time) bool {
	return !c.Locked && !now.Before(c.DueAt)
}

// RecentAccuracy returns the fraction of correct answers among the last n
// history entries, or 0 with no history.
func (c *Card) RecentAccuracy(n int) float64 {
	if n <= 0 || len(c.History) == 0 {
		return 0
	}
	recent := c.History
	if len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	correct := 0
	for _, a := range recent {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(recent))
}

// Unlock puts the card into circulation, immediately due. Reports whether
// the card state changed.
func (c *Card) Unlock(now time.Time) bool {
	if !c.Locked {
		return false
	}
	c.Locked = false
	c.IntroducedAt = now
	c.DueAt = now
	return true
}

// Relock removes the card from circulation without touching mastery or
// scheduling state, so a later unlock resumes where the learner left off.
func (c *Card) Relock() bool {
	if c.Locked {
		return false
	}
	c.Locked = true
	return true
}
