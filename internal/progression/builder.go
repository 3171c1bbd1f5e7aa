package progression

import (
	"math/rand"
	"sort"
	"time"

	"github.com/abeage1/earwise/internal/srs"
)

// BuildSession produces the ordered card queue for one practice session.
// Due cards (most overdue first) are strictly prioritized ahead of not-due
// cards (weakest first); a pool smaller than sessionSize is cycled to pad
// the queue, capped at 3x the pool length. The whole queue is then shuffled
// so the first question never leaks scheduling priority to the learner.
func BuildSession(deck *srs.Deck, sessionSize int, now time.Time, rng *rand.Rand) []*srs.Card {
	if sessionSize <= 0 {
		return nil
	}

	active := deck.ActiveCards()
	if len(active) == 0 {
		return nil
	}

	due := deck.DueCards(now)
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueAt.Before(due[j].DueAt)
	})

	var notDue []*srs.Card
	for _, c := range active {
		if !c.IsDue(now) {
			notDue = append(notDue, c)
		}
	}
	sort.SliceStable(notDue, func(i, j int) bool {
		return notDue[i].Mastery < notDue[j].Mastery
	})

	pool := append(append([]*srs.Card{}, due...), notDue...)

	queue := make([]*srs.Card, 0, sessionSize)
	for _, c := range pool {
		if len(queue) >= sessionSize {
			break
		}
		queue = append(queue, c)
	}

	for i := 0; len(queue) < sessionSize; i++ {
		if i > len(pool)*3 {
			break
		}
		queue = append(queue, pool[i%len(pool)])
	}

	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return queue
}
