package srs

import (
	"time"

	"github.com/abeage1/earwise/internal/catalog"
)

// Deck owns the full card set for one practice domain: one card per catalog
// item × applicable variant, created eagerly and all initially locked. The
// key set is fixed for the deck's lifetime; cards are only ever locked or
// unlocked, never added or removed.
type Deck struct {
	domain catalog.Domain
	cards  map[Key]*Card
	order  []Key
}

// NewDeck builds the locked card cross-product for a domain config.
func NewDeck(cfg *catalog.Config) *Deck {
	d := &Deck{
		domain: cfg.Domain,
		cards:  make(map[Key]*Card, len(cfg.Items)*len(cfg.Variants)),
	}
	for _, item := range cfg.Items {
		for _, variant := range cfg.Variants {
			key := Key{ItemID: item.ID, Variant: variant}
			d.cards[key] = NewCard(key)
			d.order = append(d.order, key)
		}
	}
	return d
}

// Domain returns the practice domain this deck belongs to.
func (d *Deck) Domain() catalog.Domain {
	return d.domain
}

// Get returns the card for a key, or nil if the key is not in the deck.
func (d *Deck) Get(key Key) *Card {
	return d.cards[key]
}

// Card looks up by item ID and variant.
func (d *Deck) Card(itemID string, variant catalog.Variant) *Card {
	return d.cards[Key{ItemID: itemID, Variant: variant}]
}

// Cards returns every card in catalog order.
func (d *Deck) Cards() []*Card {
	out := make([]*Card, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.cards[key])
	}
	return out
}

// ActiveCards returns all unlocked cards in catalog order.
func (d *Deck) ActiveCards() []*Card {
	var out []*Card
	for _, key := range d.order {
		if c := d.cards[key]; !c.Locked {
			out = append(out, c)
		}
	}
	return out
}

// DueCards returns all unlocked cards whose due date has passed.
func (d *Deck) DueCards(now time.Time) []*Card {
	var out []*Card
	for _, key := range d.order {
		if c := d.cards[key]; c.IsDue(now) {
			out = append(out, c)
		}
	}
	return out
}

// AverageMastery returns the arithmetic mean mastery of a card set. An empty
// set averages to 1.0 so an empty gating group never blocks progress.
func AverageMastery(cards []*Card) float64 {
	if len(cards) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, c := range cards {
		sum += c.Mastery
	}
	return sum / float64(len(cards))
}

// Unlock unlocks the card for a key. Reports whether a state change occurred;
// unknown keys and already-unlocked cards are no-ops.
func (d *Deck) Unlock(key Key, now time.Time) bool {
	c := d.cards[key]
	if c == nil {
		return false
	}
	return c.Unlock(now)
}

// Relock locks the card for a key, preserving its learning state.
func (d *Deck) Relock(key Key) bool {
	c := d.cards[key]
	if c == nil {
		return false
	}
	return c.Relock()
}
