package catalog

// Domain identifies one practice domain. Each domain owns an independent
// deck, unlock progression and persisted state.
type Domain string

const (
	DomainIntervals    Domain = "intervals"
	DomainChords       Domain = "chords"
	DomainProgressions Domain = "progressions"
)

// Domains lists every known practice domain.
func Domains() []Domain {
	return []Domain{DomainIntervals, DomainChords, DomainProgressions}
}

// ParseDomain validates a domain string.
func ParseDomain(s string) (Domain, bool) {
	switch Domain(s) {
	case DomainIntervals, DomainChords, DomainProgressions:
		return Domain(s), true
	}
	return "", false
}

// Variant is a presentation mode of an item. The interval domain has three
// (ascending, descending, harmonic); single-mode domains use one synthetic
// variant so every domain shares the same card keying scheme.
type Variant string

const (
	VariantAscending  Variant = "ascending"
	VariantDescending Variant = "descending"
	VariantHarmonic   Variant = "harmonic"
	VariantBlock      Variant = "block"
	VariantListen     Variant = "listen"
)

// Song is a reference-song hint attached to an item for one variant.
type Song struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// ChordStep is one chord of a progression item: a root offset in semitones
// from the session's key root plus a quality name from Qualities.
type ChordStep struct {
	RootOffset int    `json:"root_offset"`
	Quality    string `json:"quality"`
}

// Item is one catalog entry. Semitones holds the pitch pattern for interval
// and chord items; Steps holds the chord sequence for progression items.
type Item struct {
	ID        string
	Name      string
	Short     string
	Semitones []int
	Steps     []ChordStep
	Color     string
	Character string
	Songs     map[Variant][]Song
}

// DefaultMinAnswers is the default seasoning gate: lifetime answers required
// of every gating-group member before an automatic unlock can trigger.
const DefaultMinAnswers = 20

// Tier is one unlock stage: its member item IDs and the average mastery the
// stage must reach before the next stage opens.
type Tier struct {
	Items      []string
	MinMastery float64
}

// LadderStep is a per-item variant transition: once an item's From variant
// reaches MinMastery (and the seasoning minimum), its To variant may unlock.
type LadderStep struct {
	From       Variant
	To         Variant
	MinMastery float64
}

// Config is the full injected configuration for one practice domain.
type Config struct {
	Domain      Domain
	Items       []Item
	Variants    []Variant
	BaseVariant Variant // variant that tier unlocks apply to
	Tiers       []Tier
	Ladder      []LadderStep
	// MinAnswers is the seasoning gate: every member of a gating group needs
	// at least this many lifetime answers before an unlock can trigger.
	MinAnswers int

	byID map[string]int
}

func (c *Config) index() {
	c.byID = make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		c.byID[item.ID] = i
	}
}

// Item returns the catalog item with the given ID.
func (c *Config) Item(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.Items[i], true
}

// TierOf returns the index of the tier containing the given item, or -1.
func (c *Config) TierOf(id string) int {
	for i, tier := range c.Tiers {
		for _, member := range tier.Items {
			if member == id {
				return i
			}
		}
	}
	return -1
}

// ByDomain returns the built-in config for a domain.
func ByDomain(d Domain) *Config {
	switch d {
	case DomainIntervals:
		return Intervals()
	case DomainChords:
		return Chords()
	case DomainProgressions:
		return Progressions()
	}
	return nil
}

// Qualities maps chord quality names to semitone offsets from the chord root.
// Used to expand progression steps into concrete pitch patterns.
var Qualities = map[string][]int{
	"major":      {0, 4, 7},
	"minor":      {0, 3, 7},
	"dom7":       {0, 4, 7, 10},
	"maj7":       {0, 4, 7, 11},
	"min7":       {0, 3, 7, 10},
	"diminished": {0, 3, 6},
}
