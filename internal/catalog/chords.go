package catalog

// Chords returns the chord-quality domain: root-position qualities first,
// inversions last. Single "block" variant, no ladder.
func Chords() *Config {
	c := &Config{
		Domain:      DomainChords,
		Items:       chordItems,
		Variants:    []Variant{VariantBlock},
		BaseVariant: VariantBlock,
		Tiers: []Tier{
			{Items: []string{"major", "minor"}, MinMastery: 0.60},
			{Items: []string{"diminished"}, MinMastery: 0.62},
			{Items: []string{"augmented"}, MinMastery: 0.65},
			{Items: []string{"dom7", "maj7"}, MinMastery: 0.65},
			{Items: []string{"min7"}, MinMastery: 0.68},
			{Items: []string{"major_inv1", "minor_inv1"}, MinMastery: 0.68},
			{Items: []string{"major_inv2", "minor_inv2"}, MinMastery: 0.70},
		},
		MinAnswers: DefaultMinAnswers,
	}
	c.index()
	return c
}

var chordItems = []Item{
	{
		ID: "major", Name: "Major", Short: "maj", Semitones: []int{0, 4, 7}, Color: "#2ecc71",
		Character: "Bright, happy, stable — the foundation of Western music",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Let It Be — Beatles", Hint: "C major opens each verse; settled, bright quality"},
			{Title: "Here Comes the Sun — Beatles", Hint: "D major throughout — open and joyful"},
			{Title: "Any I chord in a major key", Hint: "the \"home base\" — fully at rest"},
		}},
	},
	{
		ID: "minor", Name: "Minor", Short: "min", Semitones: []int{0, 3, 7}, Color: "#3498db",
		Character: "Dark, melancholic, stable — same 5th as major, but flattened 3rd",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Stairway to Heaven — Led Zeppelin", Hint: "opens on A minor — introspective, dark"},
			{Title: "Nothing Else Matters — Metallica", Hint: "E minor opening — heavy, serious"},
			{Title: "Moonlight Sonata — Beethoven", Hint: "C# minor throughout — deeply melancholic"},
		}},
	},
	{
		ID: "diminished", Name: "Diminished", Short: "dim", Semitones: []int{0, 3, 6}, Color: "#e74c3c",
		Character: "Tense, unstable, dark — two minor 3rds stacked, the tritone inside creates maximum tension",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Für Elise — Beethoven", Hint: "B diminished chord appears prominently in the A section"},
			{Title: "Classic horror film scores", Hint: "the archetypal \"spooky\" chord"},
			{Title: "The vii° chord in any major key", Hint: "urgently wants to resolve home"},
		}},
	},
	{
		ID: "augmented", Name: "Augmented", Short: "aug", Semitones: []int{0, 4, 8}, Color: "#e67e22",
		Character: "Eerie, unresolved, dreamy — major triad with a raised 5th; symmetrical and unstable",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Oh! You Pretty Things — David Bowie", Hint: "augmented chord is the distinctive signature sound"},
			{Title: "When I'm Sixty-Four — Beatles", Hint: "augmented chord colors the intro"},
			{Title: "Cry Me a River — Julie London", Hint: "creates that yearning, unresolved feeling"},
		}},
	},
	{
		ID: "dom7", Name: "Dominant 7th", Short: "dom7", Semitones: []int{0, 4, 7, 10}, Color: "#f39c12",
		Character: "Tense, bluesy — major triad + minor 7th; contains a tritone that pulls strongly toward resolution",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Virtually every blues song", Hint: "I7–IV7–V7 is the foundation of the blues idiom"},
			{Title: "Johnny B. Goode — Chuck Berry", Hint: "the opening G7 riff defines rock and roll"},
			{Title: "A Hard Day's Night — Beatles", Hint: "that famous opening chord is a dominant 7th variant"},
		}},
	},
	{
		ID: "maj7", Name: "Major 7th", Short: "maj7", Semitones: []int{0, 4, 7, 11}, Color: "#9b59b6",
		Character: "Lush, dreamy, sophisticated — major triad + major 7th; consonant yet complex",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Misty — Erroll Garner", Hint: "Fmaj7 opens the iconic jazz melody"},
			{Title: "Don't Know Why — Norah Jones", Hint: "maj7 chords throughout; warm and intimate"},
			{Title: "Bali Ha'i — South Pacific", Hint: "the lush maj7 opening sets the dreamy tone"},
		}},
	},
	{
		ID: "min7", Name: "Minor 7th", Short: "min7", Semitones: []int{0, 3, 7, 10}, Color: "#1abc9c",
		Character: "Mellow, cool, jazzy — minor triad + minor 7th; less tense than dominant 7th",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "So What — Miles Davis", Hint: "the entire head is two min7 chords"},
			{Title: "Superstition — Stevie Wonder", Hint: "Eb minor 7th groove drives the whole song"},
			{Title: "A Whiter Shade of Pale — Procol Harum", Hint: "Am7 colors the famous descending bass line"},
		}},
	},
	{
		ID: "major_inv1", Name: "Major (1st inv)", Short: "maj¹", Semitones: []int{0, 3, 8}, Color: "#27ae60",
		Character: "Bright major quality, but lighter — the 3rd in the bass creates smooth upward voice leading",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Something — Beatles", Hint: "C/E (I6) gives the verse its smooth, lifted quality"},
			{Title: "Let It Be — Beatles", Hint: "C/E passing chord in the verse"},
			{Title: "Ode to Joy — Beethoven", Hint: "I6 chords create smooth voice leading throughout"},
		}},
	},
	{
		ID: "major_inv2", Name: "Major (2nd inv)", Short: "maj²", Semitones: []int{0, 5, 9}, Color: "#1e8449",
		Character: "Bright but unstable — the 5th in the bass creates a floating, suspended tension",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Cadential 6/4 in classical music", Hint: "the I6/4 just before a V chord"},
			{Title: "Don't Stop Believin' — Journey", Hint: "the piano intro includes this unstable color"},
			{Title: "Wedding marches and hymns", Hint: "often appears at melodic climaxes before a cadence"},
		}},
	},
	{
		ID: "minor_inv1", Name: "Minor (1st inv)", Short: "min¹", Semitones: []int{0, 4, 9}, Color: "#2980b9",
		Character: "Dark minor quality, but lighter in the bass — bittersweet and mobile",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Stairway to Heaven — Led Zeppelin", Hint: "Am/C in the iconic descending intro bass line"},
			{Title: "Scarborough Fair — Simon & Garfunkel", Hint: "i6 chords shape the descending bass"},
			{Title: "The Sound of Silence — Simon & Garfunkel", Hint: "minor 1st inversions anchor the falling passages"},
		}},
	},
	{
		ID: "minor_inv2", Name: "Minor (2nd inv)", Short: "min²", Semitones: []int{0, 5, 8}, Color: "#1a5276",
		Character: "Minor quality with a floating, unstable bass — ambiguous, suspended tension",
		Songs: map[Variant][]Song{VariantBlock: {
			{Title: "Ave Maria — Schubert", Hint: "minor 2nd inversions float under the melody"},
			{Title: "Minor cadential 6/4", Hint: "before cadential moments in minor keys"},
			{Title: "Nocturnes — Chopin", Hint: "i6/4 inversions create yearning, unresolved passages"},
		}},
	},
}
