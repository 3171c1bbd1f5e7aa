package catalog

// Progressions returns the chord-progression domain: eight four-chord
// progressions, most aurally distinct pairs first. Single "listen" variant.
func Progressions() *Config {
	c := &Config{
		Domain:      DomainProgressions,
		Items:       progressionItems,
		Variants:    []Variant{VariantListen},
		BaseVariant: VariantListen,
		Tiers: []Tier{
			{Items: []string{"pop", "jazz"}, MinMastery: 0.62},
			{Items: []string{"fifties", "folk"}, MinMastery: 0.62},
			{Items: []string{"minorpop", "andalusian"}, MinMastery: 0.65},
			{Items: []string{"rock", "blues"}, MinMastery: 0.65},
		},
		MinAnswers: DefaultMinAnswers,
	}
	c.index()
	return c
}

var progressionItems = []Item{
	{
		ID: "pop", Name: "Pop",
		Character: "Bright and anthemic — the most-used progression in modern pop music.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "major"},  // I
			{RootOffset: 7, Quality: "major"},  // V
			{RootOffset: 9, Quality: "minor"},  // vi
			{RootOffset: 5, Quality: "major"},  // IV
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Let It Be — Beatles", Hint: "C–G–Am–F"},
			{Title: "No Woman No Cry — Bob Marley", Hint: "G–D–Em–C"},
			{Title: "Don't Stop Believin' — Journey", Hint: "E–B–C#m–A"},
		}},
	},
	{
		ID: "jazz", Name: "Jazz",
		Character: "Sophisticated and resolving — minor and dominant 7th chords that pull toward home.",
		Steps: []ChordStep{
			{RootOffset: 2, Quality: "min7"},  // ii7
			{RootOffset: 7, Quality: "dom7"},  // V7
			{RootOffset: 0, Quality: "maj7"},  // Imaj7
			{RootOffset: 9, Quality: "min7"},  // vi7 (turnaround)
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Autumn Leaves", Hint: "Gm7–C7–Fmaj7 at the core of every chorus"},
			{Title: "Fly Me to the Moon", Hint: "Am7–Dm7–G7–Cmaj7"},
			{Title: "Misty", Hint: "ii–V–I colors every phrase"},
		}},
	},
	{
		ID: "fifties", Name: "50s",
		Character: "Nostalgic and romantic — ends on the V chord, leaving a yearning feeling that wants to loop back.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "major"},  // I
			{RootOffset: 9, Quality: "minor"},  // vi
			{RootOffset: 5, Quality: "major"},  // IV
			{RootOffset: 7, Quality: "major"},  // V
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Stand By Me — Ben E. King", Hint: "C–Am–F–G"},
			{Title: "Heart and Soul — Hoagy Carmichael", Hint: "C–Am–F–G"},
			{Title: "Every Breath You Take — The Police", Hint: "Ab–Fm–Db–Eb"},
		}},
	},
	{
		ID: "folk", Name: "Folk",
		Character: "Simple, grounded and fully resolved — all major chords, settles completely back home.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "major"},  // I
			{RootOffset: 5, Quality: "major"},  // IV
			{RootOffset: 7, Quality: "major"},  // V
			{RootOffset: 0, Quality: "major"},  // I
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "La Bamba — Ritchie Valens", Hint: "C–F–G–C, loops endlessly"},
			{Title: "Twist and Shout — Beatles", Hint: "D–G–A–D"},
			{Title: "Wild Thing — Troggs", Hint: "A–D–E–D"},
		}},
	},
	{
		ID: "minorpop", Name: "Minor Pop",
		Character: "Melancholic and familiar — the pop chords, but opening on the minor shifts the emotional center.",
		Steps: []ChordStep{
			{RootOffset: 9, Quality: "minor"},  // vi (heard as i)
			{RootOffset: 5, Quality: "major"},  // IV
			{RootOffset: 0, Quality: "major"},  // I
			{RootOffset: 7, Quality: "major"},  // V
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Apologize — OneRepublic", Hint: "Am–F–C–G"},
			{Title: "Somebody That I Used to Know — Gotye", Hint: "Dm–Bb–F–C"},
			{Title: "Wicked Game — Chris Isaak", Hint: "Bm–A–E–A"},
		}},
	},
	{
		ID: "andalusian", Name: "Andalusian",
		Character: "Dark and ancient — a falling bass line; the final major chord creates flamenco-like tension.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "minor"},   // i
			{RootOffset: -2, Quality: "major"},  // VII
			{RootOffset: -4, Quality: "major"},  // VI
			{RootOffset: -5, Quality: "major"},  // V
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Hit the Road Jack — Ray Charles", Hint: "Am–G–F–E, the descending bass is unmistakable"},
			{Title: "Stairway to Heaven (intro) — Led Zeppelin", Hint: "Am–G–F–E before the folk guitar"},
			{Title: "White Rabbit — Jefferson Airplane", Hint: "descending bass, relentless tension"},
		}},
	},
	{
		ID: "rock", Name: "Rock",
		Character: "Rebellious and driving — the flat VII chord gives it that swagger.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "major"},   // I
			{RootOffset: 10, Quality: "major"},  // bVII
			{RootOffset: 5, Quality: "major"},   // IV
			{RootOffset: 0, Quality: "major"},   // I
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Sweet Home Alabama — Lynyrd Skynyrd", Hint: "D–C–G–D, the bVII is G"},
			{Title: "La Grange — ZZ Top", Hint: "A–G–D–A boogie riff"},
			{Title: "Sympathy for the Devil — Rolling Stones", Hint: "E–D–A vamp"},
		}},
	},
	{
		ID: "blues", Name: "Blues",
		Character: "Gritty and soulful — every chord is a dominant 7th, so nothing fully resolves.",
		Steps: []ChordStep{
			{RootOffset: 0, Quality: "dom7"},  // I7
			{RootOffset: 5, Quality: "dom7"},  // IV7
			{RootOffset: 0, Quality: "dom7"},  // I7
			{RootOffset: 7, Quality: "dom7"},  // V7
		},
		Songs: map[Variant][]Song{VariantListen: {
			{Title: "Johnny B. Goode — Chuck Berry", Hint: "G7–C7–G7–D7, all dominant 7ths"},
			{Title: "Hound Dog — Elvis Presley", Hint: "every chord is a 7th"},
			{Title: "Pride and Joy — Stevie Ray Vaughan", Hint: "E7–A7–E7–B7"},
		}},
	},
}
