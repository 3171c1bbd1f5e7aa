package catalog

// Intervals returns the interval-recognition domain: twelve intervals across
// three directions, introduced ascending-first in seven tiers, with
// descending and harmonic variants unlocked per item via the ladder.
func Intervals() *Config {
	c := &Config{
		Domain:      DomainIntervals,
		Items:       intervalItems,
		Variants:    []Variant{VariantAscending, VariantDescending, VariantHarmonic},
		BaseVariant: VariantAscending,
		Tiers: []Tier{
			{Items: []string{"P8", "P5"}, MinMastery: 0.60},
			{Items: []string{"P4"}, MinMastery: 0.60},
			{Items: []string{"M2", "m2"}, MinMastery: 0.62},
			{Items: []string{"M3", "m3"}, MinMastery: 0.62},
			{Items: []string{"TT"}, MinMastery: 0.65},
			{Items: []string{"M6", "m6"}, MinMastery: 0.65},
			{Items: []string{"M7", "m7"}, MinMastery: 0.65},
		},
		Ladder: []LadderStep{
			{From: VariantAscending, To: VariantDescending, MinMastery: 0.70},
			{From: VariantDescending, To: VariantHarmonic, MinMastery: 0.75},
		},
		MinAnswers: DefaultMinAnswers,
	}
	c.index()
	return c
}

var intervalItems = []Item{
	{
		ID: "m2", Name: "Minor 2nd", Short: "m2", Semitones: []int{1}, Color: "#e74c3c",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Jaws Theme", Hint: "da-DUM opening motif"},
				{Title: "Pink Panther Theme", Hint: "first two notes"},
			},
			VariantDescending: {
				{Title: "Joy to the World", Hint: "opening descent (Joy TO)"},
				{Title: "Für Elise", Hint: "E-D# opening turn"},
			},
			VariantHarmonic: {
				{Title: "Cluster / Dissonance", Hint: "very tense sound, nearly the same pitch"},
			},
		},
	},
	{
		ID: "M2", Name: "Major 2nd", Short: "M2", Semitones: []int{2}, Color: "#e67e22",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Happy Birthday", Hint: "\"Hap-py\" — first two notes"},
				{Title: "Mary Had a Little Lamb", Hint: "first two notes (B-A)"},
			},
			VariantDescending: {
				{Title: "Mary Had a Little Lamb", Hint: "first two notes descending"},
				{Title: "Three Blind Mice", Hint: "first two notes"},
			},
			VariantHarmonic: {
				{Title: "Open 2nd", Hint: "slightly dissonant, gentle tension"},
			},
		},
	},
	{
		ID: "m3", Name: "Minor 3rd", Short: "m3", Semitones: []int{3}, Color: "#f1c40f",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Smoke on the Water", Hint: "opening riff (G-Bb)"},
				{Title: "Greensleeves", Hint: "first two notes (A-C)"},
			},
			VariantDescending: {
				{Title: "Hey Jude", Hint: "\"Hey JUDE\" — opening"},
				{Title: "Brahms Lullaby", Hint: "first two notes"},
			},
			VariantHarmonic: {
				{Title: "Minor chord inner interval", Hint: "slightly dark, nostalgic"},
			},
		},
	},
	{
		ID: "M3", Name: "Major 3rd", Short: "M3", Semitones: []int{4}, Color: "#2ecc71",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "When the Saints Go Marching In", Hint: "\"Oh WHEN the\" — opening"},
				{Title: "Oh Christmas Tree", Hint: "first two notes"},
			},
			VariantDescending: {
				{Title: "Swing Low, Sweet Chariot", Hint: "opening descent"},
				{Title: "Loch Lomond", Hint: "\"You'll take the HIGH road\""},
			},
			VariantHarmonic: {
				{Title: "Major chord inner interval", Hint: "bright, happy sound"},
			},
		},
	},
	{
		ID: "P4", Name: "Perfect 4th", Short: "P4", Semitones: []int{5}, Color: "#1abc9c",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Here Comes the Bride", Hint: "\"HERE comes the\" — opening"},
				{Title: "Amazing Grace", Hint: "\"A-MAZING\" — first two notes"},
			},
			VariantDescending: {
				{Title: "Eine Kleine Nachtmusik", Hint: "Mozart — opening figure"},
				{Title: "Born to Be Wild", Hint: "opening riff"},
			},
			VariantHarmonic: {
				{Title: "Open 4th", Hint: "consonant but slightly suspended-sounding"},
			},
		},
	},
	{
		ID: "TT", Name: "Tritone", Short: "TT", Semitones: []int{6}, Color: "#9b59b6",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Maria (West Side Story)", Hint: "\"Ma-RI-a\" — first two syllables"},
				{Title: "The Simpsons Theme", Hint: "opening two notes"},
			},
			VariantDescending: {
				{Title: "The Simpsons Theme", Hint: "also works descending"},
				{Title: "YYZ (Rush)", Hint: "intro in Morse code rhythm"},
			},
			VariantHarmonic: {
				{Title: "Diabolus in Musica", Hint: "maximally dissonant — the \"devil's interval\""},
			},
		},
	},
	{
		ID: "P5", Name: "Perfect 5th", Short: "P5", Semitones: []int{7}, Color: "#3498db",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Star Wars Theme", Hint: "opening two notes"},
				{Title: "Twinkle Twinkle Little Star", Hint: "first two notes (C-G)"},
			},
			VariantDescending: {
				{Title: "The Flintstones", Hint: "first two notes"},
				{Title: "Feelings", Hint: "opening descending leap"},
			},
			VariantHarmonic: {
				{Title: "Power chord", Hint: "very open, consonant, \"strong\" sound"},
			},
		},
	},
	{
		ID: "m6", Name: "Minor 6th", Short: "m6", Semitones: []int{8}, Color: "#e74c3c",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "The Entertainer (Joplin)", Hint: "repeated m6 leaps in melody"},
				{Title: "In My Life (Beatles)", Hint: "opening interval"},
			},
			VariantDescending: {
				{Title: "Love Story Theme", Hint: "Francis Lai — opening"},
				{Title: "Where Do I Begin", Hint: "opening descent"},
			},
			VariantHarmonic: {
				{Title: "Minor 6th", Hint: "lush, somewhat melancholic"},
			},
		},
	},
	{
		ID: "M6", Name: "Major 6th", Short: "M6", Semitones: []int{9}, Color: "#e67e22",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "My Bonnie Lies Over the Ocean", Hint: "\"My BON-nie\" — opening leap"},
				{Title: "NBC Chime", Hint: "the classic three-note TV jingle"},
			},
			VariantDescending: {
				{Title: "Nobody Knows the Trouble I've Seen", Hint: "opening descent"},
				{Title: "Sweet Caroline", Hint: "\"sweet\" to \"Car-\" in the chorus"},
			},
			VariantHarmonic: {
				{Title: "Major 6th", Hint: "bright, sweet, open sound"},
			},
		},
	},
	{
		ID: "m7", Name: "Minor 7th", Short: "m7", Semitones: []int{10}, Color: "#f1c40f",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Somewhere (West Side Story)", Hint: "\"There's a PLACE for us\" — \"there's a\""},
				{Title: "Star Trek Theme (TV)", Hint: "opening interval"},
			},
			VariantDescending: {
				{Title: "White Christmas", Hint: "\"I'm DREAM-ing of a\" opening"},
				{Title: "Somewhere (West Side Story)", Hint: "descending variation"},
			},
			VariantHarmonic: {
				{Title: "Dominant 7th inner interval", Hint: "bluesy, tense — wants to resolve"},
			},
		},
	},
	{
		ID: "M7", Name: "Major 7th", Short: "M7", Semitones: []int{11}, Color: "#2ecc71",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Take On Me (A-ha)", Hint: "opening melody jump"},
				{Title: "Bali Ha'i (South Pacific)", Hint: "opening leap"},
			},
			VariantDescending: {
				{Title: "I Love You (Cole Porter)", Hint: "opening descent"},
				{Title: "Half of My Heart (John Mayer)", Hint: "chorus opening"},
			},
			VariantHarmonic: {
				{Title: "Major 7th", Hint: "very tense, yearning — wants to resolve"},
			},
		},
	},
	{
		ID: "P8", Name: "Octave", Short: "P8", Semitones: []int{12}, Color: "#3498db",
		Songs: map[Variant][]Song{
			VariantAscending: {
				{Title: "Somewhere Over the Rainbow", Hint: "\"Some-WHERE\" — opening"},
				{Title: "Singin' in the Rain", Hint: "\"Sing-IN'\" — opening"},
			},
			VariantDescending: {
				{Title: "Willow Weep for Me", Hint: "descending octave opening"},
				{Title: "Fool on the Hill (Beatles)", Hint: "descending octave"},
			},
			VariantHarmonic: {
				{Title: "Octave unison", Hint: "perfectly consonant — same note, doubled"},
			},
		},
	},
}
