package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/catalog"
)

func TestParseDomain(t *testing.T) {
	for _, d := range catalog.Domains() {
		parsed, ok := catalog.ParseDomain(string(d))
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	_, ok := catalog.ParseDomain("melodies")
	assert.False(t, ok)
}

func TestConfigsAreConsistent(t *testing.T) {
	for _, domain := range catalog.Domains() {
		domain := domain
		t.Run(string(domain), func(t *testing.T) {
			cfg := catalog.ByDomain(domain)
			require.NotNil(t, cfg)
			assert.Equal(t, domain, cfg.Domain)
			assert.NotEmpty(t, cfg.Items)
			assert.NotEmpty(t, cfg.Tiers)
			assert.Contains(t, cfg.Variants, cfg.BaseVariant)
			assert.Equal(t, catalog.DefaultMinAnswers, cfg.MinAnswers)

			// Every tier member must exist in the catalog, and every item
			// must belong to exactly one tier.
			seen := map[string]bool{}
			for _, tier := range cfg.Tiers {
				assert.NotEmpty(t, tier.Items)
				assert.Greater(t, tier.MinMastery, 0.0)
				for _, id := range tier.Items {
					_, ok := cfg.Item(id)
					assert.True(t, ok, "tier references unknown item %s", id)
					assert.False(t, seen[id], "item %s appears in two tiers", id)
					seen[id] = true
				}
			}
			for _, item := range cfg.Items {
				assert.True(t, seen[item.ID], "item %s belongs to no tier", item.ID)
				assert.GreaterOrEqual(t, cfg.TierOf(item.ID), 0)
			}

			for _, step := range cfg.Ladder {
				assert.Contains(t, cfg.Variants, step.From)
				assert.Contains(t, cfg.Variants, step.To)
				assert.Greater(t, step.MinMastery, 0.0)
			}
		})
	}
}

func TestIntervalItems(t *testing.T) {
	cfg := catalog.Intervals()
	assert.Len(t, cfg.Items, 12, "full chromatic set from m2 to the octave")

	for _, item := range cfg.Items {
		require.Len(t, item.Semitones, 1)
		assert.GreaterOrEqual(t, item.Semitones[0], 1)
		assert.LessOrEqual(t, item.Semitones[0], 12)
		assert.NotEmpty(t, item.Songs[catalog.VariantAscending], "%s needs ascending song hints", item.ID)
	}
}

func TestProgressionQualities(t *testing.T) {
	cfg := catalog.Progressions()
	for _, item := range cfg.Items {
		require.NotEmpty(t, item.Steps, "%s needs chord steps", item.ID)
		for _, step := range item.Steps {
			_, ok := catalog.Qualities[step.Quality]
			assert.True(t, ok, "%s uses unknown quality %s", item.ID, step.Quality)
		}
	}
}

func TestChordItems(t *testing.T) {
	cfg := catalog.Chords()
	for _, item := range cfg.Items {
		assert.NotEmpty(t, item.Semitones, "%s needs a pitch pattern", item.ID)
	}
}
