package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/repository/sqlite"
	"github.com/abeage1/earwise/internal/testutil"
)

func TestStateRepository_DeckRoundTrip(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	state := models.DeckState{
		SchemaVersion: models.DeckSchemaVersion,
		Cards: map[string]models.CardState{
			"P5:ascending": {EaseFactor: 2.6, Mastery: 0.42, TotalAnswers: 7},
		},
	}
	require.NoError(t, repo.SaveDeck(ctx, catalog.DomainIntervals, state))

	loaded, err := repo.LoadDeck(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state.SchemaVersion, loaded.SchemaVersion)
	assert.Equal(t, state.Cards["P5:ascending"].Mastery, loaded.Cards["P5:ascending"].Mastery)
}

func TestStateRepository_LoadAbsent(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	loaded, err := repo.LoadDeck(ctx, catalog.DomainChords)
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, loaded)

	settings, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestStateRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	require.NoError(t, repo.SaveProgression(ctx, catalog.DomainIntervals, models.ProgressionState{
		SchemaVersion: models.ProgressionSchemaVersion, UnlockedTier: 1,
	}))
	require.NoError(t, repo.SaveProgression(ctx, catalog.DomainIntervals, models.ProgressionState{
		SchemaVersion: models.ProgressionSchemaVersion, UnlockedTier: 3,
	}))

	loaded, err := repo.LoadProgression(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.UnlockedTier, "the newest snapshot wins")
}

func TestStateRepository_DomainsAreIndependent(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	require.NoError(t, repo.SaveProgression(ctx, catalog.DomainIntervals, models.ProgressionState{UnlockedTier: 2}))

	loaded, err := repo.LoadProgression(ctx, catalog.DomainChords)
	require.NoError(t, err)
	assert.Nil(t, loaded, "another domain's snapshot does not leak")
}

func TestStateRepository_SettingsAndStats(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	settings := models.DefaultSettings()
	settings.SessionSize = 10
	require.NoError(t, repo.SaveSettings(ctx, settings))

	stats := models.Stats{TotalSessions: 4, CurrentStreak: 2, LastSessionDate: "2026-03-01"}
	require.NoError(t, repo.SaveStats(ctx, stats))

	loadedSettings, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, loadedSettings.SessionSize)

	loadedStats, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, loadedStats.TotalSessions)
	assert.Equal(t, "2026-03-01", loadedStats.LastSessionDate)
}

func TestStateRepository_MalformedSnapshotIsAnError(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	_, err := database.ExecContext(ctx,
		`INSERT INTO snapshots (kind, domain, payload) VALUES ('deck', 'intervals', 'not json')`)
	require.NoError(t, err)

	_, err = repo.LoadDeck(ctx, catalog.DomainIntervals)
	assert.Error(t, err, "corruption surfaces so the caller can fall back to defaults")
}

func TestStateRepository_Clear(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := sqlite.NewStateRepository(database.DB)

	require.NoError(t, repo.SaveSettings(ctx, models.DefaultSettings()))
	require.NoError(t, repo.SaveDeck(ctx, catalog.DomainIntervals, models.DeckState{
		SchemaVersion: models.DeckSchemaVersion,
		Cards:         map[string]models.CardState{},
	}))

	require.NoError(t, repo.Clear(ctx))

	settings, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)
	deck, err := repo.LoadDeck(ctx, catalog.DomainIntervals)
	require.NoError(t, err)
	assert.Nil(t, deck)
}
