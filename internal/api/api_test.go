package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeage1/earwise/internal/api"
	"github.com/abeage1/earwise/internal/audio"
	"github.com/abeage1/earwise/internal/repository/sqlite"
	"github.com/abeage1/earwise/internal/services"
	"github.com/abeage1/earwise/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	database := testutil.NewTestDB(t)
	practice := services.NewPracticeService(
		sqlite.NewStateRepository(database.DB),
		sqlite.NewSessionLogRepository(database.DB),
		audio.InstantPlayer{},
	)
	srv := &api.Server{Practice: practice, DB: database}

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	resp, err := http.Post(url, "application/json", reader)
	require.NoError(t, err)
	return resp
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStartSession_UnknownDomain(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/domains/melodies/sessions", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestSessionFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/domains/intervals/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var question struct {
		Domain  string `json:"domain"`
		Key     string `json:"key"`
		Total   int    `json:"total"`
		Choices []struct {
			ID string `json:"id"`
		} `json:"choices"`
	}
	decodeBody(t, resp, &question)
	assert.Equal(t, "intervals", question.Domain)
	assert.Greater(t, question.Total, 0)
	assert.Len(t, question.Choices, 2)

	// Answering before playback is ignored, not an error.
	resp = post(t, ts.URL+"/api/session/answers", map[string]string{"item_id": "P5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var early struct {
		Accepted bool `json:"accepted"`
	}
	decodeBody(t, resp, &early)
	assert.False(t, early.Accepted)

	resp = post(t, ts.URL+"/api/session/play", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, ts.URL+"/api/session/answers", map[string]string{"item_id": "P5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var answer struct {
		Accepted      bool   `json:"accepted"`
		CorrectItemID string `json:"correct_item_id"`
	}
	decodeBody(t, resp, &answer)
	assert.True(t, answer.Accepted)
	assert.NotEmpty(t, answer.CorrectItemID)

	resp = post(t, ts.URL+"/api/session/end", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestSecondSessionConflicts(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/domains/intervals/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, ts.URL+"/api/domains/chords/sessions", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestSettingsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/settings")
	require.NoError(t, err)
	var settings map[string]any
	decodeBody(t, resp, &settings)
	assert.EqualValues(t, 20, settings["session_size"])

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/settings",
		bytes.NewReader([]byte(`{"session_size":10,"auto_play":true,"auto_advance":true,"show_songs_on":"always"}`)))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/settings")
	require.NoError(t, err)
	decodeBody(t, resp, &settings)
	assert.EqualValues(t, 10, settings["session_size"])
}

func TestInvalidSettingsRejected(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/settings",
		bytes.NewReader([]byte(`{"session_size":0,"show_songs_on":"wrong"}`)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestExportImportOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/export")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	resp, err = http.Post(ts.URL+"/api/import", "application/json", bytes.NewReader(exported))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, ts.URL+"/api/import", map[string]any{"version": 99})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_IMPORT", body.Error.Code)
}

func TestProgressAndCards(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/domains/intervals/progress")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress struct {
		UnlockedTier int `json:"unlocked_tier"`
		Tiers        []struct {
			Unlocked bool `json:"unlocked"`
		} `json:"tiers"`
	}
	decodeBody(t, resp, &progress)
	assert.Equal(t, 0, progress.UnlockedTier)
	require.NotEmpty(t, progress.Tiers)
	assert.True(t, progress.Tiers[0].Unlocked)

	resp = post(t, ts.URL+"/api/domains/intervals/cards/TT:ascending/unlock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var changed struct {
		Changed bool `json:"changed"`
	}
	decodeBody(t, resp, &changed)
	assert.True(t, changed.Changed)

	resp = post(t, ts.URL+"/api/domains/intervals/cards/ghost:ascending/unlock", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestResetOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/reset", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
