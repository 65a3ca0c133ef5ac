package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/sales-copilot/internal/domain/entities"
	"github.com/johnquangdev/sales-copilot/internal/infrastructure/supabase"
	"github.com/johnquangdev/sales-copilot/pkg/config"
)

func newSupabaseServer(t *testing.T, handler http.HandlerFunc) *config.SupabaseConfig {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return &config.SupabaseConfig{URL: ts.URL, Key: "service-key"}
}

func TestSupabaseTranscriptRepository_Create(t *testing.T) {
	var body map[string]any
	cfg := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/transcripts", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":42,"company_name":"Acme","attendees":"","date":"","transcript":"Hi",
			"analysis":{"summary":"Good job.","insights":[],"status":"success"},
			"created_at":"2024-01-02T10:00:00.12+00:00"}]`))
	})
	client, err := supabase.NewClient(cfg)
	require.NoError(t, err)
	repo := NewSupabaseTranscriptRepository(client)

	record := entities.NewTranscriptRecord("Acme", "", "", "Hi", entities.NewSuccessAnalysis("Good job."))
	id, err := repo.Create(context.Background(), record)
	require.NoError(t, err)

	assert.Equal(t, entities.RecordID("42"), id)
	assert.Equal(t, "2024-01-02T10:00:00.120000Z", record.CreatedAt)

	assert.Equal(t, "Acme", body["company_name"])
	assert.Equal(t, "", body["attendees"])
	assert.Equal(t, "Hi", body["transcript"])
	assert.NotContains(t, body, "id")
	assert.NotContains(t, body, "created_at")
	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "success", analysis["status"])
	assert.Equal(t, []any{}, analysis["insights"])
}

func TestSupabaseTranscriptRepository_CreateNoRow(t *testing.T) {
	cfg := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	})
	client, err := supabase.NewClient(cfg)
	require.NoError(t, err)

	id, err := NewSupabaseTranscriptRepository(client).Create(context.Background(),
		entities.NewTranscriptRecord("", "", "", "x", entities.NewSuccessAnalysis("ok")))
	require.NoError(t, err)
	assert.True(t, id.IsZero())
}

func TestSupabaseIcebreakerRepository_CreateFailure(t *testing.T) {
	cfg := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"XX000","message":"insert failed"}`))
	})
	client, err := supabase.NewClient(cfg)
	require.NoError(t, err)

	_, err = NewSupabaseIcebreakerRepository(client).Create(context.Background(),
		entities.NewIcebreakerRecord("jane", "CTO", "bio", "", entities.NewSuccessAnalysis("ok")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert icebreakers")
}

func TestSupabaseIcebreakerRepository_ListRecent(t *testing.T) {
	cfg := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/icebreakers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.True(t, strings.HasPrefix(q.Get("order"), "created_at.desc"), q.Get("order"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"b","username":"jane","role":"CTO","linkedin_bio":"bio","deck_url":"",
			 "analysis":{"summary":"s","insights":[],"status":"success"},"created_at":"2024-01-03T00:00:00+00:00"},
			{"id":"a","username":"joe","role":"VP","linkedin_bio":"bio","deck_url":null,
			 "analysis":{"summary":"e","insights":["AI configuration needed"],"status":"error"},"created_at":"2024-01-02T00:00:00+00:00"}
		]`))
	})
	client, err := supabase.NewClient(cfg)
	require.NoError(t, err)

	records, err := NewSupabaseIcebreakerRepository(client).ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, entities.RecordID("b"), records[0].ID)
	assert.Equal(t, "2024-01-03T00:00:00.000000Z", records[0].CreatedAt)
	assert.Equal(t, "", records[1].DeckURL)
	assert.Equal(t, entities.AnalysisStatusError, records[1].Analysis.Status)
}

func TestSupabaseRepositories_CancelledContext(t *testing.T) {
	cfg := newSupabaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	client, err := supabase.NewClient(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewSupabaseTranscriptRepository(client).ListRecent(ctx, 20)
	assert.ErrorIs(t, err, context.Canceled)
}
