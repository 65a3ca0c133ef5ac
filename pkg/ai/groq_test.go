package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/sales-copilot/pkg/config"
)

func completionBody(content string) map[string]interface{} {
	choices := []map[string]interface{}{}
	if content != "" {
		choices = append(choices, map[string]interface{}{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": content},
		})
	}
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   GroqModel,
		"choices": choices,
	}
}

func newTestGroq(t *testing.T, handler http.HandlerFunc) (*GroqClient, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL + "/openai/v1"})
	return client, &calls
}

func TestComplete_Success(t *testing.T) {
	client, calls := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, GroqModel, payload.Model)
		assert.Equal(t, 0.7, payload.Temperature)
		assert.Equal(t, 1000, payload.MaxTokens)
		require.Len(t, payload.Messages, 1)
		assert.Equal(t, "user", payload.Messages[0].Role)
		assert.Equal(t, "review this", payload.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("Good job."))
	})

	got, err := client.Complete(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "Good job.", got)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestComplete_APIErrorIsCallErrorWithoutRetry(t *testing.T) {
	client, calls := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"over capacity","type":"server_error"}}`))
	})

	_, err := client.Complete(context.Background(), "p")
	require.Error(t, err)

	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, http.StatusServiceUnavailable, callErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestComplete_EmptyChoices(t *testing.T) {
	client, _ := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(""))
	})

	_, err := client.Complete(context.Background(), "p")

	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestComplete_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := ts.URL
	ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: base})
	_, err := client.Complete(context.Background(), "p")

	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.Zero(t, callErr.StatusCode)
}

func TestComplete_CancelledContextIsNotCallError(t *testing.T) {
	client, _ := newTestGroq(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionBody("late"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var callErr *CallError
	assert.False(t, errors.As(err, &callErr))
}
