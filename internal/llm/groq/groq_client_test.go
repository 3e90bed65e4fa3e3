package groq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superclaims/internal/config"
	"superclaims/internal/llm"
	"superclaims/internal/llm/groq"
)

func newTestClient(endpoint string) *groq.Client {
	return groq.NewClientWithEndpoint(&config.LLMProviderConfig{
		Provider:    "groq",
		APIKey:      "test-groq-key",
		MaxRetries:  1,
		TimeoutSecs: 30,
	}, endpoint)
}

func successResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

func TestGroqClient_Call(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-groq-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req["model"])
		assert.NotContains(t, req, "response_format")

		fmt.Fprint(w, successResponse(`{"type": "discharge_summary"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	out, err := client.Call(context.Background(), "classify this PDF")

	require.NoError(t, err)
	assert.Equal(t, "discharge_summary", out["type"])
}

func TestGroqClient_Call_RetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, successResponse(`{"ok": true}`))
	}))
	defer server.Close()

	client := groq.NewClientWithEndpoint(&config.LLMProviderConfig{
		Provider:    "groq",
		APIKey:      "test-groq-key",
		MaxRetries:  2,
		TimeoutSecs: 30,
	}, server.URL)
	out, err := client.Call(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, 2, calls)
}

func TestGroqClient_Call_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Call(context.Background(), "prompt")

	require.Error(t, err)
	var rlErr *llm.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "groq", rlErr.Provider)
	// Missing Retry-After falls back to the 60s default.
	assert.Equal(t, float64(60), rlErr.RetryAfter.Seconds())
}

func TestGroqFactory_RequiresAPIKey(t *testing.T) {
	_, err := groq.Factory(&config.LLMProviderConfig{Provider: "groq"})
	require.Error(t, err)
}
