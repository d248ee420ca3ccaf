package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-agent/internal/llm"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Engine, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	e := New("test-key", "llama-3.3-70b-versatile", 0.1).WithBaseURL(srv.URL)
	return e, srv
}

func TestGenerate(t *testing.T) {
	var got chatRequest
	e, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"name":"Kazan"}`}},
			},
		})
	})

	text, err := e.Generate(context.Background(), llm.Request{Prompt: "analyse this"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Kazan"}`, text)
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "analyse this", got.Messages[0].Content)
}

func TestGenerateRateLimitBodySurvives(t *testing.T) {
	e, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached for model. Please retry in 12s."}}`))
	})

	_, err := e.Generate(context.Background(), llm.Request{Prompt: "p"})
	require.Error(t, err)
	assert.True(t, llm.IsRateLimit(err))
	assert.Contains(t, err.Error(), "retry in 12s")
}

func TestGenerateEmptyChoices(t *testing.T) {
	e, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := e.Generate(context.Background(), llm.Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGenerateAPIErrorField(t *testing.T) {
	e, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error":{"message":"model decommissioned","type":"invalid_request_error"}}`))
	})

	_, err := e.Generate(context.Background(), llm.Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model decommissioned")
}

func TestGenerateMissingKey(t *testing.T) {
	e := New("", "m", 0)
	_, err := e.Generate(context.Background(), llm.Request{Prompt: "p"})
	require.Error(t, err)
}
