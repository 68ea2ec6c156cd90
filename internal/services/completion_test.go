package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/config"
)

func groqConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider: config.ProviderGroq,
		Model:    "llama-3.3-70b-versatile",
		APIKey:   "gsk-test",
		BaseURL:  baseURL,
		Timeout:  5 * time.Second,
	}
}

func TestGroqComplete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"JD Match\":\"60%\"}"}}]}`))
	}))
	defer srv.Close()

	client := NewGroqClient(groqConfig(srv.URL), nil)

	text, err := client.Complete(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"JD Match":"60%"}`, text)
	assert.Equal(t, "llama-3.3-70b-versatile", got["model"])
	assert.Equal(t, []any{map[string]any{"role": "user", "content": "the prompt"}}, got["messages"])
	assert.NotContains(t, got, "temperature")
	assert.NotContains(t, got, "max_tokens")
	assert.Equal(t, config.ProviderGroq, client.Provider())
}

func TestGroqCompleteStatusError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
	}))
	defer srv.Close()

	_, err := NewGroqClient(groqConfig(srv.URL), nil).Complete(context.Background(), "p")

	var apiErr *CompletionError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Invalid API Key")
	assert.Equal(t, 1, calls, "failures are not retried")
}

func TestGroqCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewGroqClient(groqConfig(srv.URL), nil).Complete(context.Background(), "p")

	assert.ErrorContains(t, err, "no choices")
}

func TestGroqCompleteHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewGroqClient(groqConfig(srv.URL), nil).Complete(ctx, "p")

	assert.Error(t, err)
}

func TestGeminiComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "the prompt")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"JD Match\":\"90%\"}"}]}}]}`))
	}))
	defer srv.Close()

	client, err := NewGeminiClient(context.Background(), config.LLMConfig{
		Provider: config.ProviderGemini,
		Model:    "gemini-2.5-flash",
		APIKey:   "gm-test",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	}, nil)
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"JD Match":"90%"}`, text)
	assert.Equal(t, "gemini-2.5-flash", client.Model())
}

func TestNewCompletionClient(t *testing.T) {
	client, err := NewCompletionClient(context.Background(), groqConfig("http://localhost"), nil)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderGroq, client.Provider())

	_, err = NewCompletionClient(context.Background(), config.LLMConfig{Provider: "openai"}, nil)
	assert.ErrorContains(t, err, "unknown provider")
}
