package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
	"github.com/mealsmith/backend/internal/service"
)

func newLLMService(t *testing.T, handler http.HandlerFunc) *service.LLMService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Groq.APIURL = srv.URL
	cfg.Groq.APIKey = "test-key"
	cfg.Groq.Model = "test-model"
	cfg.Groq.Timeout = 5 * time.Second

	return service.NewLLMService(cfg, zap.NewNop())
}

func TestComplete_ReturnsFirstChoiceContent(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"[{\"title\":\"Pancake\"}]"}}]}`))
	})

	content, err := svc.Complete(context.Background(), "make pancakes")

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Pancake"}]`, content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "test-model", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "make pancakes", gotBody.Messages[0].Content)
}

func TestComplete_NoChoicesFallsBackToSentinel(t *testing.T) {
	svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	content, err := svc.Complete(context.Background(), "anything")

	require.NoError(t, err)
	assert.Equal(t, "No response generated", content)
}

func TestComplete_EmptyContentFallsBackToSentinel(t *testing.T) {
	svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	})

	content, err := svc.Complete(context.Background(), "anything")

	require.NoError(t, err)
	assert.Equal(t, "No response generated", content)
}

func TestComplete_ServerErrorSurfacesAsUpstream(t *testing.T) {
	svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.Complete(context.Background(), "anything")

	assert.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}

func TestComplete_UnreachableProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Groq.APIURL = "http://127.0.0.1:1"
	cfg.Groq.Timeout = time.Second
	svc := service.NewLLMService(cfg, zap.NewNop())

	_, err := svc.Complete(context.Background(), "anything")

	assert.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}
