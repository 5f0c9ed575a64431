package prompt_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kanbanboard/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    string `json:"system"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestBuildUserMessage(t *testing.T) {
	assert.Equal(t, "Task: Login page", prompt.BuildUserMessage(prompt.Request{Title: "Login page"}))
	assert.Equal(t, "Task: Login page\n\nDescription: OAuth only",
		prompt.BuildUserMessage(prompt.Request{Title: "Login page", Description: "OAuth only"}))
}

func TestGenerate_Success(t *testing.T) {
	// Arrange
	var got capturedRequest
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Build a login page."}]}`))
	}))
	defer srv.Close()
	client := prompt.NewClient("sk-test", prompt.WithBaseURL(srv.URL+"/"), prompt.WithModel("test-model"))

	// Act
	out, err := client.Generate(context.Background(), prompt.Request{Title: "Login", Description: "With SSO"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Build a login page.", out)
	assert.Equal(t, "sk-test", headers.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", headers.Get("anthropic-version"))
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.Equal(t, prompt.SystemPrompt, got.System)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Task: Login\n\nDescription: With SSO", got.Messages[0].Content)
}

func TestGenerate_NonTextBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"tool_use"}]}`))
	}))
	defer srv.Close()

	out, err := prompt.NewClient("k", prompt.WithBaseURL(srv.URL)).Generate(context.Background(), prompt.Request{Title: "x"})

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenerate_MissingKey(t *testing.T) {
	_, err := prompt.NewClient("").Generate(context.Background(), prompt.Request{Title: "x"})
	assert.ErrorIs(t, err, prompt.ErrMissingAPIKey)
}

func TestGenerate_MissingTitle(t *testing.T) {
	_, err := prompt.NewClient("k").Generate(context.Background(), prompt.Request{Title: ""})
	assert.ErrorIs(t, err, prompt.ErrMissingTitle)
}

func TestGenerate_BlankTitleIsForwarded(t *testing.T) {
	// Only an empty title is refused; whitespace goes to the model as typed
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer srv.Close()

	out, err := prompt.NewClient("k", prompt.WithBaseURL(srv.URL)).Generate(context.Background(), prompt.Request{Title: "  "})

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Task:   ", got.Messages[0].Content)
}

func TestGenerate_APIError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := prompt.NewClient("k", prompt.WithBaseURL(srv.URL)).Generate(context.Background(), prompt.Request{Title: "x"})

	var apiErr *prompt.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "slow down", apiErr.Message)
	assert.Equal(t, 1, calls, "no retries")
}

func TestGenerate_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prompt.NewClient("k", prompt.WithBaseURL(srv.URL)).Generate(ctx, prompt.Request{Title: "x"})

	assert.ErrorIs(t, err, context.Canceled)
}
