// Package prompt turns a task into a ready-to-paste coding-assistant prompt by
// asking a hosted language model.
package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-haiku-4-5-20251001"

	apiVersion = "2023-06-01"
	maxTokens  = 500
)

// SystemPrompt is sent with every generation request.
const SystemPrompt = `You are an expert at creating detailed, actionable prompts for Claude Code, an AI coding assistant.
Given a task title and optional description, generate a comprehensive prompt that:
1. Clearly explains the feature to build
2. Specifies technical requirements
3. Mentions file structure if relevant
4. Includes acceptance criteria
5. Is ready to paste directly into Claude Code

Keep the prompt concise but thorough - aim for 2-5 sentences that capture the essence of the task.`

var (
	ErrMissingAPIKey = errors.New("ANTHROPIC_API_KEY environment variable is not set")
	ErrMissingTitle  = errors.New("Task title is required")
)

// APIError is a non-2xx answer from the model API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// Request describes the task a prompt is generated for.
type Request struct {
	Title       string
	Description string
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client calls the Anthropic Messages API. It makes a single attempt per
// request.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	return c
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// BuildUserMessage renders the task as the user turn of the conversation.
func BuildUserMessage(r Request) string {
	if r.Description == "" {
		return "Task: " + r.Title
	}
	return "Task: " + r.Title + "\n\nDescription: " + r.Description
}

// Generate returns the text of the first content block of the model's answer,
// or "" when that block is not text.
func (c *Client) Generate(ctx context.Context, r Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if r.Title == "" {
		return "", ErrMissingTitle
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    SystemPrompt,
		Messages:  []message{{Role: "user", Content: BuildUserMessage(r)}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newAPIError(resp.StatusCode, respBody)
	}

	var out messagesResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Content) == 0 || out.Content[0].Type != "text" {
		return "", nil
	}
	return out.Content[0].Text, nil
}

func newAPIError(status int, body []byte) *APIError {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return &APIError{StatusCode: status, Message: e.Error.Message}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}
