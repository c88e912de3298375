// Package llm provides the Groq chat-completions adapter behind the
// ports.Completer interface. Groq exposes an OpenAI-compatible API, so
// the wire types mirror the chat/completions schema.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"cruxen/internal/errors"
	"cruxen/ports"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements ports.Completer against the Groq API.
type GroqClient struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// Config holds Groq client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewGroqClient creates a Groq client. The API key is required; base
// URL, model, and timeout fall back to sensible defaults.
func NewGroqClient(cfg Config) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.ConfigInvalid("missing Groq API key")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GroqClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// OpenAI-compatible wire types.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends one chat completion and returns the generated content.
// Transport failures and non-200 statuses surface as external-service
// errors so the HTTP layer can map them to 502.
func (c *GroqClient) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	messages := make([]chatMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.UserPrompt})

	body := chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.ExternalServiceError("groq", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ExternalServiceError("groq", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ExternalServiceError("groq",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respRaw), 200)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respRaw, &parsed); err != nil {
		return nil, errors.ExternalServiceError("groq", fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.ExternalServiceError("groq", fmt.Errorf("no choices in response"))
	}

	return &ports.CompletionResponse{
		Content:      parsed.Choices[0].Message.Content,
		Model:        model,
		FinishReason: parsed.Choices[0].FinishReason,
		Usage: &ports.UsageData{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
			Model:            model,
			Provider:         "groq",
		},
	}, nil
}

// truncate shortens s to at most n bytes without splitting a rune, so
// echoed provider bodies stay valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
