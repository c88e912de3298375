package ports

import "context"

// UsageData represents token usage reported by an LLM provider.
type UsageData struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	Model            string `json:"model"`
	Provider         string `json:"provider"`
}

// CompletionRequest is a single chat-completion call. Model may be empty
// to use the provider's configured default.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// CompletionResponse carries the generated text plus provider metadata.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        *UsageData
}

// Completer is the outbound port for LLM providers. The engine only
// guarantees it hands Complete a well-formed prompt; timeouts and
// provider failure modes live behind this interface.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
