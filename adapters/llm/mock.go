package llm

import (
	"context"

	"cruxen/ports"
)

// MockCompleter is a canned-response Completer for tests.
type MockCompleter struct {
	Response string
	Error    error
	// Requests records every call for assertion.
	Requests []ports.CompletionRequest
}

func (m *MockCompleter) Complete(_ context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	m.Requests = append(m.Requests, req)
	if m.Error != nil {
		return nil, m.Error
	}
	content := m.Response
	if content == "" {
		content = "mock completion"
	}
	return &ports.CompletionResponse{
		Content:      content,
		Model:        req.Model,
		FinishReason: "stop",
		Usage: &ports.UsageData{
			PromptTokens:     len(req.UserPrompt) / 4,
			CompletionTokens: len(content) / 4,
			TotalTokens:      (len(req.UserPrompt) + len(content)) / 4,
			Model:            req.Model,
			Provider:         "mock",
		},
	}, nil
}
