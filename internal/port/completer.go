package port

import "context"

// CompletionRequest carries a single-turn prompt and its sampling settings.
type CompletionRequest struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSONMode    bool // ask the provider for a JSON object reply when it supports it
}

// CompletionResponse is the text produced by the model.
type CompletionResponse struct {
	Text         string
	Model        string
	FinishReason string
}

// Completer abstracts a language-model text completion call.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
