package service_test

import (
	"context"
	"sync"

	"mailtriage/internal/config"
	"mailtriage/internal/port"
)

var (
	classifierCfg = config.ModelCallConfig{MaxInputChars: 1000, Temperature: 0.3, MaxTokens: 150}
	drafterCfg    = config.ModelCallConfig{MaxInputChars: 500, Temperature: 0.5, MaxTokens: 300}
)

// completerFunc adapts a function to port.Completer and records every request.
type completerFunc struct {
	mu    sync.Mutex
	reqs  []port.CompletionRequest
	reply func(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error)
}

func (c *completerFunc) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	c.mu.Lock()
	c.reqs = append(c.reqs, req)
	c.mu.Unlock()
	return c.reply(ctx, req)
}

func (c *completerFunc) requests() []port.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]port.CompletionRequest(nil), c.reqs...)
}

func textReply(text string) *port.CompletionResponse {
	return &port.CompletionResponse{Text: text, Model: "test-model", FinishReason: "stop"}
}
