package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"mailtriage/internal/config"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

const (
	// ProviderName is the llm.provider value selecting this package.
	ProviderName = "claude"
	defaultModel = "claude-haiku-4-5"
)

// Completer implements port.Completer using the Anthropic Messages API.
type Completer struct {
	client anthropic.Client
	model  string
}

// New creates a Claude completer. The SDK's automatic retries are disabled:
// a failed call goes straight to the caller's fallback path.
func New(cfg *config.LLMConfig) *Completer {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Completer{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (c *Completer) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		// Anthropic requires max_tokens
		maxTokens = 1024
	}
	prompt := req.Prompt
	if req.JSONMode {
		prompt += "\n\nRespond with the JSON object only."
	}

	msgReq := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	resp, err := c.client.Messages.New(ctx, msgReq)
	if err != nil {
		return nil, classifyError(err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(text.String())
	if out == "" {
		return nil, llm.ErrEmptyResponse
	}
	return &port.CompletionResponse{
		Text:         out,
		Model:        string(resp.Model),
		FinishReason: string(resp.StopReason),
	}, nil
}

func classifyError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		retryAfter := 0
		if apiErr.Response != nil {
			retryAfter = llm.ParseRetryAfterHeader(apiErr.Response.Header.Get("Retry-After"))
		}
		return llm.NewRateLimitError(ProviderName, err, retryAfter)
	}
	return fmt.Errorf("anthropic api error: %w", err)
}
