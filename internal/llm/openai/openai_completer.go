package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"mailtriage/internal/config"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

const (
	// ProviderName is the llm.provider value selecting this package.
	ProviderName = "openai"
	defaultModel = "gpt-4o-mini"
)

// Completer implements port.Completer using the OpenAI Chat Completions API.
type Completer struct {
	client *goopenai.Client
	model  string
}

// New creates an OpenAI completer. cfg.BaseURL overrides the API root
// (including the /v1 suffix), which tests point at an httptest server.
func New(cfg *config.LLMConfig) *Completer {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Completer{
		client: goopenai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (c *Completer) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	chatReq := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		if usesMaxCompletionTokens(c.model) {
			chatReq.MaxCompletionTokens = req.MaxTokens
		} else {
			chatReq.MaxTokens = req.MaxTokens
		}
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, llm.ErrEmptyResponse
	}

	choice := resp.Choices[0]
	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		return nil, llm.ErrEmptyResponse
	}
	model := resp.Model
	if model == "" {
		model = c.model
	}
	return &port.CompletionResponse{
		Text:         text,
		Model:        model,
		FinishReason: string(choice.FinishReason),
	}, nil
}

// classifyError turns a 429 into llm.RateLimitError and wraps everything else.
func classifyError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return llm.NewRateLimitError(ProviderName, err, 0)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return llm.NewRateLimitError(ProviderName, err, 0)
	}
	return fmt.Errorf("openai api error: %w", err)
}

// Reasoning models reject max_tokens in favour of max_completion_tokens.
func usesMaxCompletionTokens(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
