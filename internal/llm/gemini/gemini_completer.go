package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"mailtriage/internal/config"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

const (
	// ProviderName is the llm.provider value selecting this package.
	ProviderName = "gemini"
	defaultModel = "gemini-2.0-flash"
)

// Completer implements port.Completer using the Gemini generateContent API.
type Completer struct {
	client *genai.Client
	model  string
}

// New creates a Gemini completer against the Gemini API backend.
func New(ctx context.Context, cfg *config.LLMConfig) (*Completer, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Completer{client: client, model: model}, nil
}

func (c *Completer) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Candidates) == 0 {
		return nil, llm.ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil {
				text.WriteString(part.Text)
			}
		}
	}
	out := strings.TrimSpace(text.String())
	if out == "" {
		return nil, llm.ErrEmptyResponse
	}
	return &port.CompletionResponse{
		Text:         out,
		Model:        c.model,
		FinishReason: string(candidate.FinishReason),
	}, nil
}

func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return llm.NewRateLimitError(ProviderName, err, 0)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr.Code == http.StatusTooManyRequests {
		return llm.NewRateLimitError(ProviderName, err, 0)
	}
	return fmt.Errorf("gemini api error: %w", err)
}
