package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/config"
	"mailtriage/internal/domain"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

const (
	// FallbackReasoning accompanies the default category when the model gave no usable answer.
	FallbackReasoning = "Default classification due to a processing error."
	// DefaultReasoning is used when the model picked a valid category but gave no reason.
	DefaultReasoning = "Automatic classification."
)

// ClassificationService assigns a category to normalized email content.
// It never fails: every problem with the model call resolves to
// REQUIRES_ACTION with the reason recorded in the outcome.
type ClassificationService interface {
	Classify(ctx context.Context, normalized string) domain.ClassificationOutcome
}

type classificationService struct {
	completer port.Completer
	timeout   time.Duration
	cfg       config.ModelCallConfig
}

// NewClassificationService creates a new ClassificationService implementation.
func NewClassificationService(completer port.Completer, timeout time.Duration, cfg config.ModelCallConfig) ClassificationService {
	return &classificationService{
		completer: completer,
		timeout:   timeout,
		cfg:       cfg,
	}
}

// classificationReply is the JSON shape the prompt asks for.
type classificationReply struct {
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}

func (s *classificationService) Classify(ctx context.Context, normalized string) domain.ClassificationOutcome {
	resp, err := complete(ctx, s.completer, s.timeout, port.CompletionRequest{
		Prompt:      llm.BuildClassificationPrompt(normalized, s.cfg.MaxInputChars),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		reason := fallbackReasonFor(err)
		log.Warn().Err(err).Str("fallback", string(reason)).Msg("classificationService.Classify: model call failed")
		return fallbackClassification(reason)
	}

	obj, ok := llm.ExtractJSONObject(resp.Text)
	if !ok {
		log.Warn().Str("raw", llm.Truncate(resp.Text, rawLogLimit)).Msg("classificationService.Classify: no JSON object in reply")
		return fallbackClassification(domain.FallbackMalformedResponse)
	}

	var reply classificationReply
	if err := json.Unmarshal([]byte(obj), &reply); err != nil || strings.TrimSpace(reply.Category) == "" {
		log.Warn().Err(err).Str("raw", llm.Truncate(resp.Text, rawLogLimit)).Msg("classificationService.Classify: unusable JSON reply")
		return fallbackClassification(domain.FallbackMalformedResponse)
	}

	reasoning := strings.TrimSpace(reply.Reasoning)
	category, ok := domain.ParseCategory(reply.Category)
	if !ok {
		log.Warn().Str("label", llm.Truncate(reply.Category, rawLogLimit)).Msg("classificationService.Classify: unknown category label")
		if reasoning == "" {
			reasoning = FallbackReasoning
		}
		return domain.ClassificationOutcome{
			Category:  domain.CategoryRequiresAction,
			Reasoning: reasoning,
			Fallback:  domain.FallbackUnknownLabel,
		}
	}

	if reasoning == "" {
		reasoning = DefaultReasoning
	}
	return domain.ClassificationOutcome{Category: category, Reasoning: reasoning}
}

func fallbackClassification(reason domain.FallbackReason) domain.ClassificationOutcome {
	return domain.ClassificationOutcome{
		Category:  domain.CategoryRequiresAction,
		Reasoning: FallbackReasoning,
		Fallback:  reason,
	}
}
