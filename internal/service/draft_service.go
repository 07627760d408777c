package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/config"
	"mailtriage/internal/domain"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

const (
	// FallbackReplyRequiresAction is sent when no reply could be drafted for an actionable email.
	FallbackReplyRequiresAction = "Thank you for your message. We have received your request and our team will get back to you with the next steps shortly."
	// FallbackReplyNoAction is sent when no reply could be drafted for an email that needs no action.
	FallbackReplyNoAction = "Thank you for your message. We appreciate you reaching out."
)

// DraftService drafts a reply to the raw email content for a given category.
// The returned text is never empty.
type DraftService interface {
	Draft(ctx context.Context, raw string, category domain.Category) domain.DraftOutcome
}

type draftService struct {
	completer port.Completer
	timeout   time.Duration
	cfg       config.ModelCallConfig
}

// NewDraftService creates a new DraftService implementation.
func NewDraftService(completer port.Completer, timeout time.Duration, cfg config.ModelCallConfig) DraftService {
	return &draftService{
		completer: completer,
		timeout:   timeout,
		cfg:       cfg,
	}
}

func (s *draftService) Draft(ctx context.Context, raw string, category domain.Category) domain.DraftOutcome {
	if !category.IsValid() {
		category = domain.CategoryRequiresAction
	}

	resp, err := complete(ctx, s.completer, s.timeout, port.CompletionRequest{
		Prompt:      llm.BuildReplyPrompt(raw, category, s.cfg.MaxInputChars),
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		reason := fallbackReasonFor(err)
		log.Warn().Err(err).Str("fallback", string(reason)).Msg("draftService.Draft: model call failed")
		return domain.DraftOutcome{Text: FallbackReply(category), Fallback: reason}
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		log.Warn().Msg("draftService.Draft: model returned a blank reply")
		return domain.DraftOutcome{Text: FallbackReply(category), Fallback: domain.FallbackEmptyResponse}
	}
	return domain.DraftOutcome{Text: text}
}

// FallbackReply returns the fixed acknowledgement for category.
func FallbackReply(category domain.Category) string {
	if category == domain.CategoryNoActionNeeded {
		return FallbackReplyNoAction
	}
	return FallbackReplyRequiresAction
}
