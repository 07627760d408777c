package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/domain"
	"mailtriage/internal/textproc"
)

// PipelineService runs one request through normalize, classify and draft.
type PipelineService interface {
	Process(ctx context.Context, req *domain.ClassificationRequest) (*domain.ClassificationResult, error)
}

type pipelineService struct {
	classifier ClassificationService
	drafter    DraftService
}

// NewPipelineService creates a new PipelineService implementation.
func NewPipelineService(classifier ClassificationService, drafter DraftService) PipelineService {
	return &pipelineService{
		classifier: classifier,
		drafter:    drafter,
	}
}

// Process returns domain.ErrEmptyContent for a nil or empty request without
// calling the model. Model failures never surface as errors; they show up as
// fallback values in the result.
func (s *pipelineService) Process(ctx context.Context, req *domain.ClassificationRequest) (*domain.ClassificationResult, error) {
	if req == nil || req.Content() == "" {
		return nil, domain.ErrEmptyContent
	}
	start := time.Now()
	content := req.Content()

	normalized := textproc.Normalize(content)
	classification := s.classifier.Classify(ctx, normalized)
	draft := s.drafter.Draft(ctx, content, classification.Category)
	chars, words := domain.ContentStats(content)

	result := &domain.ClassificationResult{
		Category:          classification.Category,
		Reasoning:         classification.Reasoning,
		SuggestedResponse: draft.Text,
		OriginalContent:   content,
		CharCount:         chars,
		WordCount:         words,
	}
	if name, ok := req.Filename(); ok {
		result.Filename = &name
	}

	log.Info().
		Str("source", string(req.Source())).
		Str("category", string(result.Category)).
		Str("classify_fallback", string(classification.Fallback)).
		Str("draft_fallback", string(draft.Fallback)).
		Int("chars", chars).
		Int("normalized_tokens", len(strings.Fields(normalized))).
		Dur("latency", time.Since(start)).
		Msg("pipeline: request processed")

	return result, nil
}

// RequireMinLength rejects content shorter than minRunes code points after trimming.
func RequireMinLength(content string, minRunes int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n == 0 {
		return domain.ErrEmptyContent
	}
	if n < minRunes {
		return domain.ErrContentTooShort
	}
	return nil
}
