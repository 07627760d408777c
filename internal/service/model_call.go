package service

import (
	"context"
	"errors"
	"time"

	"mailtriage/internal/domain"
	"mailtriage/internal/llm"
	"mailtriage/internal/port"
)

// rawLogLimit bounds how much of an unusable model reply goes into a log line.
const rawLogLimit = 300

// complete runs one model call under its own deadline. There is no retry.
func complete(ctx context.Context, completer port.Completer, timeout time.Duration, req port.CompletionRequest) (*port.CompletionResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return completer.Complete(callCtx, req)
}

// fallbackReasonFor maps a failed model call onto the reason recorded in outcomes.
func fallbackReasonFor(err error) domain.FallbackReason {
	var rlErr *llm.RateLimitError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.FallbackTimeout
	case errors.Is(err, llm.ErrCircuitOpen), errors.As(err, &rlErr):
		return domain.FallbackRateLimited
	case errors.Is(err, llm.ErrEmptyResponse):
		return domain.FallbackEmptyResponse
	default:
		return domain.FallbackTransportError
	}
}
