package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/port"
)

// CircuitBreaker wraps a Completer and stops calling it while the provider is
// rate limited. Calls made during the back-off fail immediately with
// ErrCircuitOpen. It never retries.
type CircuitBreaker struct {
	name string
	next port.Completer
	now  func() time.Time

	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

// NewCircuitBreaker wraps next. name identifies the provider in logs and errors.
func NewCircuitBreaker(name string, next port.Completer) *CircuitBreaker {
	return &CircuitBreaker{name: name, next: next, now: time.Now}
}

// Name returns the wrapped provider's name.
func (c *CircuitBreaker) Name() string { return c.name }

// Open reports whether calls are currently being short-circuited.
func (c *CircuitBreaker) Open() bool {
	_, open := c.state(c.now())
	return open
}

func (c *CircuitBreaker) state(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *CircuitBreaker) trip(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if resetAt.After(c.resetAt) {
		c.resetAt = resetAt
	}
}

// Complete forwards req unless the circuit is open.
func (c *CircuitBreaker) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	now := c.now()
	if resetAt, open := c.state(now); open {
		return nil, fmt.Errorf("%s until %s: %w", c.name, resetAt.Format(time.RFC3339), ErrCircuitOpen)
	}

	resp, err := c.next.Complete(ctx, req)
	if err == nil {
		return resp, nil
	}

	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		resetAt := now.Add(rlErr.RetryAfter)
		c.trip(resetAt)
		log.Warn().
			Str("provider", c.name).
			Time("reset_at", resetAt).
			Msg("llm provider rate limited, opening circuit")
	}
	return nil, err
}
