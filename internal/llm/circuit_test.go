package llm_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/llm"
	"mailtriage/internal/port"
	"mailtriage/mocks"
)

func TestCircuitBreaker_PassesThrough(t *testing.T) {
	next := new(mocks.MockCompleter)
	req := port.CompletionRequest{Prompt: "classify"}
	next.On("Complete", mock.Anything, req).Return(&port.CompletionResponse{Text: "{}"}, nil)

	cb := llm.NewCircuitBreaker("openai", next)
	resp, err := cb.Complete(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "{}", resp.Text)
	assert.False(t, cb.Open())
	assert.Equal(t, "openai", cb.Name())
}

func TestCircuitBreaker_GenericErrorKeepsCircuitClosed(t *testing.T) {
	next := new(mocks.MockCompleter)
	next.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	cb := llm.NewCircuitBreaker("openai", next)
	_, err := cb.Complete(context.Background(), port.CompletionRequest{})

	require.Error(t, err)
	assert.False(t, cb.Open())
	next.AssertNumberOfCalls(t, "Complete", 1)
}

func TestCircuitBreaker_RateLimitOpensAndShortCircuits(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	next := new(mocks.MockCompleter)
	next.On("Complete", mock.Anything, mock.Anything).
		Return(nil, llm.NewRateLimitError("openai", errors.New("429"), 30)).Once()

	cb := llm.NewCircuitBreaker("openai", next)
	cb.SetClock(func() time.Time { return now })

	_, err := cb.Complete(context.Background(), port.CompletionRequest{})
	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.True(t, cb.Open())

	// Second call inside the back-off never reaches the provider.
	_, err = cb.Complete(context.Background(), port.CompletionRequest{})
	assert.ErrorIs(t, err, llm.ErrCircuitOpen)
	next.AssertNumberOfCalls(t, "Complete", 1)
}

func TestCircuitBreaker_ClosesAfterReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	next := new(mocks.MockCompleter)
	next.On("Complete", mock.Anything, mock.Anything).
		Return(nil, llm.NewRateLimitError("gemini", errors.New("429"), 10)).Once()
	next.On("Complete", mock.Anything, mock.Anything).
		Return(&port.CompletionResponse{Text: "back"}, nil).Once()

	cb := llm.NewCircuitBreaker("gemini", next)
	cb.SetClock(func() time.Time { return now })

	_, _ = cb.Complete(context.Background(), port.CompletionRequest{})
	require.True(t, cb.Open())

	now = now.Add(11 * time.Second)
	assert.False(t, cb.Open())

	resp, err := cb.Complete(context.Background(), port.CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "back", resp.Text)
	next.AssertExpectations(t)
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	next := new(mocks.MockCompleter)
	next.On("Complete", mock.Anything, mock.Anything).Return(&port.CompletionResponse{Text: "ok"}, nil)

	cb := llm.NewCircuitBreaker("openai", next)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cb.Complete(context.Background(), port.CompletionRequest{})
			_ = cb.Open()
		}()
	}
	wg.Wait()

	next.AssertNumberOfCalls(t, "Complete", 20)
}
