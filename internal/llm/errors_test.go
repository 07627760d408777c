package llm_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mailtriage/internal/llm"
)

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := llm.NewRateLimitError("openai", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.Equal(t, "openai", err.Provider)
	assert.Contains(t, err.Error(), "openai rate limited")
}

func TestNewRateLimitError_Unwrap(t *testing.T) {
	base := errors.New("too many requests")
	err := llm.NewRateLimitError("claude", base, 5)

	assert.Equal(t, 5*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, base)

	var rlErr *llm.RateLimitError
	assert.True(t, errors.As(error(err), &rlErr))
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 30, llm.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
}
