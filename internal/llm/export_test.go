package llm

import "time"

// SetClock replaces the breaker's time source.
func (c *CircuitBreaker) SetClock(now func() time.Time) { c.now = now }
