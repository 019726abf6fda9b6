package llmgateway

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// circuitBreaker trips a provider out of rotation after repeated failures and
// lets it back in after resetAfter has elapsed, without a half-open probe
// state: once the cooldown has passed, CanAttempt simply lets calls through
// again.
type circuitBreaker struct {
	mu sync.Mutex

	threshold  int
	resetAfter time.Duration

	consecutiveFailures int
	openUntil           time.Time

	logger zerolog.Logger
	name   string
}

func newCircuitBreaker(name string, threshold int, resetAfter time.Duration, logger zerolog.Logger) *circuitBreaker {
	return &circuitBreaker{
		threshold:  threshold,
		resetAfter: resetAfter,
		logger:     logger,
		name:       name,
	}
}

// CanAttempt reports whether a call should be allowed through right now.
func (c *circuitBreaker) CanAttempt() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.isOpenLocked()
}

// IsOpen reports the current trip state without side effects.
func (c *circuitBreaker) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isOpenLocked()
}

func (c *circuitBreaker) isOpenLocked() bool {
	if c.openUntil.IsZero() {
		return false
	}

	return time.Now().Before(c.openUntil)
}

// RecordSuccess clears the failure count, closing the circuit.
func (c *circuitBreaker) RecordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures = 0
	c.openUntil = time.Time{}
}

// RecordFailure bumps the failure count and opens the circuit once threshold
// consecutive failures have accumulated.
func (c *circuitBreaker) RecordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures++

	if c.consecutiveFailures >= c.threshold {
		c.openUntil = time.Now().Add(c.resetAfter)
		c.logger.Warn().
			Str("provider", c.name).
			Int("consecutive_failures", c.consecutiveFailures).
			Dur("reset_after", c.resetAfter).
			Msg("circuit breaker tripped")
	}
}

// Reset forces the circuit closed, discarding any accumulated failures.
func (c *circuitBreaker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures = 0
	c.openUntil = time.Time{}
}
