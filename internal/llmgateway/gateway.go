// Package llmgateway is the single point of contact between the simulation
// loop and any large language model provider. Callers send every prompt
// through CallJSON: pick a provider, send a prompt, get back a typed value
// (Statuses only reports provider health). Provider
// selection, retry, and circuit breaking all happen behind that one call.
package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	coreerrors "github.com/PsychoPunkSage/templar/internal/core/errors"
)

// Provider priority tiers, highest wins. Mirrors the registration order a
// multi-provider deployment would use: a primary paid-tier provider, one or
// two fallbacks, and a deterministic mock for tests and offline demos.
const (
	PriorityPrimary        = 100
	PriorityFallback       = 50
	PrioritySecondFallback = 25
	PriorityMock           = 0
)

const (
	circuitThreshold  = 3
	circuitResetAfter = 30 * time.Second
	maxRetries        = 3
	baseBackoff       = time.Second
)

// RetryableError wraps a provider error that is worth retrying (HTTP 429 or
// 5xx). Providers that don't wrap their errors this way are treated as
// non-retryable: the gateway moves straight to the next provider.
type RetryableError struct {
	StatusCode int
	Err        error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable provider error (status %d): %v", e.StatusCode, e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// Provider is a single LLM backend capable of answering a JSON-shaped
// prompt. Concrete providers (Anthropic, OpenAI, Mock) implement this.
type Provider interface {
	Name() string
	Priority() int
	IsAvailable() bool
	CallJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type entry struct {
	provider Provider
	breaker  *circuitBreaker
}

// Gateway is a priority-ordered, circuit-breaking registry of providers. The
// zero value is not usable; construct with New.
type Gateway struct {
	entries []entry
	logger  zerolog.Logger
}

// New builds a Gateway from providers in any order; Gateway sorts them by
// descending Priority() once at construction time.
func New(logger zerolog.Logger, providers ...Provider) *Gateway {
	g := &Gateway{logger: logger}

	for _, p := range providers {
		g.entries = append(g.entries, entry{
			provider: p,
			breaker:  newCircuitBreaker(p.Name(), circuitThreshold, circuitResetAfter, logger),
		})
	}

	sort.SliceStable(g.entries, func(i, j int) bool {
		return g.entries[i].provider.Priority() > g.entries[j].provider.Priority()
	})

	return g
}

// ProviderStatus reports one provider's current health for observability.
type ProviderStatus struct {
	Name        string
	Priority    int
	Available   bool
	CircuitOpen bool
}

// Statuses returns the current health of every registered provider, in
// priority order.
func (g *Gateway) Statuses() []ProviderStatus {
	out := make([]ProviderStatus, len(g.entries))
	for i, e := range g.entries {
		out[i] = ProviderStatus{
			Name:        e.provider.Name(),
			Priority:    e.provider.Priority(),
			Available:   e.provider.IsAvailable(),
			CircuitOpen: e.breaker.IsOpen(),
		}
	}

	return out
}

// CallJSON sends systemPrompt/userPrompt to the highest-priority available
// provider, retrying transient failures before falling back to the next
// provider. The first provider to return a value that unmarshals into out
// wins. Returns coreerrors.ErrNoProviderAvailable if every provider is
// unavailable, circuit-open, or returns an unparseable response.
func (g *Gateway) CallJSON(ctx context.Context, systemPrompt, userPrompt string, out interface{}) error {
	var lastErr error

	for _, e := range g.entries {
		if !e.provider.IsAvailable() {
			continue
		}

		if !e.breaker.CanAttempt() {
			continue
		}

		raw, err := g.callWithRetry(ctx, e, systemPrompt, userPrompt)
		if err != nil {
			lastErr = err
			continue
		}

		if err := json.Unmarshal([]byte(stripJSONFences(raw)), out); err != nil {
			g.logger.Warn().
				Str("provider", e.provider.Name()).
				Err(err).
				Msg("provider response was not valid json")
			lastErr = fmt.Errorf("%w: %v", coreerrors.ErrMalformedAdjustment, err)
			continue
		}

		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %v", coreerrors.ErrNoProviderAvailable, lastErr)
	}

	return coreerrors.ErrNoProviderAvailable
}

func (g *Gateway) callWithRetry(ctx context.Context, e entry, systemPrompt, userPrompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff * time.Duration(1<<uint(attempt-1))

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		raw, err := e.provider.CallJSON(ctx, systemPrompt, userPrompt)
		if err == nil {
			e.breaker.RecordSuccess()
			return raw, nil
		}

		lastErr = err

		var retryable *RetryableError
		if !coreerrors.As(err, &retryable) {
			e.breaker.RecordFailure()
			return "", fmt.Errorf("%w: %v", coreerrors.ErrGatewayEdit, err)
		}

		g.logger.Debug().
			Str("provider", e.provider.Name()).
			Int("attempt", attempt+1).
			Int("status", retryable.StatusCode).
			Msg("retrying provider call")
	}

	e.breaker.RecordFailure()

	return "", fmt.Errorf("%w: %v", coreerrors.ErrGatewayEdit, lastErr)
}

// stripJSONFences removes a surrounding ```json ... ``` or ``` ... ``` code
// fence, which chat-tuned models routinely add even when explicitly told to
// return bare JSON.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
