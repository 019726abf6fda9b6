package llmgateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

const (
	anthropicModel     = "claude-sonnet-4-5"
	anthropicMaxTokens = 4096
)

// anthropicProvider calls the Anthropic Messages API directly. It carries
// its own rate limiter rather than relying on the SDK's internal retry, so
// the gateway's own backoff stays in control of pacing across providers.
type anthropicProvider struct {
	client  anthropic.Client
	model   string
	limiter *rate.Limiter
	enabled bool
}

// NewAnthropicProvider builds a provider bound to apiKey. enabled should be
// false when apiKey is empty so the gateway skips it instead of failing
// every call.
func NewAnthropicProvider(apiKey string, requestsPerSecond float64) Provider {
	return &anthropicProvider{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   anthropicModel,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		enabled: apiKey != "",
	}
}

func (p *anthropicProvider) Name() string { return "anthropic" }

func (p *anthropicProvider) Priority() int { return PriorityPrimary }

func (p *anthropicProvider) IsAvailable() bool { return p.enabled }

func (p *anthropicProvider) CallJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !p.enabled {
		return "", errors.New("anthropic provider not configured")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	var out string

	for _, block := range msg.Content {
		if text := block.Text; text != "" {
			out += text
		}
	}

	return out, nil
}

func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == http.StatusTooManyRequests || status >= 500 {
			return &RetryableError{StatusCode: status, Err: err}
		}
	}

	return err
}
