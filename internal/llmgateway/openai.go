package llmgateway

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const openaiModel = openai.GPT4oMini

// openaiProvider calls the OpenAI chat completions API as a fallback when
// Anthropic is unavailable or its circuit is open.
type openaiProvider struct {
	client  *openai.Client
	limiter *rate.Limiter
	enabled bool
}

// NewOpenAIProvider builds a fallback provider bound to apiKey.
func NewOpenAIProvider(apiKey string, requestsPerSecond float64) Provider {
	return &openaiProvider{
		client:  openai.NewClient(apiKey),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		enabled: apiKey != "",
	}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Priority() int { return PriorityFallback }

func (p *openaiProvider) IsAvailable() bool { return p.enabled }

func (p *openaiProvider) CallJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !p.enabled {
		return "", errors.New("openai provider not configured")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openaiModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500 {
			return &RetryableError{StatusCode: apiErr.HTTPStatusCode, Err: err}
		}
	}

	return err
}
