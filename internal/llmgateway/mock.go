package llmgateway

import "context"

// MockFunc answers a single mock provider call.
type MockFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

// MockProvider is a deterministic provider for tests and offline demos. It
// is registered at PriorityMock so any real provider always wins when one is
// configured.
type MockProvider struct {
	Respond MockFunc
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) Priority() int { return PriorityMock }

func (p *MockProvider) IsAvailable() bool { return p.Respond != nil }

func (p *MockProvider) CallJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return p.Respond(ctx, systemPrompt, userPrompt)
}
