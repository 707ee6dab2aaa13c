package llm

import (
	"context"
	"fmt"

	"github.com/deepak/quizdeck/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// When eventRepo is nil, event logging is skipped.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, eventRepo)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from environment configuration.
// QUIZDECK_LLM_PROVIDER selects the provider explicitly; otherwise the
// standard API key env vars are probed in priority order.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set QUIZDECK_LLM_PROVIDER or an API key env var")
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
