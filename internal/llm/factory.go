package llm

import (
	"fmt"

	"github.com/abhisek/cadence/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout and logging middleware. There is deliberately no retry layer:
// the gateway is a single-attempt primitive and callers apply their own
// fallback policy.
func NewProvider(cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "local":
		base, err = NewLocalProvider(cfg.Local)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → logging → timeout → base
	timed := WithTimeout(base, cfg.TimeoutFor(cfg.Provider))
	return WithLogging(timed, cfg.Provider, eventRepo), nil
}
