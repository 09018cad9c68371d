package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "anthropic", "openai", "local", "mock"
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Local     LocalConfig

	// Timeout is the hard client-side limit for a single provider call.
	// There are no retries inside the gateway, so this bounds the total
	// wall-clock time of one Generate. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// LocalConfig holds configuration for a locally-hosted OpenAI-compatible
// server (Ollama, llama.cpp, vLLM).
type LocalConfig struct {
	BaseURL string // Default: "http://localhost:11434/v1"
	Model   string // Default: "llama3.1"
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Local: LocalConfig{
			BaseURL: "http://localhost:11434/v1",
			Model:   "llama3.1",
			// Local models are slower; allow more headroom.
			Timeout: 120 * time.Second,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("CADENCE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("CADENCE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("CADENCE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("CADENCE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("CADENCE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("CADENCE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if u := os.Getenv("CADENCE_LOCAL_BASE_URL"); u != "" {
		cfg.Local.BaseURL = u
	}
	if m := os.Getenv("CADENCE_LOCAL_MODEL"); m != "" {
		cfg.Local.Model = m
	}

	if t := os.Getenv("CADENCE_LLM_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

// TimeoutFor returns the per-call timeout for the selected provider.
func (c Config) TimeoutFor(provider string) time.Duration {
	if provider == "local" && c.Local.Timeout > 0 {
		return c.Local.Timeout
	}
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 30 * time.Second
}

// Validate checks that the selected provider has its required settings.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("CADENCE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("CADENCE_OPENAI_API_KEY is required for the openai provider")
		}
	case "local":
		if c.Local.BaseURL == "" {
			return fmt.Errorf("CADENCE_LOCAL_BASE_URL is required for the local provider")
		}
	case "mock":
		// No settings needed.
	default:
		return fmt.Errorf("unknown provider: %q", c.Provider)
	}
	return nil
}
