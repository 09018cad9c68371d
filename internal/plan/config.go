package plan

// Config tunes sprint plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns planner defaults. Plans are large structured
// documents, so the token budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.3,
	}
}
