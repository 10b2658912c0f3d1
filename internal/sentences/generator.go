package sentences

import (
	"context"
	"fmt"
)

// PerWord is the default number of example sentences per word
const PerWord = 3

// Generator defines the interface for example sentence backends
type Generator interface {
	// Generate returns example sentences for the given Spanish word.
	// The result may need sanitizing; use Sanitize before publishing.
	Generate(ctx context.Context, word string, count int) ([]string, error)

	// Name returns the backend name
	Name() string

	// IsAvailable checks if the backend is configured and reachable.
	// Probed once at process start.
	IsAvailable() error
}

// Config holds common configuration for sentence backends
type Config struct {
	Provider string // Backend name: "openai" or "gemini"

	// OpenAI-compatible settings. BaseURL may point at a local
	// OpenAI-compatible server (e.g. Ollama) instead of api.openai.com.
	OpenAIKey   string
	OpenAIModel string
	BaseURL     string

	// Gemini settings
	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns the default sentence backend configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewGenerator creates the appropriate sentence backend based on
// configuration
func NewGenerator(config *Config) (Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAIGenerator(config)

	case "gemini":
		return NewGeminiGenerator(config)

	default:
		return nil, fmt.Errorf("unknown sentence provider: %s", config.Provider)
	}
}
