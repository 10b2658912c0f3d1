package sentences

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	config *Config
}

// NewGeminiGenerator creates a new Gemini sentence backend
func NewGeminiGenerator(config *Config) (Generator, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		config: config,
	}, nil
}

// Generate produces example sentences for a Spanish word
func (g *GeminiGenerator) Generate(ctx context.Context, word string, count int) ([]string, error) {
	prompt := fmt.Sprintf("Escribe %d oraciones diferentes de nivel intermedio usando la palabra en español '%s'. "+
		"Responde solo con las %d oraciones en %d líneas, nada más, sin explicaciones ni texto adicional.",
		count, word, count, count)

	resp, err := g.client.Models.GenerateContent(ctx, g.config.GeminiModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return nil, fmt.Errorf("no sentences returned")
	}

	return strings.Split(content, "\n"), nil
}

// Name returns the backend name
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// IsAvailable checks the backend configuration
func (g *GeminiGenerator) IsAvailable() error {
	if g.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
