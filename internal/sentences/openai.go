package sentences

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements Generator using the OpenAI chat
// completion API, or any OpenAI-compatible endpoint when BaseURL is
// set (a local Ollama server exposes one).
type OpenAIGenerator struct {
	client *openai.Client
	config *Config
}

// NewOpenAIGenerator creates a new OpenAI sentence backend
func NewOpenAIGenerator(config *Config) (Generator, error) {
	if config.OpenAIKey == "" && config.BaseURL == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Generate produces example sentences for a Spanish word
func (g *OpenAIGenerator) Generate(ctx context.Context, word string, count int) ([]string, error) {
	prompt := fmt.Sprintf("Escribe %d oraciones diferentes de nivel intermedio usando la palabra en español '%s'. "+
		"Responde solo con las %d oraciones en %d líneas, nada más, sin explicaciones ni texto adicional.",
		count, word, count, count)

	req := openai.ChatCompletionRequest{
		Model: g.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful Spanish language assistant. Respond only with the requested sentences in Spanish.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no sentences returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return strings.Split(content, "\n"), nil
}

// Name returns the backend name
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// IsAvailable pings the backend with a cheap model listing. The result
// decides the AI capability for the whole process lifetime.
func (g *OpenAIGenerator) IsAvailable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("OpenAI backend not reachable: %w", err)
	}
	return nil
}
