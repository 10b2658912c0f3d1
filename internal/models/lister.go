package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister prints the OpenAI models usable for speech synthesis and
// sentence generation
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a model lister writing to the given output
func NewLister(apiKey string, out io.Writer) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    out,
	}
}

// ListAvailableModels fetches the model catalogue and prints the TTS
// and chat models grouped by purpose
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY or configure it in .palabra.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	tts, chat := Categorize(models.Models)
	l.print(tts, chat)
	return nil
}

// Categorize splits the model catalogue into TTS models and chat
// models, each sorted by ID
func Categorize(catalogue []openai.Model) (tts, chat []string) {
	for _, model := range catalogue {
		id := model.ID
		switch {
		case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
			tts = append(tts, id)
		case strings.Contains(id, "gpt") || strings.Contains(id, "chat"):
			chat = append(chat, id)
		}
	}
	sort.Strings(tts)
	sort.Strings(chat)
	return tts, chat
}

func (l *Lister) print(tts, chat []string) {
	fmt.Fprintln(l.out, "Available OpenAI Models:")

	fmt.Fprintln(l.out, "\nText-to-Speech (TTS) Models:")
	if len(tts) == 0 {
		fmt.Fprintln(l.out, "  No TTS models found")
	}
	for _, model := range tts {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	fmt.Fprintln(l.out, "\nChat Models (for example sentences):")
	if len(chat) > 10 {
		relevant := make([]string, 0, len(chat))
		for _, model := range chat {
			if strings.Contains(model, "gpt-4") || strings.Contains(model, "gpt-3.5") {
				relevant = append(relevant, model)
			}
		}
		for _, model := range relevant {
			fmt.Fprintf(l.out, "  %s\n", model)
		}
		fmt.Fprintf(l.out, "  ... and %d more models\n", len(chat)-len(relevant))
		return
	}
	for _, model := range chat {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
}
