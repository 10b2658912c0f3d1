package sentences

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil config uses defaults without key",
			config:  nil,
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "openai without key",
			config: &Config{
				Provider: "openai",
			},
			wantErr: true,
			errMsg:  "OpenAI API key is required",
		},
		{
			name: "openai with base URL and no key",
			config: &Config{
				Provider:    "openai",
				BaseURL:     "http://localhost:11434/v1",
				OpenAIModel: "llama3.2",
			},
			wantErr: false,
		},
		{
			name: "gemini without key",
			config: &Config{
				Provider: "gemini",
			},
			wantErr: true,
			errMsg:  "Gemini API key is required",
		},
		{
			name: "unknown provider",
			config: &Config{
				Provider: "unknown",
			},
			wantErr: true,
			errMsg:  "unknown sentence provider: unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewGenerator() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && err.Error() != tt.errMsg {
				t.Errorf("NewGenerator() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	lines := Fallback("agua", 3)

	if len(lines) != 3 {
		t.Fatalf("Fallback() returned %d sentences, want 3", len(lines))
	}

	seen := make(map[string]bool)
	for _, line := range lines {
		if line == "" {
			t.Error("Fallback() returned an empty sentence")
		}
		if !strings.Contains(line, "agua") {
			t.Errorf("Sentence %q does not contain the word", line)
		}
		if seen[line] {
			t.Errorf("Sentence %q sampled twice", line)
		}
		seen[line] = true
	}
}

func TestFallback_MoreThanPool(t *testing.T) {
	count := len(templates) + 3
	lines := Fallback("sol", count)

	if len(lines) != count {
		t.Errorf("Fallback() returned %d sentences, want %d", len(lines), count)
	}
	for _, line := range lines {
		if line == "" {
			t.Error("Fallback() returned an empty sentence")
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		count int
		want  []string
	}{
		{
			name:  "strips list numbering",
			input: []string{"1. Primera oración.", "2) Segunda oración.", "- Tercera oración."},
			count: 3,
			want:  []string{"Primera oración.", "Segunda oración.", "Tercera oración."},
		},
		{
			name:  "truncates excess lines",
			input: []string{"Una.", "Dos.", "Tres.", "Cuatro."},
			count: 3,
			want:  []string{"Una.", "Dos.", "Tres."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize("sol", tt.input, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("Sanitize() returned %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Sanitize()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSanitize_NeverEmptyOrShort(t *testing.T) {
	// Cancelled generation may yield blank strings; they must never be
	// published.
	got := Sanitize("sol", []string{"", "", ""}, 3)

	if len(got) != 3 {
		t.Fatalf("Sanitize() returned %d lines, want 3", len(got))
	}
	for _, line := range got {
		if line == "" {
			t.Error("Sanitize() published an empty sentence")
		}
	}
}

type failingGenerator struct {
	calls int
}

func (f *failingGenerator) Generate(ctx context.Context, word string, count int) ([]string, error) {
	f.calls++
	return nil, errors.New("backend down")
}

func (f *failingGenerator) Name() string       { return "failing" }
func (f *failingGenerator) IsAvailable() error { return nil }

func TestBreakerGenerator_OpensAfterFailures(t *testing.T) {
	inner := &failingGenerator{}
	gen := NewBreakerGenerator(inner)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := gen.Generate(ctx, "sol", 3); err == nil {
			t.Fatal("Generate() should fail while backend is down")
		}
	}

	// After three consecutive failures the breaker is open and stops
	// hitting the backend.
	if inner.calls != 3 {
		t.Errorf("Backend called %d times, want 3 before breaker opens", inner.calls)
	}
}
