package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile          string
	TranslationDelay int // milliseconds before the translation reveals
	ExamInterval     int
	ExamWordCount    int
	ExamChoices      int
	SentenceCount    int
	ImageTimeout     int // seconds per image search request
	SkipAudio        bool
	SkipImages       bool
	ListModels       bool
	Archive          bool

	// Anki export flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	ExportDir    string

	// Audio flags
	AudioProvider     string
	AudioFormat       string
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
	ESpeakVoice       string
	ESpeakSpeed       int

	// Sentence generation flags
	SentenceProvider string
	SentenceModel    string
	OpenAIBaseURL    string
	GeminiModel      string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	home, _ := os.UserHomeDir()
	return &Flags{
		ExportDir:        filepath.Join(home, ".local", "state", "palabra", "exports"),
		TranslationDelay: 5000,
		ExamInterval:     10,
		ExamWordCount:    20,
		ExamChoices:      4,
		SentenceCount:    3,
		ImageTimeout:     5,
		DeckName:         "Spanish Vocabulary",
		AudioProvider:    "openai",
		AudioFormat:      "mp3",
		OpenAIModel:      "gpt-4o-mini-tts",
		OpenAISpeed:      0.9,
		ESpeakVoice:      "es",
		ESpeakSpeed:      150,
		SentenceProvider: "openai",
		SentenceModel:    "gpt-4o-mini",
		GeminiModel:      "gemini-2.0-flash",
	}
}
