package cli

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"TranslationDelay", flags.TranslationDelay, 5000},
		{"ExamInterval", flags.ExamInterval, 10},
		{"ExamWordCount", flags.ExamWordCount, 20},
		{"ExamChoices", flags.ExamChoices, 4},
		{"SentenceCount", flags.SentenceCount, 3},
		{"ImageTimeout", flags.ImageTimeout, 5},
		{"DeckName", flags.DeckName, "Spanish Vocabulary"},
		{"AudioProvider", flags.AudioProvider, "openai"},
		{"AudioFormat", flags.AudioFormat, "mp3"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAISpeed", flags.OpenAISpeed, 0.9},
		{"ESpeakVoice", flags.ESpeakVoice, "es"},
		{"ESpeakSpeed", flags.ESpeakSpeed, 150},
		{"SentenceProvider", flags.SentenceProvider, "openai"},
		{"SentenceModel", flags.SentenceModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"SkipAudio", flags.SkipAudio},
		{"SkipImages", flags.SkipImages},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"ListModels", flags.ListModels},
		{"Archive", flags.Archive},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OpenAIVoice", flags.OpenAIVoice},
		{"OpenAIInstruction", flags.OpenAIInstruction},
		{"OpenAIBaseURL", flags.OpenAIBaseURL},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if !strings.HasSuffix(flags.ExportDir, filepath.Join("palabra", "exports")) {
		t.Errorf("ExportDir = %q, want a palabra/exports default", flags.ExportDir)
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "TranslationDelay", "ExamInterval", "ExamWordCount",
		"ExamChoices", "SentenceCount", "ImageTimeout",
		"SkipAudio", "SkipImages", "ListModels", "Archive",
		"GenerateAnki", "AnkiCSV", "DeckName", "ExportDir",
		"AudioProvider", "AudioFormat",
		"OpenAIModel", "OpenAIVoice", "OpenAISpeed", "OpenAIInstruction",
		"ESpeakVoice", "ESpeakSpeed",
		"SentenceProvider", "SentenceModel", "OpenAIBaseURL", "GeminiModel",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
