package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider using the espeak-ng engine. It
// works offline and serves as the fallback when no OpenAI key is
// configured.
type ESpeakProvider struct {
	config *Config
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if config.ESpeakVoice == "" {
		config.ESpeakVoice = "es"
	}
	if config.ESpeakSpeed <= 0 {
		config.ESpeakSpeed = 150
	}
	return &ESpeakProvider{config: config}, nil
}

// GenerateAudio generates audio using espeak-ng. espeak-ng only writes
// WAV; an mp3 output file is produced via ffmpeg.
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	wavFile := outputFile
	needsConversion := strings.ToLower(filepath.Ext(outputFile)) == ".mp3"
	if needsConversion {
		wavFile = strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"
	}

	cmd := exec.CommandContext(ctx, "espeak-ng",
		"-v", p.config.ESpeakVoice,
		"-s", fmt.Sprintf("%d", p.config.ESpeakSpeed),
		"-w", wavFile,
		text,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	if !needsConversion {
		return nil
	}

	convert := exec.CommandContext(ctx, "ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", outputFile)
	output, err := convert.CombinedOutput()
	os.Remove(wavFile)
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak"
}

// IsAvailable verifies that espeak-ng is on the PATH
func (p *ESpeakProvider) IsAvailable() error {
	if err := exec.Command("espeak-ng", "--version").Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
