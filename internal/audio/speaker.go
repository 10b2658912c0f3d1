package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/snonux/palabra/internal"
)

// Speaker synthesizes text into a temporary audio file and plays it.
// The audio device is the one genuinely shared resource in the
// process: a mutex around synthesize+play guarantees at most one sound
// plays at a time; a second request waits its turn.
type Speaker struct {
	provider Provider
	player   *Player
	tempDir  string
	mu       sync.Mutex
}

// NewSpeaker creates a speaker with its own temp directory for audio
// files. Call Close to remove it.
func NewSpeaker(provider Provider, player *Player) (*Speaker, error) {
	tempDir, err := os.MkdirTemp("", "palabra_audio_*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &Speaker{
		provider: provider,
		player:   player,
		tempDir:  tempDir,
	}, nil
}

// SynthesizeAndPlay generates speech for the text and plays it,
// blocking until the device is free and playback completes. The
// temporary audio file is removed afterwards. A context cancelled
// before playback starts skips the playback; the synthesized file is
// still cleaned up.
func (s *Speaker) SynthesizeAndPlay(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	audioFile := filepath.Join(s.tempDir, internal.TempAudioName())
	defer os.Remove(audioFile)

	if err := s.provider.GenerateAudio(ctx, text, audioFile); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return s.player.Play(audioFile)
}

// Cleanup removes any leftover temporary audio files
func (s *Speaker) Cleanup() error {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		os.Remove(filepath.Join(s.tempDir, entry.Name()))
	}
	return nil
}

// Close removes the temp directory and all files in it
func (s *Speaker) Close() error {
	return os.RemoveAll(s.tempDir)
}
