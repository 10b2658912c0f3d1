package internal

import (
	"fmt"

	"github.com/google/uuid"
)

// TempAudioPrefix is the filename prefix for temporary speech files
const TempAudioPrefix = "speech_"

// TempAudioName returns a unique filename for a temporary speech file
func TempAudioName() string {
	return fmt.Sprintf("%s%s.mp3", TempAudioPrefix, uuid.NewString())
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isWordRune(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isWordRune checks if a rune is safe for filenames, including accented
// Spanish letters
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 'À' && r <= 'ÿ')
}
