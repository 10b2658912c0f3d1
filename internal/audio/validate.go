package audio

import (
	"fmt"
	"unicode"
)

// ValidateText performs basic validation of text before synthesis
func ValidateText(text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			return nil
		}
	}

	return fmt.Errorf("text must contain at least one letter")
}
