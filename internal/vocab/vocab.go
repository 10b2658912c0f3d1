package vocab

import (
	"fmt"
	"os"
	"strings"
)

// WordPair is a single vocabulary entry. Immutable once created,
// equality by value.
type WordPair struct {
	Spanish string
	English string
}

// Parse reads vocabulary entries from text in the format
// "english,spanish" (one entry per line). Trailing comma-separated
// fields are ignored. Lines with fewer than two fields are skipped,
// they are not errors.
func Parse(text string) []WordPair {
	var pairs []WordPair

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		english := strings.TrimSpace(parts[0])
		spanish := strings.TrimSpace(parts[1])
		if english == "" || spanish == "" {
			continue
		}

		pairs = append(pairs, WordPair{Spanish: spanish, English: english})
	}

	return pairs
}

// LoadFile reads and parses a vocabulary file
func LoadFile(path string) ([]WordPair, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return Parse(string(content)), nil
}
