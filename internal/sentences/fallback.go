package sentences

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// templates are the canned sentence patterns used when no AI backend
// is usable. %s is replaced with the word.
var templates = []string{
	"Me gusta mucho %s.",
	"%s es muy importante.",
	"Necesito %s para mi vida diaria.",
	"Sin %s no puedo vivir.",
	"%s me ayuda mucho.",
	"Todos necesitamos %s.",
	"%s está en mi casa.",
	"Compré %s ayer.",
	"Busco %s en la tienda.",
	"Este es un ejemplo con la palabra %s.",
	"Podemos usar %s en diferentes contextos.",
	"La palabra %s es útil en español.",
}

// Fallback returns count template sentences for the word, sampled
// without replacement from the pattern pool. The result never contains
// an empty string and is never shorter than count.
func Fallback(word string, count int) []string {
	if count <= 0 {
		count = PerWord
	}

	sample := count
	if sample > len(templates) {
		sample = len(templates)
	}

	lines := lo.Map(lo.Samples(templates, sample), func(pattern string, _ int) string {
		return fmt.Sprintf(pattern, word)
	})

	for i := len(lines); i < count; i++ {
		lines = append(lines, fmt.Sprintf("Ejemplo %d con %s.", i+1, word))
	}

	return lines
}

var listPrefix = regexp.MustCompile(`^\s*(?:\d+[.)]\s*|[-*]\s+)`)

// Sanitize cleans raw backend output into exactly count publishable
// sentences: list numbering is stripped, blank lines are dropped,
// excess lines are truncated and missing ones are filled from the
// template pool. The result never contains an empty string.
func Sanitize(word string, lines []string, count int) []string {
	if count <= 0 {
		count = PerWord
	}

	cleaned := make([]string, 0, count)
	for _, line := range lines {
		line = strings.TrimSpace(listPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
		if len(cleaned) == count {
			break
		}
	}

	if len(cleaned) < count {
		for _, filler := range Fallback(word, count-len(cleaned)) {
			cleaned = append(cleaned, filler)
		}
	}

	return cleaned
}
