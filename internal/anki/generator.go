// Package anki exports the loaded vocabulary as Anki flashcards,
// either as a CSV for manual import or as a ready-to-open .apkg
// package.
package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// Card represents a single flashcard: the Spanish word, its English
// translation and any example sentences shown during the session.
type Card struct {
	Spanish   string
	English   string
	Sentences []string
}

// Generator collects cards and writes them out in Anki formats
type Generator struct {
	deckName string
	cards    []Card
}

// NewGenerator creates a generator for the named deck
func NewGenerator(deckName string) *Generator {
	if deckName == "" {
		deckName = "Spanish Vocabulary"
	}
	return &Generator{deckName: deckName}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddPairs adds a card for each word pair. Sentences for a word are
// looked up in the given map, keyed by the Spanish word; missing
// entries yield cards without sentences.
func (g *Generator) AddPairs(pairs []vocab.WordPair, sentences map[string][]string) {
	for _, pair := range pairs {
		g.AddCard(Card{
			Spanish:   pair.Spanish,
			English:   pair.English,
			Sentences: sentences[pair.Spanish],
		})
	}
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// GenerateCSV writes the cards as a CSV file for Anki's text import
func (g *Generator) GenerateCSV(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Spanish", "English", "Sentences"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for _, card := range g.cards {
		record := []string{
			card.Spanish,
			card.English,
			strings.Join(card.Sentences, " / "),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// GenerateAPKG writes the cards as an .apkg package ready for Anki
func (g *Generator) GenerateAPKG(outputPath string) error {
	apkg := newAPKGWriter(g.deckName)
	for _, card := range g.cards {
		apkg.addCard(card)
	}
	return apkg.write(outputPath)
}

// Stats returns the card count and how many carry sentences
func (g *Generator) Stats() (totalCards, withSentences int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if len(card.Sentences) > 0 {
			withSentences++
		}
	}
	return
}
