package anki

import (
	"archive/zip"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/palabra/internal/vocab"
)

func sampleCards() []Card {
	return []Card{
		{Spanish: "gato", English: "cat", Sentences: []string{"El gato duerme.", "Me gusta el gato."}},
		{Spanish: "perro", English: "dog"},
	}
}

func TestGenerator_AddPairs(t *testing.T) {
	g := NewGenerator("Test Deck")
	pairs := []vocab.WordPair{
		{Spanish: "gato", English: "cat"},
		{Spanish: "perro", English: "dog"},
	}
	g.AddPairs(pairs, map[string][]string{
		"gato": {"El gato duerme."},
	})

	cards := g.Cards()
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if len(cards[0].Sentences) != 1 {
		t.Errorf("gato card has %d sentences, want 1", len(cards[0].Sentences))
	}
	if len(cards[1].Sentences) != 0 {
		t.Errorf("perro card has %d sentences, want 0", len(cards[1].Sentences))
	}
}

func TestGenerator_GenerateCSV(t *testing.T) {
	g := NewGenerator("Test Deck")
	for _, card := range sampleCards() {
		g.AddCard(card)
	}

	outputPath := filepath.Join(t.TempDir(), "export.csv")
	if err := g.GenerateCSV(outputPath); err != nil {
		t.Fatalf("GenerateCSV() unexpected error: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	if len(records) != 3 { // header + 2 cards
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[1][0] != "gato" || records[1][1] != "cat" {
		t.Errorf("first card record = %v", records[1])
	}
	if records[1][2] != "El gato duerme. / Me gusta el gato." {
		t.Errorf("sentences field = %q", records[1][2])
	}
}

func TestGenerator_GenerateAPKG(t *testing.T) {
	g := NewGenerator("Test Deck")
	for _, card := range sampleCards() {
		g.AddCard(card)
	}

	outputPath := filepath.Join(t.TempDir(), "export.apkg")
	if err := g.GenerateAPKG(outputPath); err != nil {
		t.Fatalf("GenerateAPKG() unexpected error: %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}
	defer reader.Close()

	names := make(map[string]bool)
	for _, f := range reader.File {
		names[f.Name] = true
	}
	if !names["collection.anki2"] {
		t.Error("package is missing collection.anki2")
	}
	if !names["media"] {
		t.Error("package is missing the media mapping")
	}
}

func TestGenerator_Stats(t *testing.T) {
	g := NewGenerator("")
	for _, card := range sampleCards() {
		g.AddCard(card)
	}

	total, withSentences := g.Stats()
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if withSentences != 1 {
		t.Errorf("withSentences = %d, want 1", withSentences)
	}
}
