// Package term is the terminal front end: it renders session output
// and feeds typed commands onto the dispatcher surface.
package term

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/snonux/palabra/internal"
	"codeberg.org/snonux/palabra/internal/exam"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// optionLabel returns the answer label for option index i: a..z, then
// aa, ab, ... so every option stays selectable however wide the
// question is.
func optionLabel(i int) string {
	label := ""
	for {
		label = string(rune('a'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}

// optionIndex is the inverse of optionLabel, -1 for anything that is
// not a label
func optionIndex(label string) int {
	if label == "" {
		return -1
	}
	idx := 0
	for _, r := range label {
		if r < 'a' || r > 'z' {
			return -1
		}
		idx = idx*26 + int(r-'a') + 1
	}
	return idx - 1
}

// View renders session events as terminal output. Fetched images go to
// files in a temp directory, their path is printed so an image viewer
// can open them.
type View struct {
	out          io.Writer
	imageDir     string
	imageCounter int
	currentWord  string
}

// NewView creates a terminal view writing to out. Image files land in
// their own temp directory; call Close to remove it.
func NewView(out io.Writer) (*View, error) {
	imageDir, err := os.MkdirTemp("", "palabra_images_*")
	if err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &View{out: out, imageDir: imageDir}, nil
}

// ShowWord displays a new word with its translation still hidden
func (v *View) ShowWord(pair vocab.WordPair, aiSentences bool) {
	v.currentWord = pair.Spanish
	fmt.Fprintf(v.out, "\n════════════════════════════════\n")
	fmt.Fprintf(v.out, "  %s\n", pair.Spanish)
	fmt.Fprintf(v.out, "════════════════════════════════\n")
	if aiSentences {
		fmt.Fprintln(v.out, "  (generating example sentences...)")
	} else {
		fmt.Fprintln(v.out, "  (loading example sentences...)")
	}
}

// ShowTranslation reveals the translation of the current word
func (v *View) ShowTranslation(text string) {
	fmt.Fprintf(v.out, "  → %s\n", text)
}

// ShowImage writes the image bytes to a file and prints its path
func (v *View) ShowImage(data []byte) {
	v.imageCounter++
	name := fmt.Sprintf("%s_%d.jpg", internal.SanitizeFilename(v.currentWord), v.imageCounter)
	path := filepath.Join(v.imageDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(v.out, "  [image: failed to save: %v]\n", err)
		return
	}
	fmt.Fprintf(v.out, "  [image: %s]\n", path)
}

// ShowSentences prints the example sentences as a numbered list
func (v *View) ShowSentences(lines []string) {
	for i, line := range lines {
		fmt.Fprintf(v.out, "  %d. %s\n", i+1, line)
	}
	fmt.Fprintln(v.out, "  (say N / copy N to hear or copy a sentence)")
}

// ShowExam presents an exam round for answering
func (v *View) ShowExam(round *exam.Round) {
	fmt.Fprintf(v.out, "\n┌─── EXAM: %d questions ───\n", len(round.Questions))
	for i, q := range round.Questions {
		fmt.Fprintf(v.out, "│ %d) %s\n", i+1, q.Prompt.Spanish)
		for j, opt := range q.Options {
			fmt.Fprintf(v.out, "│    %s) %s\n", optionLabel(j), opt)
		}
	}
	fmt.Fprintln(v.out, "└─── answer with: a <question> <letter>, then submit")
}

// ShowScore presents the result of a submitted round
func (v *View) ShowScore(round *exam.Round, result exam.Result) {
	fmt.Fprintf(v.out, "\nScore: %d/%d (%.0f%%)\n", result.Score, result.Total, result.Percentage())
	for i, q := range round.Questions {
		mark := "✗"
		if i < len(result.Correct) && result.Correct[i] {
			mark = "✓"
		}
		fmt.Fprintf(v.out, "  %s %s → %s", mark, q.Prompt.Spanish, q.Answer)
		if q.Selected != "" && q.Selected != q.Answer {
			fmt.Fprintf(v.out, " (you chose %s)", q.Selected)
		}
		fmt.Fprintln(v.out)
	}
	fmt.Fprintln(v.out, "Type close to continue drilling.")
}

// Warn reports a non-fatal user-facing condition
func (v *View) Warn(msg string) {
	fmt.Fprintf(v.out, "! %s\n", msg)
}

// Close removes the image temp directory
func (v *View) Close() error {
	return os.RemoveAll(v.imageDir)
}
