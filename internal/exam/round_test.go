package exam

import (
	"fmt"
	"testing"

	"codeberg.org/snonux/palabra/internal/vocab"
)

func buildPool(n int) []vocab.WordPair {
	pool := make([]vocab.WordPair, n)
	for i := range pool {
		pool[i] = vocab.WordPair{
			Spanish: fmt.Sprintf("palabra%d", i),
			English: fmt.Sprintf("word%d", i),
		}
	}
	return pool
}

func TestBuildRound_OptionCount(t *testing.T) {
	pool := buildPool(10)
	round := BuildRound(pool, 4)

	if len(round.Questions) != 10 {
		t.Fatalf("BuildRound() created %d questions, want 10", len(round.Questions))
	}

	for i, q := range round.Questions {
		if len(q.Options) != 4 {
			t.Errorf("Question %d has %d options, want 4", i, len(q.Options))
		}

		// Options must be distinct and contain the answer exactly once.
		seen := make(map[string]int)
		for _, opt := range q.Options {
			seen[opt]++
		}
		for opt, count := range seen {
			if count != 1 {
				t.Errorf("Question %d option %q appears %d times", i, opt, count)
			}
		}
		if seen[q.Answer] != 1 {
			t.Errorf("Question %d answer %q appears %d times in options, want 1", i, q.Answer, seen[q.Answer])
		}
	}
}

func TestBuildRound_SmallPoolDegrades(t *testing.T) {
	pool := buildPool(2)
	round := BuildRound(pool, 4)

	for i, q := range round.Questions {
		// Only one other word is available as a distractor.
		if len(q.Options) != 2 {
			t.Errorf("Question %d has %d options, want 2", i, len(q.Options))
		}
	}
}

func TestRoundScore_AllCorrect(t *testing.T) {
	round := BuildRound(buildPool(5), 4)

	answers := make(map[int]string)
	for i, q := range round.Questions {
		answers[i] = q.Answer
	}

	result := round.Score(answers)
	if result.Score != 5 || result.Total != 5 {
		t.Errorf("Score() = %d/%d, want 5/5", result.Score, result.Total)
	}
	if result.Percentage() != 100 {
		t.Errorf("Percentage() = %f, want 100", result.Percentage())
	}
}

func TestRoundScore_UnansweredIncorrect(t *testing.T) {
	round := BuildRound(buildPool(4), 4)

	// Answer only the first question.
	answers := map[int]string{0: round.Questions[0].Answer}

	result := round.Score(answers)
	if result.Score != 1 {
		t.Errorf("Score() = %d, want 1", result.Score)
	}
	if !result.Correct[0] {
		t.Error("Question 0 should be correct")
	}
	for i := 1; i < 4; i++ {
		if result.Correct[i] {
			t.Errorf("Unanswered question %d marked correct", i)
		}
	}
}

func TestRoundScore_EmptyRound(t *testing.T) {
	round := BuildRound(nil, 4)

	result := round.Score(nil)
	if result.Total != 0 || result.Score != 0 {
		t.Errorf("Score() = %d/%d, want 0/0", result.Score, result.Total)
	}
	if result.Percentage() != 0 {
		t.Errorf("Percentage() = %f, want 0 for empty round", result.Percentage())
	}
}

func TestRoundScore_RecordsSelection(t *testing.T) {
	round := BuildRound(buildPool(3), 4)

	answers := map[int]string{1: "wrong answer"}
	round.Score(answers)

	if round.Questions[1].Selected != "wrong answer" {
		t.Errorf("Selected = %q, want %q", round.Questions[1].Selected, "wrong answer")
	}
	if round.Questions[0].Selected != "" {
		t.Errorf("Selected = %q for unanswered question, want empty", round.Questions[0].Selected)
	}
}
