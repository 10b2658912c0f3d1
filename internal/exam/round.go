package exam

import (
	"github.com/samber/lo"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// Question is a single matching question: a Spanish prompt and a set of
// English options containing the correct translation exactly once.
type Question struct {
	Prompt   vocab.WordPair
	Options  []string
	Answer   string // the correct English translation
	Selected string // the user's choice, empty if unanswered
}

// Round is one exam: an ordered set of questions built from a word
// pool. It lives until the user closes the results view and is never
// persisted.
type Round struct {
	Questions []Question
}

// Result summarizes a scored round
type Result struct {
	Score   int
	Total   int
	Correct []bool // per-question correctness, index-aligned with Questions
}

// Percentage returns the score as a percentage, 0 for an empty round
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}

// BuildRound builds an exam round from the given pool. Each question's
// distractors are sampled without replacement from the other pool
// words' translations; when the pool is smaller than choicesCount the
// option count degrades to what is available. Option order is shuffled
// independently per question.
func BuildRound(pool []vocab.WordPair, choicesCount int) *Round {
	if choicesCount <= 0 {
		choicesCount = DefaultChoicesCount
	}

	round := &Round{Questions: make([]Question, 0, len(pool))}

	for _, word := range pool {
		correct := word.English

		candidates := lo.Uniq(lo.FilterMap(pool, func(other vocab.WordPair, _ int) (string, bool) {
			return other.English, other != word && other.English != correct
		}))

		options := lo.Samples(candidates, choicesCount-1)
		options = append(options, correct)
		options = lo.Shuffle(options)

		round.Questions = append(round.Questions, Question{
			Prompt:  word,
			Options: options,
			Answer:  correct,
		})
	}

	return round
}

// Score evaluates the answers, a mapping from question index to the
// selected option. A question is correct iff the selection equals its
// recorded answer; unanswered counts as incorrect. Total always equals
// the pool size.
func (r *Round) Score(answers map[int]string) Result {
	result := Result{
		Total:   len(r.Questions),
		Correct: make([]bool, len(r.Questions)),
	}

	for i := range r.Questions {
		r.Questions[i].Selected = answers[i]
		if r.Questions[i].Selected == r.Questions[i].Answer {
			result.Score++
			result.Correct[i] = true
		}
	}

	return result
}
