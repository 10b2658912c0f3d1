package exam

import (
	"codeberg.org/snonux/palabra/internal/vocab"
)

// Default exam policy values
const (
	DefaultTriggerInterval = 10 // exam fires after this many words
	DefaultWordCount       = 20 // words per exam round
	DefaultChoicesCount    = 4  // multiple choice options per question
)

// Selector tracks recently shown words and decides when an exam round
// should fire. It keeps a bounded window of recent words as the
// question pool; after each exam the window shrinks to half the pool
// size so consecutive rounds retain some continuity without growing
// without bound.
//
// Not safe for concurrent use; owned by the session controller.
type Selector struct {
	triggerInterval int
	wordCount       int

	recent    []vocab.WordPair
	sinceLast int
}

// NewSelector creates a selector with the given trigger interval and
// pool size. Non-positive values fall back to the defaults.
func NewSelector(triggerInterval, wordCount int) *Selector {
	if triggerInterval <= 0 {
		triggerInterval = DefaultTriggerInterval
	}
	if wordCount <= 0 {
		wordCount = DefaultWordCount
	}
	return &Selector{
		triggerInterval: triggerInterval,
		wordCount:       wordCount,
	}
}

// RecordShown notes that a word was shown to the user
func (s *Selector) RecordShown(pair vocab.WordPair) {
	s.recent = append(s.recent, pair)
	s.sinceLast++
}

// ShouldFire reports whether an exam round is due
func (s *Selector) ShouldFire() bool {
	return s.sinceLast >= s.triggerInterval && len(s.recent) >= s.triggerInterval
}

// TakePool returns the question pool for a firing exam: the last
// min(len(recent), wordCount) recorded words. It resets the
// words-since-last-exam counter and shrinks the recent window to its
// last wordCount/2 entries.
func (s *Selector) TakePool() []vocab.WordPair {
	n := len(s.recent)
	poolSize := s.wordCount
	if n < poolSize {
		poolSize = n
	}

	pool := make([]vocab.WordPair, poolSize)
	copy(pool, s.recent[n-poolSize:])

	s.sinceLast = 0

	keep := s.wordCount / 2
	if keep > len(s.recent) {
		keep = len(s.recent)
	}
	s.recent = append([]vocab.WordPair(nil), s.recent[len(s.recent)-keep:]...)

	return pool
}

// WordsSinceLastExam returns the current trigger counter
func (s *Selector) WordsSinceLastExam() int {
	return s.sinceLast
}

// RecentCount returns the size of the recent-words window
func (s *Selector) RecentCount() int {
	return len(s.recent)
}
