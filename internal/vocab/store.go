package vocab

import (
	"errors"
	"math/rand"
)

// ErrNoWords is returned when the store has no vocabulary loaded
var ErrNoWords = errors.New("no vocabulary loaded")

// Store holds the word list as a shuffled queue. Each pass through the
// queue shows every word exactly once; when the cursor reaches the end
// the list is reshuffled and the cursor reset, so a new pass begins in
// a fresh random order.
//
// The store is not safe for concurrent use. It is owned by the session
// controller and only touched on the dispatcher surface.
type Store struct {
	words  []WordPair
	cursor int
}

// NewStore creates an empty vocabulary store
func NewStore() *Store {
	return &Store{}
}

// Load replaces the word list, shuffles it and resets the cursor.
// An empty input leaves an empty store, the caller handles the
// "no vocabulary" state.
func (s *Store) Load(pairs []WordPair) {
	s.words = make([]WordPair, len(pairs))
	copy(s.words, pairs)
	s.cursor = 0
	s.shuffle()
}

// Next returns the word at the cursor and advances it. When the cursor
// would run past the end, the list is reshuffled and the cursor reset
// before returning, so Next never returns past-the-end and every word
// is seen once per pass.
func (s *Store) Next() (WordPair, error) {
	if len(s.words) == 0 {
		return WordPair{}, ErrNoWords
	}

	if s.cursor >= len(s.words) {
		s.cursor = 0
		s.shuffle()
	}

	word := s.words[s.cursor]
	s.cursor++
	return word, nil
}

// Add appends a pair to the live list without reshuffling or resetting
// the cursor. New words surface once the current pass completes.
func (s *Store) Add(pair WordPair) {
	s.words = append(s.words, pair)
}

// Len returns the number of words in the store
func (s *Store) Len() int {
	return len(s.words)
}

// Empty reports whether no vocabulary is loaded
func (s *Store) Empty() bool {
	return len(s.words) == 0
}

func (s *Store) shuffle() {
	rand.Shuffle(len(s.words), func(i, j int) {
		s.words[i], s.words[j] = s.words[j], s.words[i]
	})
}
