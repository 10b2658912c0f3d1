package session

import (
	"context"

	"codeberg.org/snonux/palabra/internal/vocab"
)

// Turn represents one word's active session. A turn is superseded the
// moment the user advances to the next word; at most one turn is live
// at any time. Background tasks carry their originating turn and must
// re-check Cancelled immediately before publishing a result, so stale
// results from a superseded turn are always discarded.
//
// Cancellation is cooperative: an in-flight worker may keep running to
// completion, its result is simply dropped at publish time.
type Turn struct {
	word   vocab.WordPair
	id     int64
	ctx    context.Context
	cancel context.CancelFunc
}

func newTurn(word vocab.WordPair, id int64) *Turn {
	ctx, cancel := context.WithCancel(context.Background())
	return &Turn{word: word, id: id, ctx: ctx, cancel: cancel}
}

// Word returns the word pair this turn shows
func (t *Turn) Word() vocab.WordPair {
	return t.word
}

// ID returns the turn's monotonically increasing identifier
func (t *Turn) ID() int64 {
	return t.id
}

// Context returns a context that is cancelled when the turn is
// superseded. Workers pass it to network collaborators so wasted work
// is cut short where possible.
func (t *Turn) Context() context.Context {
	return t.ctx
}

// Cancelled reports whether the turn has been superseded
func (t *Turn) Cancelled() bool {
	return t.ctx.Err() != nil
}
