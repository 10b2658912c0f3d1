// Package session coordinates the per-word drilling lifecycle: the
// single-threaded dispatch surface that owns all mutable state, the
// turn bookkeeping that cancels stale background fetches when the user
// advances, and the controller that ties the vocabulary store, the
// collaborators and the exam selector together.
package session
