// Package sentences generates Spanish example sentences for a word,
// either through an AI backend (OpenAI-compatible or Gemini) or from a
// deterministic template pool when no backend is usable.
package sentences
