// Package processor wires the configured collaborators (speech,
// images, sentences) into a running drill session or a one-shot deck
// export.
package processor
