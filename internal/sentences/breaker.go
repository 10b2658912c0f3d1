package sentences

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerGenerator wraps a Generator with a circuit breaker so a
// flapping AI backend fails fast instead of delaying every word. While
// the breaker is open, Generate errors immediately and the caller's
// template fallback takes over.
type BreakerGenerator struct {
	inner Generator
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerGenerator wraps the given backend with a circuit breaker
func NewBreakerGenerator(inner Generator) Generator {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name() + "-sentences",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &BreakerGenerator{inner: inner, cb: cb}
}

// Generate delegates to the wrapped backend through the breaker
func (b *BreakerGenerator) Generate(ctx context.Context, word string, count int) ([]string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Generate(ctx, word, count)
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

// Name returns the wrapped backend's name
func (b *BreakerGenerator) Name() string {
	return b.inner.Name()
}

// IsAvailable delegates to the wrapped backend
func (b *BreakerGenerator) IsAvailable() error {
	return b.inner.IsAvailable()
}
