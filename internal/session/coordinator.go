package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/palabra/internal/sentences"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// Speaker synthesizes speech for a text and plays it through the audio
// device. Implementations serialize playback so only one sound plays
// at a time.
type Speaker interface {
	SynthesizeAndPlay(ctx context.Context, text string) error
}

// ImageSearcher looks up an illustrative image for a query. A nil
// result with a nil error means no image was found, including on
// request timeout.
type ImageSearcher interface {
	SearchFirstImage(ctx context.Context, query string) ([]byte, error)
}

// SentenceGenerator produces example sentences for a word. On
// cancellation mid-call it may return incomplete or empty strings;
// the coordinator never publishes those.
type SentenceGenerator interface {
	Generate(ctx context.Context, word string, count int) ([]string, error)
}

// CoordinatorConfig holds tunables for background fetches
type CoordinatorConfig struct {
	ImageTimeout  time.Duration // per-request image search timeout
	SentenceCount int           // example sentences per word
}

// DefaultCoordinatorConfig returns the default fetch configuration
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		ImageTimeout:  5 * time.Second,
		SentenceCount: sentences.PerWord,
	}
}

// Coordinator runs the cancellable background fetches (speech, image,
// sentences) for the current turn and guarantees that results from a
// superseded turn never reach the application state. BeginTurn and the
// publish callbacks all execute on the dispatcher surface, so flag
// checks and cancellation never interleave.
type Coordinator struct {
	disp      *Dispatcher
	speaker   Speaker
	images    ImageSearcher
	sentences SentenceGenerator
	cfg       CoordinatorConfig
	logger    *zap.Logger

	current *Turn
	nextID  int64
}

// NewCoordinator creates a coordinator. Any collaborator may be nil,
// in which case the corresponding fetch is skipped.
func NewCoordinator(disp *Dispatcher, speaker Speaker, images ImageSearcher, gen SentenceGenerator, cfg CoordinatorConfig, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ImageTimeout <= 0 {
		cfg.ImageTimeout = DefaultCoordinatorConfig().ImageTimeout
	}
	if cfg.SentenceCount <= 0 {
		cfg.SentenceCount = sentences.PerWord
	}
	return &Coordinator{
		disp:      disp,
		speaker:   speaker,
		images:    images,
		sentences: gen,
		cfg:       cfg,
		logger:    logger,
	}
}

// BeginTurn supersedes the current turn (if any) and allocates a new
// live one. Must be called on the dispatcher surface.
func (c *Coordinator) BeginTurn(word vocab.WordPair) *Turn {
	if c.current != nil {
		c.current.cancel()
	}
	c.nextID++
	c.current = newTurn(word, c.nextID)
	return c.current
}

// Current returns the live turn, nil before the first advance
func (c *Coordinator) Current() *Turn {
	return c.current
}

// CancelCurrent supersedes the live turn without starting a new one.
// Used on shutdown.
func (c *Coordinator) CancelCurrent() {
	if c.current != nil {
		c.current.cancel()
	}
}

// RunSpeech speaks the given text on a worker goroutine. Playback is
// serialized by the speaker; a failure is logged, never surfaced.
func (c *Coordinator) RunSpeech(turn *Turn, text string) {
	if c.speaker == nil {
		return
	}
	go func() {
		err := c.speaker.SynthesizeAndPlay(turn.Context(), text)
		c.disp.Dispatch(func() {
			if turn.Cancelled() {
				return
			}
			if err != nil {
				c.logger.Warn("speech failed", zap.String("text", text), zap.Error(err))
			}
		})
	}()
}

// RunImage fetches an image for the query on a worker goroutine and
// publishes the bytes through the dispatcher. A timeout or a miss is
// not an error, the word is simply shown without an image.
func (c *Coordinator) RunImage(turn *Turn, query string, publish func(data []byte)) {
	if c.images == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(turn.Context(), c.cfg.ImageTimeout)
		defer cancel()

		data, err := c.images.SearchFirstImage(ctx, query)
		c.disp.Dispatch(func() {
			if turn.Cancelled() {
				return
			}
			if err != nil {
				c.logger.Warn("image search failed", zap.String("query", query), zap.Error(err))
				return
			}
			if data != nil {
				publish(data)
			}
		})
	}()
}

// RunSentences generates example sentences on a worker goroutine and
// publishes them through the dispatcher. When the generator is missing
// or fails, template sentences substitute so the published list is
// never empty and never shorter than requested.
func (c *Coordinator) RunSentences(turn *Turn, word string, publish func(lines []string)) {
	go func() {
		lines := c.generateSentences(turn.Context(), word)
		c.disp.Dispatch(func() {
			if turn.Cancelled() {
				return
			}
			publish(lines)
		})
	}()
}

func (c *Coordinator) generateSentences(ctx context.Context, word string) []string {
	count := c.cfg.SentenceCount

	if c.sentences == nil {
		return sentences.Fallback(word, count)
	}

	lines, err := c.sentences.Generate(ctx, word, count)
	if err != nil {
		c.logger.Warn("sentence generation failed, using fallback",
			zap.String("word", word), zap.Error(err))
		return sentences.Fallback(word, count)
	}

	return sentences.Sanitize(word, lines, count)
}
