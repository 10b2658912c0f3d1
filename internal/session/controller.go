package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/palabra/internal/exam"
	"codeberg.org/snonux/palabra/internal/vocab"
)

// View is the presentation surface the controller renders into. All
// methods are invoked on the dispatcher surface; implementations must
// not block.
type View interface {
	// ShowWord displays a new word with its translation hidden and
	// previous image/sentences cleared. aiSentences tells the view
	// whether AI sentences are being generated or canned examples are
	// loading.
	ShowWord(pair vocab.WordPair, aiSentences bool)
	// ShowTranslation reveals the translation of the current word
	ShowTranslation(text string)
	// ShowImage displays the fetched image bytes for the current word
	ShowImage(data []byte)
	// ShowSentences displays the example sentences for the current word
	ShowSentences(lines []string)
	// ShowExam presents an exam round for answering
	ShowExam(round *exam.Round)
	// ShowScore presents the result of a submitted round
	ShowScore(round *exam.Round, result exam.Result)
	// Warn reports a non-fatal user-facing condition
	Warn(msg string)
}

// Capabilities records which optional collaborators are usable. It is
// probed once at process start and injected, replacing any ambient
// global availability state.
type Capabilities struct {
	AISentences bool
}

// ControllerConfig holds session tunables
type ControllerConfig struct {
	TranslationDelay time.Duration // delay before revealing the translation
	ExamInterval     int           // words between exams
	ExamWordCount    int           // pool size per exam
	ExamChoices      int           // options per question
}

// DefaultControllerConfig returns the default session configuration
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		TranslationDelay: 5000 * time.Millisecond,
		ExamInterval:     exam.DefaultTriggerInterval,
		ExamWordCount:    exam.DefaultWordCount,
		ExamChoices:      exam.DefaultChoicesCount,
	}
}

// Controller orchestrates the drilling session: advancing turns,
// launching background fetches, scheduling the delayed translation
// reveal and firing exam rounds. Every public operation must run on
// the dispatcher surface; the front end dispatches user commands onto
// it.
type Controller struct {
	store    *vocab.Store
	coord    *Coordinator
	selector *exam.Selector
	disp     *Dispatcher
	view     View
	caps     Capabilities
	cfg      ControllerConfig
	logger   *zap.Logger

	round       *exam.Round
	revealTimer *time.Timer
	sentences   []string
}

// NewController wires a session controller
func NewController(store *vocab.Store, coord *Coordinator, disp *Dispatcher, view View, caps Capabilities, cfg ControllerConfig, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	def := DefaultControllerConfig()
	if cfg.TranslationDelay <= 0 {
		cfg.TranslationDelay = def.TranslationDelay
	}
	if cfg.ExamChoices <= 0 {
		cfg.ExamChoices = def.ExamChoices
	}
	return &Controller{
		store:    store,
		coord:    coord,
		selector: exam.NewSelector(cfg.ExamInterval, cfg.ExamWordCount),
		disp:     disp,
		view:     view,
		caps:     caps,
		cfg:      cfg,
		logger:   logger,
	}
}

// LoadVocabulary replaces the store contents from a parsed pair list
func (c *Controller) LoadVocabulary(pairs []vocab.WordPair) {
	if len(pairs) == 0 {
		c.view.Warn("vocabulary file contained no usable entries")
		return
	}
	c.store.Load(pairs)
	c.logger.Info("vocabulary loaded", zap.Int("words", len(pairs)))
}

// LoadFile loads a vocabulary file into the store. On a read error the
// store is left in its previous state.
func (c *Controller) LoadFile(path string) {
	pairs, err := vocab.LoadFile(path)
	if err != nil {
		c.logger.Warn("vocabulary load failed", zap.String("path", path), zap.Error(err))
		c.view.Warn(fmt.Sprintf("failed to load vocabulary: %v", err))
		return
	}
	c.LoadVocabulary(pairs)
}

// AddWord appends a new pair to the live vocabulary
func (c *Controller) AddWord(spanish, english string) {
	if spanish == "" || english == "" {
		c.view.Warn("both the word and its translation are required")
		return
	}
	c.store.Add(vocab.WordPair{Spanish: spanish, English: english})
	c.logger.Info("word added", zap.String("spanish", spanish), zap.String("english", english))
}

// Advance moves the session to the next word: supersedes the current
// turn, starts the background fetches for the new one, schedules the
// delayed translation reveal and fires an exam round when due.
// A no-op reporting "no vocabulary" when the store is empty.
func (c *Controller) Advance() {
	if c.store.Empty() {
		c.view.Warn("no vocabulary loaded")
		return
	}

	if c.revealTimer != nil {
		c.revealTimer.Stop()
	}

	word, err := c.store.Next()
	if err != nil {
		// Unreachable after the empty check, kept for safety.
		c.view.Warn("no vocabulary loaded")
		return
	}

	turn := c.coord.BeginTurn(word)
	c.sentences = nil
	c.view.ShowWord(word, c.caps.AISentences)

	c.coord.RunSpeech(turn, word.Spanish)
	c.coord.RunImage(turn, word.English, func(data []byte) {
		c.view.ShowImage(data)
	})
	c.coord.RunSentences(turn, word.Spanish, func(lines []string) {
		c.sentences = lines
		c.view.ShowSentences(lines)
	})

	c.revealTimer = c.disp.After(c.cfg.TranslationDelay, func() {
		if turn.Cancelled() {
			return
		}
		c.view.ShowTranslation(word.English)
	})

	c.selector.RecordShown(word)
	if c.round == nil && c.selector.ShouldFire() {
		pool := c.selector.TakePool()
		c.round = exam.BuildRound(pool, c.cfg.ExamChoices)
		c.logger.Info("exam round started", zap.Int("questions", len(c.round.Questions)))
		c.view.ShowExam(c.round)
	}
}

// SubmitExam scores the open round against the given answers,
// a mapping from question index to selected option
func (c *Controller) SubmitExam(answers map[int]string) {
	if c.round == nil {
		c.view.Warn("no exam in progress")
		return
	}
	result := c.round.Score(answers)
	c.logger.Info("exam scored",
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
		zap.Float64("percentage", result.Percentage()))
	c.view.ShowScore(c.round, result)
}

// CloseExam discards the open round
func (c *Controller) CloseExam() {
	c.round = nil
}

// Round returns the open exam round, nil when none is in progress
func (c *Controller) Round() *exam.Round {
	return c.round
}

// Sentence returns the published sentence at the given index for the
// current word
func (c *Controller) Sentence(i int) (string, bool) {
	if i < 0 || i >= len(c.sentences) {
		return "", false
	}
	return c.sentences[i], true
}

// SaySentence replays one of the current word's sentences through the
// speaker on the current turn
func (c *Controller) SaySentence(i int) {
	sentence, ok := c.Sentence(i)
	if !ok {
		c.view.Warn("no such sentence")
		return
	}
	turn := c.coord.Current()
	if turn == nil {
		return
	}
	c.coord.RunSpeech(turn, sentence)
}

// Shutdown cancels the live turn and any pending reveal
func (c *Controller) Shutdown() {
	if c.revealTimer != nil {
		c.revealTimer.Stop()
	}
	c.coord.CancelCurrent()
}
