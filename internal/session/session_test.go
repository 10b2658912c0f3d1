package session

import (
	"context"
	"testing"
	"time"

	"codeberg.org/snonux/palabra/internal/exam"
	"codeberg.org/snonux/palabra/internal/vocab"
)

func startDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := NewDispatcher()
	go d.Run()
	t.Cleanup(d.Stop)
	return d
}

// onSurface runs f on the dispatcher goroutine and waits for it to
// finish, so tests can read surface-owned state safely.
func onSurface(d *Dispatcher, f func()) {
	done := make(chan struct{})
	d.Dispatch(func() {
		f()
		close(done)
	})
	<-done
}

func TestDispatcher_RunsCallbacksInOrder(t *testing.T) {
	d := startDispatcher(t)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		d.Dispatch(func() { got = append(got, i) })
	}

	onSurface(d, func() {})
	for i, v := range got {
		if v != i {
			t.Fatalf("callback order %v, want ascending", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("ran %d callbacks, want 5", len(got))
	}
}

func TestDispatcher_AfterFiresOnSurface(t *testing.T) {
	d := startDispatcher(t)

	fired := make(chan struct{})
	d.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("After callback never fired")
	}
}

func TestDispatcher_DispatchAfterStopIsDropped(t *testing.T) {
	d := NewDispatcher()
	d.Stop()

	// Must not block.
	d.Dispatch(func() { t.Error("callback ran after Stop") })
}

func TestCoordinator_BeginTurnCancelsPrevious(t *testing.T) {
	d := startDispatcher(t)
	c := NewCoordinator(d, nil, nil, nil, CoordinatorConfig{}, nil)

	var first, second *Turn
	onSurface(d, func() {
		first = c.BeginTurn(vocab.WordPair{Spanish: "gato", English: "cat"})
		second = c.BeginTurn(vocab.WordPair{Spanish: "perro", English: "dog"})
	})

	if !first.Cancelled() {
		t.Error("first turn should be cancelled after the second begins")
	}
	if second.Cancelled() {
		t.Error("second turn should be live")
	}
	if second.ID() <= first.ID() {
		t.Errorf("turn ids not monotonic: %d then %d", first.ID(), second.ID())
	}
}

// blockingSearcher holds the image fetch until released, so the test
// can supersede the turn while the worker is still in flight.
type blockingSearcher struct {
	release chan struct{}
}

func (b *blockingSearcher) SearchFirstImage(ctx context.Context, query string) ([]byte, error) {
	<-b.release
	return []byte("stale-image"), nil
}

func TestCoordinator_StalePublishNeverLands(t *testing.T) {
	d := startDispatcher(t)
	searcher := &blockingSearcher{release: make(chan struct{})}
	c := NewCoordinator(d, nil, searcher, nil, CoordinatorConfig{ImageTimeout: time.Minute}, nil)

	published := false
	onSurface(d, func() {
		turn := c.BeginTurn(vocab.WordPair{Spanish: "gato", English: "cat"})
		c.RunImage(turn, "cat", func(data []byte) { published = true })

		// Supersede while the fetch is still blocked.
		c.BeginTurn(vocab.WordPair{Spanish: "perro", English: "dog"})
	})

	close(searcher.release)

	// Let the worker's publish callback drain through the surface.
	time.Sleep(20 * time.Millisecond)
	onSurface(d, func() {
		if published {
			t.Error("superseded turn's image result reached the publish callback")
		}
	})
}

func TestCoordinator_SentencesFallBackWithoutGenerator(t *testing.T) {
	d := startDispatcher(t)
	c := NewCoordinator(d, nil, nil, nil, CoordinatorConfig{SentenceCount: 3}, nil)

	var turn *Turn
	onSurface(d, func() {
		turn = c.BeginTurn(vocab.WordPair{Spanish: "gato", English: "cat"})
	})

	got := make(chan []string, 1)
	onSurface(d, func() {
		c.RunSentences(turn, "gato", func(lines []string) { got <- lines })
	})

	select {
	case lines := <-got:
		if len(lines) != 3 {
			t.Fatalf("published %d sentences, want 3", len(lines))
		}
		for i, line := range lines {
			if line == "" {
				t.Errorf("sentence %d is empty", i)
			}
		}
	case <-time.After(time.Second):
		t.Fatal("sentences were never published")
	}
}

// failingGenerator always errors, forcing the template fallback
type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, word string, count int) ([]string, error) {
	return nil, context.DeadlineExceeded
}

func TestCoordinator_SentencesFallBackOnGeneratorError(t *testing.T) {
	d := startDispatcher(t)
	c := NewCoordinator(d, nil, nil, failingGenerator{}, CoordinatorConfig{SentenceCount: 3}, nil)

	var turn *Turn
	onSurface(d, func() {
		turn = c.BeginTurn(vocab.WordPair{Spanish: "gato", English: "cat"})
	})

	got := make(chan []string, 1)
	onSurface(d, func() {
		c.RunSentences(turn, "gato", func(lines []string) { got <- lines })
	})

	select {
	case lines := <-got:
		if len(lines) != 3 {
			t.Fatalf("published %d sentences, want 3", len(lines))
		}
	case <-time.After(time.Second):
		t.Fatal("fallback sentences were never published")
	}
}

// recordingView captures controller output. Only touched on the
// dispatcher surface.
type recordingView struct {
	words        []vocab.WordPair
	translations []string
	images       [][]byte
	sentences    [][]string
	rounds       []*exam.Round
	results      []exam.Result
	warnings     []string
}

func (v *recordingView) ShowWord(pair vocab.WordPair, aiSentences bool) {
	v.words = append(v.words, pair)
}
func (v *recordingView) ShowTranslation(text string) { v.translations = append(v.translations, text) }
func (v *recordingView) ShowImage(data []byte)       { v.images = append(v.images, data) }
func (v *recordingView) ShowSentences(lines []string) {
	v.sentences = append(v.sentences, lines)
}
func (v *recordingView) ShowExam(round *exam.Round) { v.rounds = append(v.rounds, round) }
func (v *recordingView) ShowScore(round *exam.Round, result exam.Result) {
	v.results = append(v.results, result)
}
func (v *recordingView) Warn(msg string) { v.warnings = append(v.warnings, msg) }

func testPairs(n int) []vocab.WordPair {
	pairs := make([]vocab.WordPair, n)
	for i := range pairs {
		pairs[i] = vocab.WordPair{
			Spanish: "palabra" + string(rune('a'+i)),
			English: "word" + string(rune('a'+i)),
		}
	}
	return pairs
}

func newTestController(t *testing.T, d *Dispatcher, view View, cfg ControllerConfig, pairs []vocab.WordPair) *Controller {
	t.Helper()
	store := vocab.NewStore()
	if len(pairs) > 0 {
		store.Load(pairs)
	}
	coord := NewCoordinator(d, nil, nil, nil, CoordinatorConfig{}, nil)
	return NewController(store, coord, d, view, Capabilities{}, cfg, nil)
}

func TestController_AdvanceOnEmptyStoreWarns(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	ctrl := newTestController(t, d, view, ControllerConfig{}, nil)

	onSurface(d, func() { ctrl.Advance() })

	onSurface(d, func() {
		if len(view.warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(view.warnings))
		}
		if len(view.words) != 0 {
			t.Errorf("ShowWord called %d times on an empty store", len(view.words))
		}
	})
}

func TestController_AdvanceShowsWord(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	ctrl := newTestController(t, d, view, ControllerConfig{TranslationDelay: time.Hour}, testPairs(3))

	onSurface(d, func() { ctrl.Advance() })

	onSurface(d, func() {
		if len(view.words) != 1 {
			t.Fatalf("ShowWord called %d times, want 1", len(view.words))
		}
		if len(view.translations) != 0 {
			t.Error("translation revealed before the delay elapsed")
		}
	})
}

func TestController_RevealOnlyForCurrentWord(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	ctrl := newTestController(t, d, view, ControllerConfig{TranslationDelay: 30 * time.Millisecond}, testPairs(3))

	// The second advance supersedes the first word before its reveal
	// can fire.
	onSurface(d, func() {
		ctrl.Advance()
		ctrl.Advance()
	})

	time.Sleep(100 * time.Millisecond)

	onSurface(d, func() {
		if len(view.words) != 2 {
			t.Fatalf("ShowWord called %d times, want 2", len(view.words))
		}
		if len(view.translations) != 1 {
			t.Fatalf("got %d translation reveals, want 1", len(view.translations))
		}
		want := view.words[1].English
		if view.translations[0] != want {
			t.Errorf("revealed %q, want the current word's translation %q", view.translations[0], want)
		}
	})
}

func TestController_ExamFiresAfterInterval(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	cfg := ControllerConfig{
		TranslationDelay: time.Hour,
		ExamInterval:     10,
		ExamWordCount:    20,
		ExamChoices:      4,
	}
	ctrl := newTestController(t, d, view, cfg, testPairs(12))

	onSurface(d, func() {
		for i := 0; i < 9; i++ {
			ctrl.Advance()
		}
	})
	onSurface(d, func() {
		if len(view.rounds) != 0 {
			t.Fatalf("exam fired after 9 advances")
		}
	})

	onSurface(d, func() { ctrl.Advance() })
	onSurface(d, func() {
		if len(view.rounds) != 1 {
			t.Fatalf("exam rounds = %d after 10 advances, want 1", len(view.rounds))
		}
		if got := len(view.rounds[0].Questions); got != 10 {
			t.Errorf("exam has %d questions, want the 10 shown words", got)
		}
	})
}

func TestController_NoSecondExamWhileRoundOpen(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	cfg := ControllerConfig{
		TranslationDelay: time.Hour,
		ExamInterval:     10,
		ExamWordCount:    20,
		ExamChoices:      4,
	}
	ctrl := newTestController(t, d, view, cfg, testPairs(12))

	onSurface(d, func() {
		for i := 0; i < 25; i++ {
			ctrl.Advance()
		}
	})

	onSurface(d, func() {
		if len(view.rounds) != 1 {
			t.Fatalf("exam rounds = %d with the first round still open, want 1", len(view.rounds))
		}
	})
}

func TestController_SubmitExamScoresRound(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	cfg := ControllerConfig{
		TranslationDelay: time.Hour,
		ExamInterval:     10,
		ExamWordCount:    20,
		ExamChoices:      4,
	}
	ctrl := newTestController(t, d, view, cfg, testPairs(12))

	onSurface(d, func() {
		for i := 0; i < 10; i++ {
			ctrl.Advance()
		}
	})

	onSurface(d, func() {
		round := ctrl.Round()
		if round == nil {
			t.Fatal("no open round after 10 advances")
		}
		answers := make(map[int]string, len(round.Questions))
		for i, q := range round.Questions {
			answers[i] = q.Answer
		}
		ctrl.SubmitExam(answers)

		if len(view.results) != 1 {
			t.Fatalf("ShowScore called %d times, want 1", len(view.results))
		}
		if view.results[0].Score != view.results[0].Total {
			t.Errorf("score %d/%d, want all correct", view.results[0].Score, view.results[0].Total)
		}

		ctrl.CloseExam()
		if ctrl.Round() != nil {
			t.Error("round still open after CloseExam")
		}
	})
}

func TestController_SubmitWithoutRoundWarns(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	ctrl := newTestController(t, d, view, ControllerConfig{}, testPairs(3))

	onSurface(d, func() { ctrl.SubmitExam(map[int]string{}) })

	onSurface(d, func() {
		if len(view.warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(view.warnings))
		}
	})
}

func TestController_SentenceLookup(t *testing.T) {
	d := startDispatcher(t)
	view := &recordingView{}
	ctrl := newTestController(t, d, view, ControllerConfig{TranslationDelay: time.Hour}, testPairs(3))

	onSurface(d, func() { ctrl.Advance() })

	// Fallback sentences publish through the surface shortly after the
	// advance.
	deadline := time.After(time.Second)
	for {
		var ok bool
		onSurface(d, func() { _, ok = ctrl.Sentence(0) })
		if ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("sentences never became available")
		case <-time.After(5 * time.Millisecond):
		}
	}

	onSurface(d, func() {
		if _, ok := ctrl.Sentence(99); ok {
			t.Error("Sentence(99) should be out of range")
		}
		if _, ok := ctrl.Sentence(-1); ok {
			t.Error("Sentence(-1) should be out of range")
		}
	})
}
