package exam

import (
	"fmt"
	"testing"

	"codeberg.org/snonux/palabra/internal/vocab"
)

func recordWords(s *Selector, n int) {
	for i := 0; i < n; i++ {
		s.RecordShown(vocab.WordPair{
			Spanish: fmt.Sprintf("palabra%d", i),
			English: fmt.Sprintf("word%d", i),
		})
	}
}

func TestSelector_FiresAfterInterval(t *testing.T) {
	s := NewSelector(10, 20)

	recordWords(s, 9)
	if s.ShouldFire() {
		t.Error("ShouldFire() = true after 9 words, want false")
	}

	s.RecordShown(vocab.WordPair{Spanish: "diez", English: "ten"})
	if !s.ShouldFire() {
		t.Error("ShouldFire() = false after 10 words, want true")
	}
}

func TestSelector_PoolAndReset(t *testing.T) {
	s := NewSelector(10, 20)

	// Fewer words accumulated than the pool size: the pool uses all
	// available recent words.
	recordWords(s, 10)
	pool := s.TakePool()

	if len(pool) != 10 {
		t.Errorf("TakePool() returned %d words, want 10", len(pool))
	}
	if s.WordsSinceLastExam() != 0 {
		t.Errorf("WordsSinceLastExam() = %d after exam, want 0", s.WordsSinceLastExam())
	}
	if s.RecentCount() != 10 {
		t.Errorf("RecentCount() = %d after exam, want 10", s.RecentCount())
	}
}

func TestSelector_PoolCappedAtWordCount(t *testing.T) {
	s := NewSelector(10, 20)

	recordWords(s, 30)
	pool := s.TakePool()

	if len(pool) != 20 {
		t.Errorf("TakePool() returned %d words, want 20", len(pool))
	}

	// The pool is the most recent words.
	if pool[len(pool)-1].Spanish != "palabra29" {
		t.Errorf("Last pool word = %s, want palabra29", pool[len(pool)-1].Spanish)
	}

	// Window shrinks to half the pool size for continuity.
	if s.RecentCount() != 10 {
		t.Errorf("RecentCount() = %d after exam, want 10", s.RecentCount())
	}
}

func TestSelector_NoFireUntilIntervalAgain(t *testing.T) {
	s := NewSelector(10, 20)

	recordWords(s, 10)
	s.TakePool()

	// Counter reset: another full interval is needed even though the
	// recent window still holds enough words.
	recordWords(s, 9)
	if s.ShouldFire() {
		t.Error("ShouldFire() = true 9 words after an exam, want false")
	}
	recordWords(s, 1)
	if !s.ShouldFire() {
		t.Error("ShouldFire() = false 10 words after an exam, want true")
	}
}

func TestSelector_Defaults(t *testing.T) {
	s := NewSelector(0, 0)
	if s.triggerInterval != DefaultTriggerInterval {
		t.Errorf("triggerInterval = %d, want %d", s.triggerInterval, DefaultTriggerInterval)
	}
	if s.wordCount != DefaultWordCount {
		t.Errorf("wordCount = %d, want %d", s.wordCount, DefaultWordCount)
	}
}
