package assistant

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-ultra/internal/games/snake"
)

// GameRecorder persists one finished game. *storage.Store satisfies it.
type GameRecorder interface {
	RecordGame(score int) error
}

// Stats summarizes play so far.
type Stats struct {
	GamesPlayed  int
	TotalScore   int64
	AverageScore int // Rounded
	SessionTime  time.Duration
}

// Tracker counts finished games. It observes the engine and records every
// game over.
type Tracker struct {
	mu       sync.Mutex
	played   int
	total    int64
	started  time.Time
	now      func() time.Time
	recorder GameRecorder
	logger   *log.Logger
}

// NewTracker starts a session with previously persisted counters.
// recorder and logger may be nil.
func NewTracker(played int, total int64, recorder GameRecorder, logger *log.Logger) *Tracker {
	return &Tracker{
		played:   played,
		total:    total,
		started:  time.Now(),
		now:      time.Now,
		recorder: recorder,
		logger:   logger,
	}
}

// OnEvent implements snake.Listener.
func (t *Tracker) OnEvent(e snake.Event) {
	if e.Type == snake.EventGameOver {
		t.RecordGame(e.Score)
	}
}

// RecordGame counts one game and forwards it to the recorder.
func (t *Tracker) RecordGame(score int) {
	t.mu.Lock()
	t.played++
	t.total += int64(score)
	t.mu.Unlock()

	if t.recorder == nil {
		return
	}
	if err := t.recorder.RecordGame(score); err != nil && t.logger != nil {
		t.logger.Warn("failed to record game", "score", score, "err", err)
	}
}

// Stats returns the current counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Stats{
		GamesPlayed: t.played,
		TotalScore:  t.total,
		SessionTime: t.now().Sub(t.started).Round(time.Second),
	}
	if t.played > 0 {
		s.AverageScore = int(math.Round(float64(t.total) / float64(t.played)))
	}
	return s
}
