package snake

import (
	"time"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// Phase represents the engine state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the state a renderer needs.
// Slices and pointers are owned by the snapshot.
type Snapshot struct {
	Phase     Phase
	Tick      uint64
	TileCount int
	CellSize  int

	Snake     []core.Point // Head first
	Direction Direction
	Food      Food
	Bonus     *BonusFood // nil when no timed bonus is on the board
	Particles []Particle

	ShieldActive bool
	ShieldTicks  int
	SpeedActive  bool
	SpeedTicks   int

	Score     int
	HighScore int
	Level     int
	Interval  time.Duration
}

// Head returns the snake head, or (-1,-1) for an empty snake.
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        e.phase,
		Tick:         e.tick,
		TileCount:    e.tileCount,
		CellSize:     e.cfg.Grid.CellSize,
		Snake:        append([]core.Point(nil), e.snake...),
		Direction:    e.direction,
		Food:         e.food,
		Particles:    append([]Particle(nil), e.particles...),
		ShieldActive: e.shield.active,
		ShieldTicks:  e.shield.ticks,
		SpeedActive:  e.speed.active,
		SpeedTicks:   e.speed.ticks,
		Score:        e.score,
		HighScore:    e.highScore,
		Level:        e.level,
		Interval:     e.Interval(),
	}
	if e.bonus != nil {
		b := *e.bonus
		snap.Bonus = &b
	}
	return snap
}
