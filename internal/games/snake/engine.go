// Package snake implements the snake simulation: a single state machine
// advanced one cell per Tick by an external scheduler. The engine owns no
// timers; hosts read Interval and Epoch after every call to decide when the
// next tick should fire and which scheduled ticks are stale.
package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/core"
)

// TickResult describes what a single Tick did.
type TickResult struct {
	Ran             bool    // False when the engine was not running
	Events          []Event // Notifications emitted by this tick, in order
	IntervalChanged bool    // The host must reschedule at Interval()
}

// Option configures an Engine.
type Option func(*Engine)

// WithHighScoreKeeper injects the persistence collaborator.
func WithHighScoreKeeper(k HighScoreKeeper) Option {
	return func(e *Engine) {
		if k != nil {
			e.keeper = k
		}
	}
}

// WithRenderer registers the snapshot consumer.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithListener subscribes an observer at construction.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.Subscribe(l)
	}
}

// Engine is the snake game state machine.
type Engine struct {
	cfg       config.SnakeConfig
	rng       Random
	tileCount int
	speedMS   int // Base interval for the next Start

	keeper    HighScoreKeeper
	renderer  Renderer
	listeners []Listener

	phase Phase
	epoch uint64
	tick  uint64

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next tick

	food         Food
	bonus        *BonusFood
	bonusPending bool
	bonusClock   time.Duration // Simulated time since the bonus was scheduled

	shield    timer
	speed     timer
	particles []Particle

	score     int
	highScore int
	level     int
	baseMS    int // Base interval of the current run

	pending []Event // Events collected during the current operation
}

// New creates an engine in the Idle phase with a freshly reset board.
// A nil rng is replaced with a clock-seeded source.
func New(cfg config.SnakeConfig, rng Random, opts ...Option) *Engine {
	if rng == nil {
		rng = NewRandom(0)
	}
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		tileCount: cfg.Grid.TileCount(),
		speedMS:   cfg.Speed.BaseMS,
		keeper:    &MemoryKeeper{},
		phase:     PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.highScore = e.keeper.LoadHighScore()
	e.baseMS = e.speedMS
	e.Reset()
	return e
}

// Subscribe registers an event observer. Observers are called synchronously in
// registration order.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// SetRenderer replaces the snapshot consumer.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// SetSpeed sets the base interval in milliseconds used by the next Start.
// Non-positive values are ignored.
func (e *Engine) SetSpeed(ms int) {
	if ms > 0 {
		e.speedMS = ms
	}
}

// Speed returns the base interval in milliseconds used by the next Start.
func (e *Engine) Speed() int {
	return e.speedMS
}

// Reset reinitializes the board: a 3-segment vertical snake at the center
// heading up, zero score, level 1, no power-ups, fresh food. The high score
// and phase are untouched.
func (e *Engine) Reset() {
	center := e.tileCount / 2
	e.snake = []core.Point{
		{X: center, Y: center}, // Head
		{X: center, Y: center + 1},
		{X: center, Y: center + 2},
	}
	e.direction = DirUp
	e.nextDir = DirUp
	e.score = 0
	e.level = 1
	e.tick = 0
	e.shield = timer{}
	e.speed = timer{}
	e.bonus = nil
	e.bonusPending = false
	e.bonusClock = 0
	e.particles = nil

	e.spawnFood()
	e.render()
}

// Start begins a new run at the configured base interval. Restarting a run in
// progress discards it.
func (e *Engine) Start() {
	e.phase = PhaseRunning
	e.baseMS = e.speedMS
	e.Reset()
	e.epoch++
	e.emit(Event{Type: EventStart})
	e.flush()
}

// SetDirection buffers a turn for the next tick. A request to reverse the
// active direction is ignored; the last accepted request wins.
func (e *Engine) SetDirection(dir Direction) {
	if dir == DirNone || dir == e.direction.Opposite() {
		return
	}
	e.nextDir = dir
}

// TogglePause suspends or resumes a run. It does nothing while Idle or after
// game over. Pausing pushes a snapshot so the renderer can draw the overlay.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
		e.epoch++
		e.emit(Event{Type: EventPause})
		e.render()
	case PhasePaused:
		e.phase = PhaseRunning
		e.epoch++
		e.emit(Event{Type: EventResume})
	default:
		return
	}
	e.flush()
}

// Tick advances the simulation by one step. It is a no-op unless Running.
func (e *Engine) Tick() TickResult {
	if e.phase != PhaseRunning {
		return TickResult{}
	}

	ranAt := e.Interval()
	e.tick++

	// 1. Apply buffered direction
	e.direction = e.nextDir

	// 2. Candidate head
	head := e.direction.Step(e.snake[0])

	// 3. Walls
	if !head.InBounds(e.tileCount) {
		if !e.shield.active {
			return e.gameOver()
		}
		head = head.Wrap(e.tileCount)
	}

	// 4. Self collision, tail included
	if e.isSnakeAt(head) && !e.shield.active {
		return e.gameOver()
	}

	// 5. Move
	e.snake = append([]core.Point{head}, e.snake...)

	// 6. Consume
	switch {
	case head == e.food.Pos:
		e.eatFood()
	case e.bonus != nil && head == e.bonus.Pos:
		e.eatBonus()
	default:
		e.snake = e.snake[:len(e.snake)-1]
	}

	// 7-10. Timers
	e.decayBonus()
	e.shield.countdown()
	e.speed.countdown()
	e.ageParticles()
	e.advanceBonusClock(ranAt)

	// 11. Notify
	res := TickResult{Ran: true}
	if e.Interval() != ranAt {
		e.epoch++
		res.IntervalChanged = true
	}
	e.render()
	res.Events = e.flush()
	return res
}

// eatFood scores the food, bursts particles, rolls a power-up and respawns.
func (e *Engine) eatFood() {
	food := e.food
	isBonus := food.Kind == FoodBonus
	points := e.cfg.Scoring.NormalFood
	if isBonus {
		points = e.cfg.Scoring.BonusKindFood
	}
	e.emit(Event{Type: EventEat, BonusKind: isBonus})

	e.burst(food.Pos, food.Color())
	if kind, ok := e.maybeActivatePowerUp(); ok {
		e.emit(Event{Type: EventPowerUp, PowerUp: kind})
	}
	e.addScore(points)
	e.spawnFood()
}

// eatBonus scores and clears the timed bonus.
func (e *Engine) eatBonus() {
	e.emit(Event{Type: EventBonusEat})
	e.burst(e.bonus.Pos, core.ColorGold)
	e.bonus = nil
	e.addScore(e.cfg.Scoring.TimedBonus)
}

// addScore applies points and recomputes the level.
func (e *Engine) addScore(points int) {
	e.score += points
	level := e.score/e.cfg.Scoring.PointsPerLevel + 1
	if level > e.level {
		e.level = level
		e.emit(Event{Type: EventLevelUp, Level: level})
	}
}

// gameOver ends the run and persists a beaten high score.
func (e *Engine) gameOver() TickResult {
	e.phase = PhaseGameOver
	e.epoch++

	beaten := e.score > e.highScore
	if beaten {
		e.highScore = e.score
		e.keeper.SaveHighScore(e.score)
	}
	e.emit(Event{Type: EventGameOver, Score: e.score, NewHighScore: beaten})
	return TickResult{Ran: true, Events: e.flush()}
}

// isSnakeAt checks if the snake occupies the given point.
func (e *Engine) isSnakeAt(p core.Point) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// levelInterval returns the tick interval for a level before any speed boost.
// It depends on the level reached, not on level-up events, so skipping a
// level with one big score change still applies both steps.
func (e *Engine) levelInterval(level int) time.Duration {
	ms := e.baseMS
	if level > 1 {
		ms = max(e.cfg.Speed.MinMS, e.baseMS-e.cfg.Speed.LevelStepMS*(level-1))
	}
	return time.Duration(ms) * time.Millisecond
}

// Interval returns the delay the host should wait before the next tick.
// A speed boost halves the level interval.
func (e *Engine) Interval() time.Duration {
	d := e.levelInterval(e.level)
	if e.speed.active {
		d /= 2
	}
	return d
}

// Epoch changes whenever already scheduled ticks become stale: on start,
// pause, resume, game over and interval changes.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// Phase returns the state machine position.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int { return e.highScore }

// TileCount returns the grid edge length in cells.
func (e *Engine) TileCount() int { return e.tileCount }

// Config returns the engine configuration.
func (e *Engine) Config() config.SnakeConfig { return e.cfg }

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// flush delivers pending events to listeners and returns them.
func (e *Engine) flush() []Event {
	events := e.pending
	e.pending = nil
	for _, ev := range events {
		for _, l := range e.listeners {
			l.OnEvent(ev)
		}
	}
	return events
}

func (e *Engine) render() {
	if e.renderer != nil {
		e.renderer.Render(e.Snapshot())
	}
}

// --- Debug helper ---

// DebugState returns a string representation of the engine state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Phase: %s, Epoch: %d, Interval: %s\n", e.tick, e.phase, e.epoch, e.Interval()))
	b.WriteString(fmt.Sprintf("Score: %d, Level: %d, Best: %d\n", e.score, e.level, e.highScore))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Next: %s\n", len(e.snake), e.direction, e.nextDir))
	if len(e.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d) %s/%s\n",
			e.snake[0].X, e.snake[0].Y, e.food.Pos.X, e.food.Pos.Y, e.food.Kind, e.food.Tag))
	}
	if e.bonus != nil {
		b.WriteString(fmt.Sprintf("Bonus: (%d, %d) %d ticks\n", e.bonus.Pos.X, e.bonus.Pos.Y, e.bonus.Ticks))
	}
	b.WriteString(fmt.Sprintf("Shield: %v (%d), Speed: %v (%d), Particles: %d\n",
		e.shield.active, e.shield.ticks, e.speed.active, e.speed.ticks, len(e.particles)))
	return b.String()
}
