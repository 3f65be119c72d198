// Package session owns one snake engine and wires its collaborators:
// persistence, sound, statistics and the assistant.
package session

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-ultra/internal/assistant"
	"github.com/vovakirdan/snake-ultra/internal/audio"
	"github.com/vovakirdan/snake-ultra/internal/config"
	"github.com/vovakirdan/snake-ultra/internal/games/snake"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

// Options configures a Session.
type Options struct {
	Config     config.SnakeConfig
	Store      *storage.Store          // nil keeps everything in memory
	Sink       audio.Sink              // nil is silent
	Difficulty config.DifficultyPreset // empty falls back to the stored speed
	Seed       int64                   // 0 picks one from the clock
	Mute       bool                    // Disable sound for this run without persisting it
	Logger     *log.Logger
}

// Session is the top-level object a host drives.
type Session struct {
	Engine  *snake.Engine
	Sound   *audio.Player
	Tracker *assistant.Tracker

	cfg    config.SnakeConfig
	eggs   *assistant.Detector
	store  *storage.Store
	logger *log.Logger
	rng    *rand.Rand
}

// New builds a session. Persistence failures are logged and the session
// continues with defaults.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if opts.Difficulty != "" {
		config.ApplySnakePreset(&cfg, opts.Difficulty)
	}

	engineRng := snake.NewRandom(opts.Seed)
	s := &Session{
		cfg:    cfg,
		eggs:   assistant.NewDetector(assistant.DefaultEggs()),
		store:  opts.Store,
		logger: logger,
		rng:    rand.New(rand.NewSource(engineRng.Int63())),
	}

	var keeper snake.HighScoreKeeper = &snake.MemoryKeeper{}
	if s.store != nil {
		keeper = &storeKeeper{store: s.store, logger: logger}
	}
	s.Engine = snake.New(cfg, engineRng, snake.WithHighScoreKeeper(keeper))

	speed := s.resolveSpeed(opts.Difficulty)
	s.Engine.SetSpeed(speed)
	s.saveSpeed(speed)

	s.Sound = s.newPlayer(opts.Sink, opts.Mute)
	s.Tracker = s.newTracker()

	s.Engine.Subscribe(soundListener{player: s.Sound})
	s.Engine.Subscribe(s.Tracker)
	s.Engine.Subscribe(snake.ListenerFunc(s.logEvent))

	logger.Debug("session ready", "speed_ms", speed, "high_score", s.Engine.HighScore())
	return s
}

// resolveSpeed picks the base interval: explicit preset, then the stored
// choice, then the configured default.
func (s *Session) resolveSpeed(preset config.DifficultyPreset) int {
	if preset != "" {
		return config.SpeedForPreset(preset)
	}
	if ms := StoredSpeed(s.store, s.logger); ms > 0 {
		return ms
	}
	return s.cfg.Speed.BaseMS
}

// StoredSpeed returns the persisted difficulty speed in milliseconds, or 0
// when there is none. store may be nil.
func StoredSpeed(store *storage.Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	ms, ok, err := store.DifficultySpeed()
	if err != nil {
		if logger != nil {
			logger.Warn("failed to load difficulty", "err", err)
		}
		return 0
	}
	if !ok {
		return 0
	}
	return ms
}

func (s *Session) saveSpeed(ms int) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveDifficultySpeed(ms); err != nil {
		s.logger.Warn("failed to save difficulty", "err", err)
	}
}

func (s *Session) newPlayer(sink audio.Sink, mute bool) *audio.Player {
	settings := audio.Settings{Enabled: s.cfg.Audio.Enabled, Volume: s.cfg.Audio.Volume}
	if s.store != nil {
		saved, err := s.store.AudioSettings(storage.AudioSettings(settings))
		if err != nil {
			s.logger.Warn("failed to load audio settings", "err", err)
		} else {
			settings = audio.Settings(saved)
		}
	}
	if mute {
		settings.Enabled = false
	}

	theme, err := audio.ParseTheme(s.cfg.Audio.Theme)
	if err != nil {
		s.logger.Warn("unknown sound theme, using modern", "theme", s.cfg.Audio.Theme)
		theme = audio.ThemeModern
	}

	p := audio.NewPlayer(sink, settings, theme, s.rng)
	if s.store != nil {
		p.OnChange(func(a audio.Settings) {
			if err := s.store.SaveAudioSettings(storage.AudioSettings(a)); err != nil {
				s.logger.Warn("failed to save audio settings", "err", err)
			}
		})
	}
	return p
}

func (s *Session) newTracker() *assistant.Tracker {
	if s.store == nil {
		return assistant.NewTracker(0, 0, nil, s.logger)
	}
	stats, err := s.store.GetStats()
	if err != nil {
		s.logger.Warn("failed to load stats", "err", err)
		return assistant.NewTracker(0, 0, s.store, s.logger)
	}
	return assistant.NewTracker(stats.GamesPlayed, stats.TotalScore, s.store, s.logger)
}

// Tick advances the engine and plays the occasional move click.
func (s *Session) Tick() snake.TickResult {
	res := s.Engine.Tick()
	if res.Ran && s.Engine.Phase() == snake.PhaseRunning {
		s.Sound.PlayMove()
	}
	return res
}

// FeedKey passes a key name to the easter egg detector and returns the
// messages of any eggs it completed.
func (s *Session) FeedKey(key string) []string {
	var messages []string
	for _, egg := range s.eggs.Feed(key) {
		if egg.Name == assistant.EggSpeed {
			s.Sound.SetTheme(audio.ThemeAggressive)
		}
		s.logger.Info("easter egg", "name", egg.Name)
		messages = append(messages, egg.Message)
	}
	return messages
}

// Tip returns a startup tip, or false if tips are disabled.
func (s *Session) Tip() (string, bool) {
	if !s.cfg.Assistant.Tips {
		return "", false
	}
	return assistant.RandomTip(s.rng), true
}

// Advice returns occasional advice for a running game.
func (s *Session) Advice() (string, bool) {
	if !s.cfg.Assistant.Tips || s.Engine.Phase() != snake.PhaseRunning {
		return "", false
	}
	return assistant.Analyze(s.Engine.Snapshot(), s.rng, s.cfg.Assistant.AdviceChance)
}

// Stats returns statistics for all recorded games.
func (s *Session) Stats() assistant.Stats {
	return s.Tracker.Stats()
}

// Config returns the effective configuration, preset applied.
func (s *Session) Config() config.SnakeConfig {
	return s.cfg
}

// Store returns the backing store, or nil.
func (s *Session) Store() *storage.Store {
	return s.store
}

// Close releases the audio device and the store.
func (s *Session) Close() error {
	s.Sound.Close()
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func (s *Session) logEvent(e snake.Event) {
	switch e.Type {
	case snake.EventGameOver:
		s.logger.Info("game over", "score", e.Score, "new_high_score", e.NewHighScore)
	case snake.EventLevelUp:
		s.logger.Debug("level up", "level", e.Level, "interval", s.Engine.Interval())
	case snake.EventPowerUp:
		s.logger.Debug("power-up", "kind", e.PowerUp)
	default:
		s.logger.Debug("event", "type", e.Type)
	}
}

// storeKeeper adapts the store to the engine's high score contract.
type storeKeeper struct {
	store  *storage.Store
	logger *log.Logger
}

func (k *storeKeeper) LoadHighScore() int {
	score, err := k.store.HighScore()
	if err != nil {
		k.logger.Warn("failed to load high score", "err", err)
		return 0
	}
	return score
}

func (k *storeKeeper) SaveHighScore(score int) {
	if err := k.store.SaveHighScore(score); err != nil {
		k.logger.Warn("failed to save high score", "score", score, "err", err)
	}
}

// soundListener maps engine events onto sounds.
type soundListener struct {
	player *audio.Player
}

func (l soundListener) OnEvent(e snake.Event) {
	switch e.Type {
	case snake.EventEat:
		l.player.PlayEat(e.BonusKind)
	case snake.EventBonusEat:
		l.player.PlayBonus()
	case snake.EventPowerUp:
		l.player.PlayPowerUp(string(e.PowerUp))
	case snake.EventGameOver:
		l.player.PlayGameOver()
	case snake.EventPause:
		l.player.PlayPause()
	}
}
