// Package audio synthesizes the game's sound effects with gopxl/beep.
// Every Play method hands a finished streamer to a Sink and returns at once.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/snake-ultra/internal/core"
)

// Theme selects the chord played for normal food.
type Theme string

const (
	ThemeRetro      Theme = "retro"
	ThemeModern     Theme = "modern"
	ThemeAggressive Theme = "aggressive"
)

// Themes lists the available themes.
func Themes() []Theme {
	return []Theme{ThemeRetro, ThemeModern, ThemeAggressive}
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	for _, t := range Themes() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown sound theme %q", name)
}

// EatChord returns the normal food chord for the theme.
func (t Theme) EatChord() []float64 {
	switch t {
	case ThemeRetro:
		return []float64{440, 880}
	case ThemeAggressive:
		return []float64{220, 330, 440}
	default:
		return []float64{440, 554, 659}
	}
}

// Sound frequencies and lengths
var (
	eatBonusChord  = []float64{523, 659, 784, 1047}
	shieldChord    = []float64{523, 659, 784}
	speedChord     = []float64{440, 554, 659, 880}
	gameOverNotes  = []float64{200, 150, 100}
	eatDuration    = 150 * time.Millisecond
	bonusDuration  = 300 * time.Millisecond
	shieldDuration = 400 * time.Millisecond
	speedDuration  = 300 * time.Millisecond
	gameOverNote   = 300 * time.Millisecond
	gameOverStep   = 100 * time.Millisecond
)

const (
	moveFreq      = 300
	moveDuration  = 50 * time.Millisecond
	moveThreshold = 0.7 // Click when a roll exceeds this
	pauseFreq     = 400
	pauseLength   = 200 * time.Millisecond
)

// Settings are the user's sound preferences.
type Settings struct {
	Enabled bool
	Volume  float64 // [0, 1]
}

// Random is the source for the occasional move click.
type Random interface {
	Float64() float64
}

// Player turns game events into sounds.
type Player struct {
	mu       sync.Mutex
	sink     Sink
	rng      Random
	settings Settings
	theme    Theme
	onChange func(Settings)
}

// NewPlayer creates a player. A nil sink is silent.
func NewPlayer(sink Sink, settings Settings, theme Theme, rng Random) *Player {
	if sink == nil {
		sink = SilentSink{}
	}
	if _, err := ParseTheme(string(theme)); err != nil {
		theme = ThemeModern
	}
	settings.Volume = core.ClampF(settings.Volume, 0, 1)
	return &Player{
		sink:     sink,
		rng:      rng,
		settings: settings,
		theme:    theme,
	}
}

// OnChange registers a callback run after Toggle or SetVolume, e.g. to persist settings.
func (p *Player) OnChange(fn func(Settings)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = fn
}

// Settings returns the current preferences.
func (p *Player) Settings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

// Toggle flips sound on or off and returns the new state.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	p.settings.Enabled = !p.settings.Enabled
	s, fn := p.settings, p.onChange
	p.mu.Unlock()

	if fn != nil {
		fn(s)
	}
	return s.Enabled
}

// SetVolume sets the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.settings.Volume = core.ClampF(v, 0, 1)
	s, fn := p.settings, p.onChange
	p.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}

// Theme returns the active theme.
func (p *Player) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme switches the normal food chord.
func (p *Player) SetTheme(t Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = t
}

// volume returns the playback volume, or false when sound is off.
func (p *Player) volume() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings.Volume, p.settings.Enabled
}

func (p *Player) play(build func(vol float64) beep.Streamer) {
	vol, ok := p.volume()
	if !ok {
		return
	}
	p.sink.Play(build(vol))
}

// PlayEat plays the food chord; bonus-kind food gets the high chord.
func (p *Player) PlayEat(bonusKind bool) {
	chord, length := p.Theme().EatChord(), eatDuration
	if bonusKind {
		chord, length = eatBonusChord, bonusDuration
	}
	p.play(func(vol float64) beep.Streamer {
		return Chord(chord, length, vol, sampleRate)
	})
}

// PlayBonus plays the timed bonus chord.
func (p *Player) PlayBonus() {
	p.play(func(vol float64) beep.Streamer {
		return Chord(eatBonusChord, bonusDuration, vol, sampleRate)
	})
}

// PlayPowerUp plays the chord for "shield" or "speed". Unknown kinds are silent.
func (p *Player) PlayPowerUp(kind string) {
	var chord []float64
	var length time.Duration
	switch kind {
	case "shield":
		chord, length = shieldChord, shieldDuration
	case "speed":
		chord, length = speedChord, speedDuration
	default:
		return
	}
	p.play(func(vol float64) beep.Streamer {
		return Chord(chord, length, vol, sampleRate)
	})
}

// PlayGameOver plays the descending sawtooth notes.
func (p *Player) PlayGameOver() {
	p.play(func(vol float64) beep.Streamer {
		notes := make([]beep.Streamer, len(gameOverNotes))
		for i, f := range gameOverNotes {
			note := NewTone(f, WaveSawtooth, gameOverNote, vol, sampleRate)
			notes[i] = Delayed(note, time.Duration(i)*gameOverStep, sampleRate)
		}
		return beep.Mix(notes...)
	})
}

// PlayMove plays a soft click on some moves only.
func (p *Player) PlayMove() {
	if p.rng == nil || p.rng.Float64() <= moveThreshold {
		return
	}
	p.play(func(vol float64) beep.Streamer {
		return NewTone(moveFreq, WaveTriangle, moveDuration, vol, sampleRate)
	})
}

// PlayPause plays the pause beep.
func (p *Player) PlayPause() {
	p.play(func(vol float64) beep.Streamer {
		return NewTone(pauseFreq, WaveSine, pauseLength, vol, sampleRate)
	})
}

// Close releases the sink.
func (p *Player) Close() {
	p.sink.Close()
}
