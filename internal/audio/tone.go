package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

const (
	attackTime = 10 * time.Millisecond
	peakGain   = 0.3  // Attack target, scaled by volume
	floorGain  = 0.01 // Exponential decay target
	chordStep  = 20 * time.Millisecond
)

// tone generates one enveloped note: a linear attack to the peak, then an
// exponential decay to floorGain at the end of the note.
type tone struct {
	freq   float64
	wave   WaveType
	rate   beep.SampleRate
	peak   float64
	attack int
	total  int
	phase  float64
	pos    int
}

// NewTone creates a note of the given length at the given volume in [0, 1].
func NewTone(freq float64, wave WaveType, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &tone{
		freq:   freq,
		wave:   wave,
		rate:   rate,
		peak:   volume * peakGain,
		attack: min(rate.N(attackTime), total),
		total:  total,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		val := t.gain() * oscillate(t.wave, t.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain returns the envelope value at the current sample.
func (t *tone) gain() float64 {
	if t.peak <= 0 {
		return 0
	}
	if t.pos < t.attack {
		return t.peak * float64(t.pos) / float64(t.attack)
	}
	decay := t.total - t.attack
	if decay <= 0 {
		return t.peak
	}
	progress := float64(t.pos-t.attack) / float64(decay)
	return t.peak * math.Pow(floorGain/t.peak, progress)
}

// oscillate evaluates a wave at phase p in [0, 1).
func oscillate(wave WaveType, p float64) float64 {
	switch wave {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*p - 1
	case WaveTriangle:
		return 4*math.Abs(p-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Delayed prefixes a streamer with silence.
func Delayed(s beep.Streamer, delay time.Duration, rate beep.SampleRate) beep.Streamer {
	if delay <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(delay)), s)
}

// Chord mixes sine notes, each starting chordStep after the previous one.
func Chord(freqs []float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = Delayed(NewTone(f, WaveSine, duration, volume, rate), time.Duration(i)*chordStep, rate)
	}
	return beep.Mix(notes...)
}
