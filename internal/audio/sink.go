package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sink receives finished sound streamers. Play must not block.
type Sink interface {
	Play(s beep.Streamer)
	Close()
}

// SpeakerSink mixes sounds onto the system audio device.
// The speaker is initialized on first use; if that fails the sink stays silent.
type SpeakerSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      bool
	logger      *log.Logger
}

// NewSpeakerSink creates a sink; logger may be nil.
func NewSpeakerSink(logger *log.Logger) *SpeakerSink {
	return &SpeakerSink{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// init sets up the audio system. Callers hold mu.
func (s *SpeakerSink) init() bool {
	if s.initialized {
		return true
	}
	if s.failed {
		return false
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		s.failed = true
		if s.logger != nil {
			s.logger.Warn("audio unavailable, continuing silently", "err", err)
		}
		return false
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return true
}

// Play adds a sound to the mixer.
func (s *SpeakerSink) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.init() {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// SilentSink discards every sound.
type SilentSink struct{}

// Play does nothing.
func (SilentSink) Play(beep.Streamer) {}

// Close does nothing.
func (SilentSink) Close() {}
