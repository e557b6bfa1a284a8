package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerSink plays cues on the system audio device through a shared mixer
type SpeakerSink struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeakerSink(rate beep.SampleRate) *SpeakerSink {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &SpeakerSink{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device with a 100ms buffer
func (s *SpeakerSink) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play adds the cue to the mixer; dropped before Initialize
func (s *SpeakerSink) Play(_ Cue, st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Cleanup drops pending cues and closes the audio device
func (s *SpeakerSink) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
