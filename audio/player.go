package audio

import (
	"log/slog"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/factory/event"
)

const (
	DefaultSampleRate = beep.SampleRate(48000)
	DefaultVolume     = 0.5
)

// Sink plays synthesized cues
type Sink interface {
	Play(cue Cue, s beep.Streamer)
}

// CuePlayer turns mode changes and listener failures into audio cues
type CuePlayer struct {
	bus    *event.EventBus
	sink   Sink
	rate   beep.SampleRate
	volume float64
	logger *slog.Logger
	subs   []string
	muted  bool
}

// NewCuePlayer creates a player; rate <= 0 and volume < 0 fall back to defaults
func NewCuePlayer(bus *event.EventBus, sink Sink, rate beep.SampleRate, volume float64, logger *slog.Logger) *CuePlayer {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if volume < 0 {
		volume = DefaultVolume
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CuePlayer{
		bus:    bus,
		sink:   sink,
		rate:   rate,
		volume: volume,
		logger: logger,
	}
}

// Attach subscribes to state and error events; calling twice is a no-op
func (p *CuePlayer) Attach() {
	if len(p.subs) > 0 {
		return
	}
	p.subs = append(p.subs,
		event.SubscribeTyped(p.bus, event.StateChanged, p.onStateChanged),
		event.SubscribeTyped(p.bus, event.SystemError, p.onSystemError),
	)
}

// Close unsubscribes from the bus
func (p *CuePlayer) Close() {
	for _, id := range p.subs {
		p.bus.Unsubscribe(id)
	}
	p.subs = nil
}

// SetMuted suppresses playback without detaching
func (p *CuePlayer) SetMuted(muted bool) {
	p.muted = muted
}

func (p *CuePlayer) Muted() bool {
	return p.muted
}

// CueForState maps an entered mode to its cue; initialization is silent
func CueForState(change event.StateChangedPayload) Cue {
	if change.Context == event.ContextInitialization {
		return CueNone
	}
	switch change.ToState {
	case "Paused":
		return CuePause
	case "Playing":
		return CueResume
	case "Inventory":
		return CueInventory
	default:
		return CueNone
	}
}

func (p *CuePlayer) onStateChanged(_ event.Event, change event.StateChangedPayload) error {
	p.play(CueForState(change))
	return nil
}

func (p *CuePlayer) onSystemError(_ event.Event, _ event.SystemErrorPayload) error {
	p.play(CueError)
	return nil
}

func (p *CuePlayer) play(c Cue) {
	if c == CueNone || p.muted || p.sink == nil {
		return
	}
	s := BuildCue(c, p.rate, p.volume)
	if s == nil {
		return
	}
	p.logger.Debug("audio cue", "cue", c.String())
	p.sink.Play(c, s)
}
