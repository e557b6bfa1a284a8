package audio

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/factory/event"
)

type recordingSink struct {
	cues []Cue
}

func (s *recordingSink) Play(c Cue, st beep.Streamer) {
	if st == nil {
		panic("nil streamer")
	}
	s.cues = append(s.cues, c)
}

func newTestPlayer() (*CuePlayer, *recordingSink, *event.EventBus) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := event.NewEventBus(event.WithLogger(logger))
	sink := &recordingSink{}
	p := NewCuePlayer(bus, sink, 0, -1, logger)
	p.Attach()
	return p, sink, bus
}

func TestCueForState(t *testing.T) {
	tests := []struct {
		change event.StateChangedPayload
		want   Cue
	}{
		{event.StateChangedPayload{FromState: "none", ToState: "Playing", Context: event.ContextInitialization}, CueNone},
		{event.StateChangedPayload{FromState: "Playing", ToState: "Paused", Context: event.ContextTransition}, CuePause},
		{event.StateChangedPayload{FromState: "Paused", ToState: "Playing", Context: event.ContextTransition}, CueResume},
		{event.StateChangedPayload{FromState: "Playing", ToState: "Inventory", Context: event.ContextTransition}, CueInventory},
		{event.StateChangedPayload{FromState: "Playing", ToState: "Shop", Context: event.ContextTransition}, CueNone},
	}
	for _, tt := range tests {
		if got := CueForState(tt.change); got != tt.want {
			t.Errorf("CueForState(%+v) = %s, want %s", tt.change, got, tt.want)
		}
	}
}

func TestCuePlayer_Events(t *testing.T) {
	p, sink, bus := newTestPlayer()
	if p.rate != DefaultSampleRate || p.volume != DefaultVolume {
		t.Errorf("defaults: rate=%d volume=%f", p.rate, p.volume)
	}

	bus.EmitEvent(event.StateChanged, event.StateChangedPayload{FromState: "Playing", ToState: "Paused", Context: event.ContextTransition})
	bus.Subscribe("tick", func(event.Event) error { return errors.New("broken") })
	bus.EmitEvent("tick", nil)

	if len(sink.cues) != 2 || sink.cues[0] != CuePause || sink.cues[1] != CueError {
		t.Errorf("cues = %v", sink.cues)
	}
}

func TestCuePlayer_MuteAndClose(t *testing.T) {
	p, sink, bus := newTestPlayer()
	p.Attach() // No duplicate subscriptions
	if n := bus.ListenerCount(event.StateChanged); n != 1 {
		t.Fatalf("state listeners = %d", n)
	}

	p.SetMuted(true)
	bus.EmitEvent(event.StateChanged, event.StateChangedPayload{ToState: "Paused", Context: event.ContextTransition})
	if len(sink.cues) != 0 {
		t.Errorf("muted player played %v", sink.cues)
	}

	p.SetMuted(false)
	p.Close()
	bus.EmitEvent(event.StateChanged, event.StateChangedPayload{ToState: "Paused", Context: event.ContextTransition})
	if len(sink.cues) != 0 || bus.ListenerCount(event.SystemError) != 0 {
		t.Errorf("closed player still attached")
	}
}
