package input

import (
	"log/slog"
	"slices"
	"time"

	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/event"
)

// gameKeys are keys the game consumes outright
var gameKeys = []string{"Escape", "i", "I", "w", "a", "s", "d", "W", "A", "S", "D"}

// IsGameKey reports whether key is reserved for the game and should not reach host shortcuts
func IsGameKey(key string) bool {
	return slices.Contains(gameKeys, key)
}

// InputSystem tracks held keys and publishes key and mode transition events
// Runs first in the input group; all work happens in the Source callbacks
type InputSystem struct {
	engine.SystemBase
	bus         *event.EventBus
	source      Source
	logger      *slog.Logger
	pressed     map[string]bool // Code -> held
	initialized bool
}

// NewInputSystem creates an input system reading from source and publishing to bus
func NewInputSystem(bus *event.EventBus, source Source, logger *slog.Logger) *InputSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &InputSystem{
		SystemBase: engine.NewSystemBase(engine.GroupInput, 0),
		bus:        bus,
		source:     source,
		logger:     logger,
		pressed:    make(map[string]bool),
	}
}

// Initialize attaches to the source once; repeated calls are no-ops
func (s *InputSystem) Initialize(_ *engine.World) {
	if s.initialized {
		return
	}
	if s.source != nil {
		s.source.Attach(s)
	}
	s.initialized = true
	s.logger.Debug("input system initialized")
}

func (s *InputSystem) Update(_ *engine.World, _ time.Duration) error {
	return nil
}

// Cleanup detaches from the source and forgets held keys
func (s *InputSystem) Cleanup() {
	if s.source != nil {
		s.source.Detach(s)
	}
	clear(s.pressed)
	s.initialized = false
	s.logger.Debug("input system cleaned up")
}

// KeyDown records the key and emits KeyPressed, plus a transition request for mode keys
func (s *InputSystem) KeyDown(ev KeyEvent) {
	if !ev.Repeat {
		s.pressed[ev.Code] = true
	}

	s.bus.EmitEvent(event.KeyPressed, event.KeyPressedPayload{
		Key:    ev.Key,
		Code:   ev.Code,
		Repeat: ev.Repeat,
		Ctrl:   ev.Ctrl,
		Shift:  ev.Shift,
		Alt:    ev.Alt,
	})

	switch ev.Key {
	case "Escape":
		s.bus.EmitEvent(event.StateTransitionRequest, event.TransitionRequestPayload{
			TargetState: "Paused",
			Context:     event.ContextEscapeKey,
		})
	case "i", "I":
		s.bus.EmitEvent(event.StateTransitionRequest, event.TransitionRequestPayload{
			TargetState: "Inventory",
			Context:     event.ContextInventoryKey,
		})
	}
}

func (s *InputSystem) KeyUp(ev KeyEvent) {
	delete(s.pressed, ev.Code)
}

// IsKeyPressed reports whether the physical key code is held
func (s *InputSystem) IsKeyPressed(code string) bool {
	return s.pressed[code]
}

// PressedKeys returns held codes, sorted
func (s *InputSystem) PressedKeys() []string {
	keys := make([]string, 0, len(s.pressed))
	for code, down := range s.pressed {
		if down {
			keys = append(keys, code)
		}
	}
	slices.Sort(keys)
	return keys
}

func (s *InputSystem) Initialized() bool {
	return s.initialized
}
