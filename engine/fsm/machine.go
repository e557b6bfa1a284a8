package fsm

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lixenwraith/factory/event"
)

const (
	DefaultBaseline = "Playing"
	noneState       = "none"
)

// Option configures a StateManager
type Option func(*config)

type config struct {
	baseline string
	logger   *slog.Logger
}

// WithBaseline sets the state toggles fall back to
func WithBaseline(name string) Option {
	return func(c *config) {
		if name != "" {
			c.baseline = name
		}
	}
}

// WithLogger sets the logger for rejected transitions
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// StateManager is a flat guarded state machine driven directly or through the event bus
// Lifecycle: NewStateManager -> RegisterState... -> Initialize -> TransitionTo/Update -> Close
type StateManager[T any] struct {
	bus    *event.EventBus
	subID  string
	logger *slog.Logger

	states map[string]State[T]
	order  []string // Registration order

	current    State[T]
	ctx        T
	hasContext bool
	baseline   string
}

// NewStateManager creates a manager subscribed to state transition requests on bus
func NewStateManager[T any](bus *event.EventBus, opts ...Option) *StateManager[T] {
	cfg := config{
		baseline: DefaultBaseline,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sm := &StateManager[T]{
		bus:      bus,
		logger:   cfg.logger,
		states:   make(map[string]State[T]),
		baseline: cfg.baseline,
	}
	sm.subID = event.SubscribeTyped(bus, event.StateTransitionRequest, sm.handleTransitionRequest)
	return sm
}

// handleTransitionRequest routes toggle contexts through ToggleState and the rest through TransitionTo
func (sm *StateManager[T]) handleTransitionRequest(_ event.Event, req event.TransitionRequestPayload) error {
	var ctx []T
	if sm.hasContext {
		ctx = []T{sm.ctx}
	}

	switch req.Context {
	case event.ContextEscapeKey, event.ContextInventoryKey:
		sm.ToggleState(req.TargetState, ctx...)
	default:
		sm.TransitionTo(req.TargetState, ctx...)
	}
	return nil
}

// RegisterState adds or replaces a state without activating it
func (sm *StateManager[T]) RegisterState(name string, state State[T]) {
	if _, exists := sm.states[name]; !exists {
		sm.order = append(sm.order, name)
	}
	sm.states[name] = state
}

// Initialize binds ctx and enters the initial state without consulting guards
func (sm *StateManager[T]) Initialize(name string, ctx T) error {
	state, ok := sm.states[name]
	if !ok {
		return fmt.Errorf("initialize %q: %w", name, ErrUnregisteredState)
	}

	sm.ctx = ctx
	sm.hasContext = true
	sm.current = state
	state.Enter(ctx)

	sm.bus.EmitEvent(event.StateChanged, event.StateChangedPayload{
		FromState: noneState,
		ToState:   name,
		Context:   event.ContextInitialization,
	})
	return nil
}

// TransitionTo switches to a registered state if the current state's guard allows it
// Exit/Enter hooks only run when ctx is supplied
// Returns false without side effects on an unknown target or a rejected guard
func (sm *StateManager[T]) TransitionTo(name string, ctx ...T) bool {
	target, ok := sm.states[name]
	if !ok {
		sm.logger.Warn("transition to unregistered state", "target", name)
		return false
	}

	from := noneState
	if sm.current != nil {
		from = sm.current.Name()
		if !sm.current.CanTransitionTo(name) {
			sm.logger.Warn("transition rejected", "from", from, "target", name)
			return false
		}
		if len(ctx) > 0 {
			sm.current.Exit(ctx[0])
		}
	}

	sm.current = target
	if len(ctx) > 0 {
		target.Enter(ctx[0])
	}

	sm.bus.EmitEvent(event.StateChanged, event.StateChangedPayload{
		FromState: from,
		ToState:   name,
		Context:   event.ContextTransition,
	})
	return true
}

// ToggleState flips between target and the baseline state
// current == target -> baseline, current == baseline -> target, anything else -> baseline
func (sm *StateManager[T]) ToggleState(target string, ctx ...T) bool {
	switch sm.CurrentStateName() {
	case target:
		return sm.TransitionTo(sm.baseline, ctx...)
	case sm.baseline:
		return sm.TransitionTo(target, ctx...)
	default:
		return sm.TransitionTo(sm.baseline, ctx...)
	}
}

// Update forwards to the current state
func (sm *StateManager[T]) Update(ctx T, dt time.Duration) {
	if sm.current == nil {
		return
	}
	sm.current.Update(ctx, dt)
}

// CurrentState returns the active state or nil
func (sm *StateManager[T]) CurrentState() State[T] {
	return sm.current
}

// CurrentStateName returns "" before initialization
func (sm *StateManager[T]) CurrentStateName() string {
	if sm.current == nil {
		return ""
	}
	return sm.current.Name()
}

// RegisteredStateNames returns names in registration order
func (sm *StateManager[T]) RegisteredStateNames() []string {
	return slices.Clone(sm.order)
}

func (sm *StateManager[T]) IsStateRegistered(name string) bool {
	_, ok := sm.states[name]
	return ok
}

// Baseline returns the toggle fallback state name
func (sm *StateManager[T]) Baseline() string {
	return sm.baseline
}

// Clear drops every state and the current state; the bus subscription stays
func (sm *StateManager[T]) Clear() {
	sm.states = make(map[string]State[T])
	sm.order = nil
	sm.current = nil
	var zero T
	sm.ctx = zero
	sm.hasContext = false
}

// Close detaches from the event bus
func (sm *StateManager[T]) Close() {
	if sm.subID != "" {
		sm.bus.Unsubscribe(sm.subID)
		sm.subID = ""
	}
}
