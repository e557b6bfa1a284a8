package event

// Canonical event types carried by the bus
const (
	// KeyPressed signals a key down, auto-repeat included
	// Trigger: InputSystem | Payload: KeyPressedPayload
	KeyPressed = "input:key_pressed"

	// StateTransitionRequest asks the state manager to change game mode
	// Trigger: InputSystem (Escape, I) | Consumer: StateManager | Payload: TransitionRequestPayload
	StateTransitionRequest = "state:transition_request"

	// StateChanged announces a completed initialization or transition
	// Trigger: StateManager | Payload: StateChangedPayload
	StateChanged = "state:changed"

	// SystemError aggregates listener failures of a single emission
	// Trigger: EventBus | Payload: SystemErrorPayload
	SystemError = "system:error"

	// SystemInitialized / SystemDestroyed track system lifecycle
	// Payload: SystemLifecyclePayload
	SystemInitialized = "system:initialized"
	SystemDestroyed   = "system:destroyed"

	// PlayerMoved reports a position change of a player entity
	// Trigger: MovementSystem | Payload: PlayerMovedPayload
	PlayerMoved = "player:moved"

	// PlayerInventoryChanged reports the new item counts
	// Payload: InventoryChangedPayload
	PlayerInventoryChanged = "player:inventory_changed"
)

// Transition request context tags
const (
	ContextEscapeKey    = "escape_key"
	ContextInventoryKey = "inventory_key"
)

// State change context tags
const (
	ContextInitialization = "initialization"
	ContextTransition     = "transition"
)

// Event is a single emission; treat as immutable once emitted
type Event struct {
	Type      string
	Data      any
	Timestamp int64 // Unix epoch milliseconds
}

// PayloadAs returns the event data as T
func PayloadAs[T any](ev Event) (T, bool) {
	data, ok := ev.Data.(T)
	return data, ok
}
