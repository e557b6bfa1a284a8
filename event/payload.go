package event

// KeyPressedPayload mirrors a keyboard key down
type KeyPressedPayload struct {
	Key    string // Logical key, e.g. "i", "I", "Escape"
	Code   string // Physical key, e.g. "KeyI", "Escape"
	Repeat bool
	Ctrl   bool
	Shift  bool
	Alt    bool
}

// TransitionRequestPayload names the desired state
// Context is a routing discriminator, not the state context object
type TransitionRequestPayload struct {
	TargetState string
	Context     string
}

// StateChangedPayload describes a completed state change
type StateChangedPayload struct {
	FromState string
	ToState   string
	Context   string
}

// SystemErrorPayload aggregates every listener failure of one emission
type SystemErrorPayload struct {
	OriginalEvent Event
	Errors        []error
	ListenerCount int
}

// SystemLifecyclePayload names a system
type SystemLifecyclePayload struct {
	System string
}

// PlayerMovedPayload carries the new and previous coordinates
type PlayerMovedPayload struct {
	X, Y                 float64
	PreviousX, PreviousY float64
}

// InventoryChangedPayload carries item counts keyed by item name
type InventoryChangedPayload struct {
	Items map[string]int
}
