package engine

// SystemBase provides the scheduling metadata shared by all systems
// Embed in system struct to eliminate boilerplate; systems start enabled
type SystemBase struct {
	group    ExecutionGroup
	priority int
	required []string
	disabled bool
}

// NewSystemBase initializes scheduling metadata
// Call once in system constructor
func NewSystemBase(group ExecutionGroup, priority int, required ...string) SystemBase {
	return SystemBase{
		group:    group,
		priority: priority,
		required: required,
	}
}

func (b *SystemBase) ExecutionGroup() ExecutionGroup { return b.group }

func (b *SystemBase) PriorityInGroup() int { return b.priority }

// RequiredComponents returns a copy of the declared component tags
func (b *SystemBase) RequiredComponents() []string {
	out := make([]string, len(b.required))
	copy(out, b.required)
	return out
}

func (b *SystemBase) Enabled() bool { return !b.disabled }

// SetEnabled toggles the system without unregistering it
func (b *SystemBase) SetEnabled(enabled bool) { b.disabled = !enabled }
