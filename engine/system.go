package engine

import (
	"fmt"
	"time"
)

// ExecutionGroup fixes the coarse ordering of systems within a frame
type ExecutionGroup uint8

const (
	GroupInput ExecutionGroup = iota
	GroupLogic
	GroupPhysics
	GroupRender
)

// String returns the lowercase group name
func (g ExecutionGroup) String() string {
	switch g {
	case GroupInput:
		return "input"
	case GroupLogic:
		return "logic"
	case GroupPhysics:
		return "physics"
	case GroupRender:
		return "render"
	default:
		return fmt.Sprintf("group(%d)", uint8(g))
	}
}

// ParseExecutionGroup maps a group name to its ExecutionGroup
func ParseExecutionGroup(name string) (ExecutionGroup, error) {
	switch name {
	case "input":
		return GroupInput, nil
	case "logic":
		return GroupLogic, nil
	case "physics":
		return GroupPhysics, nil
	case "render":
		return GroupRender, nil
	}
	return 0, fmt.Errorf("unknown execution group %q", name)
}

// System is a unit of per-frame logic owned by exactly one World
type System interface {
	ExecutionGroup() ExecutionGroup

	// PriorityInGroup orders systems inside a group, lower runs first
	PriorityInGroup() int

	// RequiredComponents lists the component tags the system works on
	// Advisory only, the World does not enforce it
	RequiredComponents() []string

	Enabled() bool

	// Update runs once per frame; a returned error aborts the remaining systems
	Update(w *World, dt time.Duration) error
}

// Initializer is implemented by systems that need setup when added to a World
type Initializer interface {
	Initialize(w *World)
}

// Cleaner is implemented by systems that release resources on removal
type Cleaner interface {
	Cleanup()
}

// Toggler is implemented by systems that can be enabled or disabled at runtime
// SystemBase satisfies it
type Toggler interface {
	SetEnabled(enabled bool)
}
