package debug

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/event"
)

// StateReporter reports the active mode name
type StateReporter interface {
	CurrentStateName() string
	RegisteredStateNames() []string
}

// SystemInfo describes one scheduled system
type SystemInfo struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	Priority int    `json:"priority"`
	Enabled  bool   `json:"enabled"`
}

// Snapshot is a point-in-time view of the runtime
type Snapshot struct {
	SessionID    string       `json:"session_id"`
	Initialized  bool         `json:"initialized"`
	Timestamp    int64        `json:"timestamp"`
	EntityCount  int          `json:"entity_count"`
	Systems      []SystemInfo `json:"systems"`
	EventBus     event.Stats  `json:"event_bus"`
	CurrentState string       `json:"current_state"`
}

// Inspector reads runtime state for snapshots and introspection actions
type Inspector struct {
	world       *engine.World
	bus         *event.EventBus
	states      StateReporter
	sessionID   uuid.UUID
	initialized func() bool
}

// NewInspector creates an inspector with a fresh session id
// states and initialized may be nil
func NewInspector(world *engine.World, bus *event.EventBus, states StateReporter, initialized func() bool) *Inspector {
	return &Inspector{
		world:       world,
		bus:         bus,
		states:      states,
		sessionID:   uuid.New(),
		initialized: initialized,
	}
}

func (in *Inspector) SessionID() string {
	return in.sessionID.String()
}

// SystemName is the display name of a system, its type without package path
func SystemName(s engine.System) string {
	name := fmt.Sprintf("%T", s)
	name = strings.TrimPrefix(name, "*")
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// Systems lists systems in schedule order
func (in *Inspector) Systems() []SystemInfo {
	systems := in.world.Systems()
	infos := make([]SystemInfo, 0, len(systems))
	for _, s := range systems {
		infos = append(infos, SystemInfo{
			Name:     SystemName(s),
			Group:    s.ExecutionGroup().String(),
			Priority: s.PriorityInGroup(),
			Enabled:  s.Enabled(),
		})
	}
	return infos
}

func (in *Inspector) currentState() string {
	if in.states == nil {
		return ""
	}
	return in.states.CurrentStateName()
}

// Snapshot captures the runtime at timestamp (Unix ms)
func (in *Inspector) Snapshot(timestamp int64) Snapshot {
	initialized := false
	if in.initialized != nil {
		initialized = in.initialized()
	}
	return Snapshot{
		SessionID:    in.SessionID(),
		Initialized:  initialized,
		Timestamp:    timestamp,
		EntityCount:  in.world.EntityCount(),
		Systems:      in.Systems(),
		EventBus:     in.bus.Stats(),
		CurrentState: in.currentState(),
	}
}

// SetSystemEnabled toggles every system with the given display name
// Nothing changes unless every match can be toggled
// Returns the number of systems changed
func (in *Inspector) SetSystemEnabled(name string, enabled bool) (int, error) {
	var targets []engine.Toggler
	for _, s := range in.world.Systems() {
		if SystemName(s) != name {
			continue
		}
		t, ok := s.(engine.Toggler)
		if !ok {
			return 0, fmt.Errorf("system %s cannot be toggled", name)
		}
		targets = append(targets, t)
	}
	if len(targets) == 0 {
		return 0, fmt.Errorf("system %s not found", name)
	}
	for _, t := range targets {
		t.SetEnabled(enabled)
	}
	return len(targets), nil
}

// Install registers the introspection actions on d
func (in *Inspector) Install(d *Dispatcher) {
	d.Register("snapshot", func(Params) Result {
		return Result{"snapshot": in.Snapshot(d.Now())}
	})

	d.Register("entity_count", func(Params) Result {
		return Result{"count": in.world.EntityCount()}
	})

	d.Register("entities", func(params Params) Result {
		with := stringList(params["with"])
		without := stringList(params["without"])
		var ids []engine.Entity
		if len(with) == 0 {
			ids = in.world.AllEntityIDs()
			if len(without) > 0 {
				ids = slices.DeleteFunc(ids, func(e engine.Entity) bool {
					return slices.ContainsFunc(without, func(tag string) bool {
						return in.world.HasComponent(e, tag)
					})
				})
			}
		} else {
			ids = in.world.Query().With(with...).Without(without...).Execute()
		}
		return Result{"entities": ids, "count": len(ids)}
	})

	d.Register("systems", func(Params) Result {
		return Result{"systems": in.Systems()}
	})

	d.Register("event_stats", func(params Params) Result {
		limit, _ := intParam(params["history"])
		history := in.bus.EventHistory(limit)
		types := make([]string, 0, len(history))
		for _, h := range history {
			types = append(types, h.Event.Type)
		}
		return Result{
			"stats":            in.bus.Stats(),
			"subscribed_types": in.bus.SubscribedEventTypes(),
			"recent":           types,
		}
	})

	d.Register("state", func(Params) Result {
		res := Result{"current": in.currentState()}
		if in.states != nil {
			res["registered"] = in.states.RegisteredStateNames()
		}
		return res
	})

	d.Register("set_system_enabled", func(params Params) Result {
		name, _ := params["system"].(string)
		if name == "" {
			return errorResult("missing parameter: system")
		}
		enabled, ok := params["enabled"].(bool)
		if !ok {
			return errorResult("missing parameter: enabled")
		}
		n, err := in.SetSystemEnabled(name, enabled)
		if err != nil {
			return errorResult(err.Error())
		}
		return Result{"system": name, "enabled": enabled, "changed": n}
	})
}

// intParam accepts the numeric types produced by Go callers and JSON decoding
func intParam(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func stringList(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if l == "" {
			return nil
		}
		return []string{l}
	default:
		return nil
	}
}
