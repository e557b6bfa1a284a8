package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"time"
)

// World owns entities, their components, and the system schedule
// Not safe for concurrent use; all calls are expected on the game loop goroutine
type World struct {
	nextEntityID Entity
	entities     map[Entity]map[string]Component
	systems      []System
	logger       *slog.Logger
}

// WorldOption configures a World at construction
type WorldOption func(*World)

// WithWorldLogger sets the logger used for lifecycle diagnostics
func WithWorldLogger(logger *slog.Logger) WorldOption {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWorld creates an empty world
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		nextEntityID: 1,
		entities:     make(map[Entity]map[string]Component),
		systems:      make([]System, 0),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateEntity allocates the next entity id with an empty component set
func (w *World) CreateEntity() Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = make(map[string]Component)
	return id
}

// RemoveEntity deletes an entity and all its components
// Returns false if the entity did not exist
func (w *World) RemoveEntity(e Entity) bool {
	if _, ok := w.entities[e]; !ok {
		return false
	}
	delete(w.entities, e)
	return true
}

// HasEntity reports whether the entity exists
func (w *World) HasEntity(e Entity) bool {
	_, ok := w.entities[e]
	return ok
}

// AddComponent attaches c to e, replacing any component with the same tag
func (w *World) AddComponent(e Entity, c Component) error {
	components, ok := w.entities[e]
	if !ok {
		return fmt.Errorf("add component %q to entity %d: %w", c.Type(), e, ErrEntityNotFound)
	}
	components[c.Type()] = c
	return nil
}

// GetComponent returns the component stored under tag
func (w *World) GetComponent(e Entity, tag string) (Component, bool) {
	components, ok := w.entities[e]
	if !ok {
		return nil, false
	}
	c, ok := components[tag]
	return c, ok
}

// GetComponentAs returns the component under tag downcast to T
// A stored component of another concrete type reads as absent
func GetComponentAs[T Component](w *World, e Entity, tag string) (T, bool) {
	var zero T
	c, ok := w.GetComponent(e, tag)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent reports whether e carries a component under tag
func (w *World) HasComponent(e Entity, tag string) bool {
	_, ok := w.GetComponent(e, tag)
	return ok
}

// HasComponents reports whether e carries every listed tag
func (w *World) HasComponents(e Entity, tags ...string) bool {
	components, ok := w.entities[e]
	if !ok {
		return false
	}
	return hasAll(components, tags)
}

// RemoveComponent detaches the component under tag
// Returns false if the entity or the component was absent
func (w *World) RemoveComponent(e Entity, tag string) bool {
	components, ok := w.entities[e]
	if !ok {
		return false
	}
	if _, ok := components[tag]; !ok {
		return false
	}
	delete(components, tag)
	return true
}

// EntitiesWith returns every entity carrying all listed tags, in ascending id order
func (w *World) EntitiesWith(tags ...string) []Entity {
	result := make([]Entity, 0)
	for e, components := range w.entities {
		if hasAll(components, tags) {
			result = append(result, e)
		}
	}
	slices.Sort(result)
	return result
}

// AllEntityIDs returns every live entity in ascending id order
func (w *World) AllEntityIDs() []Entity {
	result := make([]Entity, 0, len(w.entities))
	for e := range w.entities {
		result = append(result, e)
	}
	slices.Sort(result)
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// AddSystem registers a system, re-sorts the schedule, then initializes the system
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	w.sortSystems()

	if init, ok := system.(Initializer); ok {
		init.Initialize(w)
	}
	w.logger.Debug("system added",
		"system", fmt.Sprintf("%T", system),
		"group", system.ExecutionGroup().String(),
		"priority", system.PriorityInGroup())
}

// RemoveSystem cleans up and unregisters a system
// Unknown systems are ignored
func (w *World) RemoveSystem(system System) {
	idx := slices.Index(w.systems, system)
	if idx < 0 {
		return
	}
	if c, ok := system.(Cleaner); ok {
		c.Cleanup()
	}
	// Fresh slice so an in-flight UpdateSystems snapshot stays intact
	w.systems = slices.Delete(slices.Clone(w.systems), idx, idx+1)
}

// Systems returns a copy of the schedule in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// UpdateSystems runs every enabled system once in schedule order
// The schedule is snapshotted: systems added during the frame wait for the next one,
// systems removed during the frame are skipped if they have not run yet
// The first failing system aborts the frame; panics are not recovered
func (w *World) UpdateSystems(dt time.Duration) error {
	for _, system := range slices.Clone(w.systems) {
		if !system.Enabled() || !slices.Contains(w.systems, system) {
			continue
		}
		if err := system.Update(w, dt); err != nil {
			return fmt.Errorf("update %T: %w", system, err)
		}
	}
	return nil
}

// Clear cleans up all systems and drops every entity and system
// The id counter restarts at 1
func (w *World) Clear() {
	for _, system := range w.systems {
		if c, ok := system.(Cleaner); ok {
			c.Cleanup()
		}
	}
	w.entities = make(map[Entity]map[string]Component)
	w.systems = w.systems[:0]
	w.nextEntityID = 1
}

// sortSystems orders by group then priority; stable so ties keep insertion order
func (w *World) sortSystems() {
	sort.SliceStable(w.systems, func(i, j int) bool {
		a, b := w.systems[i], w.systems[j]
		if a.ExecutionGroup() != b.ExecutionGroup() {
			return a.ExecutionGroup() < b.ExecutionGroup()
		}
		return a.PriorityInGroup() < b.PriorityInGroup()
	})
}

func hasAll(components map[string]Component, tags []string) bool {
	for _, tag := range tags {
		if _, ok := components[tag]; !ok {
			return false
		}
	}
	return true
}
