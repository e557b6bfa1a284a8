package engine

// EntityBuilder collects components and creates the entity atomically on Build
//
// Example usage:
//
//	player := world.NewEntity().
//	    With(&component.PositionComponent{}).
//	    With(component.NewPlayer(0, 0)).
//	    Build()
type EntityBuilder struct {
	world      *World
	components []Component
	built      bool
}

// NewEntity starts a builder; no id is allocated until Build
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:      w,
		components: make([]Component, 0, 4),
	}
}

// With queues a component; later components overwrite earlier ones with the same tag
func (b *EntityBuilder) With(c Component) *EntityBuilder {
	if b.built {
		panic("entity already built - cannot add components after Build()")
	}
	b.components = append(b.components, c)
	return b
}

// Build creates the entity and attaches all queued components
// Panics if called twice
func (b *EntityBuilder) Build() Entity {
	if b.built {
		panic("entity already built")
	}
	b.built = true

	e := b.world.CreateEntity()
	storage := b.world.entities[e]
	for _, c := range b.components {
		storage[c.Type()] = c
	}
	return e
}
