package engine

// Entity is an opaque identifier assigned by World
// Ids start at 1 and are never reused within a World until Clear
type Entity uint64

// Component is tagged data attached to an entity
// Type returns the stable discriminant; one component per tag per entity
type Component interface {
	Type() string
}
