package engine

import "slices"

// QueryBuilder provides a fluent interface for selecting entities by component tags
// Results are ascending entity ids; the builder caches its result after Execute
type QueryBuilder struct {
	world    *World
	with     []string
	without  []string
	executed bool
	results  []Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	players := world.Query().
//	    With("Position", "Player").
//	    Without("Frozen").
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:   w,
		with:    make([]string, 0, 4),
		without: make([]string, 0, 2),
	}
}

// With requires every listed tag
// Panics if called after Execute()
func (qb *QueryBuilder) With(tags ...string) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.with = append(qb.with, tags...)
	return qb
}

// Without excludes entities carrying any listed tag
// Panics if called after Execute()
func (qb *QueryBuilder) Without(tags ...string) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, tags...)
	return qb
}

// Execute runs the query; repeated calls return the cached result
// An empty query (no With tags) matches nothing
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.with) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	candidates := qb.world.EntitiesWith(qb.with...)
	if len(qb.without) == 0 {
		qb.results = candidates
		return qb.results
	}

	// Filter in place, reusing the candidate array
	filtered := candidates[:0]
	for _, e := range candidates {
		excluded := slices.ContainsFunc(qb.without, func(tag string) bool {
			return qb.world.HasComponent(e, tag)
		})
		if !excluded {
			filtered = append(filtered, e)
		}
	}
	qb.results = filtered
	return qb.results
}
