package fsm

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Table is a validated transition table
type Table struct {
	initial string
	states  []string            // Sorted
	allowed map[string][]string // from -> sorted targets
}

// ParseTable decodes and validates a YAML transition table
// Every transition target and the initial state must be declared
func ParseTable(data []byte) (*Table, error) {
	var cfg TableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transition table: %w", err)
	}
	if len(cfg.States) == 0 {
		return nil, fmt.Errorf("transition table declares no states")
	}

	t := &Table{
		initial: cfg.Initial,
		allowed: make(map[string][]string, len(cfg.States)),
	}
	for name := range cfg.States {
		t.states = append(t.states, name)
	}
	slices.Sort(t.states)

	if t.initial == "" {
		return nil, fmt.Errorf("transition table has no initial state")
	}
	if _, ok := cfg.States[t.initial]; !ok {
		return nil, fmt.Errorf("initial state '%s' is not declared", t.initial)
	}

	for _, name := range t.states {
		sc := cfg.States[name]
		var targets []string
		if sc != nil {
			targets = slices.Clone(sc.Transitions)
		}
		for _, target := range targets {
			if _, ok := cfg.States[target]; !ok {
				return nil, fmt.Errorf("state '%s' references unknown target '%s'", name, target)
			}
		}
		slices.Sort(targets)
		t.allowed[name] = slices.Compact(targets)
	}
	return t, nil
}

// Initial returns the declared initial state
func (t *Table) Initial() string { return t.initial }

// States returns declared state names, sorted
func (t *Table) States() []string { return slices.Clone(t.states) }

// Targets returns the allowed targets of from, sorted
func (t *Table) Targets(from string) []string { return slices.Clone(t.allowed[from]) }

// Allows reports whether from may transition to to
func (t *Table) Allows(from, to string) bool {
	_, ok := slices.BinarySearch(t.allowed[from], to)
	return ok
}

// Guard returns a CanTransitionTo implementation for from
func (t *Table) Guard(from string) func(target string) bool {
	return func(target string) bool {
		return t.Allows(from, target)
	}
}
