package fsm

// TableConfig is the on-disk form of a transition table
type TableConfig struct {
	Initial string                  `yaml:"initial"`
	States  map[string]*StateConfig `yaml:"states"`
}

// StateConfig lists the targets a state may move to
type StateConfig struct {
	Transitions []string `yaml:"transitions,omitempty"`
}
