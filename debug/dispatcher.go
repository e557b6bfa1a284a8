// Package debug exposes runtime introspection and named debug actions
package debug

import (
	"log/slog"
	"slices"
	"time"
)

// Params are the loosely typed arguments of a debug action
type Params map[string]any

// Result is the loosely typed outcome of a debug action
type Result map[string]any

// ActionFunc implements a named debug action
type ActionFunc func(params Params) Result

// Option configures a Dispatcher
type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithClock replaces time.Now for result timestamps
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// Dispatcher routes debug actions by name
type Dispatcher struct {
	actions map[string]ActionFunc
	logger  *slog.Logger
	now     func() time.Time
}

// NewDispatcher creates a dispatcher with the built-in ping action
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		actions: make(map[string]ActionFunc),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Register("ping", func(Params) Result {
		return Result{"pong": true, "timestamp": d.Now()}
	})
	return d
}

// Register adds or replaces an action
func (d *Dispatcher) Register(name string, fn ActionFunc) {
	d.actions[name] = fn
}

// Execute runs the named action; unknown names yield {"error": "Unknown action: <name>"}
func (d *Dispatcher) Execute(name string, params Params) Result {
	d.logger.Debug("debug action", "action", name, "params", params)

	fn, ok := d.actions[name]
	if !ok {
		d.logger.Warn("unknown debug action", "action", name)
		return Result{"error": "Unknown action: " + name}
	}
	if params == nil {
		params = Params{}
	}
	return fn(params)
}

// Actions returns registered action names, sorted
func (d *Dispatcher) Actions() []string {
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Now returns the current time in Unix epoch milliseconds
func (d *Dispatcher) Now() int64 {
	return d.now().UnixMilli()
}

func errorResult(msg string) Result {
	return Result{"error": msg}
}
