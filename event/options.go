package event

import (
	"log/slog"
	"time"
)

const (
	DefaultMaxHistorySize = 1000
)

// Option configures an EventBus at construction
type Option func(*EventBus)

// WithMaxHistorySize bounds the history ring; values below 1 fall back to the default
func WithMaxHistorySize(n int) Option {
	return func(b *EventBus) {
		if n > 0 {
			b.maxHistorySize = n
		}
	}
}

// WithErrorLogging toggles logging of listener failures
func WithErrorLogging(enabled bool) Option {
	return func(b *EventBus) {
		b.errorLogging = enabled
	}
}

// WithLogger sets the logger for listener failures
func WithLogger(logger *slog.Logger) Option {
	return func(b *EventBus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock replaces time.Now for timestamps
func WithClock(now func() time.Time) Option {
	return func(b *EventBus) {
		if now != nil {
			b.now = now
		}
	}
}
