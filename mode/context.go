// Package mode defines the global game modes driven by fsm.StateManager
package mode

import "time"

// State names
const (
	Playing   = "Playing"
	Paused    = "Paused"
	Inventory = "Inventory"
)

// GameContext is the mode-controlled state read by gameplay systems
type GameContext struct {
	IsPaused        bool
	IsInventoryOpen bool
	IsInputEnabled  bool

	// Time spent in the current mode, reset on enter
	TimeInMode time.Duration
}

// NewGameContext returns the context of a game in play
func NewGameContext() *GameContext {
	return &GameContext{
		IsInputEnabled: true,
	}
}
