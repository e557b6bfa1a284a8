package mode

import (
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lixenwraith/factory/engine/fsm"
)

//go:embed modes.yaml
var embeddedTable []byte

// EmbeddedTable returns a copy of the built-in YAML transition table
func EmbeddedTable() []byte {
	return slices.Clone(embeddedTable)
}

// DefaultTable parses the embedded mode transition table
func DefaultTable() (*fsm.Table, error) {
	return fsm.ParseTable(embeddedTable)
}

// modeState carries the guard and logging shared by every mode
type modeState struct {
	name   string
	table  *fsm.Table
	logger *slog.Logger
}

func (s *modeState) Name() string { return s.name }

func (s *modeState) CanTransitionTo(target string) bool {
	return s.table.Allows(s.name, target)
}

func (s *modeState) Update(ctx *GameContext, dt time.Duration) {
	ctx.TimeInMode += dt
}

func (s *modeState) enter(ctx *GameContext) {
	ctx.TimeInMode = 0
	s.logger.Debug("entered mode", "mode", s.name)
}

func (s *modeState) exit() {
	s.logger.Debug("exited mode", "mode", s.name)
}

// PlayingState is regular gameplay
type PlayingState struct{ modeState }

func (s *PlayingState) Enter(ctx *GameContext) {
	ctx.IsPaused = false
	ctx.IsInventoryOpen = false
	ctx.IsInputEnabled = true
	s.enter(ctx)
}

func (s *PlayingState) Exit(*GameContext) { s.exit() }

// PausedState freezes gameplay and input
type PausedState struct{ modeState }

func (s *PausedState) Enter(ctx *GameContext) {
	ctx.IsPaused = true
	ctx.IsInventoryOpen = false
	ctx.IsInputEnabled = false
	s.enter(ctx)
}

func (s *PausedState) Exit(*GameContext) { s.exit() }

// InventoryState shows the inventory; gameplay is paused underneath
type InventoryState struct{ modeState }

func (s *InventoryState) Enter(ctx *GameContext) {
	ctx.IsPaused = true
	ctx.IsInventoryOpen = true
	ctx.IsInputEnabled = false
	s.enter(ctx)
}

func (s *InventoryState) Exit(ctx *GameContext) {
	ctx.IsInventoryOpen = false
	s.exit()
}

// Register adds Playing, Paused and Inventory to sm, guarded by table
// A nil table uses the embedded one; every table state must have a mode implementation
func Register(sm *fsm.StateManager[*GameContext], table *fsm.Table, logger *slog.Logger) error {
	if table == nil {
		var err error
		if table, err = DefaultTable(); err != nil {
			return err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	base := func(name string) modeState {
		return modeState{name: name, table: table, logger: logger}
	}
	states := map[string]fsm.State[*GameContext]{
		Playing:   &PlayingState{base(Playing)},
		Paused:    &PausedState{base(Paused)},
		Inventory: &InventoryState{base(Inventory)},
	}

	for _, name := range table.States() {
		if _, ok := states[name]; !ok {
			return fmt.Errorf("mode table declares unknown mode '%s'", name)
		}
	}

	for _, name := range []string{Playing, Paused, Inventory} {
		sm.RegisterState(name, states[name])
	}
	return nil
}
