// Package game wires the world, event bus, mode machine and input into a runnable core
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/factory/audio"
	"github.com/lixenwraith/factory/component"
	"github.com/lixenwraith/factory/config"
	"github.com/lixenwraith/factory/debug"
	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/engine/fsm"
	"github.com/lixenwraith/factory/event"
	"github.com/lixenwraith/factory/input"
	"github.com/lixenwraith/factory/mode"
)

// ErrNotInitialized is returned by Tick before Initialize
var ErrNotInitialized = errors.New("game not initialized")

// Option configures a Game
type Option func(*Game)

// WithAudioSink plays mode and error cues on sink
func WithAudioSink(sink audio.Sink) Option {
	return func(g *Game) {
		g.sink = sink
	}
}

// WithClock replaces time.Now for event and debug timestamps
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// Game owns every runtime component
// Lifecycle: New -> Initialize -> Tick... -> Close
type Game struct {
	cfg    config.Config
	logger *slog.Logger
	now    func() time.Time
	sink   audio.Sink

	world     *engine.World
	bus       *event.EventBus
	table     *fsm.Table
	states    *fsm.StateManager[*mode.GameContext]
	ctx       *mode.GameContext
	input     *input.InputSystem
	movement  *MovementSystem
	cues      *audio.CuePlayer
	debug     *debug.Dispatcher
	inspector *debug.Inspector

	player      engine.Entity
	initialized bool
}

// New builds a game reading keys from source
func New(cfg config.Config, source input.Source, logger *slog.Logger, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	table, err := fsm.LoadTableAuto(cfg.ModeTable, mode.EmbeddedTable())
	if err != nil {
		return nil, err
	}
	g.table = table

	g.world = engine.NewWorld(engine.WithWorldLogger(logger))
	g.bus = event.NewEventBus(append(cfg.BusOptions(logger), event.WithClock(g.now))...)
	g.states = fsm.NewStateManager[*mode.GameContext](g.bus,
		fsm.WithBaseline(cfg.BaselineState),
		fsm.WithLogger(logger))
	if err := mode.Register(g.states, table, logger); err != nil {
		return nil, err
	}
	if !g.states.IsStateRegistered(cfg.BaselineState) {
		return nil, fmt.Errorf("baseline state %q: %w", cfg.BaselineState, fsm.ErrUnregisteredState)
	}

	g.ctx = mode.NewGameContext()
	g.input = input.NewInputSystem(g.bus, source, logger)
	g.movement = NewMovementSystem(g.input, g.ctx, g.bus)

	if g.sink != nil {
		g.cues = audio.NewCuePlayer(g.bus, g.sink, audio.DefaultSampleRate, audio.DefaultVolume, logger)
	}

	g.debug = debug.NewDispatcher(debug.WithLogger(logger), debug.WithClock(g.now))
	g.inspector = debug.NewInspector(g.world, g.bus, g.states, g.Initialized)
	g.inspector.Install(g.debug)
	g.installActions()

	return g, nil
}

// Initialize registers systems, spawns the player and enters the initial mode
// Calling it again is a no-op
func (g *Game) Initialize() error {
	if g.initialized {
		return nil
	}

	if g.cues != nil {
		g.cues.Attach()
	}

	g.world.AddSystem(g.input)
	g.world.AddSystem(g.movement)

	g.player = g.world.NewEntity().
		With(&component.PositionComponent{}).
		With(component.NewRenderable()).
		With(component.NewPlayer(component.DefaultMaxHealth, component.DefaultMovementSpeed)).
		With(component.NewInventory()).
		Build()

	if err := g.states.Initialize(g.table.Initial(), g.ctx); err != nil {
		return fmt.Errorf("initialize modes: %w", err)
	}

	g.initialized = true
	g.bus.EmitEvent(event.SystemInitialized, event.SystemLifecyclePayload{System: "game"})
	g.logger.Info("game initialized",
		"session", g.inspector.SessionID(),
		"mode", g.states.CurrentStateName(),
		"systems", len(g.world.Systems()))
	return nil
}

// Tick advances one frame: systems first, then the active mode
func (g *Game) Tick(dt time.Duration) error {
	if !g.initialized {
		return ErrNotInitialized
	}
	if err := g.world.UpdateSystems(dt); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	g.states.Update(g.ctx, dt)
	return nil
}

// Close tears down systems and subscriptions; the game cannot be reused
func (g *Game) Close() {
	if g.initialized {
		g.bus.EmitEvent(event.SystemDestroyed, event.SystemLifecyclePayload{System: "game"})
	}
	g.world.Clear()
	g.states.Close()
	if g.cues != nil {
		g.cues.Close()
	}
	g.bus.Clear()
	g.initialized = false
	g.logger.Info("game closed")
}

func (g *Game) Initialized() bool { return g.initialized }

func (g *Game) Debug() *debug.Dispatcher { return g.debug }

func (g *Game) World() *engine.World { return g.world }

func (g *Game) Bus() *event.EventBus { return g.bus }

func (g *Game) Context() *mode.GameContext { return g.ctx }

func (g *Game) Input() *input.InputSystem { return g.input }

func (g *Game) Player() engine.Entity { return g.player }

func (g *Game) ModeName() string { return g.states.CurrentStateName() }

// Snapshot returns the debug view of the runtime
func (g *Game) Snapshot() debug.Snapshot {
	return g.inspector.Snapshot(g.now().UnixMilli())
}

// RequestMode emits a transition request as if it came from a UI control
func (g *Game) RequestMode(target, context string) {
	g.bus.EmitEvent(event.StateTransitionRequest, event.TransitionRequestPayload{
		TargetState: target,
		Context:     context,
	})
}
