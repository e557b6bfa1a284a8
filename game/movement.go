package game

import (
	"math"
	"time"

	"github.com/lixenwraith/factory/component"
	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/event"
	"github.com/lixenwraith/factory/mode"
)

// KeyState reports held physical keys
type KeyState interface {
	IsKeyPressed(code string) bool
}

// MovementSystem moves players with WASD while input is enabled
type MovementSystem struct {
	engine.SystemBase
	keys KeyState
	ctx  *mode.GameContext
	bus  *event.EventBus
}

func NewMovementSystem(keys KeyState, ctx *mode.GameContext, bus *event.EventBus) *MovementSystem {
	return &MovementSystem{
		SystemBase: engine.NewSystemBase(engine.GroupLogic, 10, component.TagPosition, component.TagPlayer),
		keys:       keys,
		ctx:        ctx,
		bus:        bus,
	}
}

// direction returns the unit movement vector from held keys, y grows downward
func (s *MovementSystem) direction() (float64, float64) {
	var dx, dy float64
	if s.keys.IsKeyPressed("KeyA") {
		dx--
	}
	if s.keys.IsKeyPressed("KeyD") {
		dx++
	}
	if s.keys.IsKeyPressed("KeyW") {
		dy--
	}
	if s.keys.IsKeyPressed("KeyS") {
		dy++
	}
	// Diagonals move at the same speed as axes
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}
	return dx, dy
}

func (s *MovementSystem) Update(w *engine.World, dt time.Duration) error {
	if s.ctx != nil && !s.ctx.IsInputEnabled {
		return nil
	}
	dx, dy := s.direction()
	if dx == 0 && dy == 0 {
		return nil
	}

	seconds := dt.Seconds()
	players := w.Query().With(s.RequiredComponents()...).Execute()
	for _, e := range players {
		pos, ok := engine.GetComponentAs[*component.PositionComponent](w, e, component.TagPosition)
		if !ok {
			continue
		}
		player, ok := engine.GetComponentAs[*component.PlayerComponent](w, e, component.TagPlayer)
		if !ok {
			continue
		}

		prevX, prevY := pos.X, pos.Y
		step := player.MovementSpeed * seconds
		pos.Translate(dx*step, dy*step)

		s.bus.EmitEvent(event.PlayerMoved, event.PlayerMovedPayload{
			X:         pos.X,
			Y:         pos.Y,
			PreviousX: prevX,
			PreviousY: prevY,
		})
	}
	return nil
}
