package game

import (
	"github.com/lixenwraith/factory/component"
	"github.com/lixenwraith/factory/debug"
	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/event"
)

// installActions adds game-specific debug actions
func (g *Game) installActions() {
	g.debug.Register("player", func(debug.Params) debug.Result {
		pos, ok := engine.GetComponentAs[*component.PositionComponent](g.world, g.player, component.TagPosition)
		if !ok {
			return debug.Result{"error": "no player"}
		}
		res := debug.Result{"entity": g.player, "x": pos.X, "y": pos.Y}
		if p, ok := engine.GetComponentAs[*component.PlayerComponent](g.world, g.player, component.TagPlayer); ok {
			res["health"] = p.Health
			res["max_health"] = p.MaxHealth
		}
		if inv, ok := engine.GetComponentAs[*component.InventoryComponent](g.world, g.player, component.TagInventory); ok {
			res["inventory"] = inv.Snapshot()
		}
		return res
	})

	g.debug.Register("transition", func(params debug.Params) debug.Result {
		target, _ := params["target"].(string)
		if target == "" {
			return debug.Result{"error": "missing parameter: target"}
		}
		ok := g.states.TransitionTo(target, g.ctx)
		return debug.Result{"success": ok, "current": g.states.CurrentStateName()}
	})

	g.debug.Register("give_item", func(params debug.Params) debug.Result {
		item, _ := params["item"].(string)
		if item == "" {
			return debug.Result{"error": "missing parameter: item"}
		}
		amount := 1
		if n, ok := params["amount"].(float64); ok {
			amount = int(n)
		} else if n, ok := params["amount"].(int); ok {
			amount = n
		}
		inv, ok := engine.GetComponentAs[*component.InventoryComponent](g.world, g.player, component.TagInventory)
		if !ok {
			return debug.Result{"error": "no player inventory"}
		}
		count := inv.Add(item, amount)
		g.bus.EmitEvent(event.PlayerInventoryChanged, event.InventoryChangedPayload{Items: inv.Snapshot()})
		return debug.Result{"item": item, "count": count}
	})

	g.debug.Register("damage", func(params debug.Params) debug.Result {
		return g.adjustHealth(params, (*component.PlayerComponent).Damage)
	})

	g.debug.Register("heal", func(params debug.Params) debug.Result {
		return g.adjustHealth(params, (*component.PlayerComponent).Heal)
	})
}

func (g *Game) adjustHealth(params debug.Params, apply func(*component.PlayerComponent, int) int) debug.Result {
	amount, ok := params["amount"].(float64)
	if !ok {
		if n, isInt := params["amount"].(int); isInt {
			amount, ok = float64(n), true
		}
	}
	if !ok {
		return debug.Result{"error": "missing parameter: amount"}
	}
	p, found := engine.GetComponentAs[*component.PlayerComponent](g.world, g.player, component.TagPlayer)
	if !found {
		return debug.Result{"error": "no player"}
	}
	applied := apply(p, int(amount))
	return debug.Result{"applied": applied, "health": p.Health}
}
