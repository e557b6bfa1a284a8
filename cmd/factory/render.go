package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/factory/component"
	"github.com/lixenwraith/factory/engine"
	"github.com/lixenwraith/factory/game"
	"github.com/lixenwraith/factory/mode"
)

const (
	unitsPerCellX = 16.0 // World units per terminal column
	unitsPerCellY = 32.0 // Terminal cells are roughly twice as tall as wide
)

var (
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	overlayStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// drawFrame renders visible entities, the status line and the mode overlay
func drawFrame(screen tcell.Screen, g *game.Game) {
	screen.Clear()
	width, height := screen.Size()
	if width <= 0 || height <= 1 {
		screen.Show()
		return
	}

	drawEntities(screen, g.World(), width, height-1)
	drawStatus(screen, g, width, height-1)

	switch g.ModeName() {
	case mode.Paused:
		drawOverlay(screen, width, height-1, []string{"PAUSED", "Esc to resume"})
	case mode.Inventory:
		drawOverlay(screen, width, height-1, inventoryLines(g))
	}

	screen.Show()
}

// drawEntities places each Position+Renderable entity relative to the screen center
func drawEntities(screen tcell.Screen, w *engine.World, width, height int) {
	cx, cy := width/2, height/2
	for _, e := range w.EntitiesWith(component.TagPosition, component.TagRenderable) {
		pos, ok := engine.GetComponentAs[*component.PositionComponent](w, e, component.TagPosition)
		if !ok {
			continue
		}
		r, ok := engine.GetComponentAs[*component.RenderableComponent](w, e, component.TagRenderable)
		if !ok || !r.Visible || r.Alpha <= 0 {
			continue
		}

		x := cx + int(math.Round(pos.X/unitsPerCellX))
		y := cy + int(math.Round(pos.Y/unitsPerCellY))
		cols := max(1, int(r.Width/unitsPerCellX))
		rows := max(1, int(r.Height/unitsPerCellY))
		style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(r.Color)))

		glyph := '█'
		if r.Sprite != "" {
			glyph = []rune(r.Sprite)[0]
		}
		for dy := 0; dy < rows; dy++ {
			for dx := 0; dx < cols; dx++ {
				px, py := x+dx, y+dy
				if px < 0 || py < 0 || px >= width || py >= height {
					continue
				}
				screen.SetContent(px, py, glyph, nil, style)
			}
		}
	}
}

func statusText(g *game.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s", g.ModeName())
	w := g.World()
	if pos, ok := engine.GetComponentAs[*component.PositionComponent](w, g.Player(), component.TagPosition); ok {
		fmt.Fprintf(&b, " | pos %.0f,%.0f", pos.X, pos.Y)
	}
	if p, ok := engine.GetComponentAs[*component.PlayerComponent](w, g.Player(), component.TagPlayer); ok {
		fmt.Fprintf(&b, " | hp %d/%d", p.Health, p.MaxHealth)
	}
	fmt.Fprintf(&b, " | entities %d | events %d", w.EntityCount(), g.Bus().Stats().HistorySize)
	b.WriteString(" | WASD move  Esc pause  I inventory  Ctrl+C quit")
	return b.String()
}

func drawStatus(screen tcell.Screen, g *game.Game, width, row int) {
	drawText(screen, 0, row, width, statusText(g), statusStyle, true)
}

func inventoryLines(g *game.Game) []string {
	lines := []string{"INVENTORY"}
	inv, ok := engine.GetComponentAs[*component.InventoryComponent](g.World(), g.Player(), component.TagInventory)
	if !ok || len(inv.Items) == 0 {
		return append(lines, "(empty)")
	}
	for _, name := range inv.ItemNames() {
		lines = append(lines, fmt.Sprintf("%-16s %4d", name, inv.Count(name)))
	}
	return lines
}

// drawOverlay renders a centered box of lines
func drawOverlay(screen tcell.Screen, width, height int, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	x0 := max(0, (width-boxW)/2)
	y0 := max(0, (height-boxH)/2)

	for y := 0; y < boxH && y0+y < height; y++ {
		drawText(screen, x0, y0+y, min(boxW, width-x0), "", overlayStyle, true)
	}
	for i, l := range lines {
		drawText(screen, x0+2, y0+1+i, min(boxW-2, width-x0-2), l, overlayStyle, false)
	}
}

// drawText writes s from (x, y) clipped to maxWidth, optionally padding the rest with spaces
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style, pad bool) {
	col := 0
	for _, r := range s {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	if !pad {
		return
	}
	for ; col < maxWidth; col++ {
		screen.SetContent(x+col, y, ' ', nil, style)
	}
}
