package component

// PositionComponent places an entity in world space
type PositionComponent struct {
	X float64
	Y float64
}

func (*PositionComponent) Type() string { return TagPosition }

// Translate moves by (dx, dy)
func (p *PositionComponent) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}
