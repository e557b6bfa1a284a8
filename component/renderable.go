package component

const (
	DefaultColor  uint32 = 0x3498db
	DefaultWidth         = 32.0
	DefaultHeight        = 32.0
)

// RenderableComponent holds draw parameters consumed by a renderer
// The engine core never draws; the host reads these
type RenderableComponent struct {
	Sprite   string // Empty means a solid rectangle
	Color    uint32 // 0xRRGGBB
	Visible  bool
	Width    float64
	Height   float64
	Rotation float64 // Radians
	Alpha    float64 // 0..1
}

// NewRenderable returns a visible 32x32 rectangle in the default color
func NewRenderable() *RenderableComponent {
	return &RenderableComponent{
		Color:   DefaultColor,
		Visible: true,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Alpha:   1,
	}
}

func (*RenderableComponent) Type() string { return TagRenderable }
