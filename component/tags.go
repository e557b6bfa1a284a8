package component

// Component tags used as World storage keys
const (
	TagPosition   = "Position"
	TagRenderable = "Renderable"
	TagPlayer     = "Player"
)
