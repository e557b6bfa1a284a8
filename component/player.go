package component

const (
	DefaultMaxHealth     = 100
	DefaultMovementSpeed = 200.0 // World units per second
)

// PlayerComponent marks the controllable entity and tracks its vitals
type PlayerComponent struct {
	Health        int
	MaxHealth     int
	MovementSpeed float64
}

// NewPlayer returns a player at full health
// maxHealth <= 0 uses DefaultMaxHealth, speed <= 0 uses DefaultMovementSpeed
func NewPlayer(maxHealth int, speed float64) *PlayerComponent {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	if speed <= 0 {
		speed = DefaultMovementSpeed
	}
	return &PlayerComponent{
		Health:        maxHealth,
		MaxHealth:     maxHealth,
		MovementSpeed: speed,
	}
}

func (*PlayerComponent) Type() string { return TagPlayer }

// Heal restores up to amount without exceeding MaxHealth, returns the amount applied
func (p *PlayerComponent) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	applied := min(amount, p.MaxHealth-p.Health)
	if applied < 0 {
		applied = 0
	}
	p.Health += applied
	return applied
}

// Damage removes up to amount without dropping below zero, returns the amount applied
func (p *PlayerComponent) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	applied := min(amount, p.Health)
	p.Health -= applied
	return applied
}

func (p *PlayerComponent) IsAlive() bool { return p.Health > 0 }

// HealthRatio returns Health/MaxHealth in 0..1
func (p *PlayerComponent) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}
