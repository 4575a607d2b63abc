package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TerrainComponent is one ground segment of an assault level
// Indestructible segments ignore damage, Health is meaningless for them
type TerrainComponent struct {
	Polygon      []mgl64.Vec2
	Destructible bool
	Health       int
}

// Damage subtracts dmg from a destructible segment saturating at zero and returns the remaining health
func (t *TerrainComponent) Damage(dmg int) int {
	if !t.Destructible {
		return t.Health
	}
	t.Health = max(t.Health-dmg, 0)
	return t.Health
}
