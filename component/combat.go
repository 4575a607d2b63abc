package component

import (
	"time"
)

// HullComponent is the ship's health with a post-hit immunity window
type HullComponent struct {
	Health   int
	Immunity time.Duration
}

// Damage subtracts dmg saturating at zero and returns the remaining health
func (h *HullComponent) Damage(dmg int) int {
	h.Health = max(h.Health-dmg, 0)
	return h.Health
}

// RewardComponent is tallied into score and bonus when its entity dies
type RewardComponent struct {
	Score int
	Bonus int
}

// DeathComponent marks an entity for removal by the liveness system
type DeathComponent struct{}
