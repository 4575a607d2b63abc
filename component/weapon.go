package component

import (
	"time"
)

// WeaponComponent is a reload timer gating fire
type WeaponComponent struct {
	Cooldown  time.Duration // Reset value after firing
	Remaining time.Duration // Zero means ready
}

// Ready reports whether the weapon can fire this frame
func (w WeaponComponent) Ready() bool {
	return w.Remaining <= 0
}
