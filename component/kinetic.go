package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PositionComponent is the world position in cells, sub-cell precise
type PositionComponent struct {
	mgl64.Vec2
}

// VelocityComponent is the velocity in cells per second
type VelocityComponent struct {
	mgl64.Vec2
}

// RotationComponent is the heading in radians, 0 points up and angles grow clockwise
type RotationComponent struct {
	Angle float64
}

// WrapComponent marks an entity that wraps horizontally at the world edge instead of being culled
type WrapComponent struct{}
