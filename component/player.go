package component

// PlayerComponent tags the player's ship
type PlayerComponent struct {
	Radius float64
}
