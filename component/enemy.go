package component

// EnemyComponent is a ground bunker shooting at the player
type EnemyComponent struct {
	Health int
	Radius float64
}
