package component

// Faction decides what a bullet may hit
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// BulletComponent marks a linear projectile entity with contact damage
type BulletComponent struct {
	Faction Faction
	Damage  int
}
