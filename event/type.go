package event

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/core"
)

// Kind tags a message type, the bus dispatches on it
type Kind int

const (
	KindGameOver Kind = iota + 1
	KindPlanetEntered
	KindPlanetDestroyed
)

var kindNames = map[Kind]string{
	KindGameOver:        "GameOver",
	KindPlanetEntered:   "PlanetEntered",
	KindPlanetDestroyed: "PlanetDestroyed",
}

// String returns the name of the kind for logging
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Message is an immutable cross-scene event value
type Message interface {
	Kind() Kind
}

// GameOver is published when the ship is lost, carrying the final score
type GameOver struct {
	Score int
}

// PlanetEntered is published when the ship reaches a planet in the overworld
// Scene is the assault scene to activate, Color tints its terrain
type PlanetEntered struct {
	Scene core.SceneID
	Color tcell.Color
	Score int
}

// PlanetDestroyed is published when an assault level is cleared
// Score is the session score including the level bonus
type PlanetDestroyed struct {
	Scene core.SceneID
	Score int
}

func (GameOver) Kind() Kind        { return KindGameOver }
func (PlanetEntered) Kind() Kind   { return KindPlanetEntered }
func (PlanetDestroyed) Kind() Kind { return KindPlanetDestroyed }
