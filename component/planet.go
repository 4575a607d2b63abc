package component

import (
	"github.com/lixenwraith/nongravitar/core"
)

// PlanetComponent is an overworld planet leading to its assault scene
type PlanetComponent struct {
	Name      string
	Assault   core.SceneID
	Radius    float64
	Destroyed bool
}
