package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/asset"
)

// Shape is the closed set of drawable shapes
type Shape interface {
	shape()
}

// Sprite draws a frame of a sprite sheet centred on the entity
// Directional sprites pick the frame from the entity rotation
type Sprite struct {
	Sheet       *asset.SpriteSheet
	Frame       int
	Directional bool
}

// Circle draws a filled disc of the given radius around the entity
type Circle struct {
	Radius float64
	Rune   rune
}

// Polygon draws a filled polygon in world coordinates, the entity position is ignored
type Polygon struct {
	Points []mgl64.Vec2
	Rune   rune
}

// Text draws a string starting at the entity position
type Text struct {
	Value string
}

func (Sprite) shape()  {}
func (Circle) shape()  {}
func (Polygon) shape() {}
func (Text) shape()    {}

// RenderableComponent is the visual of an entity
type RenderableComponent struct {
	Shape Shape
	Style tcell.Style
}
