package constant

import (
	"github.com/gdamore/tcell/v2"
)

// Glyphs for procedurally drawn shapes
const (
	GlyphPlanet  = '●'
	GlyphTerrain = '▓'
	GlyphRock    = '█'
	GlyphStar    = '·'
)

// Base colors
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbText       = tcell.NewRGBColor(220, 220, 220)
	RgbShip       = tcell.NewRGBColor(120, 200, 255)
	RgbBullet     = tcell.NewRGBColor(255, 240, 140)
	RgbEnemyShot  = tcell.NewRGBColor(255, 90, 90)
	RgbEnemy      = tcell.NewRGBColor(255, 140, 60)
	RgbRock       = tcell.NewRGBColor(110, 110, 120)
	RgbPlanet     = tcell.NewRGBColor(170, 130, 255)
	RgbStar       = tcell.NewRGBColor(90, 90, 110)
)

// TerrainPalette colors planet terrain, indexed by the number of planets remaining
var TerrainPalette = []tcell.Color{
	tcell.NewRGBColor(80, 200, 120),
	tcell.NewRGBColor(230, 180, 60),
	tcell.NewRGBColor(90, 160, 240),
	tcell.NewRGBColor(220, 90, 160),
	tcell.NewRGBColor(200, 120, 70),
	tcell.NewRGBColor(160, 220, 230),
}

// TerrainColor picks the palette entry for the remaining planet count
func TerrainColor(remaining int) tcell.Color {
	if remaining < 0 {
		remaining = -remaining
	}
	return TerrainPalette[remaining%len(TerrainPalette)]
}
