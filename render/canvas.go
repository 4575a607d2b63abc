// Package render draws the game world onto a tcell screen
package render

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/component"
	"github.com/lixenwraith/nongravitar/constant"
	"github.com/lixenwraith/nongravitar/geom"
)

// Canvas is a fixed-size world viewport centred in the terminal
// All coordinates are world cells, anything outside the world is clipped
type Canvas struct {
	screen     tcell.Screen
	width      int
	height     int
	offsetX    int
	offsetY    int
	framed     bool
	background tcell.Style
}

// NewCanvas creates a canvas of width x height cells on screen
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	c := &Canvas{
		screen:     screen,
		width:      width,
		height:     height,
		background: tcell.StyleDefault.Background(constant.RgbBackground).Foreground(constant.RgbText),
	}
	c.Resize()
	return c
}

// Size returns the world size in cells
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Framed reports whether the border is drawn
func (c *Canvas) Framed() bool { return c.framed }

// SetFramed toggles the border around the world
func (c *Canvas) SetFramed(framed bool) { c.framed = framed }

// Resize recomputes the offset after the terminal size changed
func (c *Canvas) Resize() {
	sw, sh := c.screen.Size()
	c.offsetX = max((sw-c.width)/2, 0)
	c.offsetY = max((sh-c.height)/2, 0)
}

// Clear blanks the terminal and paints the world background
func (c *Canvas) Clear() {
	c.screen.Clear()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.screen.SetContent(c.offsetX+x, c.offsetY+y, ' ', nil, c.background)
		}
	}
	if c.framed {
		c.drawFrame()
	}
}

// Show flushes the frame to the terminal
func (c *Canvas) Show() {
	c.screen.Show()
}

func (c *Canvas) drawFrame() {
	style := c.background.Foreground(constant.RgbRock)
	x0, y0 := c.offsetX-1, c.offsetY-1
	x1, y1 := c.offsetX+c.width, c.offsetY+c.height
	for x := x0 + 1; x < x1; x++ {
		c.screen.SetContent(x, y0, '─', nil, style)
		c.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.screen.SetContent(x0, y, '│', nil, style)
		c.screen.SetContent(x1, y, '│', nil, style)
	}
	c.screen.SetContent(x0, y0, '┌', nil, style)
	c.screen.SetContent(x1, y0, '┐', nil, style)
	c.screen.SetContent(x0, y1, '└', nil, style)
	c.screen.SetContent(x1, y1, '┘', nil, style)
}

// Put sets one world cell
func (c *Canvas) Put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(c.offsetX+x, c.offsetY+y, r, nil, style)
}

// Text draws s starting at x, y, spaces included
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.Put(x, y, r, style)
		x++
	}
}

// TextCentered draws s horizontally centred on row y
func (c *Canvas) TextCentered(y int, s string, style tcell.Style) {
	c.Text((c.width-utf8.RuneCountInString(s))/2, y, s, style)
}

// Lines draws rows with spaces left transparent
func (c *Canvas) Lines(x, y int, rows []string, style tcell.Style) {
	for dy, row := range rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				c.Put(x+dx, y+dy, r, style)
			}
			dx++
		}
	}
}

// LinesCentered draws rows as a block centred horizontally, starting at row y
func (c *Canvas) LinesCentered(y int, rows []string, style tcell.Style) {
	w := 0
	for _, row := range rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	c.Lines((c.width-w)/2, y, rows, style)
}

// Texture draws a texture with its top-left corner at x, y
func (c *Canvas) Texture(x, y int, tex *asset.Texture, style tcell.Style) {
	for ty := 0; ty < tex.Height; ty++ {
		for tx := 0; tx < tex.Width; tx++ {
			if r := tex.At(tx, ty); r != ' ' {
				c.Put(x+tx, y+ty, r, style)
			}
		}
	}
}

// Line draws a segment between two world points
func (c *Canvas) Line(a, b mgl64.Vec2, r rune, style tcell.Style) {
	x0, y0 := cell(a)
	x1, y1 := cell(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.Put(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon fills a polygon by sampling cell centres, the outline is always drawn
// so thin polygons stay visible
func (c *Canvas) Polygon(points []mgl64.Vec2, r rune, style tcell.Style) {
	n := len(points)
	if n == 0 {
		return
	}

	lo, hi := geom.Bounds(points)

	var xs []float64
	for y := max(int(math.Floor(lo.Y())), 0); y <= min(int(math.Floor(hi.Y())), c.height-1); y++ {
		sample := float64(y) + 0.5
		xs = xs[:0]
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := points[i], points[j]
			if (a[1] > sample) != (b[1] > sample) {
				xs = append(xs, a[0]+(sample-a[1])*(b[0]-a[0])/(b[1]-a[1]))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			for x := int(math.Ceil(xs[k] - 0.5)); float64(x)+0.5 < xs[k+1]; x++ {
				c.Put(x, y, r, style)
			}
		}
	}

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		c.Line(points[j], points[i], r, style)
	}
}

// Circle fills a disc, the centre cell is always drawn
func (c *Canvas) Circle(centre mgl64.Vec2, radius float64, r rune, style tcell.Style) {
	cx, cy := cell(centre)
	c.Put(cx, cy, r, style)

	x0, y0 := cell(centre.Sub(mgl64.Vec2{radius, radius}))
	x1, y1 := cell(centre.Add(mgl64.Vec2{radius, radius}))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := mgl64.Vec2{float64(x) + 0.5, float64(y) + 0.5}.Sub(centre)
			if d.Len() <= radius {
				c.Put(x, y, r, style)
			}
		}
	}
}

// Draw renders an entity visual at its position and rotation
func (c *Canvas) Draw(rc component.RenderableComponent, pos mgl64.Vec2, rotation float64) {
	switch s := rc.Shape.(type) {
	case component.Sprite:
		frame := s.Sheet.Frame(s.Frame)
		if s.Directional {
			frame = s.Sheet.Heading(rotation)
		}
		x, y := cell(pos)
		c.Texture(x-frame.Width/2, y-frame.Height/2, frame, rc.Style)
	case component.Circle:
		c.Circle(pos, s.Radius, s.Rune, rc.Style)
	case component.Polygon:
		c.Polygon(s.Points, s.Rune, rc.Style)
	case component.Text:
		x, y := cell(pos)
		c.Text(x, y, s.Value, rc.Style)
	}
}

// Style returns the default style over the world background
func (c *Canvas) Style() tcell.Style { return c.background }

func cell(p mgl64.Vec2) (int, int) {
	return int(math.Floor(p[0])), int(math.Floor(p[1]))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
