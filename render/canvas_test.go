package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/nongravitar/asset"
	"github.com/lixenwraith/nongravitar/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, sw, sh, w, h int) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(sw, sh)
	t.Cleanup(screen.Fini)

	c := NewCanvas(screen, w, h)
	c.Clear()
	return c, screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCanvasCentresAndClips(t *testing.T) {
	c, screen := newTestCanvas(t, 30, 12, 20, 10)

	c.Put(0, 0, 'A', tcell.StyleDefault)
	c.Put(19, 9, 'B', tcell.StyleDefault)
	c.Put(20, 0, 'X', tcell.StyleDefault)
	c.Put(-1, 0, 'X', tcell.StyleDefault)

	assert.Equal(t, 'A', runeAt(screen, 5, 1))
	assert.Equal(t, 'B', runeAt(screen, 24, 10))
	assert.Equal(t, ' ', runeAt(screen, 25, 1))
	assert.Equal(t, ' ', runeAt(screen, 4, 1))
}

func TestCanvasFrame(t *testing.T) {
	c, screen := newTestCanvas(t, 12, 6, 10, 4)
	c.SetFramed(true)
	c.Clear()

	assert.Equal(t, '┌', runeAt(screen, 0, 0))
	assert.Equal(t, '┘', runeAt(screen, 11, 5))
	assert.Equal(t, '─', runeAt(screen, 5, 0))
	assert.True(t, c.Framed())
}

func TestCanvasText(t *testing.T) {
	c, screen := newTestCanvas(t, 20, 5, 20, 5)

	c.TextCentered(2, "HELLO", tcell.StyleDefault)
	assert.Equal(t, 'H', runeAt(screen, 7, 2))
	assert.Equal(t, 'O', runeAt(screen, 11, 2))

	c.Text(0, 0, "ab", tcell.StyleDefault)
	c.Lines(0, 0, []string{" Z"}, tcell.StyleDefault)
	assert.Equal(t, 'a', runeAt(screen, 0, 0), "spaces in Lines are transparent")
	assert.Equal(t, 'Z', runeAt(screen, 1, 0))
}

func TestCanvasLine(t *testing.T) {
	c, screen := newTestCanvas(t, 10, 10, 10, 10)
	c.Line(mgl64.Vec2{0, 0}, mgl64.Vec2{4.5, 4.5}, '*', tcell.StyleDefault)
	for i := 0; i <= 4; i++ {
		assert.Equal(t, '*', runeAt(screen, i, i))
	}
	assert.Equal(t, ' ', runeAt(screen, 5, 5))
}

func TestCanvasPolygonUsesStyle(t *testing.T) {
	c, screen := newTestCanvas(t, 10, 10, 10, 10)
	color := tcell.NewRGBColor(10, 200, 30)
	style := tcell.StyleDefault.Foreground(color)

	square := []mgl64.Vec2{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	c.Polygon(square, '#', style)

	r, _, st, _ := screen.GetContent(4, 4)
	assert.Equal(t, '#', r)
	fg, _, _ := st.Decompose()
	assert.Equal(t, color, fg)
	assert.Equal(t, ' ', runeAt(screen, 8, 8))
	assert.Equal(t, '#', runeAt(screen, 2, 2))
}

func TestCanvasCircle(t *testing.T) {
	c, screen := newTestCanvas(t, 10, 10, 10, 10)
	c.Circle(mgl64.Vec2{5, 5}, 1.5, 'o', tcell.StyleDefault)
	assert.Equal(t, 'o', runeAt(screen, 5, 5))
	assert.Equal(t, 'o', runeAt(screen, 4, 4))
	assert.Equal(t, ' ', runeAt(screen, 1, 1))

	c.Circle(mgl64.Vec2{8.2, 1.3}, 0.1, 'x', tcell.StyleDefault)
	assert.Equal(t, 'x', runeAt(screen, 8, 1), "tiny radius still draws the centre")
}

func TestCanvasDrawSprite(t *testing.T) {
	c, screen := newTestCanvas(t, 10, 10, 10, 10)
	sheet, err := asset.NewSpriteSheet(asset.ParseTexture("▲◥▶◢▼◣◀◤"), 1, 1)
	require.NoError(t, err)

	c.Draw(component.RenderableComponent{
		Shape: component.Sprite{Sheet: sheet, Directional: true},
		Style: tcell.StyleDefault,
	}, mgl64.Vec2{3.4, 3.9}, 1.5707963)
	assert.Equal(t, '▶', runeAt(screen, 3, 3))

	c.Draw(component.RenderableComponent{Shape: component.Text{Value: "hi"}}, mgl64.Vec2{0, 9}, 0)
	assert.Equal(t, 'h', runeAt(screen, 0, 9))
}

func TestBlinkCycles(t *testing.T) {
	b := NewBlink(10 * time.Millisecond)
	assert.Equal(t, int32(255), b.Level())

	seen := map[int32]bool{}
	for i := 0; i < 8; i++ {
		seen[b.Level()] = true
		b.Update(10 * time.Millisecond)
	}
	assert.Equal(t, int32(255), b.Level(), "eight steps complete one cycle")
	assert.Greater(t, len(seen), 1)

	b.Update(25 * time.Millisecond)
	assert.Equal(t, blinkLevels[2], b.Level())
}
