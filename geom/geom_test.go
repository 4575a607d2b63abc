package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  mgl64.Vec2
	}{
		{"up", 0, mgl64.Vec2{0, -1}},
		{"right", math.Pi / 2, mgl64.Vec2{1, 0}},
		{"down", math.Pi, mgl64.Vec2{0, 1}},
		{"left", -math.Pi / 2, mgl64.Vec2{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.angle)
			assert.InDelta(t, tt.want[0], got[0], 1e-9)
			assert.InDelta(t, tt.want[1], got[1], 1e-9)
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(mgl64.Vec2{0, 0}, 1, mgl64.Vec2{1.5, 0}, 1))
	assert.True(t, CirclesOverlap(mgl64.Vec2{0, 0}, 1, mgl64.Vec2{2, 0}, 1))
	assert.False(t, CirclesOverlap(mgl64.Vec2{0, 0}, 1, mgl64.Vec2{2.1, 0}, 1))
}

func TestClampLen(t *testing.T) {
	v := ClampLen(mgl64.Vec2{30, 40}, 10)
	assert.InDelta(t, 10, v.Len(), 1e-9)
	assert.Equal(t, mgl64.Vec2{1, 1}, ClampLen(mgl64.Vec2{1, 1}, 10))
	assert.Equal(t, mgl64.Vec2{}, ClampLen(mgl64.Vec2{}, 10))
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 1, Wrap(11, 10), 1e-9)
	assert.InDelta(t, 9, Wrap(-1, 10), 1e-9)
	assert.InDelta(t, 0, Wrap(10, 10), 1e-9)
}

func TestContains(t *testing.T) {
	square := []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.True(t, Contains(square, mgl64.Vec2{2, 2}))
	assert.False(t, Contains(square, mgl64.Vec2{5, 2}))
	assert.False(t, Contains(square, mgl64.Vec2{2, -1}))
	assert.False(t, Contains(square[:2], mgl64.Vec2{1, 0}))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{4, 4}, mgl64.Vec2{0, 4}, mgl64.Vec2{4, 0}))
	assert.False(t, SegmentsIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, mgl64.Vec2{3, 0}, mgl64.Vec2{4, 1}))
	assert.False(t, SegmentsIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{1, 1}))
}

func TestSegmentCrossesPolygon(t *testing.T) {
	block := []mgl64.Vec2{{2, 0}, {3, 0}, {3, 10}, {2, 10}}
	assert.True(t, SegmentCrossesPolygon(mgl64.Vec2{0, 5}, mgl64.Vec2{5, 5}, block))
	assert.False(t, SegmentCrossesPolygon(mgl64.Vec2{0, 5}, mgl64.Vec2{1, 5}, block))
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]mgl64.Vec2{{1, 5}, {-2, 3}, {4, -1}})
	assert.Equal(t, mgl64.Vec2{-2, -1}, min)
	assert.Equal(t, mgl64.Vec2{4, 5}, max)
}

func TestPointSegmentDistance(t *testing.T) {
	a, b := mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}
	assert.InDelta(t, 3, PointSegmentDistance(mgl64.Vec2{5, 3}, a, b), 1e-9)
	assert.InDelta(t, 5, PointSegmentDistance(mgl64.Vec2{-3, 4}, a, b), 1e-9)
	assert.InDelta(t, 5, PointSegmentDistance(mgl64.Vec2{3, 4}, a, a), 1e-9)
}

func TestCircleTouchesPolygon(t *testing.T) {
	square := []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.True(t, CircleTouchesPolygon(square, mgl64.Vec2{2, 2}, 0.1))
	assert.True(t, CircleTouchesPolygon(square, mgl64.Vec2{5, 2}, 1))
	assert.False(t, CircleTouchesPolygon(square, mgl64.Vec2{6, 2}, 1))
}
