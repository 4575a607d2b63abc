// Package geom provides the 2D tests used by the collision and AI systems
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Heading returns the unit vector for a rotation, 0 points up and angles grow clockwise
func Heading(angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{0, -1})
}

// CirclesOverlap reports whether two circles intersect or touch
func CirclesOverlap(a mgl64.Vec2, ra float64, b mgl64.Vec2, rb float64) bool {
	d := a.Sub(b)
	r := ra + rb
	return d.Dot(d) <= r*r
}

// ClampLen scales v down to max length, leaving shorter vectors untouched
func ClampLen(v mgl64.Vec2, max float64) mgl64.Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Wrap maps v into [0, size)
func Wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Contains reports whether p lies inside the polygon using even-odd ray casting
func Contains(poly []mgl64.Vec2, p mgl64.Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1]) + a[0]
			if p[0] < x {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4
// Collinear overlaps are not reported
func SegmentsIntersect(p1, p2, p3, p4 mgl64.Vec2) bool {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(denom) < 1e-12 {
		return false
	}
	w := p3.Sub(p1)
	t := (w[0]*d2[1] - w[1]*d2[0]) / denom
	u := (w[0]*d1[1] - w[1]*d1[0]) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentCrossesPolygon reports whether segment a-b crosses any edge of poly
func SegmentCrossesPolygon(a, b mgl64.Vec2, poly []mgl64.Vec2) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(a, b, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	return false
}

// Bounds returns the axis-aligned bounding box of the points
func Bounds(pts []mgl64.Vec2) (min, max mgl64.Vec2) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min[0] = math.Min(min[0], p[0])
		min[1] = math.Min(min[1], p[1])
		max[0] = math.Max(max[0], p[0])
		max[1] = math.Max(max[1], p[1])
	}
	return
}

// PointSegmentDistance returns the distance from p to the closest point of segment a-b
func PointSegmentDistance(p, a, b mgl64.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Len()
}

// CircleTouchesPolygon reports whether a circle overlaps the polygon area or its outline
func CircleTouchesPolygon(poly []mgl64.Vec2, c mgl64.Vec2, r float64) bool {
	if Contains(poly, c) {
		return true
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if PointSegmentDistance(c, poly[i], poly[(i+1)%n]) <= r {
			return true
		}
	}
	return false
}
