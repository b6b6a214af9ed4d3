// Package geometry provides planar math helpers for the routing engine.
package geometry

import (
	"math"

	"wireroute/core"
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b core.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SegmentBounds returns the axis-aligned bounding box of the segment a-b.
func SegmentBounds(a, b core.Point) (min, max core.Point) {
	min = core.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	max = core.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return min, max
}

// BoundsOverlap reports whether two axis-aligned rectangles overlap.
// Touching edges count as overlap.
func BoundsOverlap(aMin, aMax, bMin, bMax core.Point) bool {
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

// Cross returns the z-component of the cross product of the vectors o->a and
// o->b. Positive means a->b is a counter-clockwise turn around o.
func Cross(o, a, b core.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// PointSegmentDistance returns the distance from point p to the segment a-b.
// A zero-length segment is treated as the single point a.
func PointSegmentDistance(p, a, b core.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := core.Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Distance(p, closest)
}

// SegmentsIntersect reports whether segments a1-a2 and b1-b2 intersect,
// including touching at endpoints and collinear overlap.
func SegmentsIntersect(a1, a2, b1, b2 core.Point) bool {
	d1 := Cross(b1, b2, a1)
	d2 := Cross(b1, b2, a2)
	d3 := Cross(a1, a2, b1)
	d4 := Cross(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or endpoint-touching cases.
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the segment's bounding box.
func onSegment(a, b, p core.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// SegmentDistance returns the minimum distance between segments a1-a2 and
// b1-b2. Intersecting segments have distance zero. Degenerate segments
// collapse to point distances.
func SegmentDistance(a1, a2, b1, b2 core.Point) float64 {
	if SegmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	d := PointSegmentDistance(a1, b1, b2)
	d = math.Min(d, PointSegmentDistance(a2, b1, b2))
	d = math.Min(d, PointSegmentDistance(b1, a1, a2))
	d = math.Min(d, PointSegmentDistance(b2, a1, a2))
	return d
}

// PolylineSegmentDistance returns the minimum distance between any segment of
// the polyline and the segment a-b. A single-point polyline is treated as a
// point; an empty polyline returns +Inf.
func PolylineSegmentDistance(polyline []core.Point, a, b core.Point) float64 {
	if len(polyline) == 0 {
		return math.Inf(1)
	}
	if len(polyline) == 1 {
		return PointSegmentDistance(polyline[0], a, b)
	}
	min := math.Inf(1)
	for i := 1; i < len(polyline); i++ {
		d := SegmentDistance(polyline[i-1], polyline[i], a, b)
		if d < min {
			min = d
		}
	}
	return min
}

// PointPolylineDistance returns the minimum distance from p to any segment of
// the polyline. An empty polyline returns +Inf.
func PointPolylineDistance(p core.Point, polyline []core.Point) float64 {
	if len(polyline) == 0 {
		return math.Inf(1)
	}
	if len(polyline) == 1 {
		return Distance(p, polyline[0])
	}
	min := math.Inf(1)
	for i := 1; i < len(polyline); i++ {
		d := PointSegmentDistance(p, polyline[i-1], polyline[i])
		if d < min {
			min = d
		}
	}
	return min
}
