package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"wireroute/core"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}), 1e-12)
	assert.Equal(t, 0.0, Distance(core.Point{X: 7, Y: 7}, core.Point{X: 7, Y: 7}))
}

func TestSegmentBounds(t *testing.T) {
	min, max := SegmentBounds(core.Point{X: 10, Y: -2}, core.Point{X: -3, Y: 8})
	assert.Equal(t, core.Point{X: -3, Y: -2}, min)
	assert.Equal(t, core.Point{X: 10, Y: 8}, max)
}

func TestBoundsOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax core.Point
		want                   bool
	}{
		{"disjoint", core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 3}, false},
		{"contained", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 3}, true},
		{"touching edge", core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 1}, true},
		{"x overlap only", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 1}, core.Point{X: 2, Y: 3}, core.Point{X: 4, Y: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoundsOverlap(tt.aMin, tt.aMax, tt.bMin, tt.bMax))
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a, b := core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}

	assert.InDelta(t, 3.0, PointSegmentDistance(core.Point{X: 5, Y: 3}, a, b), 1e-12)
	// Beyond the ends, distance is to the nearest endpoint.
	assert.InDelta(t, 5.0, PointSegmentDistance(core.Point{X: 13, Y: 4}, a, b), 1e-12)
	// Zero-length segments collapse to a point.
	assert.InDelta(t, 5.0, PointSegmentDistance(core.Point{X: 3, Y: 4}, a, a), 1e-12)
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 core.Point
		want           bool
	}{
		{"crossing", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}, core.Point{X: 0, Y: 10}, core.Point{X: 10, Y: 0}, true},
		{"parallel", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}, core.Point{X: 0, Y: 1}, core.Point{X: 10, Y: 1}, false},
		{"touching endpoint", core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 5, Y: 5}, core.Point{X: 10, Y: 0}, true},
		{"collinear overlap", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}, core.Point{X: 5, Y: 0}, core.Point{X: 15, Y: 0}, true},
		{"collinear disjoint", core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 0}, core.Point{X: 5, Y: 0}, core.Point{X: 15, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2))
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	// Crossing segments touch.
	assert.Equal(t, 0.0, SegmentDistance(
		core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10},
		core.Point{X: 0, Y: 10}, core.Point{X: 10, Y: 0}))

	// Parallel horizontal segments 4 apart.
	assert.InDelta(t, 4.0, SegmentDistance(
		core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0},
		core.Point{X: 0, Y: 4}, core.Point{X: 10, Y: 4}), 1e-12)

	// Both degenerate: plain point distance.
	assert.InDelta(t, 5.0, SegmentDistance(
		core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 0},
		core.Point{X: 3, Y: 4}, core.Point{X: 3, Y: 4}), 1e-12)
}

func TestPolylineDistances(t *testing.T) {
	polyline := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	assert.InDelta(t, 2.0, PointPolylineDistance(core.Point{X: 5, Y: 2}, polyline), 1e-12)
	assert.InDelta(t, 3.0, PolylineSegmentDistance(polyline, core.Point{X: 13, Y: 0}, core.Point{X: 13, Y: 10}), 1e-12)

	assert.True(t, math.IsInf(PointPolylineDistance(core.Point{X: 0, Y: 0}, nil), 1))
	assert.True(t, math.IsInf(PolylineSegmentDistance(nil, core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 1}), 1))

	// Single-point polyline behaves as a point.
	assert.InDelta(t, 5.0, PointPolylineDistance(core.Point{X: 3, Y: 4}, []core.Point{{X: 0, Y: 0}}), 1e-12)
}

func TestCross(t *testing.T) {
	// Counter-clockwise turn is positive, clockwise negative, collinear zero.
	assert.Positive(t, Cross(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 1, Y: 1}))
	assert.Negative(t, Cross(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 1, Y: -1}))
	assert.Equal(t, 0.0, Cross(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 2}))
}
