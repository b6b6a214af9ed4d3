// Package core contains the fundamental types used throughout the wireroute engine.
package core

import "math"

// Point represents a 2D coordinate on the floor plan, in feet.
type Point struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// RoutingMode selects the cost function used during path search.
type RoutingMode int

const (
	ModeShortestPath RoutingMode = iota
	ModeLowestCost
	ModeFewestTurns
	ModeConduitShared
	ModeMaintenanceAccess
)

// String returns the string representation of a RoutingMode.
func (m RoutingMode) String() string {
	switch m {
	case ModeShortestPath:
		return "shortest_path"
	case ModeLowestCost:
		return "lowest_cost"
	case ModeFewestTurns:
		return "fewest_turns"
	case ModeConduitShared:
		return "conduit_shared"
	case ModeMaintenanceAccess:
		return "maintenance_access"
	default:
		return "unknown"
	}
}

// RoutingModes lists every valid mode in declaration order.
var RoutingModes = []RoutingMode{
	ModeShortestPath,
	ModeLowestCost,
	ModeFewestTurns,
	ModeConduitShared,
	ModeMaintenanceAccess,
}

// ParseRoutingMode converts a mode name (as used in scenario files) back to a
// RoutingMode. The second return value is false for unrecognized names.
func ParseRoutingMode(s string) (RoutingMode, bool) {
	for _, m := range RoutingModes {
		if m.String() == s {
			return m, true
		}
	}
	return ModeShortestPath, false
}

// Obstacle is an axis-aligned rectangular region that conductor runs must not
// cross. Height is optional context for callers (0 means unspecified);
// Category is a free-form label such as "wall" or "equipment".
type Obstacle struct {
	ID       string
	Min, Max Point
	Height   float64
	Category string
}

// Normalized returns a copy with corner coordinates swapped where needed so
// that Min.X <= Max.X and Min.Y <= Max.Y.
func (o Obstacle) Normalized() Obstacle {
	if o.Min.X > o.Max.X {
		o.Min.X, o.Max.X = o.Max.X, o.Min.X
	}
	if o.Min.Y > o.Max.Y {
		o.Min.Y, o.Max.Y = o.Max.Y, o.Min.Y
	}
	return o
}

// Center returns the obstacle's center point.
func (o Obstacle) Center() Point {
	return Point{X: (o.Min.X + o.Max.X) / 2, Y: (o.Min.Y + o.Max.Y) / 2}
}

// conduitFillRatio is the fraction of a conduit's cross-section that may be
// occupied by conductors (the 40% fill rule).
const conduitFillRatio = 0.4

// ConduitRun is a physical raceway between two points that can carry multiple
// wires up to its fill-capacity limit. Diameter is the nominal inner diameter
// in inches; fill areas are in square inches.
type ConduitRun struct {
	ID            string
	Start, End    Point
	Diameter      float64
	Material      string
	UsedFillArea  float64
	InstalledCost float64
}

// MaxFillArea returns the maximum usable cross-sectional area under the 40%
// fill rule.
func (c ConduitRun) MaxFillArea() float64 {
	r := c.Diameter / 2
	return math.Pi * r * r * conduitFillRatio
}

// CanAccommodate reports whether the conduit has enough spare fill capacity
// for one more wire of the given cross-sectional area.
func (c ConduitRun) CanAccommodate(fillArea float64) bool {
	return c.MaxFillArea()-c.UsedFillArea >= fillArea
}

// Path is an ordered sequence of waypoints produced by the path search,
// together with the accumulated search cost.
type Path struct {
	Points []Point
	Cost   float64
}

// Length returns the total Euclidean length of the path in feet.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		dx := p.Points[i].X - p.Points[i-1].X
		dy := p.Points[i].Y - p.Points[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}
