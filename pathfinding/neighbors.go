// Package pathfinding implements the informed grid search that plans
// conductor routes between two points while avoiding obstacles.
package pathfinding

import "wireroute/core"

// directionOffsets enumerates the eight compass directions in a fixed order
// (N, NE, E, SE, S, SW, W, NW). The order is part of the contract: identical
// inputs must expand neighbors identically so tie-broken results reproduce.
var directionOffsets = [8][2]float64{
	{0, 1},   // N
	{1, 1},   // NE
	{1, 0},   // E
	{1, -1},  // SE
	{0, -1},  // S
	{-1, -1}, // SW
	{-1, 0},  // W
	{-1, 1},  // NW
}

// Neighbors returns the candidate step positions around p at the given grid
// resolution, clipped to the bounding box [min, max]. Positions outside the
// box are dropped rather than clamped, so every returned point lies on the
// implicit lattice.
func Neighbors(p core.Point, resolution float64, min, max core.Point) []core.Point {
	out := make([]core.Point, 0, 8)
	for _, d := range directionOffsets {
		n := core.Point{X: p.X + d[0]*resolution, Y: p.Y + d[1]*resolution}
		if n.X < min.X || n.X > max.X || n.Y < min.Y || n.Y > max.Y {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SearchBounds derives the bounding box for a search between start and goal,
// expanded by margin on every side. Restricting the search to a rectangle
// around the request keeps point-to-point queries tractable regardless of how
// large the overall floor plan is.
func SearchBounds(start, goal core.Point, margin float64) (min, max core.Point) {
	min = core.Point{X: minf(start.X, goal.X) - margin, Y: minf(start.Y, goal.Y) - margin}
	max = core.Point{X: maxf(start.X, goal.X) + margin, Y: maxf(start.Y, goal.Y) + margin}
	return min, max
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
