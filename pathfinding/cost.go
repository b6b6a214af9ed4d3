package pathfinding

import (
	"wireroute/core"
	"wireroute/geometry"
)

// StepCost computes the search cost of moving between two adjacent grid
// points. Every mode's cost is derived from the Euclidean step distance, so
// the Euclidean heuristic stays informative for all of them.
type StepCost func(from, to core.Point) float64

// Cost model constants. The multipliers are deliberately coarse: they shape
// the search rather than model real installation economics, which the route
// analyzer prices separately.
const (
	// installationMultiplier inflates step cost in lowest-cost mode to stand
	// in for per-foot labor during search.
	installationMultiplier = 1.2

	// diagonalTurnMultiplier penalizes diagonal steps in fewest-turns mode.
	// A diagonal step is a coarse proxy for "introduces a turn"; the analyzer
	// counts true turns separately after smoothing.
	diagonalTurnMultiplier = 1.5

	// conduitBonusMax is the largest step-cost discount for hugging an
	// existing conduit; conduitBonusRange is the distance in feet at which
	// the discount tapers to zero.
	conduitBonusMax   = 0.3
	conduitBonusRange = 5.0
)

// conduitDistanceFunc resolves the distance from a point to the nearest
// conduit centerline. The bool is false when no conduits exist.
type conduitDistanceFunc func(core.Point) (float64, bool)

// CostFor returns the step-cost function for a routing mode. The
// conduitDistance lookup is only consulted in conduit-shared mode.
func CostFor(mode core.RoutingMode, conduitDistance conduitDistanceFunc) StepCost {
	switch mode {
	case core.ModeLowestCost:
		return func(from, to core.Point) float64 {
			return geometry.Distance(from, to) * installationMultiplier
		}
	case core.ModeFewestTurns:
		return func(from, to core.Point) float64 {
			base := geometry.Distance(from, to)
			if from.X != to.X && from.Y != to.Y {
				return base * diagonalTurnMultiplier
			}
			return base
		}
	case core.ModeConduitShared:
		return func(from, to core.Point) float64 {
			base := geometry.Distance(from, to)
			if conduitDistance == nil {
				return base
			}
			d, ok := conduitDistance(to)
			if !ok {
				return base
			}
			bonus := conduitBonusMax * (1 - d/conduitBonusRange)
			if bonus < 0 {
				bonus = 0
			}
			if bonus > conduitBonusMax {
				bonus = conduitBonusMax
			}
			return base * (1 - bonus)
		}
	default:
		// ModeShortestPath, and ModeMaintenanceAccess which is reserved and
		// scored identically for now.
		return func(from, to core.Point) float64 {
			return geometry.Distance(from, to)
		}
	}
}
