package routing

import (
	"fmt"
	"math"
	"strings"

	"wireroute/core"
	"wireroute/environment"
	"wireroute/geometry"
	"wireroute/wire"
)

// Analysis thresholds and scoring weights. These are heuristics tuned for
// readable reports, not engineering constants.
const (
	// conduitProximityFt is how close a path must pass to a conduit
	// centerline for the conduit to count as reusable.
	conduitProximityFt = 2.0

	// nearObstacleRadiusFt bounds the "near obstacle" report list.
	nearObstacleRadiusFt = 5.0

	// collinearEpsilon is the cross-product threshold below which three
	// consecutive waypoints count as a straight line.
	collinearEpsilon = 1e-9

	voltageDropRunFt = 100.0 // runs longer than this get a voltage-drop note
	highTurnCount    = 5
	premiumCostPerFt = 0.50

	confidenceBase   = 0.5
	obstacleBonusPer = 0.02
	obstacleBonusCap = 0.10
	turnPenaltyPer   = 0.03
	turnPenaltyCap   = 0.30

	// assumedLoadFraction of a wire's ampacity is used as the design load
	// for the voltage-drop estimate.
	assumedLoadFraction = 0.8
)

// modeConfidenceBonus reflects how well-understood each mode's scoring is.
var modeConfidenceBonus = map[core.RoutingMode]float64{
	core.ModeShortestPath:      0.20,
	core.ModeLowestCost:        0.15,
	core.ModeFewestTurns:       0.15,
	core.ModeConduitShared:     0.10,
	core.ModeMaintenanceAccess: 0.10,
}

// analyze turns a smoothed path into a full Result. unverified marks paths
// produced by the direct-line fallback after an exhausted search.
func analyze(fromID, toID string, wireType wire.Type, spec wire.Spec, mode core.RoutingMode,
	points []core.Point, env *environment.Model, laborRatePerFt float64, unverified bool) Result {

	length := core.Path{Points: points}.Length()
	turns := countTurns(points)
	totalCost := length*spec.CostPerFoot + length*laborRatePerFt

	usable := usableConduits(points, spec, env)
	near := nearObstacles(points, env)
	vdrop := voltageDrop(length, spec)

	notes := buildNotes(length, turns, usable, spec, unverified)
	confidence := score(mode, turns, len(near), unverified)

	return Result{
		FromID:         fromID,
		ToID:           toID,
		WireType:       wireType,
		Wire:           wireType.String(),
		Mode:           mode,
		ModeName:       mode.String(),
		Waypoints:      points,
		LengthFt:       length,
		TotalCost:      totalCost,
		TurnCount:      turns,
		UsableConduits: usable,
		NearObstacles:  near,
		VoltageDropV:   vdrop,
		Confidence:     confidence,
		Compliant:      !unverified,
		Notes:          notes,
	}
}

// countTurns counts interior waypoints where the incoming and outgoing
// direction vectors are non-collinear. This is the exact notion of a turn,
// distinct from the diagonal-step proxy the search optimizes against.
func countTurns(points []core.Point) int {
	turns := 0
	for i := 1; i < len(points)-1; i++ {
		cross := geometry.Cross(points[i-1], points[i], points[i+1])
		if math.Abs(cross) > collinearEpsilon {
			turns++
		}
	}
	return turns
}

// usableConduits lists conduits the path passes within reach of and that have
// spare fill capacity for this wire.
func usableConduits(points []core.Point, spec wire.Spec, env *environment.Model) []string {
	var out []string
	for _, c := range env.Conduits() {
		if !c.CanAccommodate(spec.ConduitFillArea) {
			continue
		}
		if geometry.PolylineSegmentDistance(points, c.Start, c.End) <= conduitProximityFt {
			out = append(out, c.ID)
		}
	}
	return out
}

// nearObstacles lists obstacles whose center lies within the report radius of
// the path. Reporting context only.
func nearObstacles(points []core.Point, env *environment.Model) []string {
	var out []string
	for _, o := range env.Obstacles() {
		if geometry.PointPolylineDistance(o.Center(), points) <= nearObstacleRadiusFt {
			out = append(out, o.ID)
		}
	}
	return out
}

// voltageDrop estimates round-trip voltage drop at an assumed design load.
// Vdrop = 2 * (length/1000) * ohms-per-1000ft * current.
func voltageDrop(lengthFt float64, spec wire.Spec) float64 {
	current := spec.MaxCurrent * assumedLoadFraction
	return 2 * (lengthFt / 1000) * spec.ResistancePerKF * current
}

// score computes the confidence heuristic, clamped to [0,1].
func score(mode core.RoutingMode, turns, nearCount int, unverified bool) float64 {
	c := confidenceBase
	c += math.Min(float64(nearCount)*obstacleBonusPer, obstacleBonusCap)
	c += modeConfidenceBonus[mode]
	c -= math.Min(float64(turns)*turnPenaltyPer, turnPenaltyCap)
	if unverified {
		c -= 0.4
	}
	return math.Max(0, math.Min(1, c))
}

// buildNotes produces the human-readable optimization notes.
func buildNotes(lengthFt float64, turns int, usable []string, spec wire.Spec, unverified bool) []string {
	var notes []string
	if unverified {
		notes = append(notes, "search exhausted: direct path returned, not verified against obstacles")
	}
	if turns > highTurnCount {
		notes = append(notes, fmt.Sprintf("route has %d turns; consider fewest-turns mode or manual reroute", turns))
	}
	if lengthFt > voltageDropRunFt {
		notes = append(notes, fmt.Sprintf("run length %.1f ft exceeds %.0f ft; verify voltage drop at design load", lengthFt, voltageDropRunFt))
	}
	if len(usable) > 0 {
		notes = append(notes, fmt.Sprintf("existing conduit available along route (%s); sharing reduces installation cost", strings.Join(usable, ", ")))
	}
	if spec.CostPerFoot > premiumCostPerFt {
		notes = append(notes, fmt.Sprintf("premium wire at %.2f/ft; confirm gauge is required for the load", spec.CostPerFoot))
	}
	return notes
}
