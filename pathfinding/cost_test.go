package pathfinding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"wireroute/core"
)

func TestCostFor_ShortestPathIsEuclidean(t *testing.T) {
	cost := CostFor(core.ModeShortestPath, nil)
	assert.InDelta(t, 5.0, cost(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}), 1e-12)
}

func TestCostFor_MaintenanceAccessMatchesShortestPath(t *testing.T) {
	shortest := CostFor(core.ModeShortestPath, nil)
	maintenance := CostFor(core.ModeMaintenanceAccess, nil)

	from, to := core.Point{X: 1, Y: 2}, core.Point{X: 7, Y: -3}
	assert.Equal(t, shortest(from, to), maintenance(from, to))
}

func TestCostFor_LowestCostMultiplier(t *testing.T) {
	cost := CostFor(core.ModeLowestCost, nil)
	assert.InDelta(t, 10*1.2, cost(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}), 1e-12)
}

func TestCostFor_FewestTurnsPenalizesDiagonals(t *testing.T) {
	cost := CostFor(core.ModeFewestTurns, nil)

	straight := cost(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0})
	assert.InDelta(t, 10.0, straight, 1e-12)

	diagonal := cost(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10})
	assert.InDelta(t, math.Sqrt(200)*1.5, diagonal, 1e-12)
}

func TestCostFor_ConduitSharedBonus(t *testing.T) {
	distances := map[core.Point]float64{
		{X: 10, Y: 0}: 0,   // on the conduit centerline: full bonus
		{X: 20, Y: 0}: 2.5, // halfway through the taper
		{X: 30, Y: 0}: 5,   // at the edge of the taper: no bonus
		{X: 40, Y: 0}: 12,  // far away: no bonus
	}
	lookup := func(p core.Point) (float64, bool) {
		d, ok := distances[p]
		return d, ok
	}
	cost := CostFor(core.ModeConduitShared, lookup)
	from := core.Point{X: 0, Y: 0}

	assert.InDelta(t, 10*0.7, cost(from, core.Point{X: 10, Y: 0}), 1e-12)
	assert.InDelta(t, 20*0.85, cost(from, core.Point{X: 20, Y: 0}), 1e-12)
	assert.InDelta(t, 30.0, cost(from, core.Point{X: 30, Y: 0}), 1e-12)
	assert.InDelta(t, 40.0, cost(from, core.Point{X: 40, Y: 0}), 1e-12)
}

func TestCostFor_ConduitSharedWithoutConduits(t *testing.T) {
	// No conduits registered: behaves like shortest path.
	cost := CostFor(core.ModeConduitShared, func(core.Point) (float64, bool) { return 0, false })
	assert.InDelta(t, 5.0, cost(core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}), 1e-12)
}
