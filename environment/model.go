// Package environment holds the mutable building geometry the path search
// consults: obstacles, installed conduit runs, and named endpoint locations.
// A single Model instance is owned by one routing engine; mutations bump a
// generation counter so the engine can invalidate memoized results.
package environment

import (
	"math"

	"wireroute/core"
	"wireroute/geometry"
)

// Model owns the obstacle, conduit, and endpoint collections for one design
// session. The zero value is not usable; call NewModel.
type Model struct {
	obstacles  []core.Obstacle
	conduits   []core.ConduitRun
	endpoints  map[string]core.Point
	generation uint64
}

// NewModel creates an empty environment model.
func NewModel() *Model {
	return &Model{
		endpoints: make(map[string]core.Point),
	}
}

// Generation returns a counter that increments on every mutation. Consumers
// caching derived results compare generations to detect staleness.
func (m *Model) Generation() uint64 {
	return m.generation
}

// AddObstacle registers an obstacle. Corner points are normalized so callers
// may pass corners in any order.
func (m *Model) AddObstacle(o core.Obstacle) {
	m.obstacles = append(m.obstacles, o.Normalized())
	m.generation++
}

// AddConduit registers an installed conduit run.
func (m *Model) AddConduit(c core.ConduitRun) {
	m.conduits = append(m.conduits, c)
	m.generation++
}

// SetEndpoint registers or overwrites a named location.
func (m *Model) SetEndpoint(id string, p core.Point) {
	m.endpoints[id] = p
	m.generation++
}

// Endpoint looks up a registered location by identifier.
func (m *Model) Endpoint(id string) (core.Point, bool) {
	p, ok := m.endpoints[id]
	return p, ok
}

// Obstacles returns the registered obstacles. The returned slice is owned by
// the model and must not be mutated by callers.
func (m *Model) Obstacles() []core.Obstacle {
	return m.obstacles
}

// Conduits returns the registered conduit runs. The returned slice is owned
// by the model and must not be mutated by callers.
func (m *Model) Conduits() []core.ConduitRun {
	return m.conduits
}

// NearestConduitDistance returns the distance from p to the closest conduit
// centerline. The second return value is false when no conduits are
// registered. Zero-length conduit runs are treated as points.
func (m *Model) NearestConduitDistance(p core.Point) (float64, bool) {
	if len(m.conduits) == 0 {
		return 0, false
	}
	min := math.Inf(1)
	for _, c := range m.conduits {
		d := geometry.PointSegmentDistance(p, c.Start, c.End)
		if d < min {
			min = d
		}
	}
	return min, true
}
