package environment

import (
	"wireroute/core"
	"wireroute/geometry"
)

// SegmentBlocked reports whether the straight segment a-b collides with any
// registered obstacle. The test compares the segment's axis-aligned bounding
// box against each obstacle rectangle, which is conservative: it can reject a
// segment that merely passes near a corner, but it never lets a segment
// through an obstacle it overlaps.
func (m *Model) SegmentBlocked(a, b core.Point) bool {
	segMin, segMax := geometry.SegmentBounds(a, b)
	for _, o := range m.obstacles {
		if geometry.BoundsOverlap(segMin, segMax, o.Min, o.Max) {
			return true
		}
	}
	return false
}
