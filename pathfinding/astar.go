package pathfinding

import (
	"container/heap"
	"errors"
	"math"

	"wireroute/core"
	"wireroute/geometry"
)

// ErrNoPath indicates the search exhausted its open set (or its node budget)
// without reaching the goal. Callers decide the fallback policy.
var ErrNoPath = errors.New("pathfinding: no path found within search bounds")

// node is a state in the A* search.
type node struct {
	point  core.Point
	gCost  float64 // cost from start
	hCost  float64 // heuristic cost to goal
	fCost  float64 // gCost + hCost
	parent *node
	index  int // index in the heap
}

// nodeQueue is a min-heap of search nodes ordered by fCost with deterministic
// tie-breaking.
type nodeQueue []*node

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	// Tie-breaker 1: prefer nodes closer to the goal.
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	// Tie-breaker 2: stable position ordering so equal-cost searches expand
	// identically on every run.
	if nq[i].point.X != nq[j].point.X {
		return nq[i].point.X < nq[j].point.X
	}
	return nq[i].point.Y < nq[j].point.Y
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := len(*nq)
	nd := x.(*node)
	nd.index = n
	*nq = append(*nq, nd)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil // avoid memory leak
	nd.index = -1
	*nq = old[0 : n-1]
	return nd
}

// gridKey identifies a lattice position for map lookups. Coordinates are
// quantized to micro-feet so float round-off in repeated stepping cannot
// split one cell into several map entries.
type gridKey struct {
	x, y int64
}

func keyFor(p core.Point) gridKey {
	return gridKey{
		x: int64(math.Round(p.X * 1e6)),
		y: int64(math.Round(p.Y * 1e6)),
	}
}

// Finder runs A* over the implicit grid around an endpoint pair.
type Finder struct {
	resolution float64
	margin     float64
	maxNodes   int
	blocked    func(a, b core.Point) bool
	stepCost   StepCost
}

// NewFinder creates a path finder. blocked reports segment collisions and may
// be nil (nothing blocks); stepCost must not be nil.
func NewFinder(resolution, margin float64, blocked func(a, b core.Point) bool, stepCost StepCost) *Finder {
	return &Finder{
		resolution: resolution,
		margin:     margin,
		maxNodes:   50000, // safety limit
		blocked:    blocked,
		stepCost:   stepCost,
	}
}

// SetMaxNodes overrides the expansion safety limit.
func (f *Finder) SetMaxNodes(max int) {
	f.maxNodes = max
}

// FindPath searches for a route from start to goal. The search space is the
// bounding box of the two endpoints expanded by the configured margin. The
// goal test succeeds once a grid point comes within one resolution of the
// goal; the exact goal point is then appended so the returned path terminates
// precisely at the requested endpoint.
//
// Returns ErrNoPath when the open set empties or the node budget is exceeded
// before the goal is reached.
func (f *Finder) FindPath(start, goal core.Point) (core.Path, error) {
	if geometry.Distance(start, goal) <= f.resolution {
		return core.Path{Points: []core.Point{start, goal}, Cost: geometry.Distance(start, goal)}, nil
	}

	boundsMin, boundsMax := SearchBounds(start, goal, f.margin)

	openSet := &nodeQueue{}
	heap.Init(openSet)
	closedSet := make(map[gridKey]bool)
	nodeMap := make(map[gridKey]*node)

	startNode := &node{
		point: start,
		hCost: geometry.Distance(start, goal),
	}
	startNode.fCost = startNode.hCost
	heap.Push(openSet, startNode)
	nodeMap[keyFor(start)] = startNode

	explored := 0

	for openSet.Len() > 0 {
		explored++
		if explored > f.maxNodes {
			return core.Path{}, ErrNoPath
		}

		current := heap.Pop(openSet).(*node)

		// Goal test: close enough to snap onto the exact endpoint.
		if geometry.Distance(current.point, goal) <= f.resolution {
			return f.reconstructPath(current, goal), nil
		}

		closedSet[keyFor(current.point)] = true

		for _, neighbor := range Neighbors(current.point, f.resolution, boundsMin, boundsMax) {
			nk := keyFor(neighbor)
			if closedSet[nk] {
				continue
			}
			// Blocked segments never enter the open set.
			if f.blocked != nil && f.blocked(current.point, neighbor) {
				continue
			}

			tentativeG := current.gCost + f.stepCost(current.point, neighbor)

			existing, seen := nodeMap[nk]
			if !seen {
				n := &node{
					point:  neighbor,
					gCost:  tentativeG,
					hCost:  geometry.Distance(neighbor, goal),
					parent: current,
				}
				n.fCost = n.gCost + n.hCost
				heap.Push(openSet, n)
				nodeMap[nk] = n
			} else if tentativeG < existing.gCost {
				existing.gCost = tentativeG
				existing.fCost = existing.gCost + existing.hCost
				existing.parent = current
				if existing.index >= 0 {
					heap.Fix(openSet, existing.index)
				} else {
					// Already expanded with a worse cost; re-open it.
					delete(closedSet, nk)
					heap.Push(openSet, existing)
				}
			}
		}
	}

	return core.Path{}, ErrNoPath
}

// reconstructPath walks parent links back to the start and appends the exact
// goal point.
func (f *Finder) reconstructPath(goalNode *node, goal core.Point) core.Path {
	var points []core.Point
	for n := goalNode; n != nil; n = n.parent {
		points = append(points, n.point)
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	cost := goalNode.gCost
	if points[len(points)-1] != goal {
		cost += f.stepCost(points[len(points)-1], goal)
		points = append(points, goal)
	}
	return core.Path{Points: points, Cost: cost}
}
