package routing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"wireroute/core"
	"wireroute/environment"
	"wireroute/pathfinding"
	"wireroute/wire"
)

// Default engine tuning. Overridable per engine through options.
const (
	DefaultGridResolutionFt = 10.0
	DefaultSearchMarginFt   = 20.0
	DefaultLaborRatePerFt   = 2.50
	DefaultCacheSize        = 256
	DefaultMaxSearchNodes   = 50000
)

// Engine is the smart routing engine. It owns the environment model and the
// result cache; a single instance is not safe for concurrent mutation, but
// independent engines (or read-only fan-out over a snapshot) may run in
// parallel.
type Engine struct {
	env   *environment.Model
	cache *resultCache
	log   *slog.Logger

	gridResolution float64
	searchMargin   float64
	laborRate      float64
	maxNodes       int

	obstacleSeq int
}

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithGridResolution sets the search lattice spacing in feet.
func WithGridResolution(feet float64) Option {
	return func(e *Engine) { e.gridResolution = feet }
}

// WithSearchMargin sets how far the search bounding box extends past the
// endpoints on each side, in feet.
func WithSearchMargin(feet float64) Option {
	return func(e *Engine) { e.searchMargin = feet }
}

// WithLaborRate sets the flat installation labor rate per foot.
func WithLaborRate(ratePerFoot float64) Option {
	return func(e *Engine) { e.laborRate = ratePerFoot }
}

// WithCacheSize bounds the result cache entry count.
func WithCacheSize(entries int) Option {
	return func(e *Engine) { e.cache = newResultCache(entries) }
}

// WithMaxSearchNodes bounds A* node expansions before the direct-path
// fallback kicks in.
func WithMaxSearchNodes(n int) Option {
	return func(e *Engine) { e.maxNodes = n }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates a routing engine with an empty environment.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		env:            environment.NewModel(),
		cache:          newResultCache(DefaultCacheSize),
		log:            slog.Default(),
		gridResolution: DefaultGridResolutionFt,
		searchMargin:   DefaultSearchMarginFt,
		laborRate:      DefaultLaborRatePerFt,
		maxNodes:       DefaultMaxSearchNodes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetEndpoint registers or overwrites a named location. Non-finite
// coordinates are rejected with a warning rather than stored.
func (e *Engine) SetEndpoint(id string, p core.Point) {
	if !p.IsFinite() {
		e.log.Warn("ignoring endpoint with non-finite coordinates", "id", id)
		return
	}
	e.env.SetEndpoint(id, p)
	e.cache.clear()
}

// AddObstacle registers building geometry the router must avoid. Obstacles
// without an ID are assigned a sequential one for reporting.
func (e *Engine) AddObstacle(o core.Obstacle) {
	if !o.Min.IsFinite() || !o.Max.IsFinite() {
		e.log.Warn("ignoring obstacle with non-finite coordinates", "id", o.ID)
		return
	}
	if o.ID == "" {
		e.obstacleSeq++
		o.ID = fmt.Sprintf("obstacle-%d", e.obstacleSeq)
	}
	e.env.AddObstacle(o)
	e.cache.clear()
}

// AddConduit registers an installed conduit run. Conduits without an ID are
// assigned a fresh UUID.
func (e *Engine) AddConduit(c core.ConduitRun) {
	if !c.Start.IsFinite() || !c.End.IsFinite() {
		e.log.Warn("ignoring conduit with non-finite coordinates", "id", c.ID)
		return
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	e.env.AddConduit(c)
	e.cache.clear()
}

// Environment exposes the engine's environment model for read-only queries.
func (e *Engine) Environment() *environment.Model {
	return e.env
}

// CacheStats reports result-cache effectiveness counters.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.stats()
}

// Route computes a conductor route between two registered endpoints.
//
// Failure modes: an endpoint identifier that was never registered returns an
// error wrapping ErrEndpointNotFound; a wire type outside the catalog returns
// an error wrapping wire.ErrUnknownWireType. An exhausted search is not an
// error: the direct two-point path is returned with a note marking it as
// unverified for collisions.
func (e *Engine) Route(fromID, toID string, wireType wire.Type, mode core.RoutingMode) (Result, error) {
	from, ok := e.env.Endpoint(fromID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrEndpointNotFound, fromID)
	}
	to, ok := e.env.Endpoint(toID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrEndpointNotFound, toID)
	}
	spec, err := wire.SpecFor(wireType)
	if err != nil {
		return Result{}, err
	}

	key := cacheKey{From: fromID, To: toID, Wire: wireType, Mode: mode}
	if cached, found := e.cache.get(key); found {
		return cached, nil
	}

	stepCost := pathfinding.CostFor(mode, e.env.NearestConduitDistance)
	finder := pathfinding.NewFinder(e.gridResolution, e.searchMargin, e.env.SegmentBlocked, stepCost)
	finder.SetMaxNodes(e.maxNodes)

	path, err := finder.FindPath(from, to)
	unverified := false
	points := path.Points
	if err != nil {
		if !errors.Is(err, pathfinding.ErrNoPath) {
			return Result{}, err
		}
		// Fallback: direct two-point path, flagged as unverified.
		unverified = true
		points = []core.Point{from, to}
		e.log.Warn("path search exhausted, returning unverified direct path",
			"from", fromID, "to", toID, "mode", mode.String())
	} else {
		points = pathfinding.Smooth(points, e.env.SegmentBlocked)
	}

	result := analyze(fromID, toID, wireType, spec, mode, points, e.env, e.laborRate, unverified)
	e.cache.put(key, result)
	return result, nil
}
