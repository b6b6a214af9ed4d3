// Package routing exposes the smart routing engine: it owns the environment
// model and result cache, runs the grid search, and turns raw paths into
// fully analyzed routing results.
package routing

import (
	"errors"

	"wireroute/core"
	"wireroute/wire"
)

// ErrEndpointNotFound indicates a route request named an endpoint identifier
// that was never registered. The request fails without touching the cache or
// the environment.
var ErrEndpointNotFound = errors.New("routing: endpoint not registered")

// Result is the externally visible outcome of a route request. Immutable
// once constructed; cached by (from, to, wire type, mode).
type Result struct {
	FromID   string           `json:"from_id"`
	ToID     string           `json:"to_id"`
	WireType wire.Type        `json:"-"`
	Wire     string           `json:"wire_type"`
	Mode     core.RoutingMode `json:"-"`
	ModeName string           `json:"routing_mode"`

	Waypoints []core.Point `json:"waypoints"`
	LengthFt  float64      `json:"total_length_ft"`
	TotalCost float64      `json:"total_cost"`
	TurnCount int          `json:"turn_count"`

	// UsableConduits lists conduits the path passes close enough to reuse
	// and that have spare fill capacity for this wire.
	UsableConduits []string `json:"usable_conduits"`

	// NearObstacles lists obstacles whose center lies near the path. It is
	// reporting context only, not a correctness signal.
	NearObstacles []string `json:"near_obstacles"`

	// VoltageDropV is a lookup-table estimate of round-trip voltage drop at
	// an assumed design load, not a load-flow result.
	VoltageDropV float64 `json:"voltage_drop_v"`

	Confidence float64  `json:"confidence_score"`
	Compliant  bool     `json:"compliant"`
	Notes      []string `json:"optimization_notes"`
}
