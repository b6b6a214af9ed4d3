// Package wire provides the static catalog of conductor types the routing
// engine can select between. The catalog is a closed set fixed at compile
// time; requesting a type outside it is a configuration error, not a
// recoverable runtime condition.
package wire

import (
	"errors"
	"fmt"
)

// ErrUnknownWireType indicates a wire type outside the catalog's closed set.
var ErrUnknownWireType = errors.New("wire: unknown wire type")

// Type identifies a conductor gauge/insulation combination from the catalog.
type Type int

const (
	THHN14AWG Type = iota
	THHN12AWG
	THHN10AWG
	THHN8AWG
	FPL18x2
	FPL16x2
)

// String returns the catalog name of the wire type.
func (t Type) String() string {
	switch t {
	case THHN14AWG:
		return "thhn_14awg"
	case THHN12AWG:
		return "thhn_12awg"
	case THHN10AWG:
		return "thhn_10awg"
	case THHN8AWG:
		return "thhn_8awg"
	case FPL18x2:
		return "fpl_18_2"
	case FPL16x2:
		return "fpl_16_2"
	default:
		return "unknown"
	}
}

// Types lists every catalog wire type in declaration order.
var Types = []Type{THHN14AWG, THHN12AWG, THHN10AWG, THHN8AWG, FPL18x2, FPL16x2}

// Parse converts a catalog name (as used in scenario files) to a Type.
func Parse(s string) (Type, error) {
	for _, t := range Types {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWireType, s)
}

// Spec holds the immutable physical and cost properties of a wire type.
// All fields are positive finite numbers.
type Spec struct {
	CostPerFoot     float64 // currency units per linear foot
	MaxCurrent      float64 // ampacity in amps
	ResistancePerKF float64 // DC resistance in ohms per 1000 ft
	ConduitFillArea float64 // cross-sectional fill area in square inches
}

// specs is the static catalog table, populated once and never mutated.
var specs = map[Type]Spec{
	THHN14AWG: {CostPerFoot: 0.12, MaxCurrent: 15, ResistancePerKF: 3.07, ConduitFillArea: 0.0097},
	THHN12AWG: {CostPerFoot: 0.18, MaxCurrent: 20, ResistancePerKF: 1.93, ConduitFillArea: 0.0133},
	THHN10AWG: {CostPerFoot: 0.29, MaxCurrent: 30, ResistancePerKF: 1.21, ConduitFillArea: 0.0211},
	THHN8AWG:  {CostPerFoot: 0.52, MaxCurrent: 50, ResistancePerKF: 0.764, ConduitFillArea: 0.0366},
	FPL18x2:   {CostPerFoot: 0.24, MaxCurrent: 6, ResistancePerKF: 6.39, ConduitFillArea: 0.0145},
	FPL16x2:   {CostPerFoot: 0.31, MaxCurrent: 10, ResistancePerKF: 4.02, ConduitFillArea: 0.0181},
}

// SpecFor looks up the catalog record for a wire type.
func SpecFor(t Type) (Spec, error) {
	spec, ok := specs[t]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %d", ErrUnknownWireType, int(t))
	}
	return spec, nil
}
