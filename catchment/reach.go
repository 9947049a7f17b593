// SPDX-License-Identifier: MIT

package catchment

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/geom"
)

// ReachType classifies the channel lining of a reach. The numeric values are
// the codes written into model control vectors.
type ReachType int

const (
	Natural ReachType = 1
	Unlined ReachType = 2
	Lined   ReachType = 3
	Drowned ReachType = 4
)

// ParseReachType converts a numeric code into a ReachType.
func ParseReachType(code int) (ReachType, error) {
	t := ReachType(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadReachType, code)
	}
	return t, nil
}

// Valid reports whether t is one of the four known types.
func (t ReachType) Valid() bool { return t >= Natural && t <= Drowned }

// HasSlope reports whether control vectors carry a slope for this type.
// Natural and drowned reaches are routed without one.
func (t ReachType) HasSlope() bool { return t == Unlined || t == Lined }

// String implements fmt.Stringer.
func (t ReachType) String() string {
	switch t {
	case Natural:
		return "natural"
	case Unlined:
		return "unlined"
	case Lined:
		return "lined"
	case Drowned:
		return "drowned"
	default:
		return fmt.Sprintf("reachtype(%d)", int(t))
	}
}

// Reach is a channel segment between two nodes.
//
// The polyline vertex order is arbitrary: Start and End are geometric
// endpoints only, flow direction comes from the connected Network.
type Reach struct {
	name   string
	line   orb.LineString
	typ    ReachType
	slope  float64
	length float64
}

// NewReach validates and returns a Reach. The polyline is copied.
// Returns ErrEmptyName, ErrShortReach or ErrBadReachType.
func NewReach(name string, line orb.LineString, typ ReachType, slope float64) (Reach, error) {
	if name == "" {
		return Reach{}, fmt.Errorf("reach: %w", ErrEmptyName)
	}
	if len(line) < 2 {
		return Reach{}, fmt.Errorf("reach %q: %w", name, ErrShortReach)
	}
	if !typ.Valid() {
		return Reach{}, fmt.Errorf("reach %q: %w: %d", name, ErrBadReachType, int(typ))
	}
	cp := make(orb.LineString, len(line))
	copy(cp, line)

	return Reach{name: name, line: cp, typ: typ, slope: slope, length: geom.Length(cp)}, nil
}

// Name returns the reach name.
func (r Reach) Name() string { return r.name }

// Type returns the lining classification.
func (r Reach) Type() ReachType { return r.typ }

// Slope returns the slope in m/m.
func (r Reach) Slope() float64 { return r.slope }

// Length returns the polyline length in map units.
func (r Reach) Length() float64 { return r.length }

// Start returns the first polyline vertex.
func (r Reach) Start() orb.Point { return r.line[0] }

// End returns the last polyline vertex.
func (r Reach) End() orb.Point { return r.line[len(r.line)-1] }

// Midpoint returns the point halfway between Start and End.
func (r Reach) Midpoint() orb.Point { return geom.Midpoint(r.Start(), r.End()) }

// Line returns a copy of the polyline.
func (r Reach) Line() orb.LineString {
	cp := make(orb.LineString, len(r.line))
	copy(cp, r.line)
	return cp
}
