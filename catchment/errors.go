// SPDX-License-Identifier: MIT

package catchment

import "errors"

// Sentinel errors for catchment construction. Callers branch with errors.Is;
// constructors attach context with %w.
var (
	// ErrNoNodes indicates an empty vertex set (no confluences and no basins).
	ErrNoNodes = errors.New("catchment: no nodes")

	// ErrNoReaches indicates an empty edge set.
	ErrNoReaches = errors.New("catchment: no reaches")

	// ErrNoOutlet indicates that no confluence is flagged as the outlet.
	ErrNoOutlet = errors.New("catchment: no outlet confluence")

	// ErrMultipleOutlets indicates that more than one confluence is flagged as the outlet.
	ErrMultipleOutlets = errors.New("catchment: multiple outlet confluences")

	// ErrEmptyName indicates a node or reach with an empty name.
	ErrEmptyName = errors.New("catchment: empty name")

	// ErrDuplicateName indicates two nodes sharing a name.
	ErrDuplicateName = errors.New("catchment: duplicate node name")

	// ErrKindMismatch indicates a node passed in the wrong list (a basin among
	// confluences, or a confluence among basins).
	ErrKindMismatch = errors.New("catchment: node kind mismatch")

	// ErrBadArea indicates a negative or non-finite basin area.
	ErrBadArea = errors.New("catchment: basin area must be finite and >= 0")

	// ErrBadImpervious indicates a fraction impervious outside [0,1].
	ErrBadImpervious = errors.New("catchment: fraction impervious must be in [0,1]")

	// ErrShortReach indicates a reach polyline with fewer than two vertices.
	ErrShortReach = errors.New("catchment: reach needs at least two vertices")

	// ErrBadReachType indicates an unknown reach type code.
	ErrBadReachType = errors.New("catchment: unknown reach type")

	// ErrBadIncidence indicates incidence maps that do not match the
	// catchment's shape or reference unknown nodes/reaches.
	ErrBadIncidence = errors.New("catchment: inconsistent incidence maps")
)
