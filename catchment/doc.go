// SPDX-License-Identifier: MIT

// Package catchment defines the entities of a catchment diagram and the
// connected drainage network built from them.
//
// Entities
//
//   - Node: a tagged variant. Every node carries a unique Name and a
//     position; KindBasin nodes (sub-areas) additionally carry Area and the
//     fraction impervious FI, KindConfluence nodes carry the Outlet flag.
//   - Reach: a polyline edge with a ReachType (natural / unlined / lined /
//     drowned) and a slope. Its vertex order is NOT the flow direction.
//   - Catchment: the validated vertex set (confluences first, then basins,
//     indexed by position) and edge set (reaches, indexed by position).
//     Exactly one confluence is the outlet.
//   - Network: a Catchment plus the two incidence maps produced by the
//     connect package. For every node index v the maps hold the list of
//     (reach, neighbour) Links in the downstream and upstream direction,
//     ordered by reach index. Absence of a link means "no edge"; there is no
//     sentinel value in the maps themselves.
//
// Lifecycle
//
//	Entities are immutable values. A Catchment is validated once by New and
//	never changes. A Network is frozen when NewNetwork returns; accessors hand
//	out copies, so callers cannot mutate the maps.
//
// Errors
//
//   - ErrNoNodes, ErrNoReaches         empty vertex or edge set.
//   - ErrNoOutlet, ErrMultipleOutlets   outlet invariant violated.
//   - ErrEmptyName, ErrDuplicateName    node naming violated.
//   - ErrKindMismatch                   a basin in the confluence list or vice versa.
//   - ErrBadArea, ErrBadImpervious      basin attributes out of range.
//   - ErrShortReach, ErrBadReachType    malformed reach.
//   - ErrBadIncidence                   incidence maps inconsistent with the catchment.
package catchment
