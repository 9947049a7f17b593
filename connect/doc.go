// SPDX-License-Identifier: MIT

// Package connect infers the directed drainage network of a catchment from
// unordered, undirected reach geometry.
//
// What
//
//   - Step 1 (Match): every reach endpoint is snapped to its nearest node
//     (k=1, Euclidean). The result is an undirected node×reach table: each
//     reach knows the two nodes at its ends, with no flow meaning yet.
//   - Step 2: the unique outlet confluence is taken from the Catchment
//     (validated there).
//   - Step 3 (label): a breadth-first walk from the outlet alternates between
//     the reaches incident to the current node and the node at the far end of
//     each reach. Each reach is labelled exactly once, the first time the
//     walk meets it, so every reachable reach receives one downstream node
//     (the side nearer the outlet) and one upstream node.
//   - The labelled maps are frozen into a catchment.Network.
//
// Determinism
//
//	Nodes and reaches are scanned in index order and the queue is FIFO, so
//	calling Connect twice on the same Catchment yields identical maps.
//	Ties in Step 1 resolve to the lowest node index (first minimum wins) and
//	are logged at Warn level.
//
// Loops
//
//	A reach joining two nodes that are both already queued closes a loop.
//	It is still directed toward the node nearer the outlet and logged. The
//	first downstream link of every node is the reach it was discovered
//	through, so following Network.Down never cycles.
//
// Disconnected input
//
//	Nodes that the walk never reaches keep empty incidence rows. They are
//	reported by Network.Unreachable and logged; they are not an error.
//
// Complexity (V = nodes, E = reaches)
//
//   - Match: O(V·E).
//   - Label: O(V + E); each reach is labelled once.
//
// Options
//
//   - WithSnapTolerance(d): reject endpoints farther than d from any node.
//   - WithLogger(l):        slog logger for diagnostics (default: discard).
//   - WithOnLabel(fn):      hook called for every labelled reach.
//
// Errors
//
//   - ErrCatchmentNil       nil catchment.
//   - ErrOptionViolation    invalid option value.
//   - ErrUnmatchedEndpoint  endpoint beyond the snap tolerance.
//   - ErrDegenerateReach    both endpoints snap to the same node.
package connect
