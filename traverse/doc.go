// SPDX-License-Identifier: MIT

// Package traverse walks a connected catchment from its headwaters to its
// outlet.
//
// A Traveller is a cursor over a catchment.Network. Only its position and
// its per-node visited markers change; the network is read-only.
//
// Primitives
//
//   - Top(i): follow the first unvisited upstream neighbour repeatedly and
//     return the highest node reached, or i itself when nothing above i is
//     unvisited. Iterative. Only neighbours whose primary outflow (Down) is
//     the current node are climbed, so a loop-closing reach cannot trap the
//     walk.
//   - Up(i):   all immediate upstream neighbours, regardless of visited state.
//   - Down(i): the single downstream neighbour, or End at the outlet.
//
// Steps
//
//   - Next(): if Top(pos) == pos, mark pos visited and move down, pausing on
//     every confluence before climbing its next tributary. Otherwise jump to
//     Top(pos).
//   - NextAbsolute(): mark pos visited, move down, and jump straight to the
//     top of whatever remains above. No confluence pause.
//
// A Traveller is good for exactly one walk. There is no reset: construct a
// new one per render.
//
// Complexity: Top is O(depth·deg); a full walk is O(V·depth) in the worst
// case and O(V) for shallow networks.
package traverse
