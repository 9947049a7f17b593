// SPDX-License-Identifier: MIT

// Package control turns a traversal of a connected catchment into the
// symbolic action stream shared by every model renderer.
//
// Stream drives a fresh traverse.Traveller with Next and classifies each
// stop into exactly one Action:
//
//	START  basin, no hydrograph running            → running = true, advance
//	GET    stack top == node, hydrograph running   → pop, stay on the node
//	ADD    basin, running, nothing unvisited above → advance
//	STORE  running, unvisited tributary above      → push node, running = false, advance
//	ROUTE  confluence, running, nothing above      → advance
//	END    appended once the walk passes the outlet
//
// Rules are tried in that order. A stop matching none of them (for example
// a headwater confluence with no basin above it) fails with ErrUnclassified.
//
// A confluence with n tributaries yields n−1 STORE/GET pairs; every
// headwater basin yields one START.
package control
