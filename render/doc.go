// SPDX-License-Identifier: MIT

// Package render writes hydrological model control files from a connected
// catchment.
//
// Every format consumes the same action stream (package control) and
// differs only in how each action is spelled:
//
//	rorb       .catg       numeric control vector, area list, impervious list
//	urbs       .vec        fixed-width graphics block + control vector + tables
//	urbs-text  _cmd.vec    RAIN / ADD RAIN / STORE. / GET. / ROUTE THRU commands
//	           .cat        sub-catchment CSV (Index,Name,Area,Imperviousness,IL,CL)
//	wbnm       .wbn        block-structured runfile with 12-character fields
//
// The WBNM runfile is the exception to the shared stream: it lists
// sub-areas in traverse.NextAbsolute order and locates each outflow point
// on the line between a basin centroid and its downstream basin centroid,
// weighted by area.
//
// Numbers
//
//	Control vectors use shortest round-trip decimals with a trailing ".0" for
//	integral values ("2.0", "0.015", "2e-05"). Fixed-width fields never
//	truncate: an oversized value fails with ErrFieldOverflow.
//
// Missing reaches
//
//	A stop with no downstream reach (the outlet) is written as the format's
//	out-of-catchment marker: "7\nout\n0" (rorb), "7\n\n0" (urbs),
//	"PRINT. <node>" (urbs-text).
//
// Graphics
//
//	The urbs graphics layout (headers, column order, widths, precision) comes
//	from an embedded YAML table, replaceable with LoadTable. Coordinates are
//	rescaled into [Shift, Shift+Scale] over the bounding box of the listed
//	nodes; node and reach ids are handed out in traversal order.
//
// Every Render call builds its own Traveller, so one network can be
// rendered to any number of formats, any number of times.
package render
