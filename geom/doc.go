// SPDX-License-Identifier: MIT

// Package geom provides the planar geometry primitives used to describe a
// catchment: points, polylines and polygons in projected (cartesian)
// coordinates.
//
// What
//
//   - Length of a polyline (sum of Euclidean segment lengths).
//   - Polygon area (shoelace) and centroid (area-weighted formula).
//   - Point-in-polygon containment for associating centroids with basins.
//   - Midpoint between two points and weighted interpolation along a vector.
//   - Window: a linear min–max rescale of coordinates into a bounded display
//     window (used by graphics blocks of model control files).
//
// Why
//
//	Geometry is pure and stateless; every value here is an orb value type
//	(orb.Point is a [2]float64) so it is immutable by construction and can be
//	shared freely between entities.
//
// Complexity
//
//   - Length, Area, Centroid, Contains: O(n) in the number of vertices.
//   - Window.Fit: O(n) over the fitted points; Window.Apply: O(1).
package geom
