// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrEmptyGeometry is returned when a computation needs at least one vertex
// (or three for polygons) and received fewer.
var ErrEmptyGeometry = errors.New("geom: empty geometry")

// Point builds an orb.Point from x and y.
func Point(x, y float64) orb.Point {
	return orb.Point{x, y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Length returns the cartesian length of the polyline, i.e. the sum of the
// Euclidean lengths of its segments. A polyline with fewer than two vertices
// has zero length.
// Complexity: O(n).
func Length(ls orb.LineString) float64 {
	return planar.Length(ls)
}

// Area returns the unsigned cartesian area of the polygon (outer ring minus
// holes), computed with the shoelace formula.
// Complexity: O(n).
func Area(p orb.Polygon) float64 {
	return math.Abs(planar.Area(p))
}

// Centroid returns the area-weighted centroid of the polygon.
// Returns ErrEmptyGeometry when the outer ring has fewer than three vertices.
// Complexity: O(n).
func Centroid(p orb.Polygon) (orb.Point, error) {
	if len(p) == 0 || len(p[0]) < 3 {
		return orb.Point{}, ErrEmptyGeometry
	}
	c, _ := planar.CentroidArea(p)

	return c, nil
}

// Contains reports whether pt lies inside polygon p (holes excluded).
func Contains(p orb.Polygon, pt orb.Point) bool {
	return planar.PolygonContains(p, pt)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return Lerp(a, b, 0.5)
}

// Lerp returns a + t·(b − a). t=0 yields a, t=1 yields b.
func Lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
	}
}

// Ring closes a vertex list into an orb.Ring, appending the first vertex
// when the list is open. Lists shorter than three vertices are returned as is.
func Ring(pts []orb.Point) orb.Ring {
	r := make(orb.Ring, len(pts), len(pts)+1)
	copy(r, pts)
	if len(r) >= 3 && !r.Closed() {
		r = append(r, r[0])
	}

	return r
}
