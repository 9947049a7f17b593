// SPDX-License-Identifier: MIT

// Package layer reads GIS vector layers and builds catchment entities
// from them.
//
// A Layer is an indexed sequence of features, each with an ordered list of
// (x, y) vertices and a record of named attributes. FeatureLayer backs a
// Layer with a GeoJSON FeatureCollection.
//
// Four logical layers describe a catchment:
//
//	reaches      LineString  id, t (reach type code 1..4), s (slope m/m)
//	confluences  Point       id, out (bool or 0/1)
//	basins       Polygon     (geometry only)
//	centroids    Point       id, fi (fraction impervious)
//
// A basin takes its name, position and fi from a centroid and its area from
// the one basin polygon containing that centroid, in km² (map units are
// metres). A centroid outside every polygon is logged and skipped; a
// centroid inside several polygons fails with ErrAmbiguousBasin.
//
// Errors
//
//   - ErrMissingField    a required attribute is absent.
//   - ErrFieldType       an attribute has the wrong type.
//   - ErrGeometry        a feature has an unusable geometry.
//   - ErrAmbiguousBasin  a centroid lies in more than one basin polygon.
package layer
