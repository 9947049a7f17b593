// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Sentinel errors for layer reading and entity building.
var (
	ErrMissingField   = errors.New("layer: missing attribute")
	ErrFieldType      = errors.New("layer: attribute has wrong type")
	ErrGeometry       = errors.New("layer: unusable geometry")
	ErrAmbiguousBasin = errors.New("layer: centroid lies in more than one basin")
)

// Layer is a read-only sequence of vector features.
type Layer interface {
	// Len returns the number of features.
	Len() int
	// Geometry returns the vertices of feature i: one for a point, the
	// polyline for a line, the outer ring for a polygon. nil if unsupported.
	Geometry(i int) []orb.Point
	// Record returns the attributes of feature i.
	Record(i int) map[string]any
}

// FeatureLayer is a Layer over a GeoJSON FeatureCollection.
type FeatureLayer struct {
	name string
	fc   *geojson.FeatureCollection
}

// NewFeatureLayer wraps fc. A nil fc is an empty layer.
func NewFeatureLayer(name string, fc *geojson.FeatureCollection) *FeatureLayer {
	if fc == nil {
		fc = geojson.NewFeatureCollection()
	}
	return &FeatureLayer{name: name, fc: fc}
}

// Parse decodes a GeoJSON FeatureCollection.
func Parse(name string, data []byte) (*FeatureLayer, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w: %v", name, ErrGeometry, err)
	}
	return NewFeatureLayer(name, fc), nil
}

// Load reads a GeoJSON FeatureCollection from path.
func Load(path string) (*FeatureLayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layer: read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Name returns the layer name (its source path for loaded layers).
func (l *FeatureLayer) Name() string { return l.name }

// Len implements Layer.
func (l *FeatureLayer) Len() int { return len(l.fc.Features) }

// Geometry implements Layer. Single-member multi-geometries are unwrapped.
func (l *FeatureLayer) Geometry(i int) []orb.Point {
	switch g := l.fc.Features[i].Geometry.(type) {
	case orb.Point:
		return []orb.Point{g}
	case orb.LineString:
		return append([]orb.Point(nil), g...)
	case orb.Ring:
		return append([]orb.Point(nil), g...)
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return append([]orb.Point(nil), g[0]...)
	case orb.MultiPoint:
		if len(g) == 1 {
			return []orb.Point{g[0]}
		}
	case orb.MultiLineString:
		if len(g) == 1 {
			return append([]orb.Point(nil), g[0]...)
		}
	case orb.MultiPolygon:
		if len(g) == 1 && len(g[0]) > 0 {
			return append([]orb.Point(nil), g[0][0]...)
		}
	}
	return nil
}

// Record implements Layer. The returned map is a copy; a feature id not
// repeated in the properties is exposed as "id".
func (l *FeatureLayer) Record(i int) map[string]any {
	f := l.fc.Features[i]
	rec := make(map[string]any, len(f.Properties)+1)
	for k, v := range f.Properties {
		rec[k] = v
	}
	if _, ok := rec["id"]; !ok && f.ID != nil {
		rec["id"] = f.ID
	}
	return rec
}
