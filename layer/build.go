// SPDX-License-Identifier: MIT

package layer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/geom"
)

// Field names read from layer records.
const (
	FieldID    = "id"
	FieldType  = "t"
	FieldSlope = "s"
	FieldOut   = "out"
	FieldFI    = "fi"
)

// squareMetresPerKm2 converts polygon area in map units (m²) to km².
const squareMetresPerKm2 = 1e6

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for skipped features. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// Builder turns layers into catchment entities.
type Builder struct {
	log *slog.Logger
}

// NewBuilder returns a Builder with a discarding logger unless configured.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sources names the four layers of a catchment.
type Sources struct {
	Reaches     Layer
	Confluences Layer
	Basins      Layer
	Centroids   Layer
}

// Catchment builds all entities from s and validates them with catchment.New.
func (b *Builder) Catchment(s Sources) (*catchment.Catchment, error) {
	reaches, err := b.Reaches(s.Reaches)
	if err != nil {
		return nil, err
	}
	confluences, err := b.Confluences(s.Confluences)
	if err != nil {
		return nil, err
	}
	basins, err := b.Basins(s.Centroids, s.Basins)
	if err != nil {
		return nil, err
	}
	return catchment.New(confluences, basins, reaches)
}

// Reaches builds one Reach per polyline feature.
func (b *Builder) Reaches(l Layer) ([]catchment.Reach, error) {
	out := make([]catchment.Reach, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		rec := l.Record(i)
		name, err := text(rec, FieldID)
		if err != nil {
			return nil, fmt.Errorf("reach %d: %w", i, err)
		}
		code, err := number(rec, FieldType)
		if err != nil {
			return nil, fmt.Errorf("reach %q: %w", name, err)
		}
		typ, err := catchment.ParseReachType(int(code))
		if err != nil || code != float64(int(code)) {
			return nil, fmt.Errorf("reach %q: %w: type code %v", name, ErrFieldType, code)
		}
		slope, err := number(rec, FieldSlope)
		if err != nil {
			return nil, fmt.Errorf("reach %q: %w", name, err)
		}
		pts := l.Geometry(i)
		if len(pts) < 2 {
			return nil, fmt.Errorf("reach %q: %w: need a polyline", name, ErrGeometry)
		}
		r, err := catchment.NewReach(name, orb.LineString(pts), typ, slope)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Confluences builds one Confluence per point feature.
func (b *Builder) Confluences(l Layer) ([]catchment.Node, error) {
	out := make([]catchment.Node, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		rec := l.Record(i)
		name, err := text(rec, FieldID)
		if err != nil {
			return nil, fmt.Errorf("confluence %d: %w", i, err)
		}
		isOut, err := flag(rec, FieldOut)
		if err != nil {
			return nil, fmt.Errorf("confluence %q: %w", name, err)
		}
		pts := l.Geometry(i)
		if len(pts) != 1 {
			return nil, fmt.Errorf("confluence %q: %w: need a point", name, ErrGeometry)
		}
		out = append(out, catchment.NewConfluence(name, pts[0][0], pts[0][1], isOut))
	}
	return out, nil
}

// Basins pairs every centroid with the basin polygon containing it.
func (b *Builder) Basins(centroids, basins Layer) ([]catchment.Node, error) {
	polys := make([]orb.Polygon, basins.Len())
	for j := range polys {
		pts := basins.Geometry(j)
		if len(pts) < 3 {
			return nil, fmt.Errorf("basin polygon %d: %w: need a polygon", j, ErrGeometry)
		}
		polys[j] = orb.Polygon{geom.Ring(pts)}
	}

	out := make([]catchment.Node, 0, centroids.Len())
	for i := 0; i < centroids.Len(); i++ {
		rec := centroids.Record(i)
		name, err := text(rec, FieldID)
		if err != nil {
			return nil, fmt.Errorf("centroid %d: %w", i, err)
		}
		pts := centroids.Geometry(i)
		if len(pts) != 1 {
			return nil, fmt.Errorf("centroid %q: %w: need a point", name, ErrGeometry)
		}
		p := pts[0]

		var match []int
		for j, poly := range polys {
			if geom.Contains(poly, p) {
				match = append(match, j)
			}
		}
		switch len(match) {
		case 0:
			b.log.Warn("centroid outside every basin polygon, skipped", "centroid", name, "x", p[0], "y", p[1])
			continue
		case 1:
		default:
			return nil, fmt.Errorf("%w: centroid %q in polygons %v", ErrAmbiguousBasin, name, match)
		}

		fi, err := number(rec, FieldFI)
		if err != nil {
			return nil, fmt.Errorf("centroid %q: %w", name, err)
		}
		area := geom.Area(polys[match[0]]) / squareMetresPerKm2
		out = append(out, catchment.NewBasin(name, p[0], p[1], area, fi))
	}
	return out, nil
}

// text reads a name-like attribute. Integral numbers are accepted and
// written without a fraction.
func text(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case json.Number:
		return x.String(), nil
	}
	return "", fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
}

func number(rec map[string]any, key string) (float64, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrFieldType, key, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
}

// flag reads a boolean attribute; numbers are true when non-zero.
func flag(rec map[string]any, key string) (bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return false, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case float64:
		return x != 0, nil
	case int:
		return x != 0, nil
	}
	return false, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
}
