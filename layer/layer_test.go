// SPDX-License-Identifier: MIT

package layer_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/layer"
)

const reachesJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"id":"R0","t":1,"s":0},"geometry":{"type":"LineString","coordinates":[[0,1000],[0,0]]}},
 {"type":"Feature","properties":{"id":"R1","t":2,"s":0.015},"geometry":{"type":"LineString","coordinates":[[-1000,2000],[0,1000]]}},
 {"type":"Feature","properties":{"id":"R2","t":3,"s":0.01},"geometry":{"type":"MultiLineString","coordinates":[[[1000,2000],[0,1000]]]}}
]}`

const confluencesJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"id":"C0","out":true},"geometry":{"type":"Point","coordinates":[0,0]}},
 {"type":"Feature","properties":{"id":"C1","out":0},"geometry":{"type":"Point","coordinates":[0,1000]}}
]}`

const basinsJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[-2000,1500],[-500,1500],[-500,2500],[-2000,2500],[-2000,1500]]]}},
 {"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[500,1500],[2000,1500],[2000,3000],[500,3000],[500,1500]]]}},
 {"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[10000,0],[11000,0],[11000,1000],[10000,1000],[10000,0]]]}}
]}`

const centroidsJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"id":"B1","fi":0.1},"geometry":{"type":"Point","coordinates":[-1000,2000]}},
 {"type":"Feature","properties":{"id":"B2","fi":0.35},"geometry":{"type":"Point","coordinates":[1000,2000]}},
 {"type":"Feature","properties":{"id":"B9","fi":0},"geometry":{"type":"Point","coordinates":[5000,5000]}}
]}`

func parse(t *testing.T, name, doc string) *layer.FeatureLayer {
	t.Helper()
	l, err := layer.Parse(name, []byte(doc))
	require.NoError(t, err)
	return l
}

func sources(t *testing.T) layer.Sources {
	return layer.Sources{
		Reaches:     parse(t, "reaches", reachesJSON),
		Confluences: parse(t, "confluences", confluencesJSON),
		Basins:      parse(t, "basins", basinsJSON),
		Centroids:   parse(t, "centroids", centroidsJSON),
	}
}

func TestFeatureLayer(t *testing.T) {
	l := parse(t, "reaches", reachesJSON)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "reaches", l.Name())
	assert.Equal(t, []orb.Point{{0, 1000}, {0, 0}}, l.Geometry(0))
	assert.Equal(t, []orb.Point{{1000, 2000}, {0, 1000}}, l.Geometry(2), "single-member multi-geometry unwrapped")
	assert.Equal(t, "R1", l.Record(1)["id"])

	b := parse(t, "basins", basinsJSON)
	assert.Len(t, b.Geometry(0), 5, "outer ring")

	withID := parse(t, "ids", `{"type":"FeatureCollection","features":[
 {"type":"Feature","id":7,"properties":{"fi":0.5},"geometry":{"type":"Point","coordinates":[1,2]}}]}`)
	assert.Equal(t, 7.0, withID.Record(0)["id"])

	_, err := layer.Parse("bad", []byte(`{"type":`))
	assert.ErrorIs(t, err, layer.ErrGeometry)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confluences.geojson")
	require.NoError(t, os.WriteFile(path, []byte(confluencesJSON), 0o600))
	l, err := layer.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, path, l.Name())

	_, err = layer.Load(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}

func TestBuilder_Catchment(t *testing.T) {
	var buf bytes.Buffer
	b := layer.NewBuilder(layer.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	c, err := b.Catchment(sources(t))
	require.NoError(t, err)

	assert.Equal(t, 4, c.NodeCount())
	assert.Equal(t, 3, c.ReachCount())
	assert.Equal(t, "C0", c.Node(c.Outlet()).Name())

	i, ok := c.Index("B1")
	require.True(t, ok)
	b1 := c.Node(i)
	assert.True(t, b1.IsBasin())
	assert.InDelta(t, 1.5, b1.Area(), 1e-12)
	assert.InDelta(t, 0.1, b1.FI(), 1e-12)

	i, ok = c.Index("B2")
	require.True(t, ok)
	assert.InDelta(t, 2.25, c.Node(i).Area(), 1e-12)

	_, ok = c.Index("B9")
	assert.False(t, ok, "centroid outside every polygon is skipped")
	assert.Contains(t, buf.String(), "B9")

	assert.Equal(t, catchment.Lined, c.Reach(2).Type())
	assert.InDelta(t, 0.01, c.Reach(2).Slope(), 1e-12)
}

func TestBuilder_Errors(t *testing.T) {
	b := layer.NewBuilder()
	reach := func(props, geometry string) *layer.FeatureLayer {
		return parse(t, "reaches", `{"type":"FeatureCollection","features":[{"type":"Feature","properties":`+props+`,"geometry":`+geometry+`}]}`)
	}
	line := `{"type":"LineString","coordinates":[[0,0],[0,1]]}`

	_, err := b.Reaches(reach(`{"id":"R0","s":0}`, line))
	assert.ErrorIs(t, err, layer.ErrMissingField)
	_, err = b.Reaches(reach(`{"id":"R0","t":"natural","s":0}`, line))
	assert.ErrorIs(t, err, layer.ErrFieldType)
	_, err = b.Reaches(reach(`{"id":"R0","t":7,"s":0}`, line))
	assert.ErrorIs(t, err, layer.ErrFieldType)
	_, err = b.Reaches(reach(`{"id":"R0","t":1.5,"s":0}`, line))
	assert.ErrorIs(t, err, layer.ErrFieldType)
	_, err = b.Reaches(reach(`{"id":"R0","t":1,"s":0}`, `{"type":"Point","coordinates":[0,0]}`))
	assert.ErrorIs(t, err, layer.ErrGeometry)
	_, err = b.Reaches(reach(`{"id":["R0"],"t":1,"s":0}`, line))
	assert.ErrorIs(t, err, layer.ErrFieldType)

	_, err = b.Confluences(parse(t, "c", `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"id":"C0","out":"yes"},"geometry":{"type":"Point","coordinates":[0,0]}}]}`))
	assert.ErrorIs(t, err, layer.ErrFieldType)

	_, err = b.Basins(parse(t, "centroids", centroidsJSON), parse(t, "basins", `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[0,0]}}]}`))
	assert.ErrorIs(t, err, layer.ErrGeometry)

	noFI := strings.Replace(centroidsJSON, `"fi":0.1`, `"area":1`, 1)
	_, err = b.Basins(parse(t, "centroids", noFI), parse(t, "basins", basinsJSON))
	assert.ErrorIs(t, err, layer.ErrMissingField)
}

func TestBuilder_AmbiguousBasin(t *testing.T) {
	overlap := strings.TrimSuffix(basinsJSON, "\n]}") + `,
 {"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[-1500,1800],[-800,1800],[-800,2200],[-1500,2200],[-1500,1800]]]}}
]}`
	_, err := layer.NewBuilder().Basins(parse(t, "centroids", centroidsJSON), parse(t, "basins", overlap))
	assert.ErrorIs(t, err, layer.ErrAmbiguousBasin)
}
