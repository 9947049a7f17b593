// SPDX-License-Identifier: MIT

package catchment_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/catchment"
)

func mustReach(t *testing.T, name string, typ catchment.ReachType, pts ...orb.Point) catchment.Reach {
	t.Helper()
	r, err := catchment.NewReach(name, orb.LineString(pts), typ, 0.02)
	require.NoError(t, err)
	return r
}

// TestNew_Errors covers every configuration error New reports.
func TestNew_Errors(t *testing.T) {
	r := mustReach(t, "R1", catchment.Natural, orb.Point{0, 0}, orb.Point{0, 1})
	out := catchment.NewConfluence("C0", 0, 0, true)
	b := catchment.NewBasin("B1", 0, 1, 1.5, 0.2)

	cases := []struct {
		name  string
		conf  []catchment.Node
		bas   []catchment.Node
		reach []catchment.Reach
		want  error
	}{
		{"no nodes", nil, nil, []catchment.Reach{r}, catchment.ErrNoNodes},
		{"no reaches", []catchment.Node{out}, []catchment.Node{b}, nil, catchment.ErrNoReaches},
		{"no outlet", []catchment.Node{catchment.NewConfluence("C0", 0, 0, false)}, []catchment.Node{b}, []catchment.Reach{r}, catchment.ErrNoOutlet},
		{"two outlets", []catchment.Node{out, catchment.NewConfluence("C1", 1, 1, true)}, []catchment.Node{b}, []catchment.Reach{r}, catchment.ErrMultipleOutlets},
		{"duplicate", []catchment.Node{out}, []catchment.Node{b, catchment.NewBasin("B1", 2, 2, 1, 0)}, []catchment.Reach{r}, catchment.ErrDuplicateName},
		{"empty name", []catchment.Node{out}, []catchment.Node{catchment.NewBasin("", 2, 2, 1, 0)}, []catchment.Reach{r}, catchment.ErrEmptyName},
		{"kind mismatch", []catchment.Node{out, b}, nil, []catchment.Reach{r}, catchment.ErrKindMismatch},
		{"negative area", []catchment.Node{out}, []catchment.Node{catchment.NewBasin("B2", 2, 2, -1, 0)}, []catchment.Reach{r}, catchment.ErrBadArea},
		{"nan area", []catchment.Node{out}, []catchment.Node{catchment.NewBasin("B2", 2, 2, math.NaN(), 0)}, []catchment.Reach{r}, catchment.ErrBadArea},
		{"fi above one", []catchment.Node{out}, []catchment.Node{catchment.NewBasin("B2", 2, 2, 1, 1.2)}, []catchment.Reach{r}, catchment.ErrBadImpervious},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catchment.New(tc.conf, tc.bas, tc.reach)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_Indexing checks confluences-then-basins ordering and outlet lookup.
func TestNew_Indexing(t *testing.T) {
	r := mustReach(t, "R1", catchment.Natural, orb.Point{0, 0}, orb.Point{0, 2000})
	c, err := catchment.New(
		[]catchment.Node{catchment.NewConfluence("C1", 5, 5, false), catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{catchment.NewBasin("B1", 0, 2000, 1.5, 0.2)},
		[]catchment.Reach{r},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.NodeCount())
	assert.Equal(t, 1, c.ReachCount())
	assert.Equal(t, 1, c.Outlet())
	assert.True(t, c.Node(c.Outlet()).IsOutlet())

	i, ok := c.Index("B1")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.True(t, c.Node(i).IsBasin())
	_, ok = c.Index("nope")
	assert.False(t, ok)
}

func TestNodeVariants(t *testing.T) {
	b := catchment.NewBasin("B1", 1, 2, 3.5, 0.4)
	assert.Equal(t, catchment.KindBasin, b.Kind())
	assert.Equal(t, 3.5, b.Area())
	assert.Equal(t, 0.4, b.FI())
	assert.False(t, b.IsOutlet())
	assert.Equal(t, orb.Point{1, 2}, b.Point())

	c := catchment.NewConfluence("C0", 7, 8, true)
	assert.True(t, c.IsConfluence())
	assert.True(t, c.IsOutlet())
	assert.Zero(t, c.Area())
	assert.Zero(t, c.FI())
	assert.Equal(t, "confluence", c.Kind().String())
}

func TestReach(t *testing.T) {
	r := mustReach(t, "R1", catchment.Lined, orb.Point{0, 0}, orb.Point{3, 4}, orb.Point{3, 10})
	assert.InDelta(t, 11.0, r.Length(), 1e-12)
	assert.Equal(t, orb.Point{0, 0}, r.Start())
	assert.Equal(t, orb.Point{3, 10}, r.End())
	assert.Equal(t, orb.Point{1.5, 5}, r.Midpoint())
	assert.True(t, r.Type().HasSlope())
	assert.False(t, catchment.Natural.HasSlope())

	line := r.Line()
	line[0] = orb.Point{99, 99}
	assert.Equal(t, orb.Point{0, 0}, r.Start(), "Line must return a copy")

	_, err := catchment.NewReach("R2", orb.LineString{{0, 0}}, catchment.Natural, 0)
	require.ErrorIs(t, err, catchment.ErrShortReach)
	_, err = catchment.NewReach("R2", orb.LineString{{0, 0}, {1, 1}}, catchment.ReachType(9), 0)
	require.ErrorIs(t, err, catchment.ErrBadReachType)
	_, err = catchment.NewReach("", orb.LineString{{0, 0}, {1, 1}}, catchment.Natural, 0)
	require.ErrorIs(t, err, catchment.ErrEmptyName)

	typ, err := catchment.ParseReachType(4)
	require.NoError(t, err)
	assert.Equal(t, catchment.Drowned, typ)
	_, err = catchment.ParseReachType(0)
	require.ErrorIs(t, err, catchment.ErrBadReachType)
}
