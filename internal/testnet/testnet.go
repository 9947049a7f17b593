// SPDX-License-Identifier: MIT

// Package testnet builds small connected catchments for tests.
package testnet

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/connect"
)

// Reach is a straight reach drawn from node From to node To.
type Reach struct {
	Name     string
	From, To string
	Type     catchment.ReachType
	Slope    float64
}

// Build connects the given nodes with straight reaches.
func Build(t testing.TB, confluences, basins []catchment.Node, reaches ...Reach) *catchment.Network {
	t.Helper()
	pos := map[string]orb.Point{}
	for _, n := range append(append([]catchment.Node(nil), confluences...), basins...) {
		pos[n.Name()] = n.Point()
	}
	rs := make([]catchment.Reach, 0, len(reaches))
	for _, r := range reaches {
		a, ok := pos[r.From]
		require.True(t, ok, "unknown node %q", r.From)
		b, ok := pos[r.To]
		require.True(t, ok, "unknown node %q", r.To)
		typ := r.Type
		if typ == 0 {
			typ = catchment.Natural
		}
		cr, err := catchment.NewReach(r.Name, orb.LineString{a, b}, typ, r.Slope)
		require.NoError(t, err)
		rs = append(rs, cr)
	}
	c, err := catchment.New(confluences, basins, rs)
	require.NoError(t, err)
	n, err := connect.Connect(c)
	require.NoError(t, err)
	return n
}

// Single is one basin B1 draining 2 km through a natural reach to outlet C0.
// Indices: C0=0, B1=1.
func Single(t testing.TB) *catchment.Network {
	return Build(t,
		[]catchment.Node{catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{catchment.NewBasin("B1", 0, 2000, 1.5, 0.2)},
		Reach{Name: "R1", From: "B1", To: "C0", Slope: 0.02},
	)
}

// Y is two basins joining at C1 above the outlet C0.
// Indices: C0=0, C1=1, B1=2, B2=3.
func Y(t testing.TB) *catchment.Network {
	return Build(t,
		[]catchment.Node{
			catchment.NewConfluence("C0", 0, 0, true),
			catchment.NewConfluence("C1", 0, 1000, false),
		},
		[]catchment.Node{
			catchment.NewBasin("B1", -1000, 2000, 2.5, 0.1),
			catchment.NewBasin("B2", 1000, 2000, 3.75, 0.35),
		},
		Reach{Name: "R0", From: "C1", To: "C0"},
		Reach{Name: "R1", From: "B1", To: "C1", Type: catchment.Unlined, Slope: 0.015},
		Reach{Name: "R2", From: "B2", To: "C1", Type: catchment.Lined, Slope: 0.01},
	)
}

// Chain is B2 draining through basin B1 to the outlet C0.
// Indices: C0=0, B1=1, B2=2.
func Chain(t testing.TB) *catchment.Network {
	return Build(t,
		[]catchment.Node{catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{
			catchment.NewBasin("B1", 0, 1000, 1, 0.5),
			catchment.NewBasin("B2", 0, 3000, 3, 0),
		},
		Reach{Name: "R0", From: "B1", To: "C0", Type: catchment.Drowned},
		Reach{Name: "R1", From: "B2", To: "B1", Type: catchment.Lined, Slope: 0.005},
	)
}
