// SPDX-License-Identifier: MIT

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/internal/testnet"
	"github.com/katalvlaran/hydroroute/render"
)

func rorb(t *testing.T, r render.RORB, n *catchment.Network) string {
	t.Helper()
	arts, err := r.Render(n)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, ".catg", arts[0].Ext)
	return string(arts[0].Body)
}

func TestRORB_Single(t *testing.T) {
	want := "Reach Name\n0\n" +
		"1,1,2.0,-99\n" +
		"7\nout\n0\n" +
		"1.5,-99\n" +
		"1,0.2,-99\n"
	assert.Equal(t, want, rorb(t, render.RORB{}, testnet.Single(t)))
}

func TestRORB_Y(t *testing.T) {
	want := "Reach Name\n0\n" +
		"1,2,1.414,0.015,-99\n" +
		"3\n" +
		"1,3,1.414,0.01,-99\n" +
		"4\n" +
		"5,1,1.0,-99\n" +
		"7\nout\n0\n" +
		"2.5,3.75,-99\n" +
		"1,0.1,0.35,-99\n"
	assert.Equal(t, want, rorb(t, render.RORB{}, testnet.Y(t)))
}

func TestRORB_Chain(t *testing.T) {
	want := "Lower Creek\n0\n" +
		"1,3,2.0,0.005,-99\n" +
		"2,4,1.0,-99\n" +
		"7\nout\n0\n" +
		"3.0,1.0,-99\n" +
		"1,0.0,0.5,-99\n"
	assert.Equal(t, want, rorb(t, render.RORB{Title: "Lower Creek"}, testnet.Chain(t)))
}

func TestRORB_Rounding(t *testing.T) {
	n := testnet.Build(t,
		[]catchment.Node{catchment.NewConfluence("C0", 0, 0, true)},
		[]catchment.Node{catchment.NewBasin("B1", 1234.5678, 0, 0.12345678, 0.98765)},
		testnet.Reach{Name: "R1", From: "B1", To: "C0", Type: catchment.Unlined, Slope: 0.00002},
	)
	want := "Reach Name\n0\n" +
		"1,2,1.235,2e-05,-99\n" +
		"7\nout\n0\n" +
		"0.123457,-99\n" +
		"1,0.988,-99\n"
	assert.Equal(t, want, rorb(t, render.RORB{}, n))
}

func TestRORB_Nil(t *testing.T) {
	_, err := render.RORB{}.Render(nil)
	assert.ErrorIs(t, err, render.ErrNetworkNil)
}
