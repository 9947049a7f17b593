// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortest(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1.414, "1.414"},
		{0.30000000000000004, "0.30000000000000004"},
		{0.0001, "0.0001"},
		{0.00002, "2e-05"},
		{-1000, "-1000.0"},
		{1e16, "1e+16"},
		{123456789012345.6, "123456789012345.6"},
		{math.Inf(1), "inf"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, shortest(c.in), "%v", c.in)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.414, round(1.4142135623730951, 3))
	assert.Equal(t, 0.123457, round(0.12345678, 6))
	assert.Equal(t, 0.062, round(0.0625, 3), "exact tie goes to even")
	assert.Equal(t, 2.0, round(2, 3))
}

func TestPad(t *testing.T) {
	s, err := pad("ab", 4, true)
	require.NoError(t, err)
	assert.Equal(t, "  ab", s)

	s, err = pad("ab", 4, false)
	require.NoError(t, err)
	assert.Equal(t, "ab  ", s)

	_, err = pad("abcde", 4, false)
	assert.ErrorIs(t, err, ErrFieldOverflow)
}
