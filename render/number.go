// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// shortest formats f in shortest round-trip decimal form. Integral values
// keep a trailing ".0"; magnitudes below 1e-4 or from 1e16 up use an
// exponent ("1e-05", "1.5e+16").
func shortest(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(f); a < 1e-4 || a >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// round rounds f to n decimal places, ties resolved on the exact binary
// value (half-even when the value is exactly representable).
func round(f float64, n int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', n, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// pad fits s into width columns, right-justified when right is set.
// A value wider than its column fails with ErrFieldOverflow.
func pad(s string, width int, right bool) (string, error) {
	if len(s) > width {
		return "", fmt.Errorf("%w: %q is %d wide, column is %d", ErrFieldOverflow, s, len(s), width)
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s, nil
	}
	return s + fill, nil
}
