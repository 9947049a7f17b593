// SPDX-License-Identifier: MIT

package geom

import "github.com/paulmach/orb"

// Default display window used by graphical editors of model control files:
// coordinates land in [DefaultShift, DefaultShift+DefaultScale].
const (
	DefaultScale = 90.0
	DefaultShift = 2.5
)

// Window linearly rescales coordinates from a fitted bounding box into
// [Shift, Shift+Scale] on each axis independently.
//
// The zero value is not usable; build one with NewWindow and call Fit.
type Window struct {
	Scale float64
	Shift float64

	bound  orb.Bound
	fitted bool
}

// NewWindow returns a Window with the given scale and shift.
// Panics if scale <= 0.
func NewWindow(scale, shift float64) *Window {
	if scale <= 0 {
		panic("geom: NewWindow(scale<=0)")
	}

	return &Window{Scale: scale, Shift: shift}
}

// Fit records the bounding box of pts. Returns ErrEmptyGeometry if pts is empty.
func (w *Window) Fit(pts []orb.Point) error {
	if len(pts) == 0 {
		return ErrEmptyGeometry
	}
	b := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	w.bound = b
	w.fitted = true

	return nil
}

// Apply maps p into the window. An axis with zero extent (all fitted points
// share that coordinate) maps to Shift.
func (w *Window) Apply(p orb.Point) orb.Point {
	return orb.Point{
		w.axis(p[0], w.bound.Min[0], w.bound.Max[0]),
		w.axis(p[1], w.bound.Min[1], w.bound.Max[1]),
	}
}

// Fitted reports whether Fit succeeded at least once.
func (w *Window) Fitted() bool { return w.fitted }

func (w *Window) axis(v, lo, hi float64) float64 {
	span := hi - lo
	if span == 0 {
		return w.Shift
	}

	return (v-lo)/span*w.Scale + w.Shift
}
