// SPDX-License-Identifier: MIT

package connect

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrCatchmentNil is returned when a nil catchment is passed in.
	ErrCatchmentNil = errors.New("connect: catchment is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connect: invalid option supplied")

	// ErrUnmatchedEndpoint is returned when a reach endpoint has no node
	// within the snap tolerance (a geometry gap).
	ErrUnmatchedEndpoint = errors.New("connect: reach endpoint has no node within tolerance")

	// ErrDegenerateReach is returned when both endpoints of a reach snap to
	// the same node.
	ErrDegenerateReach = errors.New("connect: reach endpoints snap to the same node")
)

// Option configures Connect via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Connect runs.
type Option func(*Options)

// Options holds the parameters of a Connect run.
type Options struct {
	// SnapTolerance is the largest accepted endpoint-to-node distance.
	// +Inf (the default) accepts any distance.
	SnapTolerance float64

	// Logger receives diagnostics (ties, loops, unreachable nodes).
	Logger *slog.Logger

	// OnLabel is called once for each reach that receives a direction,
	// in labelling order.
	OnLabel func(reach, upstream, downstream int)

	err error
}

// DefaultOptions returns Options with no tolerance limit, a discarding
// logger and a no-op OnLabel hook.
func DefaultOptions() Options {
	return Options{
		SnapTolerance: math.Inf(1),
		Logger:        slog.New(slog.DiscardHandler),
		OnLabel:       func(int, int, int) {},
	}
}

// WithSnapTolerance limits endpoint matching to distance d.
//
//	d > 0:  endpoints farther than d from every node fail with ErrUnmatchedEndpoint
//	d <= 0 or NaN: invalid → ErrOptionViolation
func WithSnapTolerance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d <= 0 {
			o.err = fmt.Errorf("%w: snap tolerance must be > 0 (%g)", ErrOptionViolation, d)
			return
		}
		o.SnapTolerance = d
	}
}

// WithLogger sets the diagnostics logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLabel registers a hook called for every labelled reach.
func WithOnLabel(fn func(reach, upstream, downstream int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// Ends records the two nodes a reach touches after endpoint matching.
// A is the node nearest the reach's first vertex, B the node nearest its
// last vertex; neither implies flow direction.
type Ends struct {
	A, B         int
	DistA, DistB float64
}

// Other returns the endpoint opposite v.
func (e Ends) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}
