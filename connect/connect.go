// SPDX-License-Identifier: MIT

package connect

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/geom"
)

// walker encapsulates mutable labelling state.
type walker struct {
	c        *catchment.Catchment
	opts     Options
	ends     []Ends
	incident [][]int // node → incident reach indices, ascending
	labelled []bool  // reach → direction assigned
	queued   []bool
	queue    []int
	ds, us   [][]catchment.Link
}

// Connect builds the directed drainage network of c.
// Returns ErrCatchmentNil, ErrOptionViolation, ErrUnmatchedEndpoint or
// ErrDegenerateReach on failure. Disconnected nodes are not an error.
func Connect(c *catchment.Catchment, opts ...Option) (*catchment.Network, error) {
	if c == nil {
		return nil, ErrCatchmentNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ends, err := match(c, o)
	if err != nil {
		return nil, err
	}

	n, e := c.NodeCount(), c.ReachCount()
	w := &walker{
		c:        c,
		opts:     o,
		ends:     ends,
		incident: make([][]int, n),
		labelled: make([]bool, e),
		queued:   make([]bool, n),
		queue:    make([]int, 0, n),
		ds:       make([][]catchment.Link, n),
		us:       make([][]catchment.Link, n),
	}
	for j, en := range ends {
		w.incident[en.A] = append(w.incident[en.A], j)
		w.incident[en.B] = append(w.incident[en.B], j)
	}

	w.label(c.Outlet())

	net, err := catchment.NewNetwork(c, w.ds, w.us)
	if err != nil {
		return nil, fmt.Errorf("connect: freeze network: %w", err)
	}
	for _, v := range net.Unreachable() {
		o.Logger.Warn("node not connected to outlet", "node", c.Node(v).Name())
	}
	for j, done := range w.labelled {
		if !done {
			o.Logger.Warn("reach not connected to outlet", "reach", c.Reach(j).Name())
		}
	}

	return net, nil
}

// Match snaps every reach endpoint of c to its nearest node and returns
// the undirected node pair of each reach, indexed like c.Reaches().
func Match(c *catchment.Catchment, opts ...Option) ([]Ends, error) {
	if c == nil {
		return nil, ErrCatchmentNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return match(c, o)
}

func match(c *catchment.Catchment, o Options) ([]Ends, error) {
	ends := make([]Ends, c.ReachCount())
	for j := 0; j < c.ReachCount(); j++ {
		r := c.Reach(j)
		a, da, err := nearest(c, o, r, r.Start())
		if err != nil {
			return nil, err
		}
		b, db, err := nearest(c, o, r, r.End())
		if err != nil {
			return nil, err
		}
		if a == b {
			return nil, fmt.Errorf("%w: reach %q at node %q", ErrDegenerateReach, r.Name(), c.Node(a).Name())
		}
		ends[j] = Ends{A: a, B: b, DistA: da, DistB: db}
	}

	return ends, nil
}

// nearest returns the index of the node closest to p. The first strict
// minimum wins; later nodes at the same distance are logged as a tie.
func nearest(c *catchment.Catchment, o Options, r catchment.Reach, p orb.Point) (int, float64, error) {
	best, bestD := -1, math.Inf(1)
	tie := -1
	for i := 0; i < c.NodeCount(); i++ {
		d := geom.Distance(p, c.Node(i).Point())
		switch {
		case d < bestD:
			best, bestD, tie = i, d, -1
		case d == bestD && tie < 0:
			tie = i
		}
	}
	if best < 0 || bestD > o.SnapTolerance {
		return 0, 0, fmt.Errorf("%w: reach %q endpoint (%g, %g)", ErrUnmatchedEndpoint, r.Name(), p[0], p[1])
	}
	if tie >= 0 {
		o.Logger.Warn("equidistant nodes for reach endpoint",
			"reach", r.Name(),
			"chosen", c.Node(best).Name(),
			"other", c.Node(tie).Name(),
			"distance", bestD,
		)
	}

	return best, bestD, nil
}

// label walks breadth-first from the outlet. Each reach incident to the
// current node v is directed toward v; the far node is queued once.
func (w *walker) label(outlet int) {
	w.queued[outlet] = true
	w.queue = append(w.queue, outlet)
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		for _, j := range w.incident[v] {
			en := w.ends[j]
			if w.labelled[j] {
				continue
			}
			w.labelled[j] = true

			u := en.Other(v)
			w.us[v] = append(w.us[v], catchment.Link{Reach: j, Node: u})
			w.ds[u] = append(w.ds[u], catchment.Link{Reach: j, Node: v})
			w.opts.OnLabel(j, u, v)

			if w.queued[u] {
				w.opts.Logger.Warn("reach closes a loop",
					"reach", w.c.Reach(j).Name(),
					"upstream", w.c.Node(u).Name(),
					"downstream", w.c.Node(v).Name(),
				)
				continue
			}
			w.queued[u] = true
			w.queue = append(w.queue, u)
		}
	}
}
