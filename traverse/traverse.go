// SPDX-License-Identifier: MIT

package traverse

import (
	"errors"

	"github.com/katalvlaran/hydroroute/catchment"
)

// End is the sentinel position past the outlet.
const End = -1

// ErrNotConnected is returned when a Traveller is built without a network.
var ErrNotConnected = errors.New("traverse: network is nil")

// Option configures a Traveller.
type Option func(*Options)

// Options holds Traveller hooks.
type Options struct {
	// OnLeave is called each time a node is marked visited.
	OnLeave func(i int)
}

// DefaultOptions returns Options with a no-op OnLeave hook.
func DefaultOptions() Options {
	return Options{OnLeave: func(int) {}}
}

// WithOnLeave registers a hook called whenever a node is marked visited.
func WithOnLeave(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLeave = fn
		}
	}
}

// Traveller is a one-shot cursor over a Network.
type Traveller struct {
	net     *catchment.Network
	opts    Options
	visited []bool
	path    []int // generation stamps for Top's cycle guard
	gen     int
	pos     int
	moved   bool
}

// New returns a Traveller positioned on the outlet of n.
func New(n *catchment.Network, opts ...Option) (*Traveller, error) {
	if n == nil {
		return nil, ErrNotConnected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := n.Catchment().NodeCount()

	return &Traveller{
		net:     n,
		opts:    o,
		visited: make([]bool, v),
		path:    make([]int, v),
		pos:     n.Outlet(),
	}, nil
}

// Network returns the walked network.
func (t *Traveller) Network() *catchment.Network { return t.net }

// Position returns the current node index, or End.
func (t *Traveller) Position() int { return t.pos }

// Done reports whether the walk has passed the outlet.
func (t *Traveller) Done() bool { return t.pos == End }

// Moved reports whether Next or NextAbsolute has been called.
func (t *Traveller) Moved() bool { return t.moved }

// Visited reports whether node i has been marked.
func (t *Traveller) Visited(i int) bool { return t.visited[i] }

// Node returns node i.
func (t *Traveller) Node(i int) catchment.Node { return t.net.Catchment().Node(i) }

// Reach returns the reach downstream of node i. ok is false at the outlet
// and at nodes the network never reached.
func (t *Traveller) Reach(i int) (catchment.Reach, bool) {
	if i == End {
		return catchment.Reach{}, false
	}
	return t.net.DownReach(i)
}

// Up returns every immediate upstream neighbour of i.
func (t *Traveller) Up(i int) []int {
	if i == End {
		return nil
	}
	return t.net.Up(i)
}

// Down returns the downstream neighbour of i, or End.
func (t *Traveller) Down(i int) int {
	if i == End {
		return End
	}
	l, ok := t.net.Down(i)
	if !ok {
		return End
	}
	return l.Node
}

// Top returns the most upstream unvisited node reachable from i by always
// taking the first unvisited upstream neighbour in reach order. Only
// neighbours whose primary outflow is the current node are climbed; a
// loop-closing reach is never followed upstream.
func (t *Traveller) Top(i int) int {
	if i == End {
		return End
	}
	t.gen++
	cur := i
	for {
		t.path[cur] = t.gen
		next := End
		for _, l := range t.net.Links(catchment.Upstream, cur) {
			u := l.Node
			if !t.visited[u] && t.path[u] != t.gen && t.Down(u) == cur {
				next = u
				break
			}
		}
		if next == End {
			return cur
		}
		cur = next
	}
}

// Next advances one stop. See the package documentation.
func (t *Traveller) Next() int {
	t.moved = true
	if t.pos == End {
		return End
	}
	top := t.Top(t.pos)
	if top == t.pos {
		t.mark(t.pos)
		t.pos = t.Down(t.pos)
		return t.pos
	}
	t.pos = top
	return t.pos
}

// NextAbsolute marks the current node, moves down and climbs to the top
// of the remaining unvisited network.
func (t *Traveller) NextAbsolute() int {
	t.moved = true
	if t.pos == End {
		return End
	}
	t.mark(t.pos)
	t.pos = t.Down(t.pos)
	if t.pos == End {
		return End
	}
	t.pos = t.Top(t.pos)
	return t.pos
}

func (t *Traveller) mark(i int) {
	t.visited[i] = true
	t.opts.OnLeave(i)
}
