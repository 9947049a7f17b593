// SPDX-License-Identifier: MIT

package catchment

import (
	"fmt"
	"sort"
)

// Direction selects one of the two incidence maps.
type Direction uint8

const (
	// Downstream: links from a node to the node its water flows into.
	Downstream Direction = iota
	// Upstream: links from a node to the nodes draining into it.
	Upstream
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Upstream {
		return "upstream"
	}
	return "downstream"
}

// Link is one incidence entry: the neighbouring Node reached across Reach.
type Link struct {
	Reach int
	Node  int
}

// Network is a connected catchment: the Catchment plus its downstream and
// upstream incidence maps.
//
// ds[v] lists the links leaving v towards the outlet; us[v] lists the links
// arriving at v from upstream. ds rows keep the order they were built in, so
// ds[v][0] is the primary outflow of v; us rows are sorted by reach index.
// The maps are frozen on construction.
type Network struct {
	c  *Catchment
	ds [][]Link
	us [][]Link
}

// NewNetwork freezes the incidence maps produced for c.
//
// The maps must have one row per node, reference valid reach and node
// indices, and be mutually consistent: (e → u) in ds[v] iff (e → v) in us[u].
// Returns ErrBadIncidence otherwise.
// Complexity: O(V + E log E).
func NewNetwork(c *Catchment, ds, us [][]Link) (*Network, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil catchment", ErrBadIncidence)
	}
	v := c.NodeCount()
	if len(ds) != v || len(us) != v {
		return nil, fmt.Errorf("%w: %d/%d rows for %d nodes", ErrBadIncidence, len(ds), len(us), v)
	}

	n := &Network{c: c, ds: freeze(ds, false), us: freeze(us, true)}

	for from, row := range n.ds {
		for _, l := range row {
			if l.Reach < 0 || l.Reach >= c.ReachCount() || l.Node < 0 || l.Node >= v {
				return nil, fmt.Errorf("%w: ds[%d] -> %+v", ErrBadIncidence, from, l)
			}
			if !contains(n.us[l.Node], Link{Reach: l.Reach, Node: from}) {
				return nil, fmt.Errorf("%w: ds[%d] -> %+v has no upstream mirror", ErrBadIncidence, from, l)
			}
		}
	}
	for to, row := range n.us {
		for _, l := range row {
			if l.Node < 0 || l.Node >= v || !contains(n.ds[l.Node], Link{Reach: l.Reach, Node: to}) {
				return nil, fmt.Errorf("%w: us[%d] -> %+v has no downstream mirror", ErrBadIncidence, to, l)
			}
		}
	}

	return n, nil
}

// freeze deep-copies rows, optionally sorting each row by reach index.
func freeze(rows [][]Link, sorted bool) [][]Link {
	out := make([][]Link, len(rows))
	for i, row := range rows {
		cp := append([]Link(nil), row...)
		if sorted {
			sort.SliceStable(cp, func(a, b int) bool { return cp[a].Reach < cp[b].Reach })
		}
		out[i] = cp
	}
	return out
}

func contains(row []Link, l Link) bool {
	for _, x := range row {
		if x == l {
			return true
		}
	}
	return false
}

// Catchment returns the underlying catchment.
func (n *Network) Catchment() *Catchment { return n.c }

// Outlet returns the outlet node index.
func (n *Network) Outlet() int { return n.c.outlet }

// Links returns a copy of node v's links in direction d.
func (n *Network) Links(d Direction, v int) []Link {
	if d == Upstream {
		return append([]Link(nil), n.us[v]...)
	}
	return append([]Link(nil), n.ds[v]...)
}

// Lookup returns the neighbour of v across reach e in direction d.
// ok is false when v is not incident to e in that direction.
func (n *Network) Lookup(d Direction, v, e int) (int, bool) {
	row := n.ds[v]
	if d == Upstream {
		row = n.us[v]
	}
	for _, l := range row {
		if l.Reach == e {
			return l.Node, true
		}
	}
	return 0, false
}

// Down returns the primary downstream link of v.
// ok is false for the outlet and for nodes the connect pass never reached.
func (n *Network) Down(v int) (Link, bool) {
	if len(n.ds[v]) == 0 {
		return Link{}, false
	}
	return n.ds[v][0], true
}

// Up returns the immediate upstream neighbours of v in reach order.
func (n *Network) Up(v int) []int {
	out := make([]int, 0, len(n.us[v]))
	for _, l := range n.us[v] {
		out = append(out, l.Node)
	}
	return out
}

// DownReach returns the reach leaving v towards the outlet.
func (n *Network) DownReach(v int) (Reach, bool) {
	l, ok := n.Down(v)
	if !ok {
		return Reach{}, false
	}
	return n.c.reaches[l.Reach], true
}

// Unreachable returns, in index order, the nodes other than the outlet that
// have no downstream link: nodes in a component disconnected from the outlet.
func (n *Network) Unreachable() []int {
	var out []int
	for v := range n.ds {
		if v != n.c.outlet && len(n.ds[v]) == 0 {
			out = append(out, v)
		}
	}
	return out
}
