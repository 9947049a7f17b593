// SPDX-License-Identifier: MIT

package catchment

import (
	"fmt"
	"math"
)

// Catchment is the validated vertex and edge set of a catchment diagram.
//
// Vertices are indexed by position: confluences first (in input order), then
// basins. Edges are indexed by input order. Both orders are observable by
// every downstream component and fix the deterministic branch order of the
// traversal.
type Catchment struct {
	nodes   []Node
	reaches []Reach
	byName  map[string]int
	outlet  int
}

// New validates the entities and builds a Catchment.
//
// Checks, in order:
//   - non-empty node and reach sets (ErrNoNodes, ErrNoReaches);
//   - every entry of confluences is a confluence and of basins a basin (ErrKindMismatch);
//   - names non-empty and unique across nodes (ErrEmptyName, ErrDuplicateName);
//   - basin area finite and >= 0, fi in [0,1] (ErrBadArea, ErrBadImpervious);
//   - exactly one outlet confluence (ErrNoOutlet, ErrMultipleOutlets).
//
// Complexity: O(V + E).
func New(confluences, basins []Node, reaches []Reach) (*Catchment, error) {
	if len(confluences)+len(basins) == 0 {
		return nil, ErrNoNodes
	}
	if len(reaches) == 0 {
		return nil, ErrNoReaches
	}

	nodes := make([]Node, 0, len(confluences)+len(basins))
	for _, n := range confluences {
		if n.kind != KindConfluence {
			return nil, fmt.Errorf("node %q in confluence list: %w", n.name, ErrKindMismatch)
		}
		nodes = append(nodes, n)
	}
	for _, n := range basins {
		if n.kind != KindBasin {
			return nil, fmt.Errorf("node %q in basin list: %w", n.name, ErrKindMismatch)
		}
		nodes = append(nodes, n)
	}

	c := &Catchment{
		nodes:   nodes,
		reaches: append([]Reach(nil), reaches...),
		byName:  make(map[string]int, len(nodes)),
		outlet:  -1,
	}

	outlets := 0
	for i, n := range nodes {
		if n.name == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrEmptyName)
		}
		if j, dup := c.byName[n.name]; dup {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateName, n.name, j, i)
		}
		c.byName[n.name] = i

		switch n.kind {
		case KindBasin:
			if math.IsNaN(n.area) || math.IsInf(n.area, 0) || n.area < 0 {
				return nil, fmt.Errorf("basin %q: %w (%g)", n.name, ErrBadArea, n.area)
			}
			if math.IsNaN(n.fi) || n.fi < 0 || n.fi > 1 {
				return nil, fmt.Errorf("basin %q: %w (%g)", n.name, ErrBadImpervious, n.fi)
			}
		case KindConfluence:
			if n.out {
				outlets++
				if c.outlet < 0 {
					c.outlet = i
				}
			}
		}
	}

	switch {
	case outlets == 0:
		return nil, ErrNoOutlet
	case outlets > 1:
		return nil, fmt.Errorf("%w: %d flagged", ErrMultipleOutlets, outlets)
	}

	return c, nil
}

// NodeCount returns |V|.
func (c *Catchment) NodeCount() int { return len(c.nodes) }

// ReachCount returns |E|.
func (c *Catchment) ReachCount() int { return len(c.reaches) }

// Node returns the node at index i. Panics if i is out of range, like a slice.
func (c *Catchment) Node(i int) Node { return c.nodes[i] }

// Reach returns the reach at index j. Panics if j is out of range.
func (c *Catchment) Reach(j int) Reach { return c.reaches[j] }

// Nodes returns a copy of the vertex list in index order.
func (c *Catchment) Nodes() []Node { return append([]Node(nil), c.nodes...) }

// Reaches returns a copy of the edge list in index order.
func (c *Catchment) Reaches() []Reach { return append([]Reach(nil), c.reaches...) }

// Outlet returns the index of the outlet confluence.
func (c *Catchment) Outlet() int { return c.outlet }

// Index returns the index of the node called name.
func (c *Catchment) Index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}
