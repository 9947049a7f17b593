// SPDX-License-Identifier: MIT

package catchment

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Kind tags the variant of a Node.
type Kind uint8

const (
	// KindBasin marks a sub-area generating runoff.
	KindBasin Kind = iota + 1
	// KindConfluence marks a junction of reaches.
	KindConfluence
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBasin:
		return "basin"
	case KindConfluence:
		return "confluence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is a point-like entity of the catchment: a Basin or a Confluence.
//
// Shared fields are Name and position. Area and FI are meaningful only for
// KindBasin; Outlet only for KindConfluence. Code that needs variant
// behaviour switches on Kind().
type Node struct {
	name string
	pos  orb.Point
	kind Kind

	area float64 // basin: area (km²)
	fi   float64 // basin: fraction impervious
	out  bool    // confluence: catchment outlet
}

// NewBasin returns a basin node. Attribute ranges are checked by New.
func NewBasin(name string, x, y, area, fi float64) Node {
	return Node{name: name, pos: orb.Point{x, y}, kind: KindBasin, area: area, fi: fi}
}

// NewConfluence returns a confluence node; out marks the catchment outlet.
func NewConfluence(name string, x, y float64, out bool) Node {
	return Node{name: name, pos: orb.Point{x, y}, kind: KindConfluence, out: out}
}

// Name returns the unique node name.
func (n Node) Name() string { return n.name }

// Point returns the node position.
func (n Node) Point() orb.Point { return n.pos }

// X returns the x coordinate.
func (n Node) X() float64 { return n.pos[0] }

// Y returns the y coordinate.
func (n Node) Y() float64 { return n.pos[1] }

// Kind returns the variant tag.
func (n Node) Kind() Kind { return n.kind }

// IsBasin reports whether n is a basin.
func (n Node) IsBasin() bool { return n.kind == KindBasin }

// IsConfluence reports whether n is a confluence.
func (n Node) IsConfluence() bool { return n.kind == KindConfluence }

// IsOutlet reports whether n is the outlet confluence.
func (n Node) IsOutlet() bool { return n.kind == KindConfluence && n.out }

// Area returns the basin area; zero for confluences.
func (n Node) Area() float64 {
	if n.kind != KindBasin {
		return 0
	}
	return n.area
}

// FI returns the basin fraction impervious; zero for confluences.
func (n Node) FI() float64 {
	if n.kind != KindBasin {
		return 0
	}
	return n.fi
}

// String implements fmt.Stringer.
func (n Node) String() string {
	switch n.kind {
	case KindBasin:
		return fmt.Sprintf("basin %s [%g, %g] area=%g fi=%g", n.name, n.pos[0], n.pos[1], n.area, n.fi)
	case KindConfluence:
		return fmt.Sprintf("confluence %s [%g, %g] out=%t", n.name, n.pos[0], n.pos[1], n.out)
	default:
		return n.name
	}
}
