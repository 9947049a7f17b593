// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/control"
	"github.com/katalvlaran/hydroroute/geom"
	"github.com/katalvlaran/hydroroute/traverse"
)

// urbsOut is written in place of a reach line at the outlet.
const urbsOut = "7\n\n0"

// URBS renders the URBS control file (.vec): a graphics block describing
// node and reach placement, followed by the numeric control vector.
type URBS struct {
	table        *Table
	scale, shift float64
}

// NewURBS returns a URBS renderer using table t and a [shift, shift+scale]
// display window. Panics if t is nil.
func NewURBS(t *Table, scale, shift float64) URBS {
	if t == nil {
		panic("render: NewURBS with nil table")
	}
	return URBS{table: t, scale: scale, shift: shift}
}

// Format implements Renderer.
func (URBS) Format() string { return FormatURBS }

// ids hands out sequential ids, starting at 1, to keys in first-seen order.
type ids struct {
	next  int
	byKey map[int]int
}

func newIDs() *ids { return &ids{next: 1, byKey: map[int]int{}} }

func (c *ids) assign(k int) int {
	if id, ok := c.byKey[k]; ok {
		return id
	}
	id := c.next
	c.byKey[k] = id
	c.next++
	return id
}

// get returns the id of k, or 0 if none was assigned.
func (c *ids) get(k int) int { return c.byKey[k] }

// reachRow is one graphics reach: reach index plus its end nodes.
type reachRow struct {
	reach  int
	us, ds int
}

// Render implements Renderer.
func (u URBS) Render(n *catchment.Network) ([]Artifact, error) {
	if u.scale <= 0 {
		return nil, fmt.Errorf("%w: graphics scale must be > 0 (%g)", ErrFormattingTable, u.scale)
	}
	tr, acts, err := walk(n)
	if err != nil {
		return nil, err
	}

	nodeIDs, reachIDs := newIDs(), newIDs()
	var nodes []int
	var reaches []reachRow
	for _, a := range acts {
		if !drainsLocally(a.Code) {
			continue
		}
		nodes = append(nodes, a.Pos)
		nodeIDs.assign(a.Pos)
		if l, ok := n.Down(a.Pos); ok {
			reaches = append(reaches, reachRow{reach: l.Reach, us: a.Pos, ds: l.Node})
			reachIDs.assign(l.Reach)
		}
	}

	var b strings.Builder
	if err := u.graphics(&b, tr, nodes, reaches, nodeIDs, reachIDs); err != nil {
		return nil, err
	}
	if err := u.vector(&b, tr, acts); err != nil {
		return nil, err
	}

	return []Artifact{{Ext: ".vec", Body: []byte(b.String())}}, nil
}

// drainsLocally reports whether code carries a reach line.
func drainsLocally(c control.Code) bool {
	return c == control.Start || c == control.Add || c == control.Route
}

func (u URBS) graphics(b *strings.Builder, tr *traverse.Traveller, nodes []int, reaches []reachRow, nodeIDs, reachIDs *ids) error {
	t := u.table
	win := geom.NewWindow(u.scale, u.shift)
	pts := make([]orb.Point, 0, len(nodes))
	for _, v := range nodes {
		pts = append(pts, tr.Node(v).Point())
	}
	if err := win.Fit(pts); err != nil {
		return fmt.Errorf("render: graphics window: %w", err)
	}

	count := func(k int) (string, error) {
		s, err := pad(strconv.Itoa(k), t.CountWidth, true)
		return t.LeadingToken + s + "\n", err
	}

	b.WriteString(t.GraphicalHeader)
	b.WriteString(t.NodeHeader)
	line, err := count(len(nodes))
	if err != nil {
		return err
	}
	b.WriteString(line)
	for _, v := range nodes {
		nd := tr.Node(v)
		p := win.Apply(nd.Point())
		ds := 0
		if d := tr.Down(v); d != traverse.End {
			ds = nodeIDs.get(d)
		}
		end, prnt := 0, 0
		if nd.IsOutlet() {
			end, prnt = 1, 70
		}
		basin := 0
		if nd.IsBasin() {
			basin = 1
		}
		row := map[string]any{
			"id": nodeIDs.get(v), "x": p[0], "y": p[1], "icon": 1, "basin": basin, "end": end,
			"ds": ds, "name": " " + nd.Name(), "area": nd.Area(), "fi": nd.FI(),
			"print": prnt, "excess": 0, "comment": 0,
		}
		b.WriteString(t.LeadingToken)
		for _, c := range t.Node {
			s, err := c.cell(row[c.Field])
			if err != nil {
				return fmt.Errorf("node %q: %w", nd.Name(), err)
			}
			b.WriteString(s)
		}
		b.WriteString("\n" + t.LeadingToken + "\n")
	}
	b.WriteString(t.LeadingToken + "\n")

	b.WriteString(t.ReachHeader)
	if line, err = count(len(reaches)); err != nil {
		return err
	}
	b.WriteString(line)
	for _, r := range reaches {
		rc := tr.Network().Catchment().Reach(r.reach)
		mid := win.Apply(rc.Midpoint())
		row := map[string]any{
			"id": reachIDs.get(r.reach), "name": " " + rc.Name(), "us": nodeIDs.get(r.us), "ds": nodeIDs.get(r.ds),
			"translation": 0, "type": int(rc.Type()), "print": 0, "length": rc.Length() / 1000,
			"slope": rc.Slope(), "npoints": 1, "comment": 0, "x": mid[0], "y": mid[1],
		}
		b.WriteString(t.LeadingToken)
		for _, c := range t.Reach {
			if c.Field == "x" || c.Field == "y" {
				b.WriteString("\n" + t.LeadingToken)
			}
			s, err := c.cell(row[c.Field])
			if err != nil {
				return fmt.Errorf("reach %q: %w", rc.Name(), err)
			}
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	b.WriteString(t.GraphicalTail)

	return nil
}

// vector writes the control vector with its area and impervious tables.
func (u URBS) vector(b *strings.Builder, tr *traverse.Traveller, acts []control.Action) error {
	t := u.table
	b.WriteString("0\n")
	var areas, fis []string
	for _, a := range acts {
		switch a.Code {
		case control.Start, control.Add, control.Route:
			b.WriteString(urbsReach(tr, a) + "\n")
			if a.Code != control.Route {
				nd := tr.Node(a.Pos)
				areas = append(areas, strconv.FormatFloat(nd.Area(), 'f', t.AreaTable.Precision, 64))
				fis = append(fis, strconv.FormatFloat(nd.FI(), 'f', t.FITable.Precision, 64))
			}
		case control.Store, control.Get:
			fmt.Fprintf(b, "%d\n", int(a.Code))
		}
	}

	area, err := t.AreaTable.layout(append(areas, "-99"))
	if err != nil {
		return fmt.Errorf("area table: %w", err)
	}
	b.WriteString(t.AreaTable.Header + area + "\n")

	fi, err := t.FITable.layout(append(fis, " -99"))
	if err != nil {
		return fmt.Errorf("impervious table: %w", err)
	}
	b.WriteString(t.FITable.Header + " 1 ,\n" + fi + "\n")
	return nil
}

// layout writes every value but the last left-justified in Width columns
// followed by a comma, PerRow to a line; the last value goes on its own line.
// A value wider than Width fails with ErrFieldOverflow.
func (nt NumberTable) layout(vals []string) (string, error) {
	var b strings.Builder
	last := len(vals) - 1
	for i, v := range vals[:last] {
		if i > 0 && i%nt.PerRow == 0 {
			b.WriteString("\n")
		}
		cell, err := pad(v, nt.Width, false)
		if err != nil {
			return "", err
		}
		b.WriteString(cell + ",")
	}
	b.WriteString("\n" + vals[last])
	return b.String(), nil
}

func urbsReach(tr *traverse.Traveller, a control.Action) string {
	rc, ok := tr.Reach(a.Pos)
	if !ok {
		return urbsOut
	}
	if rc.Type().HasSlope() {
		return fmt.Sprintf("%d,%d,%.3f,%s,-99", int(a.Code), int(rc.Type()), rc.Length()/1000, shortest(rc.Slope()))
	}
	return fmt.Sprintf("%d,%d,%.3f,-99", int(a.Code), int(rc.Type()), rc.Length()/1000)
}
