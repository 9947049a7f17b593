// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/control"
	"github.com/katalvlaran/hydroroute/traverse"
)

// rorbOut is written in place of a reach line when the stop has no
// downstream reach (the outlet).
const rorbOut = "7\nout\n0"

// RORB renders the RORB control vector (.catg).
type RORB struct {
	// Title is the header line; empty selects "Reach Name".
	Title string
}

// Format implements Renderer.
func (RORB) Format() string { return FormatRORB }

// Render implements Renderer.
//
//	<title>
//	0
//	code,type,length_km[,slope],-99   START/ADD/ROUTE
//	3 | 4                             STORE | GET
//	area,area,...,-99
//	1,fi,fi,...,-99
func (r RORB) Render(n *catchment.Network) ([]Artifact, error) {
	tr, acts, err := walk(n)
	if err != nil {
		return nil, err
	}
	title := r.Title
	if title == "" {
		title = DefaultSettings().Title
	}

	var b strings.Builder
	b.WriteString(title + "\n0\n")
	var areas, fis []string
	for _, a := range acts {
		switch a.Code {
		case control.Start, control.Add, control.Route:
			b.WriteString(rorbReach(tr, a) + "\n")
			if a.Code != control.Route {
				nd := tr.Node(a.Pos)
				areas = append(areas, shortest(round(nd.Area(), 6)))
				fis = append(fis, shortest(round(nd.FI(), 3)))
			}
		case control.Store, control.Get:
			fmt.Fprintf(&b, "%d\n", int(a.Code))
		}
	}
	b.WriteString(strings.Join(append(areas, "-99"), ",") + "\n")
	b.WriteString("1," + strings.Join(append(fis, "-99"), ",") + "\n")

	return []Artifact{{Ext: ".catg", Body: []byte(b.String())}}, nil
}

// rorbReach formats the reach line of a START, ADD or ROUTE stop.
func rorbReach(tr *traverse.Traveller, a control.Action) string {
	rc, ok := tr.Reach(a.Pos)
	if !ok {
		return rorbOut
	}
	km := shortest(round(rc.Length()/1000, 3))
	if rc.Type().HasSlope() {
		return fmt.Sprintf("%d,%d,%s,%s,-99", int(a.Code), int(rc.Type()), km, shortest(rc.Slope()))
	}
	return fmt.Sprintf("%d,%d,%s,-99", int(a.Code), int(rc.Type()), km)
}
