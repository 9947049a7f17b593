// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/control"
	"github.com/katalvlaran/hydroroute/traverse"
)

// URBSText renders URBS text commands (<name>_cmd.vec) and the matching
// sub-catchment table (<name>.cat).
type URBSText struct {
	// Name is the model name; empty selects "URBS_Model".
	Name string

	// InitialLoss and ContinuingLoss fill the IL and CL columns.
	InitialLoss, ContinuingLoss float64
}

// Format implements Renderer.
func (URBSText) Format() string { return FormatURBSText }

// Render implements Renderer. Sub-catchments are numbered from 1 in the
// order their RAIN or ADD RAIN command is issued.
func (u URBSText) Render(n *catchment.Network) ([]Artifact, error) {
	tr, acts, err := walk(n)
	if err != nil {
		return nil, err
	}
	name := u.Name
	if name == "" {
		name = DefaultSettings().Name
	}

	sub := newIDs()
	var basins []int
	var b strings.Builder
	b.WriteString(name + "\n")
	b.WriteString("MODEL: SPLIT\n")
	b.WriteString("USES: L CS U\n")
	b.WriteString("DEFAULT PARAMETERS: alpha = 0.5 m = 0.8 beta = 3 n = 1.0 x = 0.25\n")
	b.WriteString("CATCHMENT DATA FILE = " + name + ".cat\n")
	for _, a := range acts {
		var cmd string
		switch a.Code {
		case control.Start, control.Add:
			basins = append(basins, a.Pos)
			verb := "RAIN"
			if a.Code == control.Add {
				verb = "ADD RAIN"
			}
			cmd = urbsCommand(tr, a.Pos, fmt.Sprintf("%s #%d", verb, sub.assign(a.Pos)))
		case control.Store:
			cmd = "STORE."
		case control.Get:
			cmd = "GET."
		case control.Route:
			cmd = urbsCommand(tr, a.Pos, fmt.Sprintf("ROUTE THRU #%d", a.Pos+1))
		default:
			continue
		}
		b.WriteString(cmd + "\n")
	}
	b.WriteString("END OF CATCHMENT DATA.\n")

	cat, err := u.table(tr, basins, sub)
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{Ext: "_cmd.vec", Body: []byte(b.String())},
		{Ext: ".cat", Body: cat},
	}, nil
}

// urbsCommand appends reach length and slope to head, or prints the node
// when it has no downstream reach.
func urbsCommand(tr *traverse.Traveller, pos int, head string) string {
	rc, ok := tr.Reach(pos)
	if !ok {
		return "PRINT. " + tr.Node(pos).Name()
	}
	return fmt.Sprintf("%s L=%.3f Sc=%.6f", head, rc.Length()/1000, rc.Slope())
}

func (u URBSText) table(tr *traverse.Traveller, basins []int, sub *ids) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write([]string{"Index", "Name", "Area", "Imperviousness", "IL", "CL"}); err != nil {
		return nil, err
	}
	for _, v := range basins {
		nd := tr.Node(v)
		rec := []string{
			strconv.Itoa(sub.get(v)),
			nd.Name(),
			shortest(nd.Area()),
			shortest(nd.FI()),
			shortest(u.InitialLoss),
			shortest(u.ContinuingLoss),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render: write sub-catchment table: %w", err)
	}
	return buf.Bytes(), nil
}
