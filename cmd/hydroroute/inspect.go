// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/control"
	"github.com/katalvlaran/hydroroute/traverse"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the connected network and its action stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			n, err := buildNetwork(cfg, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return summarize(out, n, colorable(out))
		},
	}
	addLayerFlags(cmd)
	return cmd
}

// colorable reports whether w is a terminal.
func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// summarize writes the nodes, reaches, unreachable nodes and action stream of n.
func summarize(w io.Writer, n *catchment.Network, color bool) error {
	c := n.Catchment()
	heading := func(s string) string {
		if color {
			return headingStyle.Render(s)
		}
		return s
	}

	fmt.Fprintf(w, "%s %s\n\n", heading("Outlet:"), c.Node(c.Outlet()).Name())

	nodes := grid("#", "NAME", "KIND", "DETAIL")
	for i, v := range c.Nodes() {
		var detail string
		switch {
		case v.IsBasin():
			detail = fmt.Sprintf("area=%g fi=%g", v.Area(), v.FI())
		case v.IsOutlet():
			detail = "outlet"
		}
		nodes.Row(strconv.Itoa(i), v.Name(), v.Kind().String(), detail)
	}
	fmt.Fprintf(w, "%s\n%s\n\n", heading("Nodes"), nodes.Render())

	from := make([]int, c.ReachCount())
	to := make([]int, c.ReachCount())
	for j := range from {
		from[j], to[j] = -1, -1
	}
	for v := 0; v < c.NodeCount(); v++ {
		for _, l := range n.Links(catchment.Downstream, v) {
			from[l.Reach], to[l.Reach] = v, l.Node
		}
	}
	name := func(v int) string {
		if v < 0 {
			return "?"
		}
		return c.Node(v).Name()
	}

	reaches := grid("NAME", "TYPE", "KM", "SLOPE", "FLOW")
	for j, r := range c.Reaches() {
		slope := "-"
		if r.Type().HasSlope() {
			slope = strconv.FormatFloat(r.Slope(), 'g', -1, 64)
		}
		reaches.Row(r.Name(), r.Type().String(), fmt.Sprintf("%.3f", r.Length()/1000), slope,
			name(from[j])+" -> "+name(to[j]))
	}
	fmt.Fprintf(w, "%s\n%s\n\n", heading("Reaches"), reaches.Render())

	fmt.Fprintln(w, heading("Unreachable"))
	lost := n.Unreachable()
	if len(lost) == 0 {
		fmt.Fprintln(w, "none")
	}
	for _, v := range lost {
		fmt.Fprintln(w, name(v))
	}
	fmt.Fprintln(w)

	tr, err := traverse.New(n)
	if err != nil {
		return err
	}
	acts, err := control.Stream(tr)
	if err != nil {
		return err
	}
	actions := grid("ACTION", "NODE", "REACH")
	for _, act := range acts {
		if act.Code == control.End {
			actions.Row(act.Code.String(), "", "")
			continue
		}
		reach := "-"
		if r, ok := n.DownReach(act.Pos); ok {
			reach = r.Name()
		}
		actions.Row(act.Code.String(), name(act.Pos), reach)
	}
	fmt.Fprintf(w, "%s\n%s\n", heading("Actions"), actions.Render())
	return nil
}

// grid returns a borderless table with the given headers.
func grid(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...)
}
