// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed formatting.yaml
var defaultTable []byte

// Column field names of the graphics node and reach tables, in output order.
var (
	nodeFields  = []string{"id", "x", "y", "icon", "basin", "end", "ds", "name", "area", "fi", "print", "excess", "comment"}
	reachFields = []string{"id", "name", "us", "ds", "translation", "type", "print", "length", "slope", "npoints", "comment", "x", "y"}
)

// Column is one fixed-width graphics field.
type Column struct {
	Field     string `yaml:"field"`
	Width     int    `yaml:"width"`
	Precision int    `yaml:"precision"`
	// Align is "left", "right" or empty (numbers right, text left).
	Align string `yaml:"align"`
}

// NumberTable lays out a list of values PerRow to a line.
type NumberTable struct {
	Header    string `yaml:"header"`
	Width     int    `yaml:"width"`
	Precision int    `yaml:"precision"`
	PerRow    int    `yaml:"per_row"`
}

// Table is the graphics formatting table of the URBS renderer.
type Table struct {
	LeadingToken    string      `yaml:"leading_token"`
	GraphicalHeader string      `yaml:"graphical_header"`
	NodeHeader      string      `yaml:"node_header"`
	ReachHeader     string      `yaml:"reach_header"`
	GraphicalTail   string      `yaml:"graphical_tail"`
	CountWidth      int         `yaml:"count_width"`
	Node            []Column    `yaml:"node"`
	Reach           []Column    `yaml:"reach"`
	AreaTable       NumberTable `yaml:"area_table"`
	FITable         NumberTable `yaml:"fi_table"`
}

// DefaultTable returns the embedded formatting table.
func DefaultTable() (*Table, error) {
	return LoadTable(bytes.NewReader(defaultTable))
}

// LoadTable decodes and validates a YAML formatting table. Unknown keys
// are rejected.
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormattingTable, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every graphics field appears exactly once with a
// positive width, in the documented order.
func (t *Table) Validate() error {
	if err := checkColumns("node", t.Node, nodeFields); err != nil {
		return err
	}
	if err := checkColumns("reach", t.Reach, reachFields); err != nil {
		return err
	}
	if t.CountWidth <= 0 {
		return fmt.Errorf("%w: count_width must be > 0", ErrFormattingTable)
	}
	for name, nt := range map[string]NumberTable{"area_table": t.AreaTable, "fi_table": t.FITable} {
		if nt.Width <= 0 || nt.PerRow <= 0 || nt.Precision < 0 {
			return fmt.Errorf("%w: %s needs width > 0, per_row > 0, precision >= 0", ErrFormattingTable, name)
		}
	}
	return nil
}

func checkColumns(table string, cols []Column, want []string) error {
	if len(cols) != len(want) {
		return fmt.Errorf("%w: %s has %d columns, want %d", ErrFormattingTable, table, len(cols), len(want))
	}
	for i, c := range cols {
		if c.Field != want[i] {
			return fmt.Errorf("%w: %s column %d is %q, want %q", ErrFormattingTable, table, i, c.Field, want[i])
		}
		if c.Width <= 0 || c.Precision < 0 {
			return fmt.Errorf("%w: %s.%s width %d precision %d", ErrFormattingTable, table, c.Field, c.Width, c.Precision)
		}
		switch c.Align {
		case "", "left", "right":
		default:
			return fmt.Errorf("%w: %s.%s align %q", ErrFormattingTable, table, c.Field, c.Align)
		}
	}
	return nil
}

// cell formats v (int, float64 or string) into the column.
func (c Column) cell(v any) (string, error) {
	var s string
	right := true
	switch x := v.(type) {
	case int:
		s = strconv.Itoa(x)
	case float64:
		s = strconv.FormatFloat(x, 'f', c.Precision, 64)
	case string:
		s, right = x, false
	default:
		return "", fmt.Errorf("%w: %s: unsupported value %T", ErrFormattingTable, c.Field, v)
	}
	switch c.Align {
	case "left":
		right = false
	case "right":
		right = true
	}
	out, err := pad(s, c.Width, right)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Field, err)
	}
	return out, nil
}
