// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/hydroroute/catchment"
	"github.com/katalvlaran/hydroroute/control"
	"github.com/katalvlaran/hydroroute/geom"
	"github.com/katalvlaran/hydroroute/traverse"
)

// Sentinel errors for rendering.
var (
	// ErrFieldOverflow indicates a value wider than its fixed column.
	ErrFieldOverflow = errors.New("render: value exceeds fixed field width")

	// ErrUnknownFormat is returned by New for an unregistered format name.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrFormattingTable indicates a malformed graphics formatting table.
	ErrFormattingTable = errors.New("render: invalid formatting table")

	// ErrNetworkNil is returned when Render is called with a nil network.
	ErrNetworkNil = errors.New("render: network is nil")
)

// Format names.
const (
	FormatRORB     = "rorb"
	FormatURBS     = "urbs"
	FormatWBNM     = "wbnm"
	FormatURBSText = "urbs-text"
)

// Artifact is one rendered file. Ext is appended to the output base name.
type Artifact struct {
	Ext  string
	Body []byte
}

// Renderer formats the action stream of a network for one model.
//
// Render builds its own Traveller and state on every call, so a Renderer
// value may be reused and shared.
type Renderer interface {
	Format() string
	Render(n *catchment.Network) ([]Artifact, error)
}

// Settings carries the per-format parameters used by New.
type Settings struct {
	// Name is the model name written into URBS text headers and file references.
	Name string

	// Title is the first line of the RORB control file.
	Title string

	// Scale and Shift place graphics coordinates in [Shift, Shift+Scale].
	Scale, Shift float64

	// Table is the graphics formatting table; nil selects the embedded one.
	Table *Table

	// InitialLoss and ContinuingLoss fill the URBS sub-catchment table.
	InitialLoss, ContinuingLoss float64

	// WBNM holds runfile parameters.
	WBNM WBNMParams
}

// DefaultSettings returns the documented defaults for every format.
func DefaultSettings() Settings {
	return Settings{
		Name:  "URBS_Model",
		Title: "Reach Name",
		Scale: geom.DefaultScale,
		Shift: geom.DefaultShift,

		InitialLoss:    0,
		ContinuingLoss: 2.5,

		WBNM: DefaultWBNMParams(),
	}
}

var registry = map[string]func(Settings) (Renderer, error){
	FormatRORB: func(s Settings) (Renderer, error) {
		return RORB{Title: s.Title}, nil
	},
	FormatURBS: func(s Settings) (Renderer, error) {
		t := s.Table
		if t == nil {
			var err error
			if t, err = DefaultTable(); err != nil {
				return nil, err
			}
		}
		return NewURBS(t, s.Scale, s.Shift), nil
	},
	FormatWBNM: func(s Settings) (Renderer, error) {
		return WBNM{Params: s.WBNM}, nil
	},
	FormatURBSText: func(s Settings) (Renderer, error) {
		return URBSText{Name: s.Name, InitialLoss: s.InitialLoss, ContinuingLoss: s.ContinuingLoss}, nil
	},
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New returns the Renderer registered under format.
func New(format string, s Settings) (Renderer, error) {
	mk, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return mk(s)
}

// walk runs a fresh Traveller over n and returns it, finished, together
// with the action stream.
func walk(n *catchment.Network) (*traverse.Traveller, []control.Action, error) {
	if n == nil {
		return nil, nil, ErrNetworkNil
	}
	tr, err := traverse.New(n)
	if err != nil {
		return nil, nil, err
	}
	acts, err := control.Stream(tr)
	if err != nil {
		return nil, nil, err
	}
	return tr, acts, nil
}
