// SPDX-License-Identifier: MIT

package control

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hydroroute/traverse"
)

// Code is a symbolic routing action.
type Code int

// Action codes. The values match the numeric control codes of the RORB
// control vector.
const (
	End Code = iota
	Start
	Add
	Store
	Get
	Route
)

// String returns the upper-case action name.
func (c Code) String() string {
	switch c {
	case End:
		return "END"
	case Start:
		return "START"
	case Add:
		return "ADD"
	case Store:
		return "STORE"
	case Get:
		return "GET"
	case Route:
		return "ROUTE"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// ErrUnclassified is returned when a stop matches no action rule.
var ErrUnclassified = errors.New("control: stop matches no action")

// ErrTravellerUsed is returned when Stream is given a Traveller that has
// already been advanced, even one that has come back to the outlet.
var ErrTravellerUsed = errors.New("control: traveller already used")

// Action is one classified stop: Code at node Pos (traverse.End for End).
type Action struct {
	Code Code
	Pos  int
}

// String renders the action as CODE@pos.
func (a Action) String() string {
	return fmt.Sprintf("%s@%d", a.Code, a.Pos)
}

// machine holds the running/stored hydrograph state of one stream.
type machine struct {
	tr      *traverse.Traveller
	running bool
	stored  []int
}

// Stream walks tr to completion and returns the action stream, ending in
// a single End action. tr must be fresh: never advanced by Next or
// NextAbsolute.
func Stream(tr *traverse.Traveller) ([]Action, error) {
	if tr == nil {
		return nil, traverse.ErrNotConnected
	}
	if tr.Moved() {
		return nil, ErrTravellerUsed
	}

	m := &machine{tr: tr}
	var out []Action
	tr.Next()
	for !tr.Done() {
		a, err := m.step()
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}

	return append(out, Action{Code: End, Pos: traverse.End}), nil
}

// step classifies the current stop and advances when the rule says so.
func (m *machine) step() (Action, error) {
	i := m.tr.Position()
	up := m.tr.Top(i)
	n := m.tr.Node(i)

	switch {
	case !m.running && n.IsBasin():
		m.running = true
		m.tr.Next()
		return Action{Code: Start, Pos: i}, nil

	case m.running && len(m.stored) > 0 && m.stored[len(m.stored)-1] == i:
		m.stored = m.stored[:len(m.stored)-1]
		return Action{Code: Get, Pos: i}, nil

	case m.running && n.IsBasin() && up == i:
		m.tr.Next()
		return Action{Code: Add, Pos: i}, nil

	case m.running && up != i:
		m.stored = append(m.stored, i)
		m.running = false
		m.tr.Next()
		return Action{Code: Store, Pos: i}, nil

	case m.running && n.IsConfluence() && up == i:
		m.tr.Next()
		return Action{Code: Route, Pos: i}, nil
	}

	return Action{}, fmt.Errorf("%w: %s (running=%t)", ErrUnclassified, n, m.running)
}
