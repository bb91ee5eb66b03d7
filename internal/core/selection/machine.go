// Package selection models the transient text-selection interaction: a raw
// selection becomes a contextual menu, then a color picker, then a committed
// highlight. The state is a single tagged variant so illegal combinations
// (e.g. color picker open with no selection) are unrepresentable.
package selection

import (
	"errors"
	"strings"
)

// Phase identifies the interaction phase.
type Phase int

const (
	// Idle means no selection is active and no popup is shown.
	Idle Phase = iota
	// MenuOpen means a selection exists and the action menu is shown.
	MenuOpen
	// ColorPickerOpen means the user chose to highlight and is picking a color.
	ColorPickerOpen
)

// String returns the phase name for logs and errors.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case MenuOpen:
		return "menu-open"
	case ColorPickerOpen:
		return "color-picker-open"
	default:
		return "unknown"
	}
}

// Selection is the anchor captured at the moment of selection. The range is
// owned by the machine for the duration of the popup interaction and is
// discarded on commit or cancel.
type Selection struct {
	Text   string
	Range  Range
	Bounds Box
}

// Range addresses the selected span within a chapter document: a block index
// plus byte offsets into that block's plain text. A selection that spans two
// blocks carries differing block indices and can never be committed.
type Range struct {
	StartBlock  int
	StartOffset int
	EndBlock    int
	EndOffset   int
}

// CrossesBlocks reports whether the range spans more than one block-level
// element.
func (r Range) CrossesBlocks() bool {
	return r.StartBlock != r.EndBlock
}

// Box is the bounding box of the selection in viewport coordinates.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// State is the tagged variant: Selection is meaningful only outside Idle.
type State struct {
	Phase     Phase
	Selection Selection
}

var (
	// ErrNoSelection is returned for actions that need an active selection.
	ErrNoSelection = errors.New("no active selection")
	// ErrNotPickingColor is returned when a commit is attempted outside the
	// color picker phase.
	ErrNotPickingColor = errors.New("color picker is not open")
)

// Machine drives the selection interaction. Zero value is Idle.
type Machine struct {
	state State
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Select records a new selection. Leading/trailing whitespace is trimmed the
// way a browser selection string is; an effectively empty selection returns
// the machine to Idle. A non-empty selection (re)opens the action menu from
// any phase.
func (m *Machine) Select(sel Selection) {
	sel.Text = strings.TrimSpace(sel.Text)
	if sel.Text == "" {
		m.state = State{Phase: Idle}
		return
	}
	m.state = State{Phase: MenuOpen, Selection: sel}
}

// Dismiss returns to Idle from any phase: click outside the popup, an empty
// follow-up selection, or explicit cancel.
func (m *Machine) Dismiss() {
	m.state = State{Phase: Idle}
}

// OpenColorPicker advances from the action menu to the color picker.
func (m *Machine) OpenColorPicker() error {
	if m.state.Phase != MenuOpen {
		return ErrNoSelection
	}
	m.state.Phase = ColorPickerOpen
	return nil
}

// TakeCommit consumes the selection for a highlight commit. Only legal while
// the color picker is open; the machine returns to Idle and the native
// selection is considered cleared.
func (m *Machine) TakeCommit() (Selection, error) {
	if m.state.Phase != ColorPickerOpen {
		return Selection{}, ErrNotPickingColor
	}
	sel := m.state.Selection
	m.state = State{Phase: Idle}
	return sel, nil
}
