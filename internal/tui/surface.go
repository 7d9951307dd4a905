package tui

import (
	"xtal/internal/crystal"
	"xtal/internal/editor"
)

// displaySurface is the TUI's implementation of editor.Surface. It
// records the state the editor pushes out; the view reads it every
// frame. It is shared by pointer across Model copies so BubbleTea's
// value semantics don't fork the display state.
type displaySurface struct {
	total  float64
	coords [3]float64
	rows   []editor.Row
	header crystal.DisplayType
	valid  bool
	msg    string

	// gen increments whenever the row set is re-pushed, so the model
	// knows to rebuild its per-row inputs.
	gen int
}

func (s *displaySurface) SetTotalOccupancy(v float64) { s.total = v }

func (s *displaySurface) SetFractionalCoord(axis int, v float64) {
	if axis >= 0 && axis < len(s.coords) {
		s.coords[axis] = v
	}
}

func (s *displaySurface) SetRows(rows []editor.Row) {
	s.rows = rows
	s.gen++
}

func (s *displaySurface) SetThermalHeader(dt crystal.DisplayType) { s.header = dt }

func (s *displaySurface) SetValidity(valid bool, msg string) {
	s.valid = valid
	s.msg = msg
}
