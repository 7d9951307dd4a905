package tui

import (
	"strings"
)

// renderFormPanel renders the site settings: total occupancy and the
// three fractional coordinates.
func renderFormPanel(m *Model) string {
	var lines []string
	lines = append(lines, panelTitleStyle.Render("Site"))
	lines = append(lines, "")

	labels := []string{"Total occupancy", "Coord x", "Coord y", "Coord z"}
	for i, label := range labels {
		lines = append(lines, renderField(m, i, label))
	}

	return panelStyle.Width(m.width).Render(strings.Join(lines, "\n"))
}

// renderField renders one labelled input with focus, edit, and
// validity styling. Only occupancy-bearing fields carry the invalid
// background; coordinates never do.
func renderField(m *Model, idx int, label string) string {
	value := m.inputs[idx].Value()

	var rendered string
	switch {
	case m.editing && m.focus == idx:
		rendered = fieldEditingStyle.Render(m.inputs[idx].View())
	case m.focus == idx && !m.picker.open:
		rendered = fieldFocusedStyle.Render(" " + value + " ")
	case !m.surface.valid && fieldHoldsOccupancy(m, idx):
		rendered = fieldInvalidStyle.Render(" " + value + " ")
	default:
		rendered = fieldValueStyle.Render(" " + value + " ")
	}

	return fieldLabelStyle.Render(padLabel(label, 16)) + rendered
}

// fieldHoldsOccupancy reports whether the field takes part in the
// occupancy sum check and should be flagged red on a mismatch.
func fieldHoldsOccupancy(m *Model, idx int) bool {
	if idx == fieldTotal {
		return true
	}
	if idx < fieldFirstRow {
		return false
	}
	_, col := m.rowOf(idx)
	return col == 0
}
