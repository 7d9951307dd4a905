package tui

import (
	"fmt"
	"strings"
)

// renderTablePanel renders the atom table: symbol, occupancy, and the
// thermal factor column headed by the active convention.
func renderTablePanel(m *Model, height int) string {
	var lines []string

	title := panelTitleStyle.Render("Atoms")
	count := pickerDimStyle.Render(fmt.Sprintf("  %d", len(m.surface.rows)))
	lines = append(lines, title+count)
	lines = append(lines, "")

	if len(m.surface.rows) == 0 {
		lines = append(lines, emptyStateStyle.Render(
			"No atoms on this site.\n\nPress e to choose atom types."))
		return panelStyle.Width(m.width).Height(height).Render(strings.Join(lines, "\n"))
	}

	lines = append(lines, tableHeaderStyle.Render(
		fmt.Sprintf("%-8s %-18s %-18s", "Symbol", "Occupancy", m.surface.header)))

	for i, row := range m.surface.rows {
		occIdx := fieldFirstRow + 2*i
		tfIdx := occIdx + 1

		sym := symbolStyle.Render(padLabel(row.Symbol, 8))
		occ := renderCell(m, occIdx, true)
		tf := renderCell(m, tfIdx, false)

		lines = append(lines, sym+" "+occ+" "+tf)
	}

	return panelStyle.Width(m.width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderCell renders one editable table cell. Occupancy cells share
// the red invalid styling with the total-occupancy field.
func renderCell(m *Model, idx int, occupancy bool) string {
	value := padLabel(m.inputs[idx].Value(), 16)

	switch {
	case m.editing && m.focus == idx:
		return fieldEditingStyle.Render(m.inputs[idx].View())
	case m.focus == idx && !m.picker.open:
		return fieldFocusedStyle.Render(" " + value + " ")
	case occupancy && !m.surface.valid:
		return fieldInvalidStyle.Render(" " + value + " ")
	default:
		return fieldValueStyle.Render(" " + value + " ")
	}
}
