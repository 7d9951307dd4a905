package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	XTAL  |  Site: spinel-a  |  3 atoms  |  valid
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("XTAL")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(fmt.Sprintf("Site %s", m.siteName)))
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(fmt.Sprintf("%d atoms", len(m.surface.rows))))
	parts = append(parts, sep)

	if m.surface.valid {
		parts = append(parts, headerValidStyle.Render("valid"))
	} else {
		parts = append(parts, headerInvalidStyle.Render("occupancy mismatch"))
	}

	if m.session.dirty {
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render("modified"))
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
// While the occupancy sum is off, the advisory message takes over the
// status slot, the closest thing a terminal has to a tooltip.
func renderFooter(m *Model) string {
	var left, right string

	switch {
	case m.picker.open:
		right = renderHints([]hint{
			{"↑↓", "navigate"},
			{"space", "toggle"},
			{"enter", "apply"},
			{"esc", "cancel"},
		})
	case m.editing:
		right = renderHints([]hint{
			{"enter", "apply"},
			{"esc", "cancel"},
		})
	default:
		right = renderHints([]hint{
			{"↑↓", "field"},
			{"enter", "edit"},
			{"e", "atom types"},
			{"t", "U/B"},
			{"r", "reset occ"},
			{"s", "save"},
			{"q", "quit"},
		})
	}

	if !m.surface.valid && m.surface.msg != "" {
		left = statusWarnStyle.Render(m.surface.msg)
	} else if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
