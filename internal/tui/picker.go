package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Element picker
// ────────────────────────────────────────────────────────────

// pickerState is the atom-type selection overlay. Selection order is
// preserved: it becomes the atom display order on accept.
type pickerState struct {
	open     bool
	cursor   int
	selected []string
}

// openWith opens the picker preloaded with the site's current atom
// types, so accepting without changes is a no-op downstream.
func (p *pickerState) openWith(current []string) {
	p.open = true
	p.cursor = 0
	p.selected = append([]string(nil), current...)
}

func (p *pickerState) isSelected(symbol string) bool {
	for _, s := range p.selected {
		if s == symbol {
			return true
		}
	}
	return false
}

// toggle removes the symbol if selected, otherwise appends it.
func (p *pickerState) toggle(symbol string) {
	for i, s := range p.selected {
		if s == symbol {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return
		}
	}
	p.selected = append(p.selected, symbol)
}

// handlePickerKey drives the overlay. Esc cancels with no change, the
// original atom types stay untouched.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picker.open = false
		return m, nil

	case "j", "down":
		if m.picker.cursor < len(m.elems)-1 {
			m.picker.cursor++
		}
		return m, nil

	case "k", "up":
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
		return m, nil

	case " ":
		m.picker.toggle(m.elems[m.picker.cursor].Symbol)
		return m, nil

	case "enter":
		m.picker.open = false
		if err := m.ed.SelectAtomTypes(m.picker.selected); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if m.surface.gen != m.lastGen {
			m.rebuildInputs()
			m.statusMsg = fmt.Sprintf("Site now holds %d atom types", len(m.surface.rows))
		}
		return m, nil
	}

	return m, nil
}

// renderPicker renders the element catalogue with a scrolling window
// around the cursor.
func renderPicker(m *Model, height int) string {
	var lines []string

	title := pickerTitleStyle.Render("Atom types")
	chosen := pickerDimStyle.Render(fmt.Sprintf("  %d selected", len(m.picker.selected)))
	lines = append(lines, title+chosen)
	lines = append(lines, "")

	maxVisible := height - 6
	if maxVisible < 5 {
		maxVisible = 5
	}

	startIdx := 0
	if m.picker.cursor >= maxVisible {
		startIdx = m.picker.cursor - maxVisible + 1
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(m.elems) {
		endIdx = len(m.elems)
	}

	for i := startIdx; i < endIdx; i++ {
		e := m.elems[i]

		mark := pickerDimStyle.Render("○")
		if m.picker.isSelected(e.Symbol) {
			mark = pickerChosenStyle.Render("●")
		}

		content := fmt.Sprintf("%s %3d  %-3s %s", mark, e.Number, e.Symbol, e.Name)
		if i == m.picker.cursor {
			lines = append(lines, pickerCursorStyle.Render(content))
		} else {
			lines = append(lines, pickerItemStyle.Render(content))
		}
	}

	box := pickerBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}
