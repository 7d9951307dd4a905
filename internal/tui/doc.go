// Package tui implements the xtal terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles
// libraries. The TUI is a thin presentation surface: it implements
// editor.Surface and commits parsed field values back through the
// editor, which owns all validation and notification semantics.
//
// Component architecture:
//
//	model.go   — root model, field focus, message routing, Init/Update
//	surface.go — editor.Surface implementation the view reads from
//	theme.go   — centralized color + style definitions
//	header.go  — top bar with site context + footer hints
//	form.go    — site settings fields (total occupancy, coordinates)
//	table.go   — atom table with U/B-aware thermal column
//	picker.go  — element selection overlay
//	helpers.go — padding and small formatting helpers
package tui
