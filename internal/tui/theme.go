package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerValidStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	headerInvalidStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Form fields
var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	fieldFocusedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	fieldEditingStyle = lipgloss.NewStyle().
				Background(colorBgSurface).
				Foreground(colorYellow)

	// Occupancy fields turn red while the sum check fails.
	fieldInvalidStyle = lipgloss.NewStyle().
				Background(colorRed).
				Foreground(colorBg)
)

// Atom table
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Bold(true)

	symbolStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Element picker overlay
var (
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	pickerCursorStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	pickerChosenStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	pickerDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 2)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
