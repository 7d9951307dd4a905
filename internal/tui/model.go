package tui

import (
	"fmt"

	"xtal/internal/config"
	"xtal/internal/crystal"
	"xtal/internal/editor"
	"xtal/internal/elements"
	"xtal/internal/library"
	"xtal/pkg/sci"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Field indexing
// ────────────────────────────────────────────────────────────

// Site settings occupy the first four field slots; atom cells follow,
// two per row (occupancy, thermal factor).
const (
	fieldTotal = iota
	fieldCoordX
	fieldCoordY
	fieldCoordZ
	fieldFirstRow
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// session holds flags that must survive BubbleTea's model copying.
type session struct {
	dirty bool
}

// Model is the root BubbleTea model for the xtal site editor.
// It owns the presentation only; all edit semantics live in the
// editor package, reached through value commits.
type Model struct {
	ed      *editor.Editor
	surface *displaySurface
	store   library.Store
	session *session

	siteName string
	elems    []elements.Element

	// One textinput per editable field, aligned with field indexes.
	inputs  []textinput.Model
	lastGen int

	// UI state
	focus   int
	editing bool
	picker  pickerState
	width   int
	height  int

	// Status
	statusMsg string
	err       error
}

// NewModel creates the editor TUI for one named site.
func NewModel(store library.Store, name string, site *crystal.Site, cfg config.Config, elems []elements.Element) Model {
	surface := &displaySurface{}
	ed := editor.New(site, surface, cfg.DefaultU)
	// The configured convention was validated at load time.
	_ = ed.SetDisplayType(cfg.DisplayType())

	sess := &session{}
	ed.Subscribe(func() { sess.dirty = true })

	m := Model{
		ed:        ed,
		surface:   surface,
		store:     store,
		session:   sess,
		siteName:  name,
		elems:     elems,
		statusMsg: fmt.Sprintf("Editing %s", name),
	}
	m.rebuildInputs()
	return m
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type savedMsg struct{ name string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) saveSite() tea.Cmd {
	rec := &library.SiteRecord{Name: m.siteName, Site: *m.ed.Site()}
	store := m.store
	return func() tea.Msg {
		if err := store.SaveSite(rec); err != nil {
			return errMsg{err}
		}
		return savedMsg{name: rec.Name}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case savedMsg:
		m.session.dirty = false
		m.statusMsg = fmt.Sprintf("Saved %s", msg.name)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.open {
		return m.handlePickerKey(msg)
	}
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down", "tab":
		m.focus = (m.focus + 1) % m.fieldCount()
		return m, nil

	case "k", "up", "shift+tab":
		m.focus = (m.focus + m.fieldCount() - 1) % m.fieldCount()
		return m, nil

	case "enter":
		m.editing = true
		m.inputs[m.focus].CursorEnd()
		return m, m.inputs[m.focus].Focus()

	case "e":
		m.picker.openWith(m.ed.Site().AtomTypes())
		return m, nil

	case "t":
		return m.toggleDisplayType()

	case "r":
		if err := m.ed.ResetOccupancies(); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.rebuildInputs()
		m.statusMsg = "Occupancies reset to an even split"
		return m, nil

	case "s":
		return m, m.saveSite()
	}

	return m, nil
}

// handleEditKey drives the focused text input.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.inputs[m.focus].Blur()
		m.refreshInput(m.focus)
		return m, nil

	case "enter":
		return m.commitField()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// commitField parses the focused input and routes the value to the
// editor. A parse failure keeps the field in edit mode.
func (m Model) commitField() (tea.Model, tea.Cmd) {
	v, err := sci.Parse(m.inputs[m.focus].Value())
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	switch {
	case m.focus == fieldTotal:
		m.ed.UpdateTotalOccupancy(sci.Clamp(v, crystal.OccupancyMin, crystal.OccupancyMax))

	case m.focus >= fieldCoordX && m.focus <= fieldCoordZ:
		err = m.ed.UpdateFractionalCoord(m.focus-fieldCoordX, v)

	default:
		row, col := m.rowOf(m.focus)
		if col == 0 {
			err = m.ed.UpdateAtomOccupancy(row, sci.Clamp(v, crystal.OccupancyMin, crystal.OccupancyMax))
		} else {
			err = m.ed.UpdateAtomThermalFactor(row, sci.Clamp(v, crystal.ThermalFactorMin, crystal.ThermalFactorMax))
		}
	}
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.editing = false
	m.inputs[m.focus].Blur()
	m.refreshInput(m.focus)
	m.lastGen = m.surface.gen
	m.statusMsg = ""
	return m, nil
}

func (m Model) toggleDisplayType() (tea.Model, tea.Cmd) {
	next := crystal.DisplayB
	if m.ed.DisplayType() == crystal.DisplayB {
		next = crystal.DisplayU
	}
	if err := m.ed.SetDisplayType(next); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.rebuildInputs()
	m.statusMsg = fmt.Sprintf("Thermal factors shown as %s", next)
	return m, nil
}

// ────────────────────────────────────────────────────────────
// Input management
// ────────────────────────────────────────────────────────────

func (m *Model) fieldCount() int {
	return fieldFirstRow + 2*len(m.surface.rows)
}

// rowOf maps a field index past the site settings to its table
// coordinates: column 0 is occupancy, column 1 the thermal factor.
func (m *Model) rowOf(idx int) (row, col int) {
	return (idx - fieldFirstRow) / 2, (idx - fieldFirstRow) % 2
}

// rebuildInputs recreates every field input from the surface state.
// Called at startup and whenever the editor re-pushes the row set
// (atom selection, display toggle, reset).
func (m *Model) rebuildInputs() {
	m.lastGen = m.surface.gen
	m.editing = false

	m.inputs = make([]textinput.Model, m.fieldCount())
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		ti.Width = 14
		m.inputs[i] = ti
		m.refreshInput(i)
	}

	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// refreshInput rewrites one input's text from the surface state.
func (m *Model) refreshInput(idx int) {
	var v float64
	switch {
	case idx == fieldTotal:
		v = m.surface.total
	case idx >= fieldCoordX && idx <= fieldCoordZ:
		v = m.surface.coords[idx-fieldCoordX]
	default:
		row, col := m.rowOf(idx)
		if row >= len(m.surface.rows) {
			return
		}
		if col == 0 {
			v = m.surface.rows[row].Occupancy
		} else {
			v = m.surface.rows[row].ThermalFactor
		}
	}
	m.inputs[idx].SetValue(sci.Format(v))
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	var body string
	if m.picker.open {
		body = renderPicker(&m, m.height-2)
	} else {
		form := renderFormPanel(&m)
		table := renderTablePanel(&m, m.height-2-lipgloss.Height(form))
		body = lipgloss.JoinVertical(lipgloss.Left, form, table)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
