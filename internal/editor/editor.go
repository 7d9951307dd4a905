// Package editor mediates between a crystal.Site and a presentation
// surface. It owns the edit routing, the occupancy revalidation after
// every edit, and the validity-gated "site modified" notification.
//
// The editor never renders anything itself: it pushes values and
// validity state out through the Surface interface and pulls user
// edits in through the Update* methods. While a push is in flight,
// surface-originated edit callbacks are suppressed so that
// repopulating the display cannot cascade into re-entrant edits.
package editor

import (
	"fmt"

	"xtal/internal/crystal"
)

// Row is one atom as presented to the surface. ThermalFactor is
// expressed in the editor's current display convention.
type Row struct {
	Symbol        string
	Occupancy     float64
	ThermalFactor float64
}

// Surface is the narrow interface the editor drives. Implementations
// own all visual concerns, including how validity is styled.
type Surface interface {
	SetTotalOccupancy(v float64)
	SetFractionalCoord(axis int, v float64)
	SetRows(rows []Row)
	SetThermalHeader(dt crystal.DisplayType)
	SetValidity(valid bool, msg string)
}

// Editor wires a single site to a single surface. All methods must be
// called from one goroutine; the editor carries no locking.
type Editor struct {
	site     *crystal.Site
	surface  Surface
	display  crystal.DisplayType
	defaultU float64

	subscribers []func()

	// suppress is set while the editor pushes model state outward.
	// Surface callbacks arriving during that window are ignored.
	suppress bool
}

// New creates an editor for the given site and pushes the initial
// state to the surface. defaultU is the thermal factor assigned to
// newly created atoms.
func New(site *crystal.Site, surface Surface, defaultU float64) *Editor {
	e := &Editor{
		site:     site,
		surface:  surface,
		display:  crystal.DisplayU,
		defaultU: defaultU,
	}
	e.PushState()
	return e
}

// Subscribe registers a zero-payload callback fired whenever an edit
// leaves the site in a valid state.
func (e *Editor) Subscribe(fn func()) {
	e.subscribers = append(e.subscribers, fn)
}

// Site returns the site under edit. The editor holds a reference; the
// caller retains ownership.
func (e *Editor) Site() *crystal.Site {
	return e.site
}

// SetSite swaps in a new site and repopulates the surface.
func (e *Editor) SetSite(site *crystal.Site) {
	e.site = site
	e.PushState()
}

// DisplayType returns the current thermal factor display convention.
func (e *Editor) DisplayType() crystal.DisplayType {
	return e.display
}

// SetDisplayType switches between the U and B conventions and
// re-renders the thermal column.
func (e *Editor) SetDisplayType(dt crystal.DisplayType) error {
	if !dt.Valid() {
		return fmt.Errorf("setting display type: %w: %q", crystal.ErrUnknownDisplayType, dt)
	}
	e.display = dt
	e.PushState()
	return nil
}

// Rows builds the table rows in the current display convention.
func (e *Editor) Rows() ([]Row, error) {
	rows := make([]Row, len(e.site.Atoms))
	for i, a := range e.site.Atoms {
		tf, err := crystal.DisplayValue(a, e.display)
		if err != nil {
			return nil, err
		}
		rows[i] = Row{Symbol: a.Symbol, Occupancy: a.Occupancy, ThermalFactor: tf}
	}
	return rows, nil
}

// push runs fn with the suppression guard raised, so anything the
// surface does in response cannot loop back as an edit.
func (e *Editor) push(fn func()) {
	e.suppress = true
	defer func() { e.suppress = false }()
	fn()
}

// PushState writes the full model state out to the surface. Edits
// triggered by the surface while the push is running are suppressed.
func (e *Editor) PushState() {
	e.push(func() {
		e.surface.SetTotalOccupancy(e.site.TotalOccupancy)
		for axis, v := range e.site.FractionalCoords {
			e.surface.SetFractionalCoord(axis, v)
		}
		e.surface.SetThermalHeader(e.display)

		// display is validated by SetDisplayType, so Rows cannot fail here.
		rows, _ := e.Rows()
		e.surface.SetRows(rows)

		e.Revalidate()
	})
}

// pushRows re-renders just the atom table after an in-place edit.
func (e *Editor) pushRows() {
	e.push(func() {
		rows, _ := e.Rows()
		e.surface.SetRows(rows)
	})
}

// Revalidate recomputes the occupancy sum check, pushes the result to
// the surface, and returns it together with the advisory message
// (empty when valid).
func (e *Editor) Revalidate() (bool, string) {
	valid := crystal.OccupanciesValid(e.site)
	msg := ""
	if !valid {
		msg = crystal.InvalidOccupancyMessage
	}
	e.surface.SetValidity(valid, msg)
	return valid, msg
}

// UpdateTotalOccupancy handles a user edit of the declared total.
func (e *Editor) UpdateTotalOccupancy(v float64) {
	if e.suppress {
		return
	}
	e.site.SetTotalOccupancy(v)
	e.push(func() { e.surface.SetTotalOccupancy(e.site.TotalOccupancy) })
	e.Revalidate()
	e.emitIfValid()
}

// UpdateFractionalCoord handles a user edit of one coordinate axis.
func (e *Editor) UpdateFractionalCoord(axis int, v float64) error {
	if e.suppress {
		return nil
	}
	if err := e.site.SetFractionalCoord(axis, v); err != nil {
		return err
	}
	e.push(func() { e.surface.SetFractionalCoord(axis, v) })
	e.Revalidate()
	e.emitIfValid()
	return nil
}

// UpdateAtomOccupancy handles a user edit of one atom's occupancy.
func (e *Editor) UpdateAtomOccupancy(i int, v float64) error {
	if e.suppress {
		return nil
	}
	if err := e.site.SetAtomOccupancy(i, v); err != nil {
		return err
	}
	e.pushRows()
	e.Revalidate()
	e.emitIfValid()
	return nil
}

// UpdateAtomThermalFactor handles a user edit of one atom's thermal
// factor, given in the current display convention.
func (e *Editor) UpdateAtomThermalFactor(i int, v float64) error {
	if e.suppress {
		return nil
	}
	if err := e.site.SetAtomThermalFactor(i, v, e.display); err != nil {
		return err
	}
	e.pushRows()
	e.Revalidate()
	e.emitIfValid()
	return nil
}

// SelectAtomTypes applies the result of the atom-type selection
// surface. An unchanged, order-identical list is a no-op with no
// notification; otherwise the atom list is rebuilt, occupancies are
// reset, and the table is re-rendered.
func (e *Editor) SelectAtomTypes(symbols []string) error {
	if e.suppress {
		return nil
	}
	changed, err := e.site.SetAtomTypes(symbols, e.defaultU)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	e.PushState()
	e.emitIfValid()
	return nil
}

// ResetOccupancies distributes the total evenly across the atoms and
// re-renders.
func (e *Editor) ResetOccupancies() error {
	if e.suppress {
		return nil
	}
	if err := e.site.ResetOccupancies(); err != nil {
		return err
	}
	e.PushState()
	e.emitIfValid()
	return nil
}

func (e *Editor) emitIfValid() {
	if !crystal.OccupanciesValid(e.site) {
		return
	}
	for _, fn := range e.subscribers {
		fn()
	}
}
