// Package crystal holds the in-memory model for a crystallographic site:
// atom occupancies, fractional coordinates, and thermal displacement
// factors stored in the U convention. The model is owned by a single
// editing session; all mutation happens synchronously on the caller's
// goroutine.
package crystal

import (
	"fmt"
	"math"
)

// Field bounds shared with the presentation layer.
const (
	OccupancyMin = 0.0
	OccupancyMax = 1000.0

	ThermalFactorMin = -1.e7
	ThermalFactorMax = 1.e7

	// OccupancyTol is the tolerance used when checking that per-atom
	// occupancies sum to the declared total.
	OccupancyTol = 1.e-6
)

// UToB converts a U-convention thermal factor to the B convention.
// BToU is the inverse.
var (
	UToB = 8 * math.Pi * math.Pi
	BToU = 1 / (8 * math.Pi * math.Pi)
)

// Atom is one species occupying a site.
type Atom struct {
	Symbol    string  `json:"symbol"`
	Occupancy float64 `json:"occupancy"`
	// U is the thermal displacement factor in the U convention.
	// This is the canonical storage unit; B values exist only at the
	// display boundary.
	U float64 `json:"u"`
}

// Site is a crystallographic position potentially shared fractionally
// among several atom species. Atom order is stable and mirrors the
// display row order.
type Site struct {
	TotalOccupancy   float64    `json:"total_occupancy"`
	FractionalCoords [3]float64 `json:"fractional_coords"`
	Atoms            []Atom     `json:"atoms"`
}

// NewSite returns a site fully occupied by a single species.
func NewSite(symbol string, defaultU float64) *Site {
	return &Site{
		TotalOccupancy: 1.0,
		Atoms: []Atom{
			{Symbol: symbol, Occupancy: 1.0, U: defaultU},
		},
	}
}

// AtomTypes returns the symbols of the site's atoms in row order.
func (s *Site) AtomTypes() []string {
	types := make([]string, len(s.Atoms))
	for i, a := range s.Atoms {
		types[i] = a.Symbol
	}
	return types
}

// SetAtomTypes replaces the site's atom list with one atom per symbol.
// If symbols matches the current atom types (order-sensitive) it is a
// no-op and returns false. Otherwise each new atom gets defaultU as its
// thermal factor and occupancies are reset to an even split of the
// total. Returns whether the atom list changed.
func (s *Site) SetAtomTypes(symbols []string, defaultU float64) (bool, error) {
	if sameSymbols(symbols, s.AtomTypes()) {
		return false, nil
	}

	atoms := make([]Atom, len(symbols))
	for i, sym := range symbols {
		atoms[i] = Atom{Symbol: sym, U: defaultU}
	}
	s.Atoms = atoms

	if len(atoms) == 0 {
		return true, nil
	}
	return true, s.ResetOccupancies()
}

// ResetOccupancies distributes the total occupancy evenly across all
// atoms. A site with no atoms fails with ErrNoAtoms rather than
// producing NaN occupancies.
func (s *Site) ResetOccupancies() error {
	if len(s.Atoms) == 0 {
		return fmt.Errorf("resetting occupancies: %w", ErrNoAtoms)
	}

	share := s.TotalOccupancy / float64(len(s.Atoms))
	for i := range s.Atoms {
		s.Atoms[i].Occupancy = share
	}
	return nil
}

// SetTotalOccupancy writes the declared total. The value is not
// validated here; the occupancy sum check is advisory and runs after
// every edit.
func (s *Site) SetTotalOccupancy(v float64) {
	s.TotalOccupancy = v
}

// SetFractionalCoord writes one axis of the site position.
func (s *Site) SetFractionalCoord(axis int, v float64) error {
	if axis < 0 || axis >= len(s.FractionalCoords) {
		return fmt.Errorf("setting fractional coord %d: %w", axis, ErrAxisIndex)
	}
	s.FractionalCoords[axis] = v
	return nil
}

// SetAtomOccupancy writes the occupancy of the atom at index i.
func (s *Site) SetAtomOccupancy(i int, v float64) error {
	if i < 0 || i >= len(s.Atoms) {
		return fmt.Errorf("setting occupancy of atom %d: %w", i, ErrAtomIndex)
	}
	s.Atoms[i].Occupancy = v
	return nil
}

// SetAtomThermalFactor writes the thermal factor of the atom at index i.
// The value is given in the display convention dt and converted to U
// before storage.
func (s *Site) SetAtomThermalFactor(i int, v float64, dt DisplayType) error {
	if i < 0 || i >= len(s.Atoms) {
		return fmt.Errorf("setting thermal factor of atom %d: %w", i, ErrAtomIndex)
	}
	u, err := ToU(v, dt)
	if err != nil {
		return err
	}
	s.Atoms[i].U = u
	return nil
}

func sameSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
