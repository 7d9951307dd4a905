package crystal

import (
	"errors"
	"math"
	"testing"
)

const testDefaultU = 0.0125

// TestSetAtomTypesReplaces verifies the wholesale replacement path:
// two symbols on a fully occupied site split the total evenly.
func TestSetAtomTypesReplaces(t *testing.T) {
	site := NewSite("Ni", testDefaultU)

	changed, err := site.SetAtomTypes([]string{"Fe", "O"}, testDefaultU)
	if err != nil {
		t.Fatalf("SetAtomTypes failed: %v", err)
	}
	if !changed {
		t.Fatal("expected SetAtomTypes to report a change")
	}

	if len(site.Atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(site.Atoms))
	}
	for i, want := range []string{"Fe", "O"} {
		if site.Atoms[i].Symbol != want {
			t.Errorf("atom %d: symbol = %s, want %s", i, site.Atoms[i].Symbol, want)
		}
		if site.Atoms[i].Occupancy != 0.5 {
			t.Errorf("atom %d: occupancy = %v, want 0.5", i, site.Atoms[i].Occupancy)
		}
		if site.Atoms[i].U != testDefaultU {
			t.Errorf("atom %d: U = %v, want default %v", i, site.Atoms[i].U, testDefaultU)
		}
	}
}

// TestSetAtomTypesNoOp verifies that an identical symbol list leaves
// atoms and occupancies untouched.
func TestSetAtomTypesNoOp(t *testing.T) {
	site := NewSite("Ni", testDefaultU)
	site.Atoms[0].Occupancy = 0.75
	site.Atoms[0].U = 0.42

	changed, err := site.SetAtomTypes([]string{"Ni"}, testDefaultU)
	if err != nil {
		t.Fatalf("SetAtomTypes failed: %v", err)
	}
	if changed {
		t.Error("identical symbol list should be a no-op")
	}
	if site.Atoms[0].Occupancy != 0.75 || site.Atoms[0].U != 0.42 {
		t.Errorf("no-op mutated atom: %+v", site.Atoms[0])
	}
}

// TestSetAtomTypesOrderSensitive verifies that the same symbols in a
// different order count as a change.
func TestSetAtomTypesOrderSensitive(t *testing.T) {
	site := NewSite("Fe", testDefaultU)
	if _, err := site.SetAtomTypes([]string{"Fe", "O"}, testDefaultU); err != nil {
		t.Fatalf("SetAtomTypes failed: %v", err)
	}

	changed, err := site.SetAtomTypes([]string{"O", "Fe"}, testDefaultU)
	if err != nil {
		t.Fatalf("SetAtomTypes failed: %v", err)
	}
	if !changed {
		t.Error("reordered symbols should count as a change")
	}
	if site.Atoms[0].Symbol != "O" {
		t.Errorf("expected first atom O, got %s", site.Atoms[0].Symbol)
	}
}

// TestResetOccupancies verifies even distribution of the total, and the
// partial-occupancy case.
func TestResetOccupancies(t *testing.T) {
	site := &Site{
		TotalOccupancy: 0.9,
		Atoms: []Atom{
			{Symbol: "Fe", Occupancy: 0.8},
			{Symbol: "Ni", Occupancy: 0.05},
			{Symbol: "Cr", Occupancy: 0.05},
		},
	}

	if err := site.ResetOccupancies(); err != nil {
		t.Fatalf("ResetOccupancies failed: %v", err)
	}
	for i, a := range site.Atoms {
		if math.Abs(a.Occupancy-0.3) > 1e-15 {
			t.Errorf("atom %d: occupancy = %v, want 0.3", i, a.Occupancy)
		}
	}
}

// TestResetOccupanciesNoAtoms verifies the zero-atom edge case fails
// with ErrNoAtoms instead of dividing by zero.
func TestResetOccupanciesNoAtoms(t *testing.T) {
	site := &Site{TotalOccupancy: 1.0}
	if err := site.ResetOccupancies(); !errors.Is(err, ErrNoAtoms) {
		t.Errorf("expected ErrNoAtoms, got %v", err)
	}
}

// TestSetAtomOccupancyBounds verifies that an out-of-range index fails
// with ErrAtomIndex and leaves the model unmodified.
func TestSetAtomOccupancyBounds(t *testing.T) {
	site := NewSite("Fe", testDefaultU)
	before := site.Atoms[0]

	for _, idx := range []int{-1, 1, 99} {
		if err := site.SetAtomOccupancy(idx, 0.25); !errors.Is(err, ErrAtomIndex) {
			t.Errorf("index %d: expected ErrAtomIndex, got %v", idx, err)
		}
	}
	if site.Atoms[0] != before {
		t.Errorf("failed edits mutated the model: %+v", site.Atoms[0])
	}
}

// TestSetAtomThermalFactor verifies both conventions and the
// out-of-range / unknown-type failure paths.
func TestSetAtomThermalFactor(t *testing.T) {
	site := NewSite("Fe", testDefaultU)

	if err := site.SetAtomThermalFactor(0, 0.02, DisplayU); err != nil {
		t.Fatalf("SetAtomThermalFactor(U) failed: %v", err)
	}
	if site.Atoms[0].U != 0.02 {
		t.Errorf("U = %v, want 0.02", site.Atoms[0].U)
	}

	// B input is converted to U for storage.
	if err := site.SetAtomThermalFactor(0, 1.0, DisplayB); err != nil {
		t.Fatalf("SetAtomThermalFactor(B) failed: %v", err)
	}
	if math.Abs(site.Atoms[0].U-BToU) > 1e-15 {
		t.Errorf("U = %v, want 1/(8π²) = %v", site.Atoms[0].U, BToU)
	}

	before := site.Atoms[0]
	if err := site.SetAtomThermalFactor(3, 0.5, DisplayU); !errors.Is(err, ErrAtomIndex) {
		t.Errorf("expected ErrAtomIndex, got %v", err)
	}
	if err := site.SetAtomThermalFactor(0, 0.5, "X"); !errors.Is(err, ErrUnknownDisplayType) {
		t.Errorf("expected ErrUnknownDisplayType, got %v", err)
	}
	if site.Atoms[0] != before {
		t.Errorf("failed edits mutated the model: %+v", site.Atoms[0])
	}
}

// TestSetFractionalCoord verifies axis bounds.
func TestSetFractionalCoord(t *testing.T) {
	site := NewSite("Fe", testDefaultU)

	for axis, v := range []float64{0.25, 0.5, 0.75} {
		if err := site.SetFractionalCoord(axis, v); err != nil {
			t.Fatalf("SetFractionalCoord(%d) failed: %v", axis, err)
		}
	}
	if site.FractionalCoords != [3]float64{0.25, 0.5, 0.75} {
		t.Errorf("coords = %v", site.FractionalCoords)
	}

	if err := site.SetFractionalCoord(3, 0.1); !errors.Is(err, ErrAxisIndex) {
		t.Errorf("expected ErrAxisIndex, got %v", err)
	}
	if err := site.SetFractionalCoord(-1, 0.1); !errors.Is(err, ErrAxisIndex) {
		t.Errorf("expected ErrAxisIndex, got %v", err)
	}
}
