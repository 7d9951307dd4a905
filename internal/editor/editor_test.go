package editor

import (
	"errors"
	"math"
	"testing"

	"xtal/internal/crystal"
)

const testDefaultU = 0.0127

// fakeSurface records everything the editor pushes out. The optional
// onPush hook lets tests call back into the editor mid-push to
// exercise the suppression guard.
type fakeSurface struct {
	total   float64
	coords  [3]float64
	rows    []Row
	header  crystal.DisplayType
	valid   bool
	msg     string
	setRows int
	onPush  func()
}

func (s *fakeSurface) SetTotalOccupancy(v float64) { s.total = v }
func (s *fakeSurface) SetFractionalCoord(axis int, v float64) {
	s.coords[axis] = v
}
func (s *fakeSurface) SetRows(rows []Row) {
	s.rows = rows
	s.setRows++
	if s.onPush != nil {
		s.onPush()
	}
}
func (s *fakeSurface) SetThermalHeader(dt crystal.DisplayType) { s.header = dt }
func (s *fakeSurface) SetValidity(valid bool, msg string) {
	s.valid = valid
	s.msg = msg
}

func newTestEditor(t *testing.T) (*Editor, *fakeSurface, *int) {
	t.Helper()

	site := crystal.NewSite("Fe", testDefaultU)
	surface := &fakeSurface{}
	e := New(site, surface, testDefaultU)

	notified := 0
	e.Subscribe(func() { notified++ })
	return e, surface, &notified
}

// TestInitialPush verifies that New populates the surface with the
// full model state.
func TestInitialPush(t *testing.T) {
	e, surface, _ := newTestEditor(t)

	if surface.total != 1.0 {
		t.Errorf("surface total = %v, want 1.0", surface.total)
	}
	if len(surface.rows) != 1 || surface.rows[0].Symbol != "Fe" {
		t.Errorf("surface rows = %+v", surface.rows)
	}
	if surface.header != crystal.DisplayU {
		t.Errorf("surface header = %v, want U", surface.header)
	}
	if !surface.valid || surface.msg != "" {
		t.Errorf("fresh site should be valid, got valid=%v msg=%q", surface.valid, surface.msg)
	}
	if e.DisplayType() != crystal.DisplayU {
		t.Errorf("default display type = %v, want U", e.DisplayType())
	}
}

// TestNotificationGating verifies the central behavior: edits that
// leave the occupancy sum invalid mutate the model but fire no
// notification; the next valid edit fires exactly one.
func TestNotificationGating(t *testing.T) {
	e, surface, notified := newTestEditor(t)

	// Break the sum: occupancy 0.3 against total 1.0.
	if err := e.UpdateAtomOccupancy(0, 0.3); err != nil {
		t.Fatalf("UpdateAtomOccupancy failed: %v", err)
	}
	if *notified != 0 {
		t.Errorf("invalid edit fired %d notifications, want 0", *notified)
	}
	if e.Site().Atoms[0].Occupancy != 0.3 {
		t.Error("invalid edit should still mutate the model")
	}
	if surface.rows[0].Occupancy != 0.3 {
		t.Errorf("surface row occupancy = %v, want 0.3", surface.rows[0].Occupancy)
	}
	if surface.valid {
		t.Error("surface should show invalid state")
	}
	if surface.msg != crystal.InvalidOccupancyMessage {
		t.Errorf("surface msg = %q", surface.msg)
	}

	// Correct the total to match: one notification.
	e.UpdateTotalOccupancy(0.3)
	if *notified != 1 {
		t.Errorf("valid edit fired %d notifications, want 1", *notified)
	}
	if !surface.valid || surface.msg != "" {
		t.Errorf("surface should be valid again, got valid=%v msg=%q", surface.valid, surface.msg)
	}
}

// TestSuppressionDuringPush verifies that a surface callback arriving
// while the editor is pushing state is ignored.
func TestSuppressionDuringPush(t *testing.T) {
	e, surface, notified := newTestEditor(t)

	surface.onPush = func() {
		e.UpdateTotalOccupancy(999)
		if err := e.UpdateAtomOccupancy(0, 999); err != nil {
			t.Errorf("suppressed edit returned error: %v", err)
		}
	}
	e.PushState()

	if e.Site().TotalOccupancy == 999 || e.Site().Atoms[0].Occupancy == 999 {
		t.Errorf("edits during push mutated the model: %+v", e.Site())
	}
	if *notified != 0 {
		t.Errorf("suppressed edits fired %d notifications, want 0", *notified)
	}
}

// TestSelectAtomTypes verifies forwarding to the model: replacement
// resets occupancies and notifies; an identical list does neither.
func TestSelectAtomTypes(t *testing.T) {
	e, surface, notified := newTestEditor(t)

	if err := e.SelectAtomTypes([]string{"Fe", "O"}); err != nil {
		t.Fatalf("SelectAtomTypes failed: %v", err)
	}
	if *notified != 1 {
		t.Errorf("replacement fired %d notifications, want 1", *notified)
	}
	if len(surface.rows) != 2 {
		t.Fatalf("surface rows = %d, want 2", len(surface.rows))
	}
	for _, r := range surface.rows {
		if r.Occupancy != 0.5 {
			t.Errorf("row %s: occupancy = %v, want 0.5", r.Symbol, r.Occupancy)
		}
	}

	pushes := surface.setRows
	if err := e.SelectAtomTypes([]string{"Fe", "O"}); err != nil {
		t.Fatalf("SelectAtomTypes (no-op) failed: %v", err)
	}
	if *notified != 1 {
		t.Errorf("no-op selection fired a notification")
	}
	if surface.setRows != pushes {
		t.Errorf("no-op selection re-rendered the table")
	}
}

// TestThermalDisplaySwitch verifies that switching to B re-renders
// rows in the B convention while storage stays in U, and that edits
// made in B are converted back.
func TestThermalDisplaySwitch(t *testing.T) {
	e, surface, _ := newTestEditor(t)

	if err := e.SetDisplayType(crystal.DisplayB); err != nil {
		t.Fatalf("SetDisplayType(B) failed: %v", err)
	}
	if surface.header != crystal.DisplayB {
		t.Errorf("surface header = %v, want B", surface.header)
	}
	wantB := testDefaultU * crystal.UToB
	if math.Abs(surface.rows[0].ThermalFactor-wantB) > 1e-12 {
		t.Errorf("row thermal factor = %v, want %v", surface.rows[0].ThermalFactor, wantB)
	}

	// Editing 1.0 in B stores 1/(8π²) as U.
	if err := e.UpdateAtomThermalFactor(0, 1.0); err != nil {
		t.Fatalf("UpdateAtomThermalFactor failed: %v", err)
	}
	if math.Abs(e.Site().Atoms[0].U-crystal.BToU) > 1e-15 {
		t.Errorf("stored U = %v, want %v", e.Site().Atoms[0].U, crystal.BToU)
	}

	if err := e.SetDisplayType("Z"); !errors.Is(err, crystal.ErrUnknownDisplayType) {
		t.Errorf("expected ErrUnknownDisplayType, got %v", err)
	}
}

// TestEditErrorsLeaveModelUntouched verifies out-of-range edits
// propagate the model error and fire nothing.
func TestEditErrorsLeaveModelUntouched(t *testing.T) {
	e, _, notified := newTestEditor(t)

	if err := e.UpdateAtomOccupancy(5, 0.1); !errors.Is(err, crystal.ErrAtomIndex) {
		t.Errorf("expected ErrAtomIndex, got %v", err)
	}
	if err := e.UpdateAtomThermalFactor(-1, 0.1); !errors.Is(err, crystal.ErrAtomIndex) {
		t.Errorf("expected ErrAtomIndex, got %v", err)
	}
	if err := e.UpdateFractionalCoord(7, 0.1); !errors.Is(err, crystal.ErrAxisIndex) {
		t.Errorf("expected ErrAxisIndex, got %v", err)
	}
	if *notified != 0 {
		t.Errorf("failed edits fired %d notifications, want 0", *notified)
	}
}

// TestResetOccupancies verifies the editor-level reset path.
func TestResetOccupancies(t *testing.T) {
	e, surface, notified := newTestEditor(t)

	if err := e.SelectAtomTypes([]string{"Fe", "Ni", "Cr", "Mo"}); err != nil {
		t.Fatalf("SelectAtomTypes failed: %v", err)
	}
	if err := e.UpdateAtomOccupancy(0, 0.9); err != nil {
		t.Fatalf("UpdateAtomOccupancy failed: %v", err)
	}

	before := *notified
	if err := e.ResetOccupancies(); err != nil {
		t.Fatalf("ResetOccupancies failed: %v", err)
	}
	for _, r := range surface.rows {
		if r.Occupancy != 0.25 {
			t.Errorf("row %s: occupancy = %v, want 0.25", r.Symbol, r.Occupancy)
		}
	}
	if *notified != before+1 {
		t.Errorf("reset fired %d notifications, want 1", *notified-before)
	}

	empty := &crystal.Site{TotalOccupancy: 1.0}
	e.SetSite(empty)
	if err := e.ResetOccupancies(); !errors.Is(err, crystal.ErrNoAtoms) {
		t.Errorf("expected ErrNoAtoms, got %v", err)
	}
}
