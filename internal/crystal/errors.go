package crystal

import "errors"

// Sentinel errors for broad classification.
var (
	// ErrUnknownDisplayType signals a thermal factor convention other
	// than U or B. This is a programming or configuration error, not
	// bad user input.
	ErrUnknownDisplayType = errors.New("unknown thermal factor type")

	// ErrAtomIndex signals an edit targeting a nonexistent atom row,
	// which indicates the caller and the model have desynchronized.
	ErrAtomIndex = errors.New("atom index out of range")

	// ErrAxisIndex signals a fractional coordinate axis outside [0, 3).
	ErrAxisIndex = errors.New("coordinate axis out of range")

	// ErrNoAtoms signals an occupancy reset on a site with no atoms.
	ErrNoAtoms = errors.New("site has no atoms")
)
