package crystal

import "fmt"

// DisplayType selects the convention used to present thermal
// displacement factors. Storage is always U; B is derived at the
// display boundary via B = U * 8π².
type DisplayType string

const (
	DisplayU DisplayType = "U"
	DisplayB DisplayType = "B"
)

// Valid reports whether dt names a known convention.
func (dt DisplayType) Valid() bool {
	return dt == DisplayU || dt == DisplayB
}

// ToU converts a displayed thermal factor to the canonical U unit.
func ToU(v float64, dt DisplayType) (float64, error) {
	switch dt {
	case DisplayU:
		return v, nil
	case DisplayB:
		return v * BToU, nil
	default:
		return 0, fmt.Errorf("converting to U: %w: %q", ErrUnknownDisplayType, dt)
	}
}

// ToB converts a displayed thermal factor to the B convention.
func ToB(v float64, dt DisplayType) (float64, error) {
	switch dt {
	case DisplayU:
		return v * UToB, nil
	case DisplayB:
		return v, nil
	default:
		return 0, fmt.Errorf("converting to B: %w: %q", ErrUnknownDisplayType, dt)
	}
}

// DisplayValue returns an atom's stored U expressed in the given
// display convention.
func DisplayValue(a Atom, dt DisplayType) (float64, error) {
	switch dt {
	case DisplayU:
		return a.U, nil
	case DisplayB:
		return a.U * UToB, nil
	default:
		return 0, fmt.Errorf("displaying thermal factor: %w: %q", ErrUnknownDisplayType, dt)
	}
}
