// Package sci provides float formatting and parsing for the editor's
// numeric fields.
//
// Occupancies and thermal factors span many orders of magnitude, so
// fields accept and render scientific notation the way the desktop
// spin boxes they replace did.
package sci

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders v compactly: plain decimal for ordinary magnitudes,
// scientific notation outside [1e-4, 1e6).
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-4 && abs < 1e6 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		// Cap runaway decimal expansions from binary rounding.
		if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > 9 {
			s = strconv.FormatFloat(v, 'g', 9, 64)
		}
		return s
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}

// Parse reads a float in decimal or scientific notation. Surrounding
// whitespace is ignored; the empty string is an error, not zero.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parsing number: empty input")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return v, nil
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
