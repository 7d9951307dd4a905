package crystal

import "math"

// InvalidOccupancyMessage is the advisory message shown when the
// occupancy sum drifts from the declared total.
const InvalidOccupancyMessage = "sum of occupancies must equal total occupancy"

// OccupancySum returns the sum of per-atom occupancies.
func OccupancySum(s *Site) float64 {
	var sum float64
	for _, a := range s.Atoms {
		sum += a.Occupancy
	}
	return sum
}

// OccupanciesValid reports whether the occupancy sum matches the
// declared total within OccupancyTol. This is the sole consistency
// check in the editor and it is advisory: invalid states are allowed
// to persist, they only suppress the modified notification and drive
// the warning styling.
func OccupanciesValid(s *Site) bool {
	return math.Abs(OccupancySum(s)-s.TotalOccupancy) < OccupancyTol
}
