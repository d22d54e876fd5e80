package cycles

import "github.com/starford/jera/internal/calendar"

// Saros eclipse cycle: 6585.32 days, after which Sun, Earth and Moon
// return to nearly the same relative geometry. The reference point is the
// total solar eclipse of 11 August 1999 (JDN 2451402, saros series 145).
// The period is handled in hundredths of a day so cycle indexing stays
// exact integer arithmetic; only the fractional position is a float.

const (
	sarosReferenceJDN = 2451402
	sarosPeriodCenti  = 658532 // 6585.32 days in hundredths
)

// SarosPosition locates a JDN within the cycle.
type SarosPosition struct {
	Cycle    int64   `json:"cycle"`    // 0-based, signed; cycle 0 begins at the reference eclipse
	Fraction float64 `json:"fraction"` // position within the ~18-year span, in [0, 1)
}

// Saros returns the cycle index and fractional position for a JDN.
func Saros(jdn calendar.JDN) SarosPosition {
	centi := (int64(jdn) - sarosReferenceJDN) * 100
	return SarosPosition{
		Cycle:    floorDiv(centi, sarosPeriodCenti),
		Fraction: float64(floorMod(centi, sarosPeriodCenti)) / sarosPeriodCenti,
	}
}
