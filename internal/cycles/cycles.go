// Package cycles derives long-period cultural and astronomical cycle
// positions from a Julian Day Number or a year. Every function is pure
// integer or fixed-point arithmetic over its own modular reference point;
// none fails on in-range input, and none touches the calendar converters
// beyond sharing the JDN representation.
package cycles

import "github.com/starford/jera/internal/calendar"

// floorDiv and floorMod mirror the calendar core: division rounded toward
// negative infinity, so positions before a reference epoch normalize the
// same way as positions after it.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// mayanEpoch is the shared Long Count / Calendar Round anchor (GMT
// correlation).
const mayanEpoch = 584283

// LongCountDate is a day count since the Mayan epoch decomposed into the
// five place values.
type LongCountDate struct {
	Baktun int64 `json:"baktun"`
	Katun  int   `json:"katun"`
	Tun    int   `json:"tun"`
	Uinal  int   `json:"uinal"`
	Kin    int   `json:"kin"`
}

// LongCount decodes a JDN into Long Count notation using the fixed
// divisors baktun=144000, katun=7200, tun=360, uinal=20, kin=1. Days
// before the epoch yield a negative baktun with the remaining places still
// normalized to their non-negative ranges.
func LongCount(jdn calendar.JDN) LongCountDate {
	days := int64(jdn) - mayanEpoch
	baktun := floorDiv(days, 144000)
	rem := floorMod(days, 144000)
	return LongCountDate{
		Baktun: baktun,
		Katun:  int(rem / 7200),
		Tun:    int(rem % 7200 / 360),
		Uinal:  int(rem % 360 / 20),
		Kin:    int(rem % 20),
	}
}

// CalendarRound positions a JDN within the 52-Haab (18980-day) round.
type CalendarRound struct {
	Round      int64 `json:"round"`
	DayInRound int   `json:"day_in_round"`
}

// Round returns the Calendar Round position for a JDN. The round number is
// 0-based and signed; the day within the round is always in [0, 18980).
func Round(jdn calendar.JDN) CalendarRound {
	days := int64(jdn) - mayanEpoch
	return CalendarRound{
		Round:      floorDiv(days, 18980),
		DayInRound: int(floorMod(days, 18980)),
	}
}
