package cycles

// Metonic cycle: the 19-year lunisolar synchronization cycle that places
// the Hebrew leap months. Positions {3,6,8,11,14,17,19} within a cycle are
// leap years.

var metonicLeapPositions = map[int]bool{
	3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 19: true,
}

// MetonicPosition is a year's place in the 19-year cycle.
type MetonicPosition struct {
	Position int   `json:"position"` // 1..19
	Cycle    int64 `json:"cycle"`    // 0-based, signed
	LeapYear bool  `json:"leap_year"`
}

// Metonic returns the cycle position for a Hebrew-numbered year. Cycle 0
// starts at Hebrew year 1.
func Metonic(hebrewYear int) MetonicPosition {
	pos := int(floorMod(int64(hebrewYear)-1, 19)) + 1
	return MetonicPosition{
		Position: pos,
		Cycle:    floorDiv(int64(hebrewYear)-1, 19),
		LeapYear: metonicLeapPositions[pos],
	}
}

// MetonicFromGregorian maps a Gregorian year onto the cycle with the
// documented +3760 year offset. The offset is an approximation — the
// Hebrew year turns over in autumn — and is kept as the source material
// documents it rather than resolved exactly.
func MetonicFromGregorian(gregorianYear int) MetonicPosition {
	return Metonic(gregorianYear + 3760)
}
