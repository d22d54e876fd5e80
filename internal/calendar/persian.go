package calendar

// Arithmetic Persian (Solar Hijri) calendar normalized to the 33-year
// cycle: 8 leap years per cycle at positions {1,5,9,13,17,22,26,30}. This
// is the documented arithmetic approximation of the astronomical calendar,
// preserved as-is rather than corrected.

type persianRule struct{}

// IsPersianLeap reports whether the year is a leap year of the 33-year
// cycle. (8y+29) mod 33 < 8 selects exactly the cycle positions above and
// is safe for negative years.
func IsPersianLeap(year int) bool {
	return floorMod(8*int64(year)+29, 33) < 8
}

func (persianRule) daysBeforeYear(year int) int64 {
	y := int64(year)
	// 365 days per year plus one for every leap year before y; the leap
	// count telescopes out of the same 33-year congruence as IsPersianLeap.
	return 365*(y-1) + floorDiv(8*y+21, 33)
}

func (persianRule) monthLengths(year int) []int {
	ml := make([]int, 12)
	for i := 0; i < 6; i++ {
		ml[i] = 31
	}
	for i := 6; i < 11; i++ {
		ml[i] = 30
	}
	ml[11] = 29
	if IsPersianLeap(year) {
		ml[11] = 30
	}
	return ml
}

// 33 cycle years hold 12053 days.
var persianCal = &epochCalendar{
	sys:    Persian,
	epoch:  epochPersian,
	rule:   persianRule{},
	avgNum: 12053,
	avgDen: 33,
}
