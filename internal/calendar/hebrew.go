package calendar

// Hebrew lunisolar calendar via the classical molad arithmetic: months of
// 29 or 30 days, a leap month inserted by the 19-year Metonic cycle, and
// the Rosh Hashanah postponement rules. Months are numbered civil-style
// with Tishri = 1; in leap years Adar I is month 6, pushing Adar II to 7
// and Elul to 13.

type hebrewRule struct{}

// IsHebrewLeap reports whether the year carries the intercalary month,
// i.e. its position in the 19-year cycle is one of {3,6,8,11,14,17,19}.
func IsHebrewLeap(year int) bool {
	return floorMod(7*int64(year)+1, 19) < 7
}

// hebrewElapsed returns the day count from the epoch molad to the
// unpostponed new year of the given year, applying the molad-zaken style
// weekday rule folded into the classic formulation. Constants: a lunation
// is 29d 12h 793 parts, 1080 parts per hour, 25920 parts per day.
func hebrewElapsed(year int) int64 {
	y := int64(year)
	months := floorDiv(235*y-234, 19)
	parts := 12084 + 13753*months
	days := 29*months + floorDiv(parts, 25920)
	if floorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

// hebrewYearStart applies the remaining postponements, which exist to keep
// year lengths inside the six admissible values {353,354,355,383,384,385}.
func hebrewYearStart(year int) int64 {
	days := hebrewElapsed(year)
	if hebrewElapsed(year+1)-days == 356 {
		return days + 2
	}
	if days-hebrewElapsed(year-1) == 382 {
		return days + 1
	}
	return days
}

func (hebrewRule) daysBeforeYear(year int) int64 {
	// hebrewYearStart(1) == 0, so starts are already epoch-relative.
	return hebrewYearStart(year)
}

func (r hebrewRule) monthLengths(year int) []int {
	yearLen := int(hebrewYearStart(year+1) - hebrewYearStart(year))
	heshvan, kislev := 29, 30
	if yearLen == 355 || yearLen == 385 {
		heshvan = 30
	}
	if yearLen == 353 || yearLen == 383 {
		kislev = 29
	}
	// Tishri, Heshvan, Kislev, Tevet, Shevat, Adar, Nisan, Iyar, Sivan,
	// Tammuz, Av, Elul; leap years insert the 30-day Adar I before Adar.
	ml := []int{30, heshvan, kislev, 29, 30, 29, 30, 29, 30, 29, 30, 29}
	if !IsHebrewLeap(year) {
		return ml
	}
	out := make([]int, 0, 13)
	out = append(out, ml[:5]...)
	out = append(out, 30)
	return append(out, ml[5:]...)
}

// 235 lunations of 765433 parts per 19-year cycle, 25920 parts per day.
var hebrewCal = &epochCalendar{
	sys:    Hebrew,
	epoch:  epochHebrew,
	rule:   hebrewRule{},
	avgNum: 235 * 765433,
	avgDen: 19 * 25920,
}
