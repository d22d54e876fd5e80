package calendar

// Ethiopian and Coptic calendars share one structure: twelve 30-day months
// plus a short thirteenth month of 5 days, 6 in every fourth year. Only the
// epoch differs.

type ethiopicRule struct{}

// IsEthiopicLeap reports whether the year is a leap year of the simple
// 4-year cycle (year mod 4 == 3, floor modulo so negative years agree with
// year-4n for all n).
func IsEthiopicLeap(year int) bool {
	return floorMod(int64(year), 4) == 3
}

func (ethiopicRule) daysBeforeYear(year int) int64 {
	y := int64(year)
	return 365*(y-1) + floorDiv(y, 4)
}

func (ethiopicRule) monthLengths(year int) []int {
	ml := repeat(13, 30)
	ml[12] = 5
	if IsEthiopicLeap(year) {
		ml[12] = 6
	}
	return ml
}

var ethiopianCal = &epochCalendar{
	sys:    Ethiopian,
	epoch:  epochEthiopian,
	rule:   ethiopicRule{},
	avgNum: 1461,
	avgDen: 4,
}

var copticCal = &epochCalendar{
	sys:    Coptic,
	epoch:  epochCoptic,
	rule:   ethiopicRule{},
	avgNum: 1461,
	avgDen: 4,
}
