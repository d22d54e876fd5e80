package calendar

// Reformed Indian national (Saka) calendar: Chaitra has 30 days (31 in
// leap years), months 2..6 have 31, months 7..12 have 30. Leap status
// tracks the Gregorian year Saka+78, so the 4/100/400 rule applies with an
// offset.

type sakaRule struct{}

// IsSakaLeap reports whether the Saka year is a leap year, which is the
// case exactly when Gregorian year saka+78 is.
func IsSakaLeap(year int) bool {
	return IsGregorianLeap(year + 78)
}

// gregorianLeapsThrough counts Gregorian leap years in 1..y (or, negated,
// in y+1..0 for negative y), the closed form behind the Saka and Baha'i
// day counts.
func gregorianLeapsThrough(y int64) int64 {
	return floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

func (sakaRule) daysBeforeYear(year int) int64 {
	y := int64(year)
	return 365*(y-1) + gregorianLeapsThrough(y-1+78) - gregorianLeapsThrough(78)
}

func (sakaRule) monthLengths(year int) []int {
	ml := make([]int, 12)
	ml[0] = 30
	if IsSakaLeap(year) {
		ml[0] = 31
	}
	for i := 1; i < 6; i++ {
		ml[i] = 31
	}
	for i := 6; i < 12; i++ {
		ml[i] = 30
	}
	return ml
}

var sakaCal = &epochCalendar{
	sys:    IndianSaka,
	epoch:  epochSaka,
	rule:   sakaRule{},
	avgNum: 146097,
	avgDen: 400,
}
