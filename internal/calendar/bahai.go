package calendar

// Baha'i (Badi) calendar in its tabular form: eighteen 19-day months, the
// intercalary Ayyam-i-Ha period (4 days, 5 in leap years) counted here as
// month 19, and the final 19-day month 'Ala' as month 20. Leap status
// tracks the Gregorian year the Baha'i year ends in (offset 1844). The
// epoch is the documented 21 March 1844 Naw-Ruz; both the fixed epoch and
// the Gregorian-linked leap rule are accepted approximations of the
// equinox-based calendar, preserved rather than corrected.

type bahaiRule struct{}

// IsBahaiLeap reports whether Ayyam-i-Ha has 5 days in the year.
func IsBahaiLeap(year int) bool {
	return IsGregorianLeap(year + 1844)
}

func (bahaiRule) daysBeforeYear(year int) int64 {
	y := int64(year)
	return 365*(y-1) + gregorianLeapsThrough(y-1+1844) - gregorianLeapsThrough(1844)
}

func (bahaiRule) monthLengths(year int) []int {
	ml := repeat(20, 19)
	ml[18] = 4
	if IsBahaiLeap(year) {
		ml[18] = 5
	}
	return ml
}

var bahaiCal = &epochCalendar{
	sys:    Bahai,
	epoch:  epochBahai,
	rule:   bahaiRule{},
	avgNum: 146097,
	avgDen: 400,
}
