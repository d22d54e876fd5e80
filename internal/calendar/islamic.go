package calendar

// Tabular Islamic calendar: 12 alternating 30/29-day months with an extra
// day on Dhu al-Hijjah in 11 leap years of each 30-year cycle.

type islamicRule struct{}

// IsIslamicLeap reports whether the year has 355 days under the tabular
// 30-year cycle (leap when (11y+14) mod 30 < 11).
func IsIslamicLeap(year int) bool {
	return floorMod(11*int64(year)+14, 30) < 11
}

func (islamicRule) daysBeforeYear(year int) int64 {
	y := int64(year)
	return 354*(y-1) + floorDiv(3+11*y, 30)
}

func (islamicRule) monthLengths(year int) []int {
	ml := make([]int, 12)
	for i := range ml {
		if i%2 == 0 {
			ml[i] = 30
		} else {
			ml[i] = 29
		}
	}
	if IsIslamicLeap(year) {
		ml[11] = 30
	}
	return ml
}

// 30 tabular years hold 10631 days.
var islamicCal = &epochCalendar{
	sys:    Islamic,
	epoch:  epochIslamic,
	rule:   islamicRule{},
	avgNum: 10631,
	avgDen: 30,
}
