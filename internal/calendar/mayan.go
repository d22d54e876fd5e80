package calendar

// Mesoamerican calendars, all anchored on the GMT correlation epoch
// 584283. Three get the year/month/day treatment:
//
//   - Haab: the 365-day solar year of eighteen 20-day months plus the five
//     Wayeb days (month 19). The year number counts Haab years since the
//     epoch, a bookkeeping convention rather than a native count.
//   - Tzolkin: the 260-day ritual round as thirteen 20-day trecenas; the
//     "year" is the round number since the epoch.
//   - Long Count, exposed with year = tun (offset so tun 0 is year 1),
//     month = uinal 1..18, day = kin 1..20. The baktun/katun grouping of
//     the same day count lives in the cycles package.
//
// The Aztec xiuhpohualli shares the Haab structure (eighteen 20-day months
// plus the five nemontemi) and, per the source material, the same epoch.

type fixedYearRule struct {
	months  int
	days    int
	tailLen int // length of the final short month; 0 means uniform months
}

func (r fixedYearRule) yearLen() int64 {
	n := int64(r.months * r.days)
	if r.tailLen > 0 {
		n += int64(r.tailLen)
	}
	return n
}

func (r fixedYearRule) daysBeforeYear(year int) int64 {
	return r.yearLen() * int64(year-1)
}

func (r fixedYearRule) monthLengths(int) []int {
	ml := repeat(r.months, r.days)
	if r.tailLen > 0 {
		ml = append(ml, r.tailLen)
	}
	return ml
}

var haabCal = &epochCalendar{
	sys:    MayanHaab,
	epoch:  epochMayan,
	rule:   fixedYearRule{months: 18, days: 20, tailLen: 5},
	avgNum: 365,
	avgDen: 1,
}

var aztecCal = &epochCalendar{
	sys:    Aztec,
	epoch:  epochMayan,
	rule:   fixedYearRule{months: 18, days: 20, tailLen: 5},
	avgNum: 365,
	avgDen: 1,
}

var tzolkinCal = &epochCalendar{
	sys:    MayanTzolkin,
	epoch:  epochMayan,
	rule:   fixedYearRule{months: 13, days: 20},
	avgNum: 260,
	avgDen: 1,
}

var longCountCal = &epochCalendar{
	sys:    MayanLongCount,
	epoch:  epochMayan,
	rule:   fixedYearRule{months: 18, days: 20},
	avgNum: 360,
	avgDen: 1,
}
