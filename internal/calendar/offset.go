package calendar

// Gregorian-offset systems: calendars the source material renders as the
// Gregorian structure with a shifted year number and their own month
// naming. Thai Buddhist years really are Gregorian+543; the Chinese entry
// uses the Huangdi era count (Gregorian+2697) as a documented
// approximation of the lunisolar calendar, and the Cherokee and Iroquois
// entries overlay traditional moon names on the Gregorian year. All four
// round-trip exactly because the underlying arithmetic is the Gregorian
// core.

func offsetOf(sys System) int {
	switch sys {
	case ThaiBuddhist:
		return 543
	case Chinese:
		return 2697
	case Cherokee, Iroquois:
		return 0
	}
	panic("calendar: not a Gregorian-offset system")
}

func offsetToJDN(sys System, year, month, day int) (JDN, error) {
	g := year - offsetOf(sys)
	if err := validateYMD(sys, year, month, day, gregorianMonthLengths(g)); err != nil {
		return 0, err
	}
	return gregorianJDN(g, month, day), nil
}

func offsetFromJDN(sys System, jdn JDN) (Date, error) {
	y, m, d := gregorianYMD(jdn)
	y += offsetOf(sys)
	if y < MinYear || y > MaxYear {
		return Date{}, yearRangeErr(sys, y, m, d)
	}
	return Date{Year: y, Month: m, Day: d, System: sys}, nil
}
