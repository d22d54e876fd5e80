package calendar

// JDN arithmetic core: proleptic Gregorian and Julian conversion using the
// Fliegel & Van Flandern integer algorithm, extended to negative years by
// doing every division as a floor division. Astronomical year numbering
// means there is no discontinuity at year 0.

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// Go's native integer division truncates toward zero, which is wrong for
// every negative-year branch in this package.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; it is always in [0, b) for
// positive b, including when a is negative.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// gregorianJDN is the raw forward conversion with no range validation.
func gregorianJDN(year, month, day int) JDN {
	a := int64(14-month) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return JDN(int64(day) + (153*m+2)/5 + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
}

// julianJDN is the raw forward conversion without the century corrections.
func julianJDN(year, month, day int) JDN {
	a := int64(14-month) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return JDN(int64(day) + (153*m+2)/5 + 365*y + floorDiv(y, 4) - 32083)
}

// gregorianYMD is the raw inverse conversion.
func gregorianYMD(jdn JDN) (year, month, day int) {
	a := int64(jdn) + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(100*b + d - 4800 + floorDiv(m, 10))
	return year, month, day
}

// julianYMD is the raw inverse conversion for the Julian calendar.
func julianYMD(jdn JDN) (year, month, day int) {
	c := int64(jdn) + 32082
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(d - 4800 + floorDiv(m, 10))
	return year, month, day
}

// IsGregorianLeap reports whether the astronomical year is a leap year
// under the 4/100/400 rule, valid for negative years.
func IsGregorianLeap(year int) bool {
	y := int64(year)
	return floorMod(y, 4) == 0 && (floorMod(y, 100) != 0 || floorMod(y, 400) == 0)
}

// IsJulianLeap reports whether the year is a leap year under the plain
// 4-year rule.
func IsJulianLeap(year int) bool {
	return floorMod(int64(year), 4) == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gregorianMonthLengths(year int) []int {
	ml := make([]int, 12)
	copy(ml, monthDays[:])
	if IsGregorianLeap(year) {
		ml[1] = 29
	}
	return ml
}

func julianMonthLengths(year int) []int {
	ml := make([]int, 12)
	copy(ml, monthDays[:])
	if IsJulianLeap(year) {
		ml[1] = 29
	}
	return ml
}

// validateYMD checks the common year/month/day contract against a
// month-length table and returns the table for reuse.
func validateYMD(sys System, year, month, day int, ml []int) error {
	if year < MinYear || year > MaxYear {
		return yearRangeErr(sys, year, month, day)
	}
	if month < 1 || month > len(ml) {
		return monthRangeErr(sys, year, month, day, len(ml))
	}
	if day < 1 || day > ml[month-1] {
		return dayRangeErr(sys, year, month, day, ml[month-1])
	}
	return nil
}

func gregorianToJDN(year, month, day int) (JDN, error) {
	if err := validateYMD(Gregorian, year, month, day, gregorianMonthLengths(year)); err != nil {
		return 0, err
	}
	return gregorianJDN(year, month, day), nil
}

func julianToJDN(year, month, day int) (JDN, error) {
	if err := validateYMD(Julian, year, month, day, julianMonthLengths(year)); err != nil {
		return 0, err
	}
	return julianJDN(year, month, day), nil
}

func gregorianFromJDN(jdn JDN) (Date, error) {
	y, m, d := gregorianYMD(jdn)
	if y < MinYear || y > MaxYear {
		return Date{}, yearRangeErr(Gregorian, y, m, d)
	}
	return Date{Year: y, Month: m, Day: d, System: Gregorian}, nil
}

func julianFromJDN(jdn JDN) (Date, error) {
	y, m, d := julianYMD(jdn)
	if y < MinYear || y > MaxYear {
		return Date{}, yearRangeErr(Julian, y, m, d)
	}
	return Date{Year: y, Month: m, Day: d, System: Julian}, nil
}

// Weekday returns the day of week for a JDN, 0 = Monday .. 6 = Sunday.
// JDN 0 fell on a Monday, so this is a plain floor modulo.
func Weekday(jdn JDN) int {
	return int(floorMod(int64(jdn), 7))
}
