package calendar

// Shared machinery for the epoch-based converters. Each system supplies a
// yearRule; the forward and reverse walks live here exactly once, so the
// sign handling for proleptic (year < 1) dates has a single implementation
// instead of per-calendar copies with diverging boundary conditions.

// yearRule captures a system's year structure.
//
// daysBeforeYear returns the day offset from the system epoch to the first
// day of the given year. It must be a closed form built on floorDiv so that
// it is exact for year <= 0, where the result is negative: the accumulated
// length of years target..0 carries a flipped sign relative to the forward
// direction. monthLengths returns the per-month day counts for one year;
// its sum must equal daysBeforeYear(y+1)-daysBeforeYear(y).
type yearRule interface {
	daysBeforeYear(year int) int64
	monthLengths(year int) []int
}

// epochCalendar binds a rule to its epoch and the average year length
// (avgNum/avgDen days) used for closed-form year estimation in fromJDN.
type epochCalendar struct {
	sys    System
	epoch  JDN
	rule   yearRule
	avgNum int64
	avgDen int64
}

func (c *epochCalendar) toJDN(year, month, day int) (JDN, error) {
	ml := c.rule.monthLengths(year)
	if err := validateYMD(c.sys, year, month, day, ml); err != nil {
		return 0, err
	}
	days := c.rule.daysBeforeYear(year)
	for _, n := range ml[:month-1] {
		days += int64(n)
	}
	return c.epoch + JDN(days+int64(day)-1), nil
}

func (c *epochCalendar) fromJDN(jdn JDN) (Date, error) {
	// The window check comes first: it is what keeps the estimate
	// multiplication below from overflowing and the refinement loops
	// bounded, even for a day number near the int64 limits.
	days := int64(jdn - c.epoch)
	if days < c.rule.daysBeforeYear(MinYear) || days >= c.rule.daysBeforeYear(MaxYear+1) {
		return Date{}, jdnRangeErr(c.sys, jdn)
	}

	// Closed-form estimate from the average year length, then bounded
	// refinement. The estimate lands within a few years of the target for
	// the whole supported range, so the correction loops are O(1), not
	// O(|year|).
	year := int(floorDiv(days*c.avgDen, c.avgNum)) + 1
	for days < c.rule.daysBeforeYear(year) {
		year--
	}
	for days >= c.rule.daysBeforeYear(year+1) {
		year++
	}

	rem := int(days - c.rule.daysBeforeYear(year))
	ml := c.rule.monthLengths(year)
	month := 1
	for rem >= ml[month-1] {
		rem -= ml[month-1]
		month++
	}
	return Date{Year: year, Month: month, Day: rem + 1, System: c.sys}, nil
}

// repeat builds a month-length table of n months of length days each.
func repeat(n, days int) []int {
	ml := make([]int, n)
	for i := range ml {
		ml[i] = days
	}
	return ml
}
