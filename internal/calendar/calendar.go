// Package calendar converts dates between the fixed catalog of calendar
// systems through a single intermediate representation, the Julian Day
// Number (JDN). Every converter is pure integer arithmetic over compiled-in
// epoch constants; nothing in this package reads or writes shared state, so
// all functions are safe for concurrent use.
package calendar

// JDN is a continuous signed day count. Day 0 falls on 1 January 4713 BCE
// (proleptic Julian) and the count is strictly increasing with chronological
// order across every calendar in the catalog. Negative values are valid and
// denote days before that reference.
type JDN int64

// System identifies one calendar in the closed catalog. The set is fixed:
// dispatch is an exhaustive switch, and a tag outside the enumeration is a
// programmer error, not a runtime condition.
type System int

const (
	Gregorian System = iota
	Julian
	Islamic
	Hebrew
	Persian
	Ethiopian
	Coptic
	IndianSaka
	Bahai
	ThaiBuddhist
	MayanLongCount
	MayanHaab
	MayanTzolkin
	Aztec
	Chinese
	Cherokee
	Iroquois

	numSystems = int(Iroquois) + 1
)

// MinYear and MaxYear bound the supported year range for every system.
// Dates outside the range fail with *RangeError, never clamp.
const (
	MinYear = -9999
	MaxYear = 9999
)

var systemTags = [numSystems]string{
	Gregorian:      "gregorian",
	Julian:         "julian",
	Islamic:        "islamic",
	Hebrew:         "hebrew",
	Persian:        "persian",
	Ethiopian:      "ethiopian",
	Coptic:         "coptic",
	IndianSaka:     "indian-saka",
	Bahai:          "bahai",
	ThaiBuddhist:   "thai-buddhist",
	MayanLongCount: "mayan-long-count",
	MayanHaab:      "mayan-haab",
	MayanTzolkin:   "mayan-tzolkin",
	Aztec:          "aztec",
	Chinese:        "chinese",
	Cherokee:       "cherokee",
	Iroquois:       "iroquois",
}

// String returns the canonical lowercase tag for the system.
func (s System) String() string {
	if s < 0 || int(s) >= numSystems {
		return "unknown"
	}
	return systemTags[s]
}

// ParseSystem resolves a canonical tag back to its System. The second
// return value is false when the tag is not in the catalog.
func ParseSystem(tag string) (System, bool) {
	for i, t := range systemTags {
		if t == tag {
			return System(i), true
		}
	}
	return 0, false
}

// Systems returns the full catalog in declaration order.
func Systems() []System {
	out := make([]System, numSystems)
	for i := range out {
		out[i] = System(i)
	}
	return out
}

// Date is a calendar date in one system. Years use astronomical numbering:
// year 0 exists and precedes year 1 with no gap. Date is a value type;
// converters return it by value and never retain it.
type Date struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	System System `json:"-"`
}

// ToJDN converts a calendar date to its Julian Day Number. It returns a
// *RangeError when the year is outside MinYear..MaxYear or the month/day is
// invalid for that year under the system's own rules.
func ToJDN(sys System, year, month, day int) (JDN, error) {
	switch sys {
	case Gregorian:
		return gregorianToJDN(year, month, day)
	case Julian:
		return julianToJDN(year, month, day)
	case ThaiBuddhist, Chinese, Cherokee, Iroquois:
		return offsetToJDN(sys, year, month, day)
	case Islamic:
		return islamicCal.toJDN(year, month, day)
	case Hebrew:
		return hebrewCal.toJDN(year, month, day)
	case Persian:
		return persianCal.toJDN(year, month, day)
	case Ethiopian:
		return ethiopianCal.toJDN(year, month, day)
	case Coptic:
		return copticCal.toJDN(year, month, day)
	case IndianSaka:
		return sakaCal.toJDN(year, month, day)
	case Bahai:
		return bahaiCal.toJDN(year, month, day)
	case MayanLongCount:
		return longCountCal.toJDN(year, month, day)
	case MayanHaab:
		return haabCal.toJDN(year, month, day)
	case MayanTzolkin:
		return tzolkinCal.toJDN(year, month, day)
	case Aztec:
		return aztecCal.toJDN(year, month, day)
	}
	panic("calendar: system outside the closed catalog")
}

// The inverse conversions multiply the day number by small constants, and
// the epoch-based systems multiply it by the average-year-length
// denominator to estimate the year. Day numbers far outside anything the
// MinYear..MaxYear window can reach are rejected up front so none of that
// arithmetic overflows; the window below is generously wider than any
// system's span, and the exact limits are still enforced by the
// per-system year checks.
const (
	minSupportedJDN JDN = -4_000_000
	maxSupportedJDN JDN = 7_000_000
)

// FromJDN converts a Julian Day Number to a date in the given system. It
// returns a *RangeError when the resulting year would fall outside
// MinYear..MaxYear.
func FromJDN(sys System, jdn JDN) (Date, error) {
	if jdn < minSupportedJDN || jdn > maxSupportedJDN {
		return Date{}, jdnRangeErr(sys, jdn)
	}
	switch sys {
	case Gregorian:
		return gregorianFromJDN(jdn)
	case Julian:
		return julianFromJDN(jdn)
	case ThaiBuddhist, Chinese, Cherokee, Iroquois:
		return offsetFromJDN(sys, jdn)
	case Islamic:
		return islamicCal.fromJDN(jdn)
	case Hebrew:
		return hebrewCal.fromJDN(jdn)
	case Persian:
		return persianCal.fromJDN(jdn)
	case Ethiopian:
		return ethiopianCal.fromJDN(jdn)
	case Coptic:
		return copticCal.fromJDN(jdn)
	case IndianSaka:
		return sakaCal.fromJDN(jdn)
	case Bahai:
		return bahaiCal.fromJDN(jdn)
	case MayanLongCount:
		return longCountCal.fromJDN(jdn)
	case MayanHaab:
		return haabCal.fromJDN(jdn)
	case MayanTzolkin:
		return tzolkinCal.fromJDN(jdn)
	case Aztec:
		return aztecCal.fromJDN(jdn)
	}
	panic("calendar: system outside the closed catalog")
}

// Convert re-expresses a date in another system via its JDN.
func Convert(d Date, to System) (Date, error) {
	jdn, err := ToJDN(d.System, d.Year, d.Month, d.Day)
	if err != nil {
		return Date{}, err
	}
	return FromJDN(to, jdn)
}

// MonthsInYear returns the number of months the system's year has. For most
// systems this is constant; Hebrew gains a thirteenth month in leap years.
func MonthsInYear(sys System, year int) int {
	return len(monthLengthsOf(sys, year))
}

// DaysInMonth returns the length of a month, or 0 when the month number is
// out of range for that year.
func DaysInMonth(sys System, year, month int) int {
	ml := monthLengthsOf(sys, year)
	if month < 1 || month > len(ml) {
		return 0
	}
	return ml[month-1]
}

// monthLengthsOf is the per-system month-length dispatch shared by the
// validation and decomposition paths.
func monthLengthsOf(sys System, year int) []int {
	switch sys {
	case Gregorian:
		return gregorianMonthLengths(year)
	case Julian:
		return julianMonthLengths(year)
	case ThaiBuddhist, Chinese, Cherokee, Iroquois:
		return gregorianMonthLengths(year - offsetOf(sys))
	case Islamic:
		return islamicCal.rule.monthLengths(year)
	case Hebrew:
		return hebrewCal.rule.monthLengths(year)
	case Persian:
		return persianCal.rule.monthLengths(year)
	case Ethiopian:
		return ethiopianCal.rule.monthLengths(year)
	case Coptic:
		return copticCal.rule.monthLengths(year)
	case IndianSaka:
		return sakaCal.rule.monthLengths(year)
	case Bahai:
		return bahaiCal.rule.monthLengths(year)
	case MayanLongCount:
		return longCountCal.rule.monthLengths(year)
	case MayanHaab:
		return haabCal.rule.monthLengths(year)
	case MayanTzolkin:
		return tzolkinCal.rule.monthLengths(year)
	case Aztec:
		return aztecCal.rule.monthLengths(year)
	}
	panic("calendar: system outside the closed catalog")
}
