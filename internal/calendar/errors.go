package calendar

import "fmt"

// RangeError reports a date component outside the valid range for its
// system: a year beyond MinYear..MaxYear, or a month/day the system's rules
// do not admit for that year. It is returned by ToJDN and FromJDN and never
// silently clamped over.
type RangeError struct {
	System System
	Year   int
	Month  int
	Day    int
	Reason string
}

func (e *RangeError) Error() string {
	if e.Month == 0 {
		return fmt.Sprintf("calendar: %s: %s", e.System, e.Reason)
	}
	return fmt.Sprintf("calendar: %s date %d-%02d-%02d out of range: %s",
		e.System, e.Year, e.Month, e.Day, e.Reason)
}

func yearRangeErr(sys System, y, m, d int) *RangeError {
	return &RangeError{System: sys, Year: y, Month: m, Day: d,
		Reason: fmt.Sprintf("year must be within %d..%d", MinYear, MaxYear)}
}

func jdnRangeErr(sys System, jdn JDN) *RangeError {
	return &RangeError{System: sys,
		Reason: fmt.Sprintf("day number %d has no date with year within %d..%d", jdn, MinYear, MaxYear)}
}

func monthRangeErr(sys System, y, m, d, months int) *RangeError {
	return &RangeError{System: sys, Year: y, Month: m, Day: d,
		Reason: fmt.Sprintf("month must be within 1..%d", months)}
}

func dayRangeErr(sys System, y, m, d, days int) *RangeError {
	return &RangeError{System: sys, Year: y, Month: m, Day: d,
		Reason: fmt.Sprintf("day must be within 1..%d for that month", days)}
}
