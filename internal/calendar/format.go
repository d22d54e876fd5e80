package calendar

import (
	"fmt"
	"strings"
)

// CanonicalPattern renders the persisted form consumed by entry storage:
// [-]YYYY-MM-DD with a four-digit zero-padded year.
const CanonicalPattern = "YYYY-MM-DD"

// Format renders a date using a token pattern. Recognized tokens, longest
// match first:
//
//	MMMM  month name from the system's name table
//	YYYY  zero-padded 4-digit year, '-' prefix for negative years
//	ERA   the system's era label (empty for systems without one)
//	YY    last two digits of the year
//	MM    zero-padded month
//	DD    zero-padded day
//	M, D  unpadded month and day
//
// All other characters pass through unchanged.
func Format(d Date, pattern string) string {
	var b strings.Builder
	for len(pattern) > 0 {
		switch {
		case strings.HasPrefix(pattern, "MMMM"):
			b.WriteString(monthName(d))
			pattern = pattern[4:]
		case strings.HasPrefix(pattern, "YYYY"):
			if d.Year < 0 {
				fmt.Fprintf(&b, "-%04d", -d.Year)
			} else {
				fmt.Fprintf(&b, "%04d", d.Year)
			}
			pattern = pattern[4:]
		case strings.HasPrefix(pattern, "ERA"):
			b.WriteString(eraOf(d.System))
			pattern = pattern[3:]
		case strings.HasPrefix(pattern, "YY"):
			y := d.Year
			if y < 0 {
				y = -y
			}
			fmt.Fprintf(&b, "%02d", y%100)
			pattern = pattern[2:]
		case strings.HasPrefix(pattern, "MM"):
			fmt.Fprintf(&b, "%02d", d.Month)
			pattern = pattern[2:]
		case strings.HasPrefix(pattern, "DD"):
			fmt.Fprintf(&b, "%02d", d.Day)
			pattern = pattern[2:]
		case pattern[0] == 'M':
			fmt.Fprintf(&b, "%d", d.Month)
			pattern = pattern[1:]
		case pattern[0] == 'D':
			fmt.Fprintf(&b, "%d", d.Day)
			pattern = pattern[1:]
		default:
			b.WriteByte(pattern[0])
			pattern = pattern[1:]
		}
	}
	return b.String()
}

// Canonical renders the canonical [-]YYYY-MM-DD form.
func Canonical(d Date) string {
	return Format(d, CanonicalPattern)
}

// monthName resolves the display name of the date's month, falling back to
// the number when the system has no name for it (Long Count uinals,
// Tzolkin trecenas).
func monthName(d Date) string {
	names := Names(d.System, TierMonth)
	// Hebrew month names depend on leap status: common years have a plain
	// Adar, leap years Adar I and Adar II.
	if d.System == Hebrew && !IsHebrewLeap(d.Year) {
		names = hebrewCommonMonths
	}
	idx := d.Month - 1
	if idx < 0 || idx >= len(names) {
		return fmt.Sprintf("%d", d.Month)
	}
	return names[idx]
}
