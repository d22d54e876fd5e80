package calendar

// Parse reads the strict canonical form [-]YYYY-MM-DD (year zero-padded to
// four digits, leading '-' for negative years) as a date in the given
// system. Malformed text and semantically invalid dates both report false;
// parsing untrusted input is an expected outcome, not an error condition.
func Parse(sys System, text string) (Date, bool) {
	neg := false
	if len(text) > 0 && text[0] == '-' {
		neg = true
		text = text[1:]
	}
	if len(text) != 10 || text[4] != '-' || text[7] != '-' {
		return Date{}, false
	}
	year, ok := atoi(text[:4])
	if !ok {
		return Date{}, false
	}
	month, ok := atoi(text[5:7])
	if !ok {
		return Date{}, false
	}
	day, ok := atoi(text[8:])
	if !ok {
		return Date{}, false
	}
	if neg {
		year = -year
	}
	if _, err := ToJDN(sys, year, month, day); err != nil {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day, System: sys}, true
}

// atoi converts an all-digit string; unlike strconv it rejects signs,
// spaces and underscores, which keeps the canonical format strict.
func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
