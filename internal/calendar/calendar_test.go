package calendar

import "testing"

func TestSystemTagRoundTrip(t *testing.T) {
	for _, sys := range Systems() {
		tag := sys.String()
		if tag == "" || tag == "unknown" {
			t.Errorf("system %d has no tag", sys)
		}
		back, ok := ParseSystem(tag)
		if !ok || back != sys {
			t.Errorf("ParseSystem(%q) = %v, %v", tag, back, ok)
		}
	}
	if _, ok := ParseSystem("klingon"); ok {
		t.Error("ParseSystem should reject unknown tags")
	}
	if _, ok := ParseSystem(""); ok {
		t.Error("ParseSystem should reject the empty tag")
	}
}

func TestSystemsCatalog(t *testing.T) {
	if got := len(Systems()); got != 17 {
		t.Fatalf("catalog has %d systems, want 17", got)
	}
	seen := map[string]bool{}
	for _, sys := range Systems() {
		if seen[sys.String()] {
			t.Errorf("duplicate tag %q", sys)
		}
		seen[sys.String()] = true
	}
}

func TestMonthsInYear(t *testing.T) {
	cases := []struct {
		sys  System
		year int
		want int
	}{
		{Gregorian, 2024, 12},
		{Julian, 2024, 12},
		{Islamic, 1445, 12},
		{Hebrew, 5784, 13},
		{Hebrew, 5785, 12},
		{Persian, 1402, 12},
		{Ethiopian, 2016, 13},
		{Coptic, 1740, 13},
		{IndianSaka, 1945, 12},
		{Bahai, 180, 20},
		{ThaiBuddhist, 2567, 12},
		{MayanLongCount, 10, 18},
		{MayanHaab, 10, 19},
		{MayanTzolkin, 10, 13},
		{Aztec, 10, 19},
	}
	for _, c := range cases {
		if got := MonthsInYear(c.sys, c.year); got != c.want {
			t.Errorf("MonthsInYear(%s, %d) = %d, want %d", c.sys, c.year, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		sys         System
		year, month int
		want        int
	}{
		{Gregorian, 2024, 2, 29},
		{Gregorian, 2023, 2, 28},
		{Gregorian, 2024, 13, 0},
		{Islamic, 1445, 1, 30},
		{Islamic, 1445, 2, 29},
		{Ethiopian, 2015, 13, 5},
		{Ethiopian, 2015, 1, 30},
		{MayanHaab, 10, 19, 5},
		{MayanHaab, 10, 1, 20},
		{MayanTzolkin, 10, 1, 20},
		{MayanLongCount, 10, 18, 20},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.sys, c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%s, %d, %d) = %d, want %d", c.sys, c.year, c.month, got, c.want)
		}
	}
}

func TestEthiopicLeapTail(t *testing.T) {
	// Pagume has 6 days in the year before a Julian leap year.
	if !IsEthiopicLeap(2015) {
		t.Error("ethiopic 2015 should be leap")
	}
	if got := DaysInMonth(Ethiopian, 2015, 13); got != 6 {
		t.Errorf("Pagume 2015 = %d days, want 6", got)
	}
	if got := DaysInMonth(Ethiopian, 2016, 13); got != 5 {
		t.Errorf("Pagume 2016 = %d days, want 5", got)
	}
}

func TestLeapRulesPeriodicAcrossZero(t *testing.T) {
	// Every cyclic leap rule must agree between a year and the same year
	// shifted by whole cycles, on both sides of zero.
	for n := -10; n <= 10; n++ {
		for y := 0; y < 4; y++ {
			if IsEthiopicLeap(y) != IsEthiopicLeap(y+4*n) {
				t.Errorf("ethiopic leap differs between %d and %d", y, y+4*n)
			}
			if IsJulianLeap(y) != IsJulianLeap(y+4*n) {
				t.Errorf("julian leap differs between %d and %d", y, y+4*n)
			}
		}
		for y := 0; y < 30; y++ {
			if IsIslamicLeap(y) != IsIslamicLeap(y+30*n) {
				t.Errorf("islamic leap differs between %d and %d", y, y+30*n)
			}
		}
		for y := 0; y < 33; y++ {
			if IsPersianLeap(y) != IsPersianLeap(y+33*n) {
				t.Errorf("persian leap differs between %d and %d", y, y+33*n)
			}
		}
		for y := 0; y < 19; y++ {
			if IsHebrewLeap(y) != IsHebrewLeap(y+19*n) {
				t.Errorf("hebrew leap differs between %d and %d", y, y+19*n)
			}
		}
	}
}

func TestBahaiIntercalary(t *testing.T) {
	// Ayyam-i-Ha is month 19; 4 days normally, 5 before a leap Gregorian
	// pairing.
	got := DaysInMonth(Bahai, 180, 19)
	if got != 4 && got != 5 {
		t.Errorf("Ayyam-i-Ha length = %d, want 4 or 5", got)
	}
	if got := DaysInMonth(Bahai, 180, 20); got != 19 {
		t.Errorf("final month Ala = %d days, want 19", got)
	}
	for m := 1; m <= 18; m++ {
		if got := DaysInMonth(Bahai, 180, m); got != 19 {
			t.Errorf("bahai month %d = %d days, want 19", m, got)
		}
	}
}

func TestEra(t *testing.T) {
	cases := []struct {
		sys  System
		want string
	}{
		{Gregorian, "CE"},
		{Islamic, "AH"},
		{Hebrew, "AM"},
		{Persian, "AP"},
		{ThaiBuddhist, "BE"},
		{MayanLongCount, ""},
		{Cherokee, ""},
	}
	for _, c := range cases {
		if got := Era(c.sys); got != c.want {
			t.Errorf("Era(%s) = %q, want %q", c.sys, got, c.want)
		}
	}
}

func TestNames(t *testing.T) {
	if got := Names(Gregorian, TierMonth); len(got) != 12 || got[0] != "January" {
		t.Errorf("gregorian month names = %v", got)
	}
	if got := Names(Hebrew, TierMonth); len(got) != 13 {
		t.Errorf("hebrew month names should list the full leap set, got %d", len(got))
	}
	if got := Names(MayanTzolkin, TierDay); len(got) != 20 {
		t.Errorf("tzolkin day names = %d, want 20", len(got))
	}
	if got := Names(Gregorian, TierDay); len(got) != 7 || got[0] != "Monday" {
		t.Errorf("weekday names = %v", got)
	}
	if got := Names(MayanLongCount, TierMonth); got != nil {
		t.Errorf("long count months should be numeric, got %v", got)
	}
	if got := Names(Cherokee, TierMonth); len(got) != 12 {
		t.Errorf("cherokee moon names = %d, want 12", len(got))
	}
}
