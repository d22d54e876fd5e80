package calendar

import (
	"errors"
	"math"
	"testing"
)

// TestRoundTripAllSystems walks a band of JDNs through every system in both
// directions. The step is prime so the sample hits every weekday, month
// boundary and leap position over time.
func TestRoundTripAllSystems(t *testing.T) {
	for _, sys := range Systems() {
		lo := mustJDN(t, sys, MinYear+1, 1, 1)
		hi := mustJDN(t, sys, MaxYear-1, 1, 1)
		for jdn := lo; jdn <= hi; jdn += 86243 {
			d := mustDate(t, sys, jdn)
			back := mustJDN(t, sys, d.Year, d.Month, d.Day)
			if back != jdn {
				t.Fatalf("%s: jdn %d -> %d-%d-%d -> jdn %d", sys, jdn, d.Year, d.Month, d.Day, back)
			}
			if d.System != sys {
				t.Fatalf("%s: FromJDN set System = %s", sys, d.System)
			}
		}
	}
}

// TestConsecutiveDays checks that stepping one day forward in each calendar
// advances the JDN by exactly one across year and month boundaries.
func TestConsecutiveDays(t *testing.T) {
	for _, sys := range Systems() {
		for _, startYear := range []int{-100, -1, 0, 1, 1999} {
			jdn := mustJDN(t, sys, startYear, 1, 1)
			prev := mustDate(t, sys, jdn)
			for i := 1; i <= 800; i++ {
				cur := mustDate(t, sys, jdn+JDN(i))
				curJDN := mustJDN(t, sys, cur.Year, cur.Month, cur.Day)
				if curJDN != jdn+JDN(i) {
					t.Fatalf("%s: %d-%d-%d maps to jdn %d, want %d",
						sys, cur.Year, cur.Month, cur.Day, curJDN, jdn+JDN(i))
				}
				if cur == prev {
					t.Fatalf("%s: date did not advance at jdn %d", sys, jdn+JDN(i))
				}
				prev = cur
			}
		}
	}
}

func TestEpochIsFirstDay(t *testing.T) {
	for _, sys := range Systems() {
		got := mustJDN(t, sys, 1, 1, 1)
		if got != Epoch(sys) {
			t.Errorf("%s: ToJDN(1,1,1) = %d, Epoch = %d", sys, got, Epoch(sys))
		}
		d := mustDate(t, sys, Epoch(sys))
		if d.Year != 1 || d.Month != 1 || d.Day != 1 {
			t.Errorf("%s: FromJDN(epoch) = %d-%d-%d, want 1-1-1", sys, d.Year, d.Month, d.Day)
		}
	}
}

// TestDayBeforeEpoch checks the year-zero boundary: the day before each
// system's epoch is the last day of year 0, never year -1 or a crash.
func TestDayBeforeEpoch(t *testing.T) {
	for _, sys := range Systems() {
		d := mustDate(t, sys, Epoch(sys)-1)
		if d.Year != 0 {
			t.Errorf("%s: day before epoch has year %d, want 0", sys, d.Year)
			continue
		}
		lastMonth := MonthsInYear(sys, 0)
		if d.Month != lastMonth {
			t.Errorf("%s: day before epoch has month %d, want %d", sys, d.Month, lastMonth)
		}
		if want := DaysInMonth(sys, 0, lastMonth); d.Day != want {
			t.Errorf("%s: day before epoch has day %d, want %d", sys, d.Day, want)
		}
	}
}

func TestExtremeYears(t *testing.T) {
	for _, sys := range Systems() {
		for _, y := range []int{MinYear, -1, 0, 1, MaxYear} {
			jdn := mustJDN(t, sys, y, 1, 1)
			d := mustDate(t, sys, jdn)
			if d.Year != y || d.Month != 1 || d.Day != 1 {
				t.Errorf("%s: year %d round trip gave %d-%d-%d", sys, y, d.Year, d.Month, d.Day)
			}
		}
	}
}

// TestFromJDNRejectsExtremeDayNumbers pins the edges of each system's day
// window: the first and last representable days convert, everything beyond
// them fails with a *RangeError, and day numbers near the int64 limits are
// rejected without overflowing or walking the year refinement.
func TestFromJDNRejectsExtremeDayNumbers(t *testing.T) {
	for _, sys := range Systems() {
		lo := mustJDN(t, sys, MinYear, 1, 1)
		months := MonthsInYear(sys, MaxYear)
		hi := mustJDN(t, sys, MaxYear, months, DaysInMonth(sys, MaxYear, months))

		for _, jdn := range []JDN{lo, hi} {
			if _, err := FromJDN(sys, jdn); err != nil {
				t.Errorf("%s: FromJDN(%d) at the window edge: %v", sys, jdn, err)
			}
		}
		for _, jdn := range []JDN{lo - 1, hi + 1, math.MinInt64, math.MaxInt64} {
			_, err := FromJDN(sys, jdn)
			if err == nil {
				t.Errorf("%s: FromJDN(%d) succeeded beyond the year window", sys, jdn)
				continue
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("%s: FromJDN(%d) error is %T, want *RangeError", sys, jdn, err)
			}
		}
	}
}

func TestConvertMatchesJDNPath(t *testing.T) {
	d := Date{Year: 2024, Month: 2, Day: 10, System: Gregorian}
	for _, to := range Systems() {
		got, err := Convert(d, to)
		if err != nil {
			t.Fatalf("Convert to %s: %v", to, err)
		}
		jdn := mustJDN(t, Gregorian, d.Year, d.Month, d.Day)
		want := mustDate(t, to, jdn)
		if got != want {
			t.Errorf("Convert to %s = %+v, want %+v", to, got, want)
		}
		// And back.
		back, err := Convert(got, Gregorian)
		if err != nil {
			t.Fatalf("Convert back from %s: %v", to, err)
		}
		if back != d {
			t.Errorf("round trip via %s = %+v, want %+v", to, back, d)
		}
	}
}

func TestYearLengthsMatchDaysBefore(t *testing.T) {
	// The sum of a year's month lengths must equal the distance between
	// consecutive new-year JDNs.
	for _, sys := range Systems() {
		for _, y := range []int{-500, -1, 0, 1, 1000, 5784} {
			var sum int
			for m := 1; m <= MonthsInYear(sys, y); m++ {
				sum += DaysInMonth(sys, y, m)
			}
			span := mustJDN(t, sys, y+1, 1, 1) - mustJDN(t, sys, y, 1, 1)
			if int64(sum) != int64(span) {
				t.Errorf("%s year %d: month lengths sum to %d, year spans %d days", sys, y, sum, span)
			}
		}
	}
}

func TestThaiBuddhistOffset(t *testing.T) {
	g := mustJDN(t, Gregorian, 2024, 2, 10)
	d := mustDate(t, ThaiBuddhist, g)
	if d.Year != 2567 || d.Month != 2 || d.Day != 10 {
		t.Errorf("thai-buddhist date = %d-%d-%d, want 2567-2-10", d.Year, d.Month, d.Day)
	}
}

func TestChineseOffset(t *testing.T) {
	g := mustJDN(t, Gregorian, 2024, 2, 10)
	d := mustDate(t, Chinese, g)
	if d.Year != 4721 || d.Month != 2 || d.Day != 10 {
		t.Errorf("chinese date = %d-%d-%d, want 4721-2-10", d.Year, d.Month, d.Day)
	}
}

func TestLongCount2012Anchor(t *testing.T) {
	// 21 December 2012, the end of the 13th baktun.
	g := mustJDN(t, Gregorian, 2012, 12, 21)
	if g != 2456283 {
		t.Fatalf("2012-12-21 = jdn %d, want 2456283", g)
	}
	d := mustDate(t, MayanLongCount, g)
	// 13.0.0.0.0: tun 5200 elapsed since the epoch, expressed as year 5201.
	if d.Year != 5201 || d.Month != 1 || d.Day != 1 {
		t.Errorf("long count date = %d-%d-%d, want 5201-1-1", d.Year, d.Month, d.Day)
	}
}
