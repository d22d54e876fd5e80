package verify

import (
	"github.com/starford/jera/internal/calendar"
	"github.com/starford/jera/internal/cycles"
)

// Fact is one documented value the engine must reproduce: an epoch JDN, a
// spot conversion, or a cycle anchor, together with its citation. The
// catalog is fixture data, compiled in and immutable.
type Fact struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Want   int64  `json:"want"`
	got    func() (int64, error)
}

func epochFact(sys calendar.System, want calendar.JDN, source string) Fact {
	return Fact{
		Name:   sys.String() + " epoch",
		Source: source,
		Want:   int64(want),
		got: func() (int64, error) {
			jdn, err := calendar.ToJDN(sys, 1, 1, 1)
			return int64(jdn), err
		},
	}
}

func conversionFact(name, source string, sys calendar.System, y, m, d int, want calendar.JDN) Fact {
	return Fact{
		Name:   name,
		Source: source,
		Want:   int64(want),
		got: func() (int64, error) {
			jdn, err := calendar.ToJDN(sys, y, m, d)
			return int64(jdn), err
		},
	}
}

// facts is the full documented catalog. A single mismatch here fails the
// whole test run; the approximate entries (Baha'i Naw-Ruz, the Chinese and
// moon-name overlays, the Metonic Gregorian offset) are checked against
// their documented approximate values, not against astronomical truth.
var facts = []Fact{
	epochFact(calendar.Gregorian, 1721426,
		"Fliegel & Van Flandern (1968), proleptic Gregorian 1 Jan 1 CE"),
	epochFact(calendar.Julian, 1721424,
		"proleptic Julian 1 Jan 1 CE, two days before the Gregorian epoch"),
	epochFact(calendar.Islamic, 1948439,
		"1 Muharram AH 1, sunset of Julian 15 Jul 622 (astronomical epoch)"),
	epochFact(calendar.Hebrew, 347998,
		"1 Tishri AM 1, Monday 7 October 3761 BCE Julian"),
	epochFact(calendar.Persian, 1948321,
		"1 Farvardin AP 1, Julian 19 Mar 622"),
	epochFact(calendar.Ethiopian, 1724221,
		"1 Meskerem 1 EE, Julian 29 Aug 8 CE (Era of the Incarnation)"),
	epochFact(calendar.Coptic, 1825030,
		"1 Thout 1 AM, Julian 29 Aug 284 CE (Era of Martyrs)"),
	epochFact(calendar.IndianSaka, 1749995,
		"1 Chaitra 1 SE, Gregorian 22 Mar 79 CE (reformed Indian calendar)"),
	epochFact(calendar.Bahai, 2394647,
		"1 Baha 1 BE, Gregorian 21 Mar 1844; equinox-based Naw-Ruz, approximate"),
	epochFact(calendar.MayanHaab, 584283,
		"Long Count 0.0.0.0.0, Goodman-Martinez-Thompson correlation"),
	epochFact(calendar.MayanTzolkin, 584283,
		"shared GMT correlation epoch"),
	epochFact(calendar.MayanLongCount, 584283,
		"shared GMT correlation epoch"),
	epochFact(calendar.Aztec, 584283,
		"xiuhpohualli anchored on the GMT correlation per the source material"),
	epochFact(calendar.ThaiBuddhist, 1523099,
		"Thai Buddhist year 1 = Gregorian year -542 (offset 543)"),

	conversionFact("gregorian 2000-01-01", "J2000 civil date, JD 2451544.5",
		calendar.Gregorian, 2000, 1, 1, 2451545),
	conversionFact("julian 15 Jul 622", "Islamic epoch day in the Julian calendar",
		calendar.Julian, 622, 7, 15, 1948439),
	conversionFact("julian 7 Oct 3761 BCE", "Hebrew epoch day in the Julian calendar",
		calendar.Julian, -3760, 10, 7, 347998),
	conversionFact("mayan creation date in gregorian", "11 Aug -3113 Gregorian = 0.0.0.0.0",
		calendar.Gregorian, -3113, 8, 11, 584283),
	conversionFact("long count 13.0.0.0.0 day", "21 Dec 2012 Gregorian",
		calendar.Gregorian, 2012, 12, 21, 2456283),

	{
		Name:   "sexagenary 1984 position",
		Source: "1984 = jiazi, cycle start",
		Want:   1,
		got:    func() (int64, error) { return int64(cycles.Sexagenary(1984).Position), nil },
	},
	{
		Name:   "sexagenary 2024 position",
		Source: "2024 = jiachen, position 41",
		Want:   41,
		got:    func() (int64, error) { return int64(cycles.Sexagenary(2024).Position), nil },
	},
	{
		Name:   "long count baktun at 21 Dec 2012",
		Source: "13.0.0.0.0 baktun completion",
		Want:   13,
		got:    func() (int64, error) { return cycles.LongCount(2456283).Baktun, nil },
	},
	{
		Name:   "metonic position of hebrew year 3",
		Source: "first leap year of the 19-year cycle",
		Want:   3,
		got:    func() (int64, error) { return int64(cycles.Metonic(3).Position), nil },
	},
	{
		Name:   "kali yuga onset year",
		Source: "Kali Yuga begins 3102 BCE (astronomical -3101)",
		Want:   0,
		got:    func() (int64, error) { return cycles.Yuga(-3101).YearsIntoAge, nil },
	},
	{
		Name:   "saros cycle at reference eclipse",
		Source: "total solar eclipse 11 Aug 1999, JDN 2451402",
		Want:   0,
		got:    func() (int64, error) { return cycles.Saros(2451402).Cycle, nil },
	},
}

// Facts returns a copy of the documented catalog for display layers.
func Facts() []Fact {
	out := make([]Fact, len(facts))
	copy(out, facts)
	return out
}
