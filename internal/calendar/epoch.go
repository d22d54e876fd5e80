package calendar

// Epoch registry: the JDN of year 1, month 1, day 1 for every epoch-based
// system. All day counting in those converters is relative to these
// entries. The table is compiled-in and never mutated.
//
// Values follow the documented epochs of the source material. Two deserve a
// note: the Julian entry is 1721424 (two days before the Gregorian entry,
// the standard proleptic offset), and the Islamic entry 1948439 corresponds
// to Julian 15 July 622, the astronomical epoch that begins at sunset of
// that day (civil reckoning often quotes 16 July and 1948440).
const (
	epochGregorian JDN = 1721426 // Gregorian 1 Jan 1 CE
	epochJulian    JDN = 1721424 // Julian 1 Jan 1 CE
	epochIslamic   JDN = 1948439 // 1 Muharram AH 1, Julian 15 Jul 622 (sunset epoch)
	epochHebrew    JDN = 347998  // 1 Tishri AM 1, Monday 7 Oct 3761 BCE Julian
	epochPersian   JDN = 1948321 // 1 Farvardin AP 1, Julian 19 Mar 622
	epochEthiopian JDN = 1724221 // 1 Meskerem 1 EE, Julian 29 Aug 8 CE
	epochCoptic    JDN = 1825030 // 1 Thout 1 AM, Julian 29 Aug 284 CE
	epochSaka      JDN = 1749995 // 1 Chaitra 1 SE, Gregorian 22 Mar 79 CE
	epochBahai     JDN = 2394647 // 1 Bahá 1 BE, Gregorian 21 Mar 1844 (equinox-based, approximate)
	epochMayan     JDN = 584283  // Long Count 0.0.0.0.0, GMT correlation; shared by Haab, Tzolkin, Aztec
)

// Epoch returns the epoch JDN for a system: the JDN its year 1, month 1,
// day 1 converts to. For the Gregorian-offset systems (Thai Buddhist,
// Chinese, Cherokee, Iroquois) the epoch is derived from the Gregorian core
// and the system's year offset.
func Epoch(sys System) JDN {
	jdn, err := ToJDN(sys, 1, 1, 1)
	if err != nil {
		// Chinese year 1 maps to Gregorian -2696, well inside the
		// supported range; every catalog entry has a valid epoch.
		panic("calendar: epoch out of range")
	}
	return jdn
}
