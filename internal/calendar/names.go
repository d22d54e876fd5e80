package calendar

// Static display name tables keyed by system and tier. Display layers read
// these to render localized month, weekday and granularity labels; nothing
// in the conversion arithmetic depends on them.

// Tier is a display granularity for journal-style groupings.
type Tier int

const (
	TierDecade Tier = iota
	TierYear
	TierMonth
	TierWeek
	TierDay
)

var tierTags = [...]string{"decade", "year", "month", "week", "day"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierTags) {
		return "unknown"
	}
	return tierTags[t]
}

var gregorianMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var islamicMonths = []string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

// Tishri-first civil numbering; see hebrew.go.
var hebrewCommonMonths = []string{
	"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

var hebrewLeapMonths = []string{
	"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar I", "Adar II",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

var persianMonths = []string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

var ethiopianMonths = []string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit", "Megabit",
	"Miyazya", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume",
}

var copticMonths = []string{
	"Thout", "Paopi", "Hathor", "Koiak", "Tobi", "Meshir", "Paremhat",
	"Parmouti", "Pashons", "Paoni", "Epip", "Mesori", "Pi Kogi Enavot",
}

var sakaMonths = []string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadrapada",
	"Ashvina", "Kartika", "Margashirsha", "Pausha", "Magha", "Phalguna",
}

var bahaiMonths = []string{
	"Baha", "Jalal", "Jamal", "Azamat", "Nur", "Rahmat", "Kalimat",
	"Kamal", "Asma", "Izzat", "Mashiyyat", "Ilm", "Qudrat", "Qawl",
	"Masa'il", "Sharaf", "Sultan", "Mulk", "Ayyam-i-Ha", "Ala",
}

var haabMonths = []string{
	"Pop", "Wo", "Sip", "Sotz", "Sek", "Xul", "Yaxkin", "Mol", "Chen",
	"Yax", "Sak", "Keh", "Mak", "Kankin", "Muwan", "Pax", "Kayab",
	"Kumku", "Wayeb",
}

// The 20 Tzolkin day names; the 13 trecenas themselves are numeric.
var tzolkinDayNames = []string{
	"Imix", "Ik", "Akbal", "Kan", "Chikchan", "Kimi", "Manik", "Lamat",
	"Muluk", "Ok", "Chuwen", "Eb", "Ben", "Ix", "Men", "Kib", "Kaban",
	"Etznab", "Kawak", "Ajaw",
}

var aztecMonths = []string{
	"Atlcahualo", "Tlacaxipehualiztli", "Tozoztontli", "Huey Tozoztli",
	"Toxcatl", "Etzalcualiztli", "Tecuilhuitontli", "Huey Tecuilhuitl",
	"Tlaxochimaco", "Xocotl Huetzi", "Ochpaniztli", "Teotleco",
	"Tepeilhuitl", "Quecholli", "Panquetzaliztli", "Atemoztli", "Tititl",
	"Izcalli", "Nemontemi",
}

var chineseMonths = []string{
	"Zhengyue", "Eryue", "Sanyue", "Siyue", "Wuyue", "Liuyue",
	"Qiyue", "Bayue", "Jiuyue", "Shiyue", "Shiyiyue", "Layue",
}

var cherokeeMonths = []string{
	"Cold Moon", "Bony Moon", "Windy Moon", "Flower Moon", "Planting Moon",
	"Green Corn Moon", "Ripe Corn Moon", "Fruit Moon", "Nut Moon",
	"Harvest Moon", "Trading Moon", "Snow Moon",
}

var iroquoisMonths = []string{
	"Midwinter Moon", "Sugar Moon", "Fishing Moon", "Planting Moon",
	"Strawberry Moon", "Blooming Moon", "Green Bean Moon",
	"Green Corn Moon", "Freshness Moon", "Harvest Moon", "Hunting Moon",
	"Cold Moon",
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	"Sunday",
}

var eras = [numSystems]string{
	Gregorian:    "CE",
	Julian:       "CE",
	Islamic:      "AH",
	Hebrew:       "AM",
	Persian:      "AP",
	Ethiopian:    "EE",
	Coptic:       "AM",
	IndianSaka:   "SE",
	Bahai:        "BE",
	ThaiBuddhist: "BE",
}

func eraOf(sys System) string {
	if sys < 0 || int(sys) >= numSystems {
		return ""
	}
	return eras[sys]
}

// Era returns the optional display era label for a system, empty when the
// system has none (the Mesoamerican family, moon-name overlays).
func Era(sys System) string {
	return eraOf(sys)
}

// Names returns the static name table for a system and tier. Month-tier
// names are the full set (13 for Hebrew leap years, 20 for Baha'i, 19 for
// Haab and Aztec); the day tier carries weekday names, or the 20 Tzolkin
// day names for that system. Empty slices mean the tier is numeric for the
// system.
func Names(sys System, tier Tier) []string {
	switch tier {
	case TierMonth:
		switch sys {
		case Gregorian, Julian, ThaiBuddhist:
			return gregorianMonths
		case Islamic:
			return islamicMonths
		case Hebrew:
			return hebrewLeapMonths
		case Persian:
			return persianMonths
		case Ethiopian:
			return ethiopianMonths
		case Coptic:
			return copticMonths
		case IndianSaka:
			return sakaMonths
		case Bahai:
			return bahaiMonths
		case MayanHaab:
			return haabMonths
		case MayanTzolkin, MayanLongCount:
			return nil
		case Aztec:
			return aztecMonths
		case Chinese:
			return chineseMonths
		case Cherokee:
			return cherokeeMonths
		case Iroquois:
			return iroquoisMonths
		}
	case TierDay:
		if sys == MayanTzolkin {
			return tzolkinDayNames
		}
		return weekdayNames
	}
	return nil
}
