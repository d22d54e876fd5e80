package cycles

// Hindu Yuga chronology: four nested ages of fixed length summing to a
// 4,320,000-year Mahayuga, anchored so the current Kali Yuga begins at
// astronomical year -3101 (3102 BCE). Years before the anchor fall into
// earlier ages of the same Mahayuga or, further back, into notional
// previous Mahayugas with a negative cycle number.

// Age identifies one of the four Yugas.
type Age int

const (
	Satya Age = iota
	Treta
	Dvapara
	Kali
)

var ageNames = [...]string{"Satya", "Treta", "Dvapara", "Kali"}

func (a Age) String() string {
	if a < 0 || int(a) >= len(ageNames) {
		return "unknown"
	}
	return ageNames[a]
}

var ageLengths = [...]int64{1728000, 1296000, 864000, 432000}

const mahayugaYears = 4320000

// kaliEpochYear is the astronomical year the current Kali Yuga begins.
const kaliEpochYear = -3101

// The current Mahayuga started three ages before the Kali epoch.
const mahayugaStartYear = kaliEpochYear - (1728000 + 1296000 + 864000)

// YugaPosition locates a year within the Mahayuga structure.
type YugaPosition struct {
	Age          Age    `json:"-"`
	AgeName      string `json:"age"`
	YearsIntoAge int64  `json:"years_into_age"`
	Mahayuga     int64  `json:"mahayuga"` // 0-based, signed; 0 is the current Mahayuga
}

// Yuga returns the age a year falls in. Any integer year is a valid input.
func Yuga(year int) YugaPosition {
	elapsed := int64(year) - mahayugaStartYear
	cycle := floorDiv(elapsed, mahayugaYears)
	rem := floorMod(elapsed, mahayugaYears)

	age := Satya
	for i, n := range ageLengths {
		if rem < n {
			age = Age(i)
			break
		}
		rem -= n
	}
	return YugaPosition{
		Age:          age,
		AgeName:      age.String(),
		YearsIntoAge: rem,
		Mahayuga:     cycle,
	}
}
