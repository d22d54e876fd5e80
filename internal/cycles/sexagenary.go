package cycles

// Chinese sexagenary cycle: 60 year names formed by pairing the 10
// Heavenly Stems with the 12 Earthly Branches. Reference anchor: 1984 is
// position 1 (jiazi, the start of a cycle).

const sexagenaryReferenceYear = 1984

var heavenlyStems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var earthlyBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// SexagenaryYear is a position within the 60-year cycle.
type SexagenaryYear struct {
	Position int    `json:"position"` // 1..60
	Cycle    int64  `json:"cycle"`    // 0-based, negative before 1984
	Stem     string `json:"stem"`
	Branch   string `json:"branch"`
	Combined string `json:"combined"`
}

// Sexagenary returns the stem-branch name and cycle position for a year.
func Sexagenary(year int) SexagenaryYear {
	offset := int64(year - sexagenaryReferenceYear)
	stem := heavenlyStems[floorMod(offset, 10)]
	branch := earthlyBranches[floorMod(offset, 12)]
	return SexagenaryYear{
		Position: int(floorMod(offset, 60)) + 1,
		Cycle:    floorDiv(offset, 60),
		Stem:     stem,
		Branch:   branch,
		Combined: stem + branch,
	}
}
