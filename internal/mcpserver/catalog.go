package mcpserver

// DateFormatContract describes the canonical date format and the calendar
// catalog that LLM consumers should follow when calling the conversion tools.
const DateFormatContract = `# Jera Date Format Contract

Every date passed to a Jera tool MUST use the canonical form.

## Canonical form

` + "```" + `
[-]YYYY-MM-DD
` + "```" + `

1. **Year** is astronomical: the year before 1 is 0, the year before that
   is -1. 1 BCE is written ` + "`" + `0000` + "`" + `, 44 BCE is ` + "`" + `-0043` + "`" + `.
2. **Year** is zero-padded to at least four digits; negative years carry a
   leading ` + "`" + `-` + "`" + ` before the padding.
3. **Month and day** are two digits each, always zero-padded, and are
   positions within the named calendar (Hebrew month 1 is Tishri, Islamic
   month 1 is Muharram, and so on).
4. The supported year range is -9999 through 9999 in every calendar.

## Calendar tags

` + "```" + `
gregorian         Gregorian (proleptic)            era CE
julian            Julian (proleptic)               era CE
islamic           Islamic tabular (Hijri)          era AH
hebrew            Hebrew (molad arithmetic)        era AM
persian           Persian (Solar Hijri, 33-year)   era AP
ethiopian         Ethiopian (Ge'ez)                era EE
coptic            Coptic                           era AM
indian-saka       Indian national (Saka)           era SE
bahai             Baha'i (Badi)                    era BE
thai-buddhist     Thai Buddhist (Gregorian + 543)  era BE
mayan-long-count  Mayan Long Count (tun years)
mayan-haab        Mayan Haab (365-day)
mayan-tzolkin     Mayan Tzolkin (260-day rounds)
aztec             Aztec Xiuhpohualli (365-day)
chinese           Chinese (Huangdi era overlay)
cherokee          Cherokee moon names (Gregorian)
iroquois          Iroquois moon names (Gregorian)
` + "```" + `

## Rules

1. Tags are lowercase kebab-case and are the only accepted calendar names.
2. Conversions run through the Julian Day Number, so any pair of calendars
   can be converted directly.
3. ` + "`" + `mayan-long-count` + "`" + ` dates use tun as the year, uinal as the month and
   kin as the day; ask the ` + "`" + `cycle_positions` + "`" + ` tool for the full baktun
   notation.
4. Out-of-range dates (day past the month's end, month past the year's
   end, year outside -9999..9999) are rejected, never clamped.

## Example

` + "```" + `
convert_date(date: "2024-02-10", from: "gregorian", to: "hebrew")
` + "```" + `
`
