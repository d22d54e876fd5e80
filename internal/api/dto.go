package api

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/starford/jera/internal/cycles"
	"github.com/starford/jera/internal/history"
)

// canonicalDate matches the strict persisted form [-]YYYY-MM-DD.
var canonicalDate = regexp.MustCompile(`^-?\d{4}-\d{2}-\d{2}$`)

// ConvertRequest is the request body for converting a date between systems.
type ConvertRequest struct {
	Date string `json:"date" example:"2024-02-10"`
	From string `json:"from" example:"gregorian"`
	To   string `json:"to" example:"islamic"`
}

// Validate validates the conversion request shape; semantic date checks
// happen in the converter itself.
func (r ConvertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Match(canonicalDate)),
		validation.Field(&r.From, validation.Required),
		validation.Field(&r.To, validation.Required),
	)
}

// DateDTO is a calendar date with its system tag and display fields.
type DateDTO struct {
	Calendar  string `json:"calendar"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name,omitempty"`
	Era       string `json:"era,omitempty"`
	Canonical string `json:"canonical"`
}

// ConvertResponse is the converted date plus the JDN it passed through.
type ConvertResponse struct {
	From    DateDTO `json:"from"`
	To      DateDTO `json:"to"`
	JDN     int64   `json:"jdn"`
	Weekday string  `json:"weekday"`
}

// CalendarInfo describes one catalog entry for the listing endpoint.
type CalendarInfo struct {
	Tag        string   `json:"tag"`
	EpochJDN   int64    `json:"epoch_jdn"`
	MonthCount int      `json:"month_count"`
	Months     []string `json:"months,omitempty"`
	Era        string   `json:"era,omitempty"`
}

// CalendarListResponse wraps the catalog listing.
type CalendarListResponse struct {
	Calendars []CalendarInfo `json:"calendars"`
}

// CyclesResponse bundles every macro-cycle position for one date.
type CyclesResponse struct {
	Date          DateDTO                `json:"date"`
	JDN           int64                  `json:"jdn"`
	Sexagenary    cycles.SexagenaryYear  `json:"sexagenary"`
	LongCount     cycles.LongCountDate   `json:"long_count"`
	CalendarRound cycles.CalendarRound   `json:"calendar_round"`
	Metonic       cycles.MetonicPosition `json:"metonic"`
	Saros         cycles.SarosPosition   `json:"saros"`
	Yuga          cycles.YugaPosition    `json:"yuga"`
}

// HistoryResponse wraps recent conversions.
type HistoryResponse struct {
	Conversions []history.Conversion `json:"conversions"`
	Total       int                  `json:"total"`
}
