package api

import (
	"fmt"
	"log/slog"

	"github.com/starford/jera/internal/apperr"
	"github.com/starford/jera/internal/calendar"
	"github.com/starford/jera/internal/cycles"
	"github.com/starford/jera/internal/history"
)

// Service coordinates the conversion engine and the history recorder for
// the API layer. The engine itself is pure; the only state here is the
// recorder, which may be nil when history is disabled.
type Service struct {
	rec history.Recorder
}

// NewService creates a new API service. rec may be nil.
func NewService(rec history.Recorder) *Service {
	return &Service{rec: rec}
}

func dateDTO(d calendar.Date) DateDTO {
	return DateDTO{
		Calendar:  d.System.String(),
		Year:      d.Year,
		Month:     d.Month,
		Day:       d.Day,
		MonthName: calendar.Format(d, "MMMM"),
		Era:       calendar.Era(d.System),
		Canonical: calendar.Canonical(d),
	}
}

// Convert parses a canonical date in the source system, converts it
// through the JDN, and records the conversion.
func (s *Service) Convert(text, fromTag, toTag string) (*ConvertResponse, error) {
	from, ok := calendar.ParseSystem(fromTag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnknownCalendar, fromTag)
	}
	to, ok := calendar.ParseSystem(toTag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnknownCalendar, toTag)
	}

	src, ok := calendar.Parse(from, text)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a valid %s date", apperr.ErrBadDate, text, from)
	}
	jdn, err := calendar.ToJDN(from, src.Year, src.Month, src.Day)
	if err != nil {
		return nil, err
	}
	dst, err := calendar.FromJDN(to, jdn)
	if err != nil {
		return nil, err
	}

	if s.rec != nil {
		if recErr := s.rec.Record(history.Conversion{
			FromSystem: from.String(),
			FromDate:   calendar.Canonical(src),
			ToSystem:   to.String(),
			ToDate:     calendar.Canonical(dst),
			JDN:        int64(jdn),
		}); recErr != nil {
			// History is telemetry; a failed insert must not fail the conversion.
			slog.Warn("history record failed", slog.String("error", recErr.Error()))
		}
	}

	weekday := calendar.Names(calendar.Gregorian, calendar.TierDay)[calendar.Weekday(jdn)]
	return &ConvertResponse{
		From:    dateDTO(src),
		To:      dateDTO(dst),
		JDN:     int64(jdn),
		Weekday: weekday,
	}, nil
}

// ToJDN parses a canonical date and returns its JDN.
func (s *Service) ToJDN(text, tag string) (int64, error) {
	sys, ok := calendar.ParseSystem(tag)
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperr.ErrUnknownCalendar, tag)
	}
	d, ok := calendar.Parse(sys, text)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid %s date", apperr.ErrBadDate, text, sys)
	}
	jdn, err := calendar.ToJDN(sys, d.Year, d.Month, d.Day)
	return int64(jdn), err
}

// FromJDN decodes a JDN into the requested system.
func (s *Service) FromJDN(jdn int64, tag string) (*DateDTO, error) {
	sys, ok := calendar.ParseSystem(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnknownCalendar, tag)
	}
	d, err := calendar.FromJDN(sys, calendar.JDN(jdn))
	if err != nil {
		return nil, err
	}
	dto := dateDTO(d)
	return &dto, nil
}

// Cycles computes every macro-cycle position for a canonical date. The
// Metonic position uses the Hebrew year directly when the input system is
// Hebrew and the documented approximate Gregorian offset otherwise.
func (s *Service) Cycles(text, tag string) (*CyclesResponse, error) {
	sys, ok := calendar.ParseSystem(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnknownCalendar, tag)
	}
	d, ok := calendar.Parse(sys, text)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a valid %s date", apperr.ErrBadDate, text, sys)
	}
	jdn, err := calendar.ToJDN(sys, d.Year, d.Month, d.Day)
	if err != nil {
		return nil, err
	}
	greg, err := calendar.FromJDN(calendar.Gregorian, jdn)
	if err != nil {
		return nil, err
	}

	var metonic cycles.MetonicPosition
	if sys == calendar.Hebrew {
		metonic = cycles.Metonic(d.Year)
	} else {
		metonic = cycles.MetonicFromGregorian(greg.Year)
	}

	return &CyclesResponse{
		Date:          dateDTO(d),
		JDN:           int64(jdn),
		Sexagenary:    cycles.Sexagenary(greg.Year),
		LongCount:     cycles.LongCount(jdn),
		CalendarRound: cycles.Round(jdn),
		Metonic:       metonic,
		Saros:         cycles.Saros(jdn),
		Yuga:          cycles.Yuga(greg.Year),
	}, nil
}

// Calendars describes the whole catalog. Month names are taken for a
// representative leap year so variable systems report their full set.
func (s *Service) Calendars() CalendarListResponse {
	out := CalendarListResponse{}
	for _, sys := range calendar.Systems() {
		out.Calendars = append(out.Calendars, CalendarInfo{
			Tag:        sys.String(),
			EpochJDN:   int64(calendar.Epoch(sys)),
			MonthCount: calendar.MonthsInYear(sys, 3),
			Months:     calendar.Names(sys, calendar.TierMonth),
			Era:        calendar.Era(sys),
		})
	}
	return out
}

// History returns the most recent recorded conversions.
func (s *Service) History(limit int) (*HistoryResponse, error) {
	if s.rec == nil {
		return &HistoryResponse{Conversions: []history.Conversion{}}, nil
	}
	items, err := s.rec.Recent(limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []history.Conversion{}
	}
	total, err := s.rec.Count()
	if err != nil {
		return nil, err
	}
	return &HistoryResponse{Conversions: items, Total: total}, nil
}
