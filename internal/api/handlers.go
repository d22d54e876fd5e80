package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/starford/jera/internal/apperr"
	"github.com/starford/jera/internal/calendar"
	"github.com/starford/jera/internal/verify"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// writeServiceErr maps service errors onto HTTP statuses: unknown tags and
// unparseable dates are 400, out-of-range dates 422, everything else 500.
func writeServiceErr(w http.ResponseWriter, err error) {
	var rangeErr *calendar.RangeError
	switch {
	case errors.Is(err, apperr.ErrUnknownCalendar), errors.Is(err, apperr.ErrBadDate):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.As(err, &rangeErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
	default:
		slog.Error("conversion failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// Convert handles POST /api/convert.
//
//	@Summary		Convert a date between calendar systems
//	@Tags			convert
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ConvertRequest	true	"Date to convert"
//	@Success		200		{object}	ConvertResponse
//	@Failure		400		{object}	errResponse
//	@Failure		422		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	resp, err := h.svc.Convert(req.Date, req.From, req.To)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ToJDN handles GET /api/jdn?date=&calendar=.
//
//	@Summary		Reduce a date to its Julian Day Number
//	@Tags			convert
//	@Produce		json
//	@Param			date		query	string	true	"Canonical date [-]YYYY-MM-DD"
//	@Param			calendar	query	string	false	"Calendar tag (default gregorian)"
//	@Success		200	{object}	map[string]int64
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/jdn [get]
func (h *Handler) ToJDN(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("date")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'date' is required"))
		return
	}
	tag := q.Get("calendar")
	if tag == "" {
		tag = calendar.Gregorian.String()
	}
	jdn, err := h.svc.ToJDN(text, tag)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jdn": jdn})
}

// FromJDN handles GET /api/date?jdn=&calendar=.
//
//	@Summary		Decode a Julian Day Number into a calendar date
//	@Tags			convert
//	@Produce		json
//	@Param			jdn			query	int		true	"Julian Day Number"
//	@Param			calendar	query	string	false	"Calendar tag (default gregorian)"
//	@Success		200	{object}	DateDTO
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/date [get]
func (h *Handler) FromJDN(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jdn, err := strconv.ParseInt(q.Get("jdn"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'jdn' must be an integer"))
		return
	}
	tag := q.Get("calendar")
	if tag == "" {
		tag = calendar.Gregorian.String()
	}
	dto, err := h.svc.FromJDN(jdn, tag)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// Cycles handles GET /api/cycles?date=&calendar=.
//
//	@Summary		Macro-cycle positions for a date
//	@Tags			cycles
//	@Produce		json
//	@Param			date		query	string	true	"Canonical date [-]YYYY-MM-DD"
//	@Param			calendar	query	string	false	"Calendar tag (default gregorian)"
//	@Success		200	{object}	CyclesResponse
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/cycles [get]
func (h *Handler) Cycles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text := q.Get("date")
	if text == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'date' is required"))
		return
	}
	tag := q.Get("calendar")
	if tag == "" {
		tag = calendar.Gregorian.String()
	}
	resp, err := h.svc.Cycles(text, tag)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Calendars handles GET /api/calendars.
//
//	@Summary		List the calendar catalog
//	@Tags			calendars
//	@Produce		json
//	@Success		200	{object}	CalendarListResponse
//	@Security		BearerAuth
//	@Router			/calendars [get]
func (h *Handler) Calendars(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Calendars())
}

// Verify handles GET /api/verify.
//
//	@Summary		Run the documented-epoch verification harness
//	@Tags			verify
//	@Produce		json
//	@Success		200	{object}	verify.Report
//	@Security		BearerAuth
//	@Router			/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, _ *http.Request) {
	rep := verify.Run()
	status := http.StatusOK
	if !rep.OK() {
		// A failed fact is a server-side defect, not a client error.
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, rep)
}

// History handles GET /api/history?limit=.
//
//	@Summary		Recent conversions performed through the service
//	@Tags			history
//	@Produce		json
//	@Param			limit	query	int	false	"Max results"
//	@Success		200	{object}	HistoryResponse
//	@Security		BearerAuth
//	@Router			/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	resp, err := h.svc.History(limit)
	if err != nil {
		slog.Error("history failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
