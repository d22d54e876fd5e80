package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starford/jera/internal/testutil"
)

// testEnv builds a service backed by a temp history database and its
// router. An empty token runs in disabled auth mode.
func testEnv(t *testing.T, authToken string) (*Service, http.Handler) {
	t.Helper()
	db := testutil.TestDB(t)
	svc := NewService(db)
	router := NewRouter(svc, authToken != "", authToken)
	return svc, router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return v
}

func TestConvertEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodPost, "/convert", ConvertRequest{
		Date: "2000-01-01", From: "gregorian", To: "julian",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[ConvertResponse](t, rec)
	if resp.JDN != 2451545 {
		t.Errorf("jdn = %d, want 2451545", resp.JDN)
	}
	if resp.To.Canonical != "1999-12-19" {
		t.Errorf("julian date = %q, want 1999-12-19", resp.To.Canonical)
	}
	if resp.Weekday != "Saturday" {
		t.Errorf("weekday = %q, want Saturday", resp.Weekday)
	}
	if resp.From.Era != "CE" || resp.From.MonthName != "January" {
		t.Errorf("from dto = %+v", resp.From)
	}
}

func TestConvertRecordsHistory(t *testing.T) {
	_, router := testEnv(t, "")

	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodPost, "/convert", ConvertRequest{
			Date: "2024-02-10", From: "gregorian", To: "hebrew",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("convert failed: %s", rec.Body.String())
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	resp := decode[HistoryResponse](t, rec)
	if resp.Total != 2 || len(resp.Conversions) != 2 {
		t.Fatalf("history = %+v", resp)
	}
	if resp.Conversions[0].FromSystem != "gregorian" || resp.Conversions[0].ToSystem != "hebrew" {
		t.Errorf("recorded row = %+v", resp.Conversions[0])
	}
}

func TestConvertValidation(t *testing.T) {
	_, router := testEnv(t, "")

	cases := []struct {
		name string
		req  ConvertRequest
		code int
	}{
		{"missing date", ConvertRequest{From: "gregorian", To: "julian"}, http.StatusBadRequest},
		{"loose format", ConvertRequest{Date: "2024-2-1", From: "gregorian", To: "julian"}, http.StatusBadRequest},
		{"unknown from", ConvertRequest{Date: "2024-02-01", From: "klingon", To: "julian"}, http.StatusBadRequest},
		{"unknown to", ConvertRequest{Date: "2024-02-01", From: "gregorian", To: "klingon"}, http.StatusBadRequest},
		{"invalid day", ConvertRequest{Date: "2024-02-30", From: "gregorian", To: "julian"}, http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := doJSON(t, router, http.MethodPost, "/convert", c.req)
		if rec.Code != c.code {
			t.Errorf("%s: status = %d, want %d (body: %s)", c.name, rec.Code, c.code, rec.Body.String())
		}
	}
}

func TestConvertRejectsBadJSON(t *testing.T) {
	_, router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestJDNEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/jdn?date=2000-01-01", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[map[string]int64](t, rec)
	if resp["jdn"] != 2451545 {
		t.Errorf("jdn = %d", resp["jdn"])
	}

	rec = doJSON(t, router, http.MethodGet, "/jdn?date=1402-11-21&calendar=persian", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("persian status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/jdn", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing date: status = %d", rec.Code)
	}
}

func TestDateEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/date?jdn=2451545&calendar=gregorian", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[DateDTO](t, rec)
	if resp.Canonical != "2000-01-01" || resp.Calendar != "gregorian" {
		t.Errorf("dto = %+v", resp)
	}

	rec = doJSON(t, router, http.MethodGet, "/date?jdn=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad jdn: status = %d", rec.Code)
	}
}

func TestCyclesEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/cycles?date=2012-12-21", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decode[CyclesResponse](t, rec)
	if resp.JDN != 2456283 || resp.LongCount.Baktun != 13 {
		t.Errorf("cycles = %+v", resp)
	}
	if resp.Sexagenary.Position == 0 || resp.Sexagenary.Combined == "" {
		t.Errorf("sexagenary = %+v", resp.Sexagenary)
	}
	if resp.Yuga.AgeName == "" {
		t.Errorf("yuga = %+v", resp.Yuga)
	}
}

func TestCalendarsEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/calendars", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[CalendarListResponse](t, rec)
	if len(resp.Calendars) != 17 {
		t.Fatalf("catalog size = %d, want 17", len(resp.Calendars))
	}
	byTag := map[string]CalendarInfo{}
	for _, c := range resp.Calendars {
		byTag[c.Tag] = c
	}
	if byTag["gregorian"].EpochJDN != 1721426 {
		t.Errorf("gregorian epoch = %d", byTag["gregorian"].EpochJDN)
	}
	if byTag["hebrew"].MonthCount != 13 {
		t.Errorf("hebrew month count = %d, want the full leap set", byTag["hebrew"].MonthCount)
	}
	if byTag["mayan-long-count"].EpochJDN != 584283 {
		t.Errorf("long count epoch = %d", byTag["mayan-long-count"].EpochJDN)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/verify", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Passed int `json:"passed"`
		Failed int `json:"failed"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Failed != 0 || resp.Passed == 0 {
		t.Errorf("verify report: %+v", resp)
	}
}

func TestRangeErrorIs422(t *testing.T) {
	_, router := testEnv(t, "")

	// Well-formed day numbers outside the supported range, up to the
	// int64 limits. The extreme values must come back as a prompt 422,
	// not hang in the year search.
	for _, jdn := range []string{"99999999", "9223372036854775807", "-9223372036854775808"} {
		rec := doJSON(t, router, http.MethodGet, "/date?jdn="+jdn+"&calendar=hebrew", nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("jdn=%s: status = %d, want 422 (body: %s)", jdn, rec.Code, rec.Body.String())
		}
	}
}

func TestAuthDisabled(t *testing.T) {
	_, router := testEnv(t, "")

	rec := doJSON(t, router, http.MethodGet, "/calendars", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("disabled auth should pass: %d", rec.Code)
	}
}

func TestAuthToken(t *testing.T) {
	_, router := testEnv(t, "sekrit")

	rec := doJSON(t, router, http.MethodGet, "/calendars", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/calendars", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", rec2.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/calendars", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec3 := httptest.NewRecorder()
	router.ServeHTTP(rec3, req)
	if rec3.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", rec3.Code)
	}
}

func TestHistoryDisabled(t *testing.T) {
	svc := NewService(nil)
	router := NewRouter(svc, false, "")

	// Conversions still work without a recorder.
	rec := doJSON(t, router, http.MethodPost, "/convert", ConvertRequest{
		Date: "2000-01-01", From: "gregorian", To: "islamic",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("convert without history: %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	resp := decode[HistoryResponse](t, rec)
	if resp.Total != 0 || len(resp.Conversions) != 0 {
		t.Errorf("stateless history = %+v", resp)
	}
}
