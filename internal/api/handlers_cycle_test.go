package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/liora-app/liora/internal/models"
	"github.com/liora-app/liora/internal/services"
)

func TestGetCycleDayInfo_ExplicitLutealScenario(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "")
	body := requestGET(t, app,
		"/cycle/day-info?query_date=2024-03-10&last_period_start_date=2024-02-15&cycle_length=28&period_length=5",
		http.StatusOK)

	var info models.DayInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if got := info.Date.String(); got != "2024-03-10" {
		t.Fatalf("expected date 2024-03-10, got %s", got)
	}
	if info.CycleDay != 25 {
		t.Fatalf("expected cycle day 25, got %d", info.CycleDay)
	}
	if info.Phase != models.PhaseLuteal {
		t.Fatalf("expected luteal, got %s", info.Phase)
	}
	if info.Details != nil {
		t.Fatalf("expected no details, got %+v", info.Details)
	}
	if !strings.Contains(body, `"details":null`) {
		t.Fatalf("expected details serialized as null, got %s", body)
	}
}

func TestGetCycleDayInfo_DefaultsUsePinnedClock(t *testing.T) {
	t.Parallel()

	// Pinned today 2025-06-15; default anchor is 28 days earlier, so the
	// default request lands exactly on cycle day 1.
	app := newTestApp(t, "2025-06-15")
	body := requestGET(t, app, "/cycle/day-info", http.StatusOK)

	var info models.DayInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if got := info.Date.String(); got != "2025-06-15" {
		t.Fatalf("expected date 2025-06-15, got %s", got)
	}
	if info.CycleDay != 1 {
		t.Fatalf("expected cycle day 1, got %d", info.CycleDay)
	}
	if info.Phase != models.PhaseMenstrual {
		t.Fatalf("expected menstrual, got %s", info.Phase)
	}
}

func TestGetCycleDayInfo_IncludeDetails(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "")
	body := requestGET(t, app,
		"/cycle/day-info?query_date=2025-05-01&last_period_start_date=2025-05-01&include_details=true",
		http.StatusOK)

	var info models.DayInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if info.CycleDay != 1 {
		t.Fatalf("expected cycle day 1, got %d", info.CycleDay)
	}
	if info.Phase != models.PhaseMenstrual {
		t.Fatalf("expected menstrual, got %s", info.Phase)
	}
	if info.Details == nil {
		t.Fatal("expected details to be present")
	}
	if *info.Details != services.PhaseDetailsFor(models.PhaseMenstrual) {
		t.Fatalf("expected menstrual details, got %+v", *info.Details)
	}
}

func TestGetCycleDayInfo_FutureAnchorRejected(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "2025-06-15")
	body := requestGET(t, app,
		"/cycle/day-info?last_period_start_date=2026-06-15",
		http.StatusBadRequest)

	detail := decodeDetail(t, body)
	if detail != "The last period start date cannot be in the future." {
		t.Fatalf("unexpected detail: %q", detail)
	}
}

func TestGetCycleDayInfo_CycleLengthOutOfRange(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "")
	body := requestGET(t, app, "/cycle/day-info?cycle_length=40", http.StatusUnprocessableEntity)

	detail := decodeDetail(t, body)
	if !strings.Contains(detail, "cycle_length") {
		t.Fatalf("expected cycle_length mentioned, got %q", detail)
	}
}

func TestGetCycleDayInfo_MalformedParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
	}{
		{name: "bad query date", query: "query_date=not-a-date"},
		{name: "bad anchor date", query: "last_period_start_date=2024-13-45"},
		{name: "non-integer cycle length", query: "cycle_length=four"},
		{name: "cycle length below range", query: "cycle_length=20"},
		{name: "zero period length", query: "period_length=0"},
		{name: "non-integer period length", query: "period_length=five"},
		{name: "non-boolean include details", query: "include_details=banana"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			app := newTestApp(t, "")
			body := requestGET(t, app, "/cycle/day-info?"+testCase.query, http.StatusUnprocessableEntity)
			if decodeDetail(t, body) == "" {
				t.Fatalf("expected a detail message, got %s", body)
			}
		})
	}
}

func TestGetCycleDayInfo_PeriodLongerThanCycleRejected(t *testing.T) {
	t.Parallel()

	// period_length has no upper bound at the transport tier, so this reaches
	// the calculator and comes back as a 400 invalid argument.
	app := newTestApp(t, "")
	body := requestGET(t, app,
		"/cycle/day-info?query_date=2024-03-10&last_period_start_date=2024-03-01&cycle_length=21&period_length=30",
		http.StatusBadRequest)

	detail := decodeDetail(t, body)
	if !strings.Contains(detail, "period length cannot be longer than cycle length") {
		t.Fatalf("unexpected detail: %q", detail)
	}
}

func TestGetCycleDayInfo_Idempotent(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "")
	path := "/cycle/day-info?query_date=2024-03-10&last_period_start_date=2024-02-15&include_details=true"

	first := requestGET(t, app, path, http.StatusOK)
	second := requestGET(t, app, path, http.StatusOK)
	if first != second {
		t.Fatalf("expected byte-identical responses, got %s and %s", first, second)
	}
}

func decodeDetail(t *testing.T, body string) string {
	t.Helper()

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode error payload failed: %v (body: %s)", err, body)
	}
	return payload.Detail
}
