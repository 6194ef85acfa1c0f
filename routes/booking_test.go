package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func TestNewBookingFreezesTotal(t *testing.T) {
	trip := models.Trip{Price: 1500}
	trip.ID = 9

	input := CreateBookingInput{
		TripID:     9,
		Name:       "Asha",
		Email:      "asha@example.com",
		Phone:      "+91 98765 43210",
		Persons:    3,
		TravelDate: "2027-01-10",
	}

	b := newBooking(42, trip, input)
	if b.TotalAmount != 4500 {
		t.Errorf("TotalAmount = %v, want 4500", b.TotalAmount)
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("Status = %q, want PENDING", b.Status)
	}
	if b.UserID != 42 || b.TripID != 9 {
		t.Errorf("unexpected owner/trip: user=%d trip=%d", b.UserID, b.TripID)
	}
	if b.Phone != "919876543210" {
		t.Errorf("Phone = %q, want normalized 919876543210", b.Phone)
	}
}

// buildBookingTestApp wires the create handler behind a stub identity
// middleware. The validation and date checks all run before any storage
// access, so the rejection paths need no database.
func buildBookingTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	bookings := app.Party("/v1/bookings", func(ctx iris.Context) {
		ctx.Values().Set("userID", uint(1))
		ctx.Next()
	})
	bookings.Post("/create", CreateBooking)

	app.Build()
	return app
}

func postBooking(t *testing.T, app *iris.Application, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	app := buildBookingTestApp()
	pastDate := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	cases := []struct {
		name string
		body string
	}{
		{"zero persons", `{"trip_id":1,"name":"A","email":"a@b.com","persons":0,"travel_date":"2030-01-01"}`},
		{"negative persons", `{"trip_id":1,"name":"A","email":"a@b.com","persons":-2,"travel_date":"2030-01-01"}`},
		{"missing trip", `{"name":"A","email":"a@b.com","persons":2,"travel_date":"2030-01-01"}`},
		{"malformed date", `{"trip_id":1,"name":"A","email":"a@b.com","persons":2,"travel_date":"tomorrow"}`},
		{"past date", `{"trip_id":1,"name":"A","email":"a@b.com","persons":2,"travel_date":"` + pastDate + `"}`},
		{"bad phone", `{"trip_id":1,"name":"A","email":"a@b.com","phone":"12345","persons":2,"travel_date":"2030-01-01"}`},
	}
	for _, tc := range cases {
		if resp := postBooking(t, app, tc.body); resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, resp.Code)
		}
	}
}

func TestBookingDateToFilterIsInclusive(t *testing.T) {
	to, ok := parseFilterDate("2026-03-15")
	if !ok {
		t.Fatal("expected 2026-03-15 to parse")
	}
	end := to.AddDate(0, 0, 1)

	lateSameDay := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	if !lateSameDay.Before(end) {
		t.Error("booking created late on the date_to day should match the filter")
	}
	nextDay := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	if nextDay.Before(end) {
		t.Error("booking created the following day should not match the filter")
	}

	if _, ok := parseFilterDate(""); ok {
		t.Error("empty value should drop the filter")
	}
	if _, ok := parseFilterDate("15/03/2026"); ok {
		t.Error("malformed value should drop the filter")
	}
}

func TestIsDecisionStatus(t *testing.T) {
	if !isDecisionStatus(models.BookingStatusApproved) {
		t.Error("APPROVED should be a valid decision")
	}
	if !isDecisionStatus(models.BookingStatusDeclined) {
		t.Error("DECLINED should be a valid decision")
	}

	for _, status := range []string{models.BookingStatusPending, "CANCELLED", "approved", ""} {
		if isDecisionStatus(status) {
			t.Errorf("%q should not be a valid decision", status)
		}
	}
}

func TestToJSONList(t *testing.T) {
	if got := string(toJSONList(nil)); got != "[]" {
		t.Errorf("toJSONList(nil) = %s, want []", got)
	}
	if got := string(toJSONList([]string{"Day 1", "Day 2"})); got != `["Day 1","Day 2"]` {
		t.Errorf("unexpected encoding: %s", got)
	}
}
