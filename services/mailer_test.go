package services

import (
	"testing"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusEmailApproved(t *testing.T) {
	booking := models.Booking{
		Name:        "Asha",
		Persons:     3,
		TotalAmount: 300,
		Status:      models.BookingStatusApproved,
		Trip:        models.Trip{Title: "Golden Triangle"},
	}

	subject, textBody, htmlBody := BookingStatusEmail(booking)

	assert.Contains(t, subject, "Golden Triangle")
	assert.Contains(t, subject, "confirmed")
	assert.Contains(t, textBody, "approved")
	assert.Contains(t, htmlBody, "<strong>approved</strong>")
	assert.Contains(t, textBody, "300.00")
}

func TestBookingStatusEmailDeclined(t *testing.T) {
	booking := models.Booking{
		Name:      "Ravi",
		Status:    models.BookingStatusDeclined,
		AdminNote: "No availability for the selected date.",
		Trip:      models.Trip{Title: "Kerala Backwaters"},
	}

	subject, textBody, htmlBody := BookingStatusEmail(booking)

	assert.Contains(t, subject, "Update on your booking")
	assert.Contains(t, textBody, "could not be confirmed")
	assert.Contains(t, textBody, booking.AdminNote)
	assert.Contains(t, htmlBody, booking.AdminNote)
}

func TestBookingStatusEmailFallsBackToTripID(t *testing.T) {
	booking := models.Booking{
		Name:   "Meera",
		TripID: 42,
		Status: models.BookingStatusApproved,
	}

	subject, _, _ := BookingStatusEmail(booking)
	assert.Contains(t, subject, "trip #42")
}

func TestSendBookingStatusEmailRequiresRecipient(t *testing.T) {
	m := NewMailer()
	err := m.SendBookingStatusEmail(models.Booking{Status: models.BookingStatusApproved})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contact email")
}
