package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP_HOST is not configured")

// Mailer sends transactional mail over SMTP. Configuration via SMTP_HOST,
// SMTP_PORT, SMTP_USER, SMTP_PASSWORD and EMAIL_FROM.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer() *Mailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("EMAIL_FROM"),
	}
}

func (m *Mailer) Send(subject, textBody, htmlBody, to string) error {
	if m.host == "" {
		return ErrMailerNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// SendBookingStatusEmail tells the customer their booking was approved or
// declined. Callers decide what to do when sending fails; the status change
// itself is already persisted by then.
func (m *Mailer) SendBookingStatusEmail(booking models.Booking) error {
	if booking.Email == "" {
		return errors.New("booking has no contact email")
	}
	subject, textBody, htmlBody := BookingStatusEmail(booking)
	return m.Send(subject, textBody, htmlBody, booking.Email)
}

// BookingStatusEmail renders one of two templates selected by the outcome.
func BookingStatusEmail(booking models.Booking) (subject, textBody, htmlBody string) {
	tripTitle := booking.Trip.Title
	if tripTitle == "" {
		tripTitle = fmt.Sprintf("trip #%d", booking.TripID)
	}

	if booking.Status == models.BookingStatusApproved {
		subject = fmt.Sprintf("Your booking for %s is confirmed!", tripTitle)
		textBody = fmt.Sprintf(
			"Hi %s,\n\nGreat news! Your booking for %s (%d traveller(s), total %.2f) has been approved.\n",
			booking.Name, tripTitle, booking.Persons, booking.TotalAmount)
		htmlBody = fmt.Sprintf(
			"<p>Hi %s,</p><p>Great news! Your booking for <strong>%s</strong> (%d traveller(s), total %.2f) has been <strong>approved</strong>.</p>",
			booking.Name, tripTitle, booking.Persons, booking.TotalAmount)
	} else {
		subject = fmt.Sprintf("Update on your booking for %s", tripTitle)
		textBody = fmt.Sprintf(
			"Hi %s,\n\nWe are sorry, your booking for %s could not be confirmed.\n",
			booking.Name, tripTitle)
		htmlBody = fmt.Sprintf(
			"<p>Hi %s,</p><p>We are sorry, your booking for <strong>%s</strong> could not be confirmed.</p>",
			booking.Name, tripTitle)
	}

	if booking.AdminNote != "" {
		textBody += "\nNote from our team: " + booking.AdminNote + "\n"
		htmlBody += "<p>Note from our team: " + booking.AdminNote + "</p>"
	}
	textBody += "\nThe TravelSource Team"
	htmlBody += "<p>The TravelSource Team</p>"
	return subject, textBody, htmlBody
}
