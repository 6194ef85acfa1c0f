package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/services"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var decisionStatuses = []string{models.BookingStatusApproved, models.BookingStatusDeclined}

// parseFilterDate parses a YYYY-MM-DD query value; malformed or empty
// values simply drop the filter.
func parseFilterDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GET /v1/admin/bookings?status=&trip_id=&date_from=&date_to=&page=&per_page=
func AdminListBookings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Booking{})
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}
	if tripID := ctx.URLParamDefault("trip_id", ""); tripID != "" {
		q = q.Where("trip_id = ?", tripID)
	}
	if from, ok := parseFilterDate(ctx.URLParamDefault("date_from", "")); ok {
		q = q.Where("created_at >= ?", from)
	}
	if to, ok := parseFilterDate(ctx.URLParamDefault("date_to", "")); ok {
		// Inclusive end date: anything created during the date_to day counts.
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	q.Count(&total)

	var bookings []models.Booking
	if err := q.Preload("Trip").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, bookings, page, perPage, total)
}

// PATCH /v1/admin/bookings/:id/status { status, admin_note }
//
// The status flip is persisted first; the notification email is attempted
// afterwards and its failure only downgrades the response to a warning.
func AdminUpdateBookingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Status    string `json:"status"`
		AdminNote string `json:"admin_note"`
	}
	if err := ctx.ReadJSON(&body); err != nil || !isDecisionStatus(body.Status) {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_status", "status must be APPROVED or DECLINED")
		return
	}

	var booking models.Booking
	if err := storage.DB.Preload("Trip").First(&booking, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "booking not found")
		return
	}

	// Approved and declined are terminal; there is no revert path.
	if booking.Status != models.BookingStatusPending {
		utils.JSONError(ctx, http.StatusBadRequest, "not_pending", "booking has already been decided")
		return
	}

	before := booking
	booking.Status = body.Status
	booking.AdminNote = body.AdminNote
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "booking.status_update", "booking", booking.ID, before, booking)

	emailSent := true
	var warning string
	if mailErr := services.NewMailer().SendBookingStatusEmail(booking); mailErr != nil {
		emailSent = false
		warning = "status saved but notification email failed: " + mailErr.Error()
		log.Printf("booking %d: notification email failed: %v", booking.ID, mailErr)
	}

	resp := iris.Map{"data": booking, "email_sent": emailSent}
	if warning != "" {
		resp["warning"] = warning
	}
	ctx.JSON(resp)
}

func isDecisionStatus(status string) bool {
	return slices.Contains(decisionStatuses, status)
}
