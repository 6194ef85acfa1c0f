package routes

import (
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/kataras/iris/v12"
)

// GET /v1/admin/stats — dashboard counters
func AdminStats(ctx iris.Context) {
	var activeTrips int64
	storage.DB.Model(&models.Trip{}).Where("is_active = ?", true).Count(&activeTrips)
	var pendingBookings int64
	storage.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pendingBookings)
	var pendingReviews int64
	storage.DB.Model(&models.Review{}).Where("is_approved = ?", false).Count(&pendingReviews)
	var totalUsers int64
	storage.DB.Model(&models.User{}).Count(&totalUsers)

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var newBookings7, newBookings30 int64
	storage.DB.Model(&models.Booking{}).Where("created_at >= ?", since7).Count(&newBookings7)
	storage.DB.Model(&models.Booking{}).Where("created_at >= ?", since30).Count(&newBookings30)
	var newEnquiries7 int64
	storage.DB.Model(&models.Enquiry{}).Where("created_at >= ?", since7).Count(&newEnquiries7)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"active_trips":     activeTrips,
			"pending_bookings": pendingBookings,
			"pending_reviews":  pendingReviews,
			"total_users":      totalUsers,
			"new_bookings_7d":  newBookings7,
			"new_bookings_30d": newBookings30,
			"new_enquiries_7d": newEnquiries7,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// GET /v1/admin/activity — recent audit trail
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs, "meta": iris.Map{}, "links": iris.Map{}})
}
