package routes

import (
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

type CreateBookingInput struct {
	TripID     uint   `json:"trip_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Persons    int    `json:"persons" validate:"required,min=1"`
	TravelDate string `json:"travel_date" validate:"required"`
}

// POST /v1/bookings/create
func CreateBooking(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Phone != "" && !utils.ValidatePhoneNumber(input.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number.", ctx)
		return
	}

	travelDate, dateErr := time.Parse("2006-01-02", input.TravelDate)
	if dateErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "travel_date must be YYYY-MM-DD.", ctx)
		return
	}
	if travelDate.Before(time.Now().Truncate(24 * time.Hour)) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Cannot book a trip in the past.", ctx)
		return
	}

	var trip models.Trip
	if err := activeTrips(storage.DB).First(&trip, input.TripID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Trip not found.", ctx)
		return
	}

	booking := newBooking(userID, trip, input)
	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	booking.Trip = trip
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// newBooking freezes the total at creation time; later price edits on the
// trip never touch it.
func newBooking(userID uint, trip models.Trip, input CreateBookingInput) models.Booking {
	return models.Booking{
		UserID:      userID,
		TripID:      trip.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       utils.NormalizePhoneNumber(input.Phone),
		Persons:     input.Persons,
		TotalAmount: trip.Price * float64(input.Persons),
		Status:      models.BookingStatusPending,
		TravelDate:  input.TravelDate,
	}
}

// GET /v1/bookings/my
func MyBookings(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var bookings []models.Booking
	if err := storage.DB.Preload("Trip").Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(bookings)
}
