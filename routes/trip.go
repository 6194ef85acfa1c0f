package routes

import (
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeTrips restricts a query to publicly visible trips. Every public
// read path goes through it, so a deactivated trip disappears everywhere
// at once.
func activeTrips(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// tripViewUpsert keeps one row per (user, trip) pair and only bumps the
// timestamp on repeats.
func tripViewUpsert() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "trip_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
	}
}

// GET /v1/trips
func ListTrips(ctx iris.Context) {
	var trips []models.Trip
	if err := activeTrips(storage.DB).Order("id").Find(&trips).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(trips)
}

// GET /v1/trips/{id}
func GetTrip(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := activeTrips(storage.DB).First(&trip, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	ctx.JSON(trip)
}

// POST /v1/trips/{id}/view
func RecordTripView(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)
	if userID == 0 {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Login required.", ctx)
		return
	}

	tripID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := activeTrips(storage.DB).First(&trip, tripID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	view := models.TripView{UserID: userID, TripID: tripID, ViewedAt: time.Now().UTC()}
	err = storage.DB.Clauses(tripViewUpsert()).Create(&view).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"recorded": true})
}
