package routes

import (
	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

type CreateEnquiryInput struct {
	TripID  uint   `json:"trip_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// POST /v1/enquiries — open to anonymous callers; a logged-in caller gets the
// enquiry attached to their account.
func CreateEnquiry(ctx iris.Context) {
	var input CreateEnquiryInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Phone != "" && !utils.ValidatePhoneNumber(input.Phone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number.", ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("is_active = ?", true).First(&trip, input.TripID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	enquiry := models.Enquiry{
		TripID:  input.TripID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   utils.NormalizePhoneNumber(input.Phone),
		Message: input.Message,
	}
	if userID := utils.CurrentUserID(ctx); userID != 0 {
		enquiry.UserID = &userID
	}

	if err := storage.DB.Create(&enquiry).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(enquiry)
}

// GET /v1/my-enquiries
func MyEnquiries(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	var enquiries []models.Enquiry
	if err := storage.DB.Preload("Trip").Where("user_id = ?", userID).Order("created_at DESC").Find(&enquiries).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(enquiries)
}
