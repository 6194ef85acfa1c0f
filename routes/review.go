package routes

import (
	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

type CreateReviewInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Location string `json:"location" validate:"max=100"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Body     string `json:"body" validate:"required"`
}

// GET /v1/reviews — only approved reviews are public
func ListReviews(ctx iris.Context) {
	var reviews []models.Review
	if err := storage.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(reviews)
}

// POST /v1/reviews — submissions wait for admin approval
func CreateReview(ctx iris.Context) {
	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	review := models.Review{
		Name:     input.Name,
		Location: input.Location,
		Rating:   input.Rating,
		Body:     input.Body,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}
