package routes

import (
	"net/http"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/admin/reviews?approved=&page=&per_page=
func AdminListReviews(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Review{})
	if approved := ctx.URLParamDefault("approved", ""); approved != "" {
		q = q.Where("is_approved = ?", approved == "true")
	}

	var total int64
	q.Count(&total)

	var reviews []models.Review
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, reviews, page, perPage, total)
}

// PATCH /v1/admin/reviews/:id { is_approved }
func AdminModerateReview(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		IsApproved *bool `json:"is_approved"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.IsApproved == nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "is_approved is required")
		return
	}

	var review models.Review
	if err := storage.DB.First(&review, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "review not found")
		return
	}

	before := review
	review.IsApproved = *body.IsApproved
	if err := storage.DB.Save(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "review.moderate", "review", review.ID, before, review)

	ctx.JSON(iris.Map{"data": review})
}

// DELETE /v1/admin/reviews/:id
func AdminDeleteReview(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var review models.Review
	if err := storage.DB.First(&review, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "review not found")
		return
	}

	if err := storage.DB.Delete(&review).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "review.delete", "review", review.ID, review, nil)

	ctx.JSON(iris.Map{"deleted": true})
}
