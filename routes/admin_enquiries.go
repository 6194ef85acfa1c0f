package routes

import (
	"net/http"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/admin/enquiries?trip_id=&page=&per_page=
func AdminListEnquiries(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Enquiry{})
	if tripID := ctx.URLParamDefault("trip_id", ""); tripID != "" {
		q = q.Where("trip_id = ?", tripID)
	}

	var total int64
	q.Count(&total)

	var enquiries []models.Enquiry
	if err := q.Preload("Trip").Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&enquiries).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, enquiries, page, perPage, total)
}

// DELETE /v1/admin/enquiries/:id — the only mutation enquiries allow
func AdminDeleteEnquiry(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var enquiry models.Enquiry
	if err := storage.DB.First(&enquiry, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "enquiry not found")
		return
	}

	if err := storage.DB.Delete(&enquiry).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "enquiry.delete", "enquiry", enquiry.ID, enquiry, nil)

	ctx.JSON(iris.Map{"deleted": true})
}
