package routes

import (
	"net/http"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

type SiteStatInput struct {
	Label        string `json:"label" validate:"required,max=100"`
	Value        int    `json:"value" validate:"required,min=0"`
	Suffix       string `json:"suffix" validate:"max=10"`
	DisplayOrder int    `json:"display_order"`
}

// POST /v1/admin/site-stats
func AdminCreateSiteStat(ctx iris.Context) {
	var input SiteStatInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	stat := models.SiteStat{
		Label:        input.Label,
		Value:        input.Value,
		Suffix:       input.Suffix,
		DisplayOrder: input.DisplayOrder,
	}
	if err := storage.DB.Create(&stat).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "site_stat.create", "site_stat", stat.ID, nil, stat)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": stat})
}

// PATCH /v1/admin/site-stats/:id
func AdminUpdateSiteStat(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var stat models.SiteStat
	if err := storage.DB.First(&stat, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "site stat not found")
		return
	}

	var body struct {
		Label        *string `json:"label"`
		Value        *int    `json:"value"`
		Suffix       *string `json:"suffix"`
		DisplayOrder *int    `json:"display_order"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := stat
	if body.Label != nil {
		stat.Label = *body.Label
	}
	if body.Value != nil {
		stat.Value = *body.Value
	}
	if body.Suffix != nil {
		stat.Suffix = *body.Suffix
	}
	if body.DisplayOrder != nil {
		stat.DisplayOrder = *body.DisplayOrder
	}

	if err := storage.DB.Save(&stat).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "site_stat.update", "site_stat", stat.ID, before, stat)

	ctx.JSON(iris.Map{"data": stat})
}

// DELETE /v1/admin/site-stats/:id
func AdminDeleteSiteStat(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var stat models.SiteStat
	if err := storage.DB.First(&stat, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "site stat not found")
		return
	}

	if err := storage.DB.Delete(&stat).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "site_stat.delete", "site_stat", stat.ID, stat, nil)

	ctx.JSON(iris.Map{"deleted": true})
}
