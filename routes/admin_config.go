package routes

import (
	"errors"
	"net/http"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/admin/international-config
func AdminGetInternationalConfig(ctx iris.Context) {
	adminGetSectionConfig(ctx, models.InternationalSectionID)
}

// PATCH /v1/admin/international-config
func AdminUpdateInternationalConfig(ctx iris.Context) {
	adminUpdateSectionConfig(ctx, models.InternationalSectionID, "international_config")
}

// GET /v1/admin/india-config
func AdminGetIndiaConfig(ctx iris.Context) {
	adminGetSectionConfig(ctx, models.IndiaSectionID)
}

// PATCH /v1/admin/india-config
func AdminUpdateIndiaConfig(ctx iris.Context) {
	adminUpdateSectionConfig(ctx, models.IndiaSectionID, "india_config")
}

type SectionConfigPatch struct {
	IsEnabled   *bool   `json:"is_enabled"`
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	ScrollSpeed *int    `json:"scroll_speed"`
}

// applySectionConfigPatch copies the provided fields onto the config. The
// scroll speed drives the showcase animation duration, so zero and negative
// values are rejected instead of stored.
func applySectionConfigPatch(cfg *models.SectionConfig, body SectionConfigPatch) error {
	if body.ScrollSpeed != nil && *body.ScrollSpeed < 1 {
		return errors.New("scroll_speed must be at least 1.")
	}
	if body.IsEnabled != nil {
		cfg.IsEnabled = *body.IsEnabled
	}
	if body.Title != nil {
		cfg.Title = *body.Title
	}
	if body.Subtitle != nil {
		cfg.Subtitle = *body.Subtitle
	}
	if body.ScrollSpeed != nil {
		cfg.ScrollSpeed = *body.ScrollSpeed
	}
	return nil
}

func adminGetSectionConfig(ctx iris.Context, sectionID uint) {
	cfg, err := loadSectionConfig(sectionID)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(iris.Map{"data": cfg})
}

func adminUpdateSectionConfig(ctx iris.Context, sectionID uint, resourceType string) {
	cfg, err := loadSectionConfig(sectionID)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	var body SectionConfigPatch
	if err := ctx.ReadJSON(&body); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := cfg
	if err := applySectionConfigPatch(&cfg, body); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
		return
	}

	if err := storage.DB.Save(&cfg).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, resourceType+".update", resourceType, cfg.ID, before, cfg)

	ctx.JSON(iris.Map{"data": cfg})
}
