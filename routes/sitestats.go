package routes

import (
	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/site-stats
func ListSiteStats(ctx iris.Context) {
	var stats []models.SiteStat
	if err := storage.DB.Order("display_order ASC, id ASC").Find(&stats).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(stats)
}
