package routes

import (
	"github.com/Rudrakshsachdev/TravelSource/services"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/recommendations?exclude=1,2,3
//
// Authenticated callers get the price-band heuristic fed by their view
// history; anonymous callers just get active trips minus the IDs the client
// already shows.
func GetRecommendations(ctx iris.Context) {
	userID := utils.CurrentUserID(ctx)

	if userID == 0 {
		excludeIDs := services.ParseExcludeIDs(ctx.URLParamDefault("exclude", ""))
		trips, err := services.RecommendForAnonymous(excludeIDs)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		ctx.JSON(trips)
		return
	}

	trips, err := services.RecommendForUser(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(trips)
}
