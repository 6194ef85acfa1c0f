package routes

import (
	"errors"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// GET /v1/international-trips
func GetInternationalTrips(ctx iris.Context) {
	sectionResponse(ctx, models.InternationalSectionID)
}

// GET /v1/india-trips
func GetIndiaTrips(ctx iris.Context) {
	sectionResponse(ctx, models.IndiaSectionID)
}

func sectionResponse(ctx iris.Context, sectionID uint) {
	cfg, err := loadSectionConfig(sectionID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// A disabled section leaks nothing beyond the flag itself.
	if !cfg.IsEnabled {
		ctx.JSON(iris.Map{
			"config": iris.Map{"is_enabled": false},
			"trips":  []models.Trip{},
		})
		return
	}

	var trips []models.Trip
	if err := sectionTripsQuery(sectionID).Find(&trips).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"config": cfg, "trips": trips})
}

// sectionTripsQuery filters jointly on is_active, the section's
// international/India flag and the show-in-section flag, ordered by the
// per-section display order with id descending as tie-break.
func sectionTripsQuery(sectionID uint) *gorm.DB {
	q := storage.DB.Model(&models.Trip{}).Where("is_active = ?", true)
	if sectionID == models.InternationalSectionID {
		return q.Where("is_international = ? AND show_in_international_section = ?", true, true).
			Order("display_order ASC, id DESC")
	}
	return q.Where("is_international = ? AND show_in_india_section = ?", false, true).
		Order("india_display_order ASC, id DESC")
}

// loadSectionConfig is get-or-create on a fixed primary key. Two concurrent
// first accesses may both try the insert; the primary-key constraint lets one
// win and the loser re-reads.
func loadSectionConfig(sectionID uint) (models.SectionConfig, error) {
	var cfg models.SectionConfig
	err := storage.DB.Where("id = ?", sectionID).First(&cfg).Error
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cfg, err
	}

	cfg = defaultSectionConfig(sectionID)
	if createErr := storage.DB.Create(&cfg).Error; createErr != nil {
		if readErr := storage.DB.Where("id = ?", sectionID).First(&cfg).Error; readErr != nil {
			return cfg, createErr
		}
	}
	return cfg, nil
}

func defaultSectionConfig(sectionID uint) models.SectionConfig {
	if sectionID == models.InternationalSectionID {
		return models.SectionConfig{
			ID:          models.InternationalSectionID,
			IsEnabled:   true,
			Title:       "International Getaways",
			Subtitle:    "Handpicked journeys beyond the border",
			ScrollSpeed: 40,
		}
	}
	return models.SectionConfig{
		ID:          models.IndiaSectionID,
		IsEnabled:   true,
		Title:       "Incredible India",
		Subtitle:    "Explore the best of the subcontinent",
		ScrollSpeed: 40,
	}
}
