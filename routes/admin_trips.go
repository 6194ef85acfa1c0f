package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type TripInput struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Location         string   `json:"location" validate:"required,max=100"`
	Country          string   `json:"country" validate:"max=100"`
	State            string   `json:"state" validate:"max=100"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	DurationDays     int      `json:"duration_days" validate:"required,min=1"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description" validate:"max=300"`
	Itinerary        []string `json:"itinerary"`
	Highlights       []string `json:"highlights"`
	Inclusions       []string `json:"inclusions"`
	Exclusions       []string `json:"exclusions"`
	Image            string   `json:"image"`

	IsActive                   *bool `json:"is_active"`
	IsInternational            *bool `json:"is_international"`
	ShowInInternationalSection *bool `json:"show_in_international_section"`
	DisplayOrder               *int  `json:"display_order"`
	ShowInIndiaSection         *bool `json:"show_in_india_section"`
	IndiaDisplayOrder          *int  `json:"india_display_order"`
}

// GET /v1/admin/trips?q=&active=&page=&per_page= — includes inactive trips
func AdminListTrips(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	query := storage.DB.Model(&models.Trip{})
	if q := strings.TrimSpace(ctx.URLParamDefault("q", "")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(location) LIKE ? OR lower(country) LIKE ?", like, like, like)
	}
	if active := ctx.URLParamDefault("active", ""); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	query.Count(&total)

	var trips []models.Trip
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&trips).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, trips, page, perPage, total)
}

// POST /v1/admin/trips
func AdminCreateTrip(ctx iris.Context) {
	var input TripInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	trip := models.Trip{
		Title:            input.Title,
		Location:         input.Location,
		Country:          input.Country,
		State:            input.State,
		Price:            input.Price,
		DurationDays:     input.DurationDays,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Itinerary:        toJSONList(input.Itinerary),
		Highlights:       toJSONList(input.Highlights),
		Inclusions:       toJSONList(input.Inclusions),
		Exclusions:       toJSONList(input.Exclusions),
		Image:            input.Image,
		IsActive:         true,
	}
	applyTripFlags(&trip, &input)

	if err := storage.DB.Create(&trip).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "trip.create", "trip", trip.ID, nil, trip)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": trip})
}

// GET /v1/admin/trips/:id
func AdminGetTrip(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := storage.DB.First(&trip, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "trip not found")
		return
	}
	ctx.JSON(iris.Map{"data": trip, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /v1/admin/trips/:id — partial update
func AdminUpdateTrip(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := storage.DB.First(&trip, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	var input UpdateTripInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := trip
	input.apply(&trip)

	if err := storage.DB.Save(&trip).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "trip.update", "trip", trip.ID, before, trip)

	ctx.JSON(iris.Map{"data": trip})
}

// DELETE /v1/admin/trips/:id
func AdminDeleteTrip(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := storage.DB.First(&trip, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	if err := storage.DB.Delete(&trip).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "trip.delete", "trip", trip.ID, trip, nil)

	ctx.JSON(iris.Map{"deleted": true})
}

// POST /v1/admin/trips/:id/image — base64 payload uploaded to Cloudinary
func AdminUploadTripImage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var trip models.Trip
	if err := storage.DB.First(&trip, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	var body struct {
		Image string `json:"image" validate:"required"`
	}
	if err := ctx.ReadJSON(&body); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	publicID := fmt.Sprintf("trip_%d_%d", trip.ID, time.Now().Unix())
	hostedURL, uploadErr := storage.UploadTripImage(body.Image, publicID)
	if uploadErr != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "upload_failed", uploadErr.Error())
		return
	}

	if trip.Image != "" {
		storage.DeleteTripImage(trip.Image)
	}

	before := trip
	trip.Image = hostedURL
	if err := storage.DB.Save(&trip).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "trip.image_upload", "trip", trip.ID, before, trip)

	ctx.JSON(iris.Map{"data": trip})
}

type UpdateTripInput struct {
	Title            *string   `json:"title"`
	Location         *string   `json:"location"`
	Country          *string   `json:"country"`
	State            *string   `json:"state"`
	Price            *float64  `json:"price"`
	DurationDays     *int      `json:"duration_days"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"short_description"`
	Itinerary        *[]string `json:"itinerary"`
	Highlights       *[]string `json:"highlights"`
	Inclusions       *[]string `json:"inclusions"`
	Exclusions       *[]string `json:"exclusions"`
	Image            *string   `json:"image"`

	IsActive                   *bool `json:"is_active"`
	IsInternational            *bool `json:"is_international"`
	ShowInInternationalSection *bool `json:"show_in_international_section"`
	DisplayOrder               *int  `json:"display_order"`
	ShowInIndiaSection         *bool `json:"show_in_india_section"`
	IndiaDisplayOrder          *int  `json:"india_display_order"`
}

func (in *UpdateTripInput) apply(trip *models.Trip) {
	if in.Title != nil {
		trip.Title = *in.Title
	}
	if in.Location != nil {
		trip.Location = *in.Location
	}
	if in.Country != nil {
		trip.Country = *in.Country
	}
	if in.State != nil {
		trip.State = *in.State
	}
	if in.Price != nil {
		trip.Price = *in.Price
	}
	if in.DurationDays != nil {
		trip.DurationDays = *in.DurationDays
	}
	if in.Description != nil {
		trip.Description = *in.Description
	}
	if in.ShortDescription != nil {
		trip.ShortDescription = *in.ShortDescription
	}
	if in.Itinerary != nil {
		trip.Itinerary = toJSONList(*in.Itinerary)
	}
	if in.Highlights != nil {
		trip.Highlights = toJSONList(*in.Highlights)
	}
	if in.Inclusions != nil {
		trip.Inclusions = toJSONList(*in.Inclusions)
	}
	if in.Exclusions != nil {
		trip.Exclusions = toJSONList(*in.Exclusions)
	}
	if in.Image != nil {
		trip.Image = *in.Image
	}
	if in.IsActive != nil {
		trip.IsActive = *in.IsActive
	}
	if in.IsInternational != nil {
		trip.IsInternational = *in.IsInternational
	}
	if in.ShowInInternationalSection != nil {
		trip.ShowInInternationalSection = *in.ShowInInternationalSection
	}
	if in.DisplayOrder != nil {
		trip.DisplayOrder = *in.DisplayOrder
	}
	if in.ShowInIndiaSection != nil {
		trip.ShowInIndiaSection = *in.ShowInIndiaSection
	}
	if in.IndiaDisplayOrder != nil {
		trip.IndiaDisplayOrder = *in.IndiaDisplayOrder
	}
}

func applyTripFlags(trip *models.Trip, input *TripInput) {
	if input.IsActive != nil {
		trip.IsActive = *input.IsActive
	}
	if input.IsInternational != nil {
		trip.IsInternational = *input.IsInternational
	}
	if input.ShowInInternationalSection != nil {
		trip.ShowInInternationalSection = *input.ShowInInternationalSection
	}
	if input.DisplayOrder != nil {
		trip.DisplayOrder = *input.DisplayOrder
	}
	if input.ShowInIndiaSection != nil {
		trip.ShowInIndiaSection = *input.ShowInIndiaSection
	}
	if input.IndiaDisplayOrder != nil {
		trip.IndiaDisplayOrder = *input.IndiaDisplayOrder
	}
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
