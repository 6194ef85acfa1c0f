package routes

import (
	"net/http"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
)

// GET /v1/admin/contact-messages?page=&per_page=
func AdminListContactMessages(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.ContactMessage{})

	var total int64
	q.Count(&total)

	var messages []models.ContactMessage
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, messages, page, perPage, total)
}

// DELETE /v1/admin/contact-messages/:id
func AdminDeleteContactMessage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var msg models.ContactMessage
	if err := storage.DB.First(&msg, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "contact message not found")
		return
	}

	if err := storage.DB.Delete(&msg).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "contact_message.delete", "contact_message", msg.ID, msg, nil)

	ctx.JSON(iris.Map{"deleted": true})
}
