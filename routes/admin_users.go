package routes

import (
	"net/http"
	"strings"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var assignableRoles = []string{models.RoleUser, models.RoleAdmin}

// GET /v1/admin/users?role=&q=&page=&per_page=
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := strings.TrimSpace(ctx.URLParamDefault("q", ""))
	role := strings.TrimSpace(ctx.URLParamDefault("role", ""))

	query := storage.DB.Model(&models.User{}).Preload("Profile")
	if role != "" {
		query = query.Joins("JOIN profiles ON profiles.user_id = users.id").Where("profiles.role = ?", role)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(username) LIKE ? OR lower(email) LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.JSONPage(ctx, users, page, perPage, total)
}

// PATCH /v1/admin/users/:id/role
func AdminChangeUserRole(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_id"})
		return
	}

	// Self-protection: an admin cannot demote themselves.
	if id == utils.CurrentUserID(ctx) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "self_modification", "message": "you cannot change your own role"})
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := ctx.ReadJSON(&body); err != nil || !slices.Contains(assignableRoles, body.Role) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_role"})
		return
	}

	var profile models.Profile
	if err := storage.DB.Where("user_id = ?", id).First(&profile).Error; err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "not_found"})
		return
	}

	before := profile
	profile.Role = body.Role
	if err := storage.DB.Save(&profile).Error; err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "server_error"})
		return
	}

	utils.Audit(ctx, "user.role_update", "user", id, before, profile)

	ctx.JSON(iris.Map{"data": profile})
}

// DELETE /v1/admin/users/:id
func AdminDeleteUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid_id"})
		return
	}

	// Self-protection: an admin cannot delete their own account.
	if id == utils.CurrentUserID(ctx) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "self_modification", "message": "you cannot delete your own account"})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		ctx.StopWithJSON(http.StatusNotFound, iris.Map{"error": "not_found"})
		return
	}

	if err := storage.DB.Delete(&user).Error; err != nil {
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "server_error"})
		return
	}
	storage.DB.Where("user_id = ?", id).Delete(&models.Profile{})

	utils.Audit(ctx, "user.delete", "user", id, user, nil)

	ctx.JSON(iris.Map{"deleted": true})
}
