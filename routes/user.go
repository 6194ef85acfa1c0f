package routes

import (
	"strings"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"
)

func Signup(ctx iris.Context) {
	var userInput SignupInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	username := strings.TrimSpace(userInput.Username)
	email := strings.ToLower(strings.TrimSpace(userInput.Email))

	var count int64
	storage.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "An account with this username already exists.", ctx)
		return
	}
	if email != "" {
		storage.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "An account with this email already exists.", ctx)
			return
		}
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	returnAuth(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	errorMsg := "Invalid credentials"
	var existingUser models.User
	if err := storage.DB.Where("username = ?", userInput.Username).First(&existingUser).Error; err != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnAuth(existingUser, ctx)
}

// Refresh rotates the token pair. The refresh token must still be on the
// Redis whitelist; it is consumed either way.
func Refresh(ctx iris.Context) {
	userID, ok := utils.ConsumeRefreshToken(ctx)
	if !ok {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid or expired refresh token.", ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	returnAuth(user, ctx)
}

// Me reports the caller's identity and current role.
func Me(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)

	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     userRole(user.ID),
	})
}

func returnAuth(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID, user.Username)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"access":   string(tokenPair.AccessToken),
		"refresh":  string(tokenPair.RefreshToken),
		"role":     userRole(user.ID),
		"username": user.Username,
	})
}

// userRole reads the role from the profile table; defaults to USER when the
// profile is somehow missing.
func userRole(userID uint) string {
	var profile models.Profile
	if err := storage.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.RoleUser
	}
	return profile.Role
}

func hashAndSaltPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

type SignupInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,max=254,email"`
	Password string `json:"password" validate:"required,min=6,max=256"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
