package utils

import (
	"os"
	"strings"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the user ID from the JWT and stores it in
// the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// AdminOnlyMiddleware rejects callers whose profile role is not ADMIN. The
// role comes from the database, not the token, so demotions apply without
// waiting for the access token to expire.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)

	var profile models.Profile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}
	if profile.Role != models.RoleAdmin {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}

	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// OptionalUserIDMiddleware attaches the caller's identity when a valid bearer
// token is present but lets anonymous requests through untouched.
func OptionalUserIDMiddleware(ctx iris.Context) {
	auth := ctx.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
		verified, err := verifier.VerifyToken([]byte(strings.TrimPrefix(auth, "Bearer ")))
		if err == nil {
			var claims AccessToken
			if claimsErr := verified.Claims(&claims); claimsErr == nil {
				ctx.Values().Set("userID", claims.ID)
			}
		}
	}
	ctx.Next()
}

// CurrentUserID returns the authenticated user ID set by the middlewares
// above, or 0 when the request is anonymous.
func CurrentUserID(ctx iris.Context) uint {
	if v := ctx.Values().Get("userID"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
