package utils

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

// AccessToken carries identity only. The caller's role is re-read from the
// profile table on every request so a role change takes effect immediately.
type AccessToken struct {
	ID       uint   `json:"ID"`
	Username string `json:"username"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

func CreateTokenPair(id uint, username string) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), 30*24*time.Hour)

	accessToken, err := accessTokenSigner.Sign(AccessToken{ID: id, Username: username})
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.Claims{Subject: strconv.FormatUint(uint64(id), 10)}
	refreshToken, err := refreshTokenSigner.Sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	// Whitelist the refresh token; rotation deletes it on first use.
	storage.Redis.Set(bgContext, string(refreshToken), "true", 30*24*time.Hour+5*time.Minute)

	return &tokenPair, nil
}

// ConsumeRefreshToken validates a whitelisted refresh token and removes it so
// it cannot be replayed. Returns the user ID the token was issued for.
func ConsumeRefreshToken(ctx iris.Context) (uint, bool) {
	token := jwt.GetVerifiedToken(ctx)
	if token == nil {
		return 0, false
	}
	tokenStr := string(token.Token)

	validToken, tokenErr := storage.Redis.Get(bgContext, tokenStr).Result()
	if tokenErr != nil || validToken != "true" {
		return 0, false
	}
	storage.Redis.Del(bgContext, tokenStr)

	userID, parseErr := strconv.ParseUint(token.StandardClaims.Subject, 10, 32)
	if parseErr != nil {
		return 0, false
	}
	return uint(userID), true
}
