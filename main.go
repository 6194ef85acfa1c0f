package main

import (
	"log"
	"os"

	"github.com/Rudrakshsachdev/TravelSource/routes"
	"github.com/Rudrakshsachdev/TravelSource/storage"
	"github.com/Rudrakshsachdev/TravelSource/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		if err := ctx.ReadJSON(&tokenInput); err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	v1 := app.Party("/v1")
	{
		auth := v1.Party("/auth")
		{
			auth.Post("/signup", routes.Signup)
			auth.Post("/login", routes.Login)
			auth.Post("/refresh", refreshTokenVerifierMiddleware, routes.Refresh)
			auth.Get("/me", accessTokenVerifierMiddleware, routes.Me)
		}

		v1.Get("/trips", routes.ListTrips)
		v1.Get("/trips/{id:uint}", routes.GetTrip)
		v1.Post("/trips/{id:uint}/view", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.RecordTripView)
		v1.Get("/recommendations", utils.OptionalUserIDMiddleware, routes.GetRecommendations)
		v1.Get("/international-trips", routes.GetInternationalTrips)
		v1.Get("/india-trips", routes.GetIndiaTrips)

		v1.Post("/enquiries", utils.OptionalUserIDMiddleware, routes.CreateEnquiry)
		v1.Get("/my-enquiries", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.MyEnquiries)

		bookings := v1.Party("/bookings", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
		{
			bookings.Post("/create", routes.CreateBooking)
			bookings.Get("/my", routes.MyBookings)
		}

		v1.Get("/reviews", routes.ListReviews)
		v1.Post("/reviews", routes.CreateReview)
		v1.Post("/contact", routes.CreateContactMessage)
		v1.Get("/site-stats", routes.ListSiteStats)

		admin := v1.Party("/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
		{
			admin.Get("/stats", routes.AdminStats)
			admin.Get("/activity", routes.AdminActivity)

			admin.Get("/trips", routes.AdminListTrips)
			admin.Post("/trips", routes.AdminCreateTrip)
			admin.Get("/trips/{id:uint}", routes.AdminGetTrip)
			admin.Patch("/trips/{id:uint}", routes.AdminUpdateTrip)
			admin.Delete("/trips/{id:uint}", routes.AdminDeleteTrip)
			admin.Post("/trips/{id:uint}/image", routes.AdminUploadTripImage)

			admin.Get("/bookings", routes.AdminListBookings)
			admin.Patch("/bookings/{id:uint}/status", routes.AdminUpdateBookingStatus)

			admin.Get("/users", routes.AdminListUsers)
			admin.Patch("/users/{id:uint}/role", routes.AdminChangeUserRole)
			admin.Delete("/users/{id:uint}", routes.AdminDeleteUser)

			admin.Get("/enquiries", routes.AdminListEnquiries)
			admin.Delete("/enquiries/{id:uint}", routes.AdminDeleteEnquiry)

			admin.Get("/contact-messages", routes.AdminListContactMessages)
			admin.Delete("/contact-messages/{id:uint}", routes.AdminDeleteContactMessage)

			admin.Get("/reviews", routes.AdminListReviews)
			admin.Patch("/reviews/{id:uint}", routes.AdminModerateReview)
			admin.Delete("/reviews/{id:uint}", routes.AdminDeleteReview)

			admin.Post("/site-stats", routes.AdminCreateSiteStat)
			admin.Patch("/site-stats/{id:uint}", routes.AdminUpdateSiteStat)
			admin.Delete("/site-stats/{id:uint}", routes.AdminDeleteSiteStat)

			admin.Get("/international-config", routes.AdminGetInternationalConfig)
			admin.Patch("/international-config", routes.AdminUpdateInternationalConfig)
			admin.Get("/india-config", routes.AdminGetIndiaConfig)
			admin.Patch("/india-config", routes.AdminUpdateIndiaConfig)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
