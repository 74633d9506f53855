package router

import (
	"github.com/labstack/echo/v4"

	"agribot/pkg/middleware"
)

type SessionOpts struct {
	JWTSecret string
	DevUserID string
	Enforce   bool
	UploadDir string
}

func New(
	e *echo.Echo,
	opts SessionOpts,
	authCtrl interface {
		Signup(echo.Context) error
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	irrCtrl interface {
		ListMonth(echo.Context) error
		ListAll(echo.Context) error
		Create(echo.Context) error
		Calendar(echo.Context) error
		Patch(echo.Context) error
	},
	chatCtrl interface {
		CreateSession(echo.Context) error
		AddMessage(echo.Context) error
		Messages(echo.Context) error
	},
	advCtrl interface {
		CropRecommendations(echo.Context) error
		FertilizerRecommendation(echo.Context) error
		PestDetection(echo.Context) error
	},
	weatherCtrl interface{ Forecast(echo.Context) error },
	marketCtrl interface {
		Prices(echo.Context) error
		History(echo.Context) error
	},
	newsCtrl interface{ List(echo.Context) error },
	uploadCtrl interface{ Single(echo.Context) error },
	speechCtrl interface{ Speak(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/auth/signup", authCtrl.Signup)
	e.POST("/auth/login", authCtrl.Login)

	session := middleware.Session(opts.JWTSecret, opts.DevUserID, opts.Enforce)
	api := e.Group("", session)

	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/api/irrigation", irrCtrl.ListMonth)
	api.GET("/api/irrigation/list", irrCtrl.ListAll)
	api.GET("/api/irrigation/calendar", irrCtrl.Calendar)
	api.POST("/api/irrigation/", irrCtrl.Create)
	api.PATCH("/api/irrigation/:id", irrCtrl.Patch)

	api.POST("/chats/createSession", chatCtrl.CreateSession)
	api.POST("/chats/addMessage", chatCtrl.AddMessage)
	api.GET("/chats/messages/:id", chatCtrl.Messages)

	api.POST("/api_model/crop_recommendations", advCtrl.CropRecommendations)
	api.POST("/api_model/fertilizer_recommendation", advCtrl.FertilizerRecommendation)
	api.POST("/api_model/pest_detection_and_analyze", advCtrl.PestDetection)

	api.GET("/api/weather", weatherCtrl.Forecast)
	api.GET("/api/market/prices", marketCtrl.Prices)
	api.GET("/api/market/history", marketCtrl.History)
	api.GET("/api/news", newsCtrl.List)

	api.POST("/upload/single", uploadCtrl.Single)
	api.POST("/speak", speechCtrl.Speak)

	e.Static("/uploads", opts.UploadDir)
	return e
}
