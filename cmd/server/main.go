package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agribot/config"
	"agribot/database"
	"agribot/router"

	// Auth
	authCtrlImp "agribot/pkg/auth/controllerImp"

	// Irrigation
	irrCtrlImp "agribot/pkg/irrigation/controllerImp"
	irrRepoImp "agribot/pkg/irrigation/repositoryImp"

	// Chat
	chatCtrlImp "agribot/pkg/chat/controllerImp"
	chatRepoImp "agribot/pkg/chat/repositoryImp"

	// Advisory/LLM
	advCtrlImp "agribot/pkg/advisory/controllerImp"
	"agribot/pkg/ai"

	// Weather
	"agribot/pkg/weather"
	weatherCtrlImp "agribot/pkg/weather/controllerImp"

	// Market
	"agribot/pkg/market"
	marketCtrlImp "agribot/pkg/market/controllerImp"
	marketRepoImp "agribot/pkg/market/repositoryImp"

	// News
	"agribot/pkg/news"
	newsCtrlImp "agribot/pkg/news/controllerImp"
	newsRepoImp "agribot/pkg/news/repositoryImp"

	// Upload/Speech/Health
	healthCtrlImp "agribot/pkg/health/controllerImp"
	speechCtrlImp "agribot/pkg/speech/controllerImp"
	uploadCtrlImp "agribot/pkg/upload/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) LLM (mock fallback)
	var llm ai.Client
	llmMode := "mock"
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
		llmMode = "openai"
	} else {
		llm = ai.NewMock()
	}

	// 5) Repos/Controllers
	irrRepo := irrRepoImp.New(db)
	chatRepo := chatRepoImp.New(db)
	marketRepo := marketRepoImp.New(db)
	newsRepo := newsRepoImp.New(db)

	authCtrl := authCtrlImp.New(db, cfg.JWTSecret)
	irrCtrl := irrCtrlImp.New(irrRepo)
	chatCtrl := chatCtrlImp.New(chatRepo, llm)
	advCtrl := advCtrlImp.New(llm, os.TempDir())
	weatherCtrl := weatherCtrlImp.New(weather.NewClient(cfg.WeatherEndpoint, cfg.GeocodeEndpoint))
	marketCtrl := marketCtrlImp.New(marketRepo)
	newsCtrl := newsCtrlImp.New(newsRepo)
	uploadCtrl := uploadCtrlImp.New(cfg.UploadDir)
	speechCtrl := speechCtrlImp.New(cfg.TTSEndpoint)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, llmMode)

	// 6) Market seed (idempotent, skipped when no sheet configured)
	if cfg.MarketSeedXLSX != "" {
		n, err := market.Seed(marketRepo, cfg.MarketSeedXLSX)
		if err != nil {
			log.Printf("market seed warn: %v", err)
		} else if n > 0 {
			log.Printf("market seed: loaded %d rows", n)
		}
	}

	// 7) News refresher
	refresher := news.NewRefresher(newsRepo, news.ParseSources(cfg.NewsSources))
	if err := refresher.Start(cfg.NewsRefreshSpec); err != nil {
		log.Printf("news refresher warn: %v", err)
	}
	defer refresher.Stop()

	// 8) Router
	r := router.New(
		e,
		router.SessionOpts{
			JWTSecret: cfg.JWTSecret,
			DevUserID: cfg.DevUserID,
			Enforce:   cfg.EnableAuth,
			UploadDir: cfg.UploadDir,
		},
		authCtrl,
		irrCtrl,
		chatCtrl,
		advCtrl,
		weatherCtrl,
		marketCtrl,
		newsCtrl,
		uploadCtrl,
		speechCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
