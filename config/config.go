package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	EnableAuth bool
	JWTSecret  string
	DevUserID  string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	WeatherEndpoint string
	GeocodeEndpoint string
	TTSEndpoint     string

	UploadDir      string
	MarketSeedXLSX string

	NewsSources     string
	NewsRefreshSpec string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Asia/Kolkata"),
		DBPath:   get("DB_PATH", "agribot.db"),

		EnableAuth: get("ENABLE_AUTH", "false") == "true",
		JWTSecret:  get("JWT_SECRET", "dev-secret-change-me"),
		DevUserID:  get("DEV_USER_ID", "U_DEV_DEFAULT"),

		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		WeatherEndpoint: get("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast"),
		GeocodeEndpoint: get("GEOCODE_ENDPOINT", "https://geocoding-api.open-meteo.com/v1/search"),
		TTSEndpoint:     get("TTS_ENDPOINT", ""),

		UploadDir:      get("UPLOAD_DIR", "uploads"),
		MarketSeedXLSX: get("MARKET_SEED_XLSX", ""),

		NewsSources:     get("NEWS_SOURCES", ""),
		NewsRefreshSpec: get("NEWS_REFRESH_SPEC", "@hourly"),
	}
	log.Printf("[cfg] port=%s db=%s auth=%v llm=%q", cfg.Port, cfg.DBPath, cfg.EnableAuth, cfg.LLMEndpoint)
	return cfg
}
