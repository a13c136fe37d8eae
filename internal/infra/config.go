package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config carries every knob the process needs, resolved once at startup.
// Nothing else in the codebase reads environment variables directly.
type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string

	AIProvider   string // "gemini" (default) or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	StripeSecret string

	UploadDir   string
	ReadingCost decimal.Decimal
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cost := decimal.NewFromInt(5)
	if raw := os.Getenv("READING_COST"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.Sign() <= 0 {
			log.Printf("Invalid READING_COST %q, keeping default %s", raw, cost)
		} else {
			cost = parsed
		}
	}

	return &Config{
		Port:         envOr("PORT", "8080"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AIProvider:   envOr("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-4o-mini"),
		StripeSecret: os.Getenv("STRIPE_SECRET"),
		UploadDir:    envOr("UPLOAD_DIR", "storage/uploads"),
		ReadingCost:  cost.Round(2),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
