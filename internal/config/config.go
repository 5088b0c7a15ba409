package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Provider selects the generative backend: "gemini" or "openai".
	Provider string `validate:"oneof=gemini openai"`

	GeminiAPIKey string `validate:"required_if=Provider gemini"`
	GeminiModel  string `validate:"required"`

	OpenAIAPIKey  string `validate:"required_if=Provider openai"`
	OpenAIBaseURL string `validate:"omitempty,url"`
	OpenAIModel   string `validate:"required"`

	// DefaultLocation is queried once at startup; FallbackLocation is the
	// recovery query after a failure.
	DefaultLocation  string `validate:"required"`
	FallbackLocation string `validate:"required"`

	// RefreshInterval re-queries the current location periodically (0 = off).
	RefreshInterval time.Duration `validate:"gte=0"`

	BreakerMaxFailures int           `validate:"gte=1"`
	BreakerTimeout     time.Duration `validate:"gt=0"`

	Port string `validate:"required,numeric"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Provider = strings.ToLower(getenvDefault("LLM_PROVIDER", "gemini"))

	// API_KEY is the historical name of the Gemini credential.
	cfg.GeminiAPIKey = getenvDefault("GEMINI_API_KEY", os.Getenv("API_KEY"))
	cfg.GeminiModel = getenvDefault("GEMINI_MODEL", "gemini-2.5-flash")

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.OpenAIModel = getenvDefault("OPENAI_MODEL", "gpt-4o-mini")

	cfg.DefaultLocation = getenvDefault("DEFAULT_LOCATION", "New York")
	cfg.FallbackLocation = getenvDefault("FALLBACK_LOCATION", "London")

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.BreakerMaxFailures = getenvInt("BREAKER_MAX_FAILURES", 5)
	timeout, err := time.ParseDuration(getenvDefault("BREAKER_TIMEOUT", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid BREAKER_TIMEOUT: %w", err)
	}
	cfg.BreakerTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
