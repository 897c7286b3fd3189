package config

import (
	"os"
	"strconv"
	"time"

	"socialagent/internal/models"
)

// Config holds all application configuration loaded from environment
// variables and the settings file. It is passed explicitly into handler and
// component constructors; there is no mutable process-wide default.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr  string
	BaseURL     string
	CORSOrigins string // Comma-separated allowed origins

	// LLM API
	APIKey      string // env: ANTHROPIC_API_KEY (OpenAI-compatible endpoint)
	Model       string
	APIBaseURL  string
	MaxTokens   int
	Temperature float64

	// Defaults applied when a request omits them
	DefaultLoanOfficer string
	DefaultCompany     string
	DefaultPlatform    string
	DefaultAudience    string

	// Persistence (flat files only)
	SaveGeneratedContent bool
	ContentDir           string
	RateCacheFile        string
	SettingsFile         string

	// Background rate refresh; zero disables the job.
	RateRefreshInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults,
// then overlays values from the settings file if one exists.
func Load() *Config {
	cfg := &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
		Model:       getEnv("LLM_MODEL", "claude-3-5-sonnet-20250114"),
		APIBaseURL:  getEnv("LLM_BASE_URL", ""),
		MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1200),
		Temperature: getEnvFloat("LLM_TEMPERATURE", 0.7),

		DefaultLoanOfficer: getEnv("DEFAULT_LOAN_OFFICER_NAME", ""),
		DefaultCompany:     getEnv("DEFAULT_COMPANY_NAME", ""),
		DefaultPlatform:    getEnv("DEFAULT_PLATFORM", models.PlatformInstagram),
		DefaultAudience:    getEnv("DEFAULT_AUDIENCE", models.DefaultAudience),

		SaveGeneratedContent: getEnv("SAVE_GENERATED_CONTENT", "") != "",
		ContentDir:           getEnv("CONTENT_OUTPUT_DIR", "generated_content"),
		RateCacheFile:        getEnv("RATE_CACHE_FILE", "data/rate_cache.json"),
		SettingsFile:         getEnv("SETTINGS_FILE", "data/settings.env"),

		RateRefreshInterval: getEnvDuration("RATE_REFRESH_INTERVAL", 0),
	}

	cfg.applySettingsFile()
	return cfg
}

// APIKeySet reports whether an LLM API key is configured.
func (c *Config) APIKeySet() bool {
	return c.APIKey != ""
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
