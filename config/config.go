package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when neither the environment nor the env file sets a
// value.
const (
	DefaultPort                  = "8080"
	DefaultStateDir              = ".storefront"
	DefaultHTTPTimeoutSec        = 15
	DefaultPollIntervalSec       = 30
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080
)

type Config struct {
	Env string

	// Client side.
	APIBaseURL         string
	StateDir           string
	HTTPTimeoutSec     int
	PollIntervalSec    int
	GoogleClientID     string
	GoogleClientSecret string

	// Stub server side.
	Port               string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
}

// Load reads the client configuration. Values come from config/.env.<env>
// when present, with real environment variables taking precedence.
// API_BASE_URL is required.
func Load() *Config {
	cfg := loadCommon()
	cfg.APIBaseURL = mustGetEnv("API_BASE_URL")

	return cfg
}

// LoadStub reads the stub backend configuration. The token secrets are
// required; everything else has a development default.
func LoadStub() *Config {
	cfg := loadCommon()
	cfg.AccessTokenSecret = mustGetEnv("ACCESS_TOKEN_SECRET")
	cfg.RefreshTokenSecret = mustGetEnv("REFRESH_TOKEN_SECRET")

	return cfg
}

func loadCommon() *Config {
	env := getEnv("ENV", "development")
	loadEnvFile(env)

	return &Config{
		Env:                env,
		StateDir:           getEnv("STATE_DIR", defaultStateDir()),
		HTTPTimeoutSec:     getEnvAsInt("HTTP_TIMEOUT_SEC", DefaultHTTPTimeoutSec),
		PollIntervalSec:    getEnvAsInt("POLL_INTERVAL_SEC", DefaultPollIntervalSec),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		Port:               getEnv("PORT", DefaultPort),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
	}
}

// loadEnvFile loads config/.env.dev or config/.env.prod. godotenv.Load
// never overwrites variables already set in the environment, which gives
// env vars precedence over the file.
func loadEnvFile(env string) {
	suffix := "dev"
	if env == "production" {
		suffix = "prod"
	}

	_ = godotenv.Load(filepath.Join("config", ".env."+suffix))
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultStateDir
	}

	return filepath.Join(home, DefaultStateDir)
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
