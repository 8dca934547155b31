package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string
	Env         string
	HTTPTimeout time.Duration
	Notus       NotusConfig
	Privy       PrivyConfig
}

type NotusConfig struct {
	BaseURL string
	APIKey  string
}

type PrivyConfig struct {
	BaseURL   string
	AppID     string
	AppSecret string
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() *Config {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	listenAddr := getEnv("LISTEN_ADDR", ":8080")
	env := getEnv("ENV", "dev")

	notusAPIKey := os.Getenv("NOTUS_API_KEY")
	if notusAPIKey == "" {
		log.Fatal("[FATAL] NOTUS_API_KEY is required")
	}

	timeoutStr := getEnv("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Fatalf("[FATAL] Invalid HTTP_TIMEOUT duration: %v", err)
	}

	return &Config{
		ListenAddr:  listenAddr,
		Env:         env,
		HTTPTimeout: timeout,
		Notus: NotusConfig{
			BaseURL: getEnv("NOTUS_BASE_URL", "https://api.notus.team/api/v1"),
			APIKey:  notusAPIKey,
		},
		Privy: PrivyConfig{
			BaseURL:   getEnv("PRIVY_BASE_URL", "https://auth.privy.io"),
			AppID:     getEnv("PRIVY_APP_ID", ""),
			AppSecret: getEnv("PRIVY_APP_SECRET", ""),
		},
	}
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
