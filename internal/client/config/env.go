package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; real
// environment variables win over .env entries (godotenv semantics).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := getEnv("CDETECT_ENDPOINTS", ""); v != "" {
		parts := strings.Split(v, ",")
		endpoints := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				endpoints = append(endpoints, p)
			}
		}
		if len(endpoints) > 0 {
			cfg.Endpoints = endpoints
		}
	}

	cfg.RequestTimeout = getEnvAsDuration("CDETECT_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.HealthCheckInterval = getEnvAsDuration("CDETECT_HEALTH_INTERVAL", cfg.HealthCheckInterval)
	cfg.SessionPollInterval = getEnvAsDuration("CDETECT_SESSION_POLL_INTERVAL", cfg.SessionPollInterval)
	cfg.RedirectDelay = getEnvAsDuration("CDETECT_REDIRECT_DELAY", cfg.RedirectDelay)
	cfg.OCRStageDelay = getEnvAsDuration("CDETECT_OCR_STAGE_DELAY", cfg.OCRStageDelay)
	cfg.DataDir = getEnv("CDETECT_DATA_DIR", cfg.DataDir)
	cfg.DBFile = getEnv("CDETECT_DB_FILE", cfg.DBFile)
	cfg.LogLevel = getEnv("CDETECT_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
