// Package config loads runtime settings for the cdetect client.
//
// Sources are applied in order, later ones winning:
// defaults -> environment (.env supported) -> JSON file (-c) -> flags.
package config

import "time"

// Config holds runtime settings for the cdetect client.
//
// Endpoints is the ordered list of candidate base URLs for the backend;
// the API client tries them first-to-last and sticks with the first that
// answers.
type Config struct {
	Endpoints           []string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	SessionPollInterval time.Duration
	RedirectDelay       time.Duration
	OCRStageDelay       time.Duration
	DataDir             string
	DBFile              string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults. The backend is assumed
// to run on the fixed local address the service ships with.
func (c *Config) LoadDefaults() {
	c.Endpoints = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	c.RequestTimeout = 15 * time.Second
	c.HealthCheckInterval = 3 * time.Second
	c.SessionPollInterval = time.Second
	c.RedirectDelay = 2 * time.Second
	c.OCRStageDelay = 800 * time.Millisecond
	c.DataDir = "cdetect"
	c.DBFile = "cdetect.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
