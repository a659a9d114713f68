package config

import (
	"encoding/json"
	"os"

	"github.com/cyberdetect/cdetect/internal/flagx"
	"github.com/cyberdetect/cdetect/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given either as strings like "800ms" or as integer nanoseconds.
type JsonConfig struct {
	Endpoints           []string       `json:"endpoints"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	SessionPollInterval timex.Duration `json:"session_poll_interval"`
	RedirectDelay       timex.Duration `json:"redirect_delay"`
	OCRStageDelay       timex.Duration `json:"ocr_stage_delay"`
	DataDir             string         `json:"data_dir"`
	DBFile              string         `json:"db_file"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Absent file path means no JSON source. Only fields
// present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if len(jc.Endpoints) > 0 {
		cfg.Endpoints = jc.Endpoints
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.SessionPollInterval.Duration != 0 {
		cfg.SessionPollInterval = jc.SessionPollInterval.Duration
	}
	if jc.RedirectDelay.Duration != 0 {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.OCRStageDelay.Duration != 0 {
		cfg.OCRStageDelay = jc.OCRStageDelay.Duration
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DBFile != "" {
		cfg.DBFile = jc.DBFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
