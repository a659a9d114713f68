package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cdetect"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.Endpoints)
	require.Equal(t, time.Second, cfg.SessionPollInterval)
	require.Equal(t, 800*time.Millisecond, cfg.OCRStageDelay)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "http://10.0.0.5:3000", "-i", "7", "-l", "debug")

	cfg := LoadConfig()

	require.Equal(t, []string{"http://10.0.0.5:3000"}, cfg.Endpoints)
	require.Equal(t, 7*time.Second, cfg.HealthCheckInterval)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("CDETECT_ENDPOINTS", "http://a:3000, http://b:3000")
	t.Setenv("CDETECT_REDIRECT_DELAY", "500ms")

	cfg := LoadConfig()

	require.Equal(t, []string{"http://a:3000", "http://b:3000"}, cfg.Endpoints)
	require.Equal(t, 500*time.Millisecond, cfg.RedirectDelay)
}

func TestLoadConfig_JsonFileOverlays(t *testing.T) {
	jc := JsonConfig{
		Endpoints: []string{"http://json:3000"},
		DBFile:    "alt.db",
	}
	data, err := json.Marshal(jc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, []string{"http://json:3000"}, cfg.Endpoints)
	require.Equal(t, "alt.db", cfg.DBFile)
	// untouched fields keep defaults
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	jc := JsonConfig{Endpoints: []string{"http://json:3000"}}
	data, err := json.Marshal(jc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path, "-a", "http://flag:3000")

	cfg := LoadConfig()
	require.Equal(t, []string{"http://flag:3000"}, cfg.Endpoints)
}

func TestLoadConfig_SubSecondEnvIntervalsSurviveFlagLayer(t *testing.T) {
	resetArgs(t)
	t.Setenv("CDETECT_SESSION_POLL_INTERVAL", "500ms")
	t.Setenv("CDETECT_HEALTH_INTERVAL", "500ms")

	cfg := LoadConfig()

	require.Equal(t, 500*time.Millisecond, cfg.SessionPollInterval)
	require.Equal(t, 500*time.Millisecond, cfg.HealthCheckInterval)
}

func TestLoadConfig_IntervalFlagsWinOverEnv(t *testing.T) {
	resetArgs(t, "-i", "7", "-p", "2")
	t.Setenv("CDETECT_SESSION_POLL_INTERVAL", "500ms")
	t.Setenv("CDETECT_HEALTH_INTERVAL", "500ms")

	cfg := LoadConfig()

	require.Equal(t, 7*time.Second, cfg.HealthCheckInterval)
	require.Equal(t, 2*time.Second, cfg.SessionPollInterval)
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("CDETECT_BAD", "soon")
	require.Equal(t, time.Minute, getEnvAsDuration("CDETECT_BAD", time.Minute))
}
