package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix) {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), filepath.Join(home, "missing.env"))
	if err == nil {
		t.Fatalf("Load with a missing explicit env file returned nil error")
	}

	cfg, err = Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout || cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("durations = %s/%s", cfg.RequestTimeout, cfg.RefreshInterval)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if !strings.HasPrefix(cfg.SessionPath, home) || !strings.HasPrefix(cfg.PrefsPath, home) {
		t.Fatalf("session/prefs paths not under HOME: %q %q", cfg.SessionPath, cfg.PrefsPath)
	}
	if cfg.AdsEnabled {
		t.Fatalf("ads enabled by default")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeFile(t, "config.toml", `
api_url = "  https://api.cumplesito.app/api  "
frontend_url = "https://cumplesito.app/"
log_file = "  ~/logs/client.log  "
log_level = "debug"
request_timeout = "3s"
refresh_interval = "0s"
ads_enabled = true
ads_publisher_id = "ca-pub-123"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://api.cumplesito.app/api" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "client.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" || cfg.RequestTimeout != 3*time.Second || cfg.RefreshInterval != 0 {
		t.Fatalf("cfg = %#v", cfg)
	}
	if !cfg.AdsEnabled || cfg.AdsPublisherID != "ca-pub-123" {
		t.Fatalf("ads = %v %q", cfg.AdsEnabled, cfg.AdsPublisherID)
	}
	if got := cfg.ShareLink("w1"); got != "https://cumplesito.app/wishlist/w1" {
		t.Fatalf("ShareLink = %q", got)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := writeFile(t, "config.toml", `api_url = "http://file:8000/api"`)
	envFile := writeFile(t, "test.env", "CUMPLESITO_API_URL=http://dotenv:8000/api\nCUMPLESITO_LOG_LEVEL=warn\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("CUMPLESITO_API_URL")
		_ = os.Unsetenv("CUMPLESITO_LOG_LEVEL")
	})

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://dotenv:8000/api" || cfg.LogLevel != "warn" {
		t.Fatalf("dotenv not applied: %#v", cfg)
	}

	t.Setenv("CUMPLESITO_API_URL", "http://env:8000/api")
	t.Setenv("CUMPLESITO_REFRESH_INTERVAL", "1m")
	cfg, err = Load(path, envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://env:8000/api" {
		t.Fatalf("APIURL = %q, want the process environment to win", cfg.APIURL)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Fatalf("RefreshInterval = %s", cfg.RefreshInterval)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	cases := map[string]string{
		"bad toml":        `api_url = [`,
		"bad duration":    `request_timeout = "soon"`,
		"zero timeout":    `request_timeout = "0s"`,
		"ads without pub": `ads_enabled = true`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "config.toml", body)); err == nil {
				t.Fatalf("Load returned nil error")
			}
		})
	}

	_, err := Load(writeFile(t, "config.toml", `api_url = [`))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want it to mention parse config", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
