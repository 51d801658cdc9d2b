package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the client configuration after defaults, the TOML file and the
// environment have been applied, in that order.
type Config struct {
	APIURL          string
	FrontendURL     string
	LogFile         string
	LogLevel        string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	AdsEnabled      bool
	AdsPublisherID  string
	SessionPath     string
	PrefsPath       string
}

const (
	defaultConfigPath      = "~/.config/cumplesito/config.toml"
	defaultSessionPath     = "~/.config/cumplesito/session.toml"
	defaultPrefsPath       = "~/.config/cumplesito/prefs.toml"
	defaultLogFile         = "~/.local/share/cumplesito/client.log"
	defaultAPIURL          = "http://localhost:8000/api"
	defaultFrontendURL     = "http://localhost:5173"
	defaultLogLevel        = "info"
	defaultRequestTimeout  = 10 * time.Second
	defaultRefreshInterval = 30 * time.Second

	envPrefix = "CUMPLESITO_"
)

type fileConfig struct {
	APIURL          string `toml:"api_url"`
	FrontendURL     string `toml:"frontend_url"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
	RequestTimeout  string `toml:"request_timeout"`
	RefreshInterval string `toml:"refresh_interval"`
	AdsEnabled      *bool  `toml:"ads_enabled"`
	AdsPublisherID  string `toml:"ads_publisher_id"`
	SessionFile     string `toml:"session_file"`
	PrefsFile       string `toml:"prefs_file"`
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:          defaultAPIURL,
		FrontendURL:     defaultFrontendURL,
		LogFile:         mustExpand(defaultLogFile),
		LogLevel:        defaultLogLevel,
		RequestTimeout:  defaultRequestTimeout,
		RefreshInterval: defaultRefreshInterval,
		SessionPath:     mustExpand(defaultSessionPath),
		PrefsPath:       mustExpand(defaultPrefsPath),
	}
}

// Load reads the TOML file at path (the default location when empty), then
// applies .env files and CUMPLESITO_* environment variables. A missing file
// is not an error. envFiles defaults to ".env" in the working directory;
// variables already set in the environment win over .env entries.
func Load(path string, envFiles ...string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := cfg.readFile(resolved); err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(envFiles); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(resolved string) error {
	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&c.APIURL, raw.APIURL)
	setString(&c.FrontendURL, raw.FrontendURL)
	setString(&c.LogLevel, raw.LogLevel)
	setString(&c.AdsPublisherID, raw.AdsPublisherID)
	setPath(&c.LogFile, raw.LogFile)
	setPath(&c.SessionPath, raw.SessionFile)
	setPath(&c.PrefsPath, raw.PrefsFile)
	if raw.AdsEnabled != nil {
		c.AdsEnabled = *raw.AdsEnabled
	}
	if err := setDuration(&c.RequestTimeout, raw.RequestTimeout, "request_timeout"); err != nil {
		return err
	}
	return setDuration(&c.RefreshInterval, raw.RefreshInterval, "refresh_interval")
}

func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.APIURL, os.Getenv(envPrefix+"API_URL"))
	setString(&c.FrontendURL, os.Getenv(envPrefix+"FRONTEND_URL"))
	setString(&c.LogLevel, os.Getenv(envPrefix+"LOG_LEVEL"))
	setString(&c.AdsPublisherID, os.Getenv(envPrefix+"ADS_PUBLISHER_ID"))
	setPath(&c.LogFile, os.Getenv(envPrefix+"LOG_FILE"))
	setPath(&c.SessionPath, os.Getenv(envPrefix+"SESSION_FILE"))
	setPath(&c.PrefsPath, os.Getenv(envPrefix+"PREFS_FILE"))

	if raw := strings.TrimSpace(os.Getenv(envPrefix + "ADS_ENABLED")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse %sADS_ENABLED %q: %w", envPrefix, raw, err)
		}
		c.AdsEnabled = enabled
	}
	if err := setDuration(&c.RequestTimeout, os.Getenv(envPrefix+"REQUEST_TIMEOUT"), envPrefix+"REQUEST_TIMEOUT"); err != nil {
		return err
	}
	return setDuration(&c.RefreshInterval, os.Getenv(envPrefix+"REFRESH_INTERVAL"), envPrefix+"REFRESH_INTERVAL")
}

// Validate rejects values the client cannot run with.
func (c Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative, got %s", c.RefreshInterval)
	}
	if c.AdsEnabled && strings.TrimSpace(c.AdsPublisherID) == "" {
		return fmt.Errorf("ads_enabled requires ads_publisher_id")
	}
	return nil
}

// ShareLink returns the public link of a wishlist on the web front-end.
func (c Config) ShareLink(wishlistID string) string {
	base := strings.TrimRight(strings.TrimSpace(c.FrontendURL), "/")
	if base == "" {
		base = defaultFrontendURL
	}
	return base + "/wishlist/" + wishlistID
}

func setString(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func setPath(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = mustExpand(trimmed)
	}
}

func setDuration(dst *time.Duration, value, name string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", name, trimmed, err)
	}
	*dst = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
