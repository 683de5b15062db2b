package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultAppConfigFile is looked up in the working directory
const DefaultAppConfigFile = "sheets-downloader.toml"

// Environment overrides, applied after the TOML file
const (
	EnvCredentialsFile = "SHEETS_CREDENTIALS_FILE"
	EnvTokenFile       = "SHEETS_TOKEN_FILE"
	EnvTargetTabs      = "SHEETS_TARGET_TABS"
	EnvLogLevel        = "SHEETS_LOG_LEVEL"
	EnvLogFormat       = "SHEETS_LOG_FORMAT"
	EnvAutoOpen        = "SHEETS_AUTO_OPEN"
	EnvMirrorEndpoint  = "SHEETS_MIRROR_ENDPOINT"
	EnvMirrorBucket    = "SHEETS_MIRROR_BUCKET"
	EnvMirrorAccessKey = "SHEETS_MIRROR_ACCESS_KEY"
	EnvMirrorSecretKey = "SHEETS_MIRROR_SECRET_KEY"
)

// Default values
var (
	DefaultTargetTabs = []string{"Table", "Schema"}
)

const (
	DefaultCredentialsFile = "credentials.json"
	DefaultTokenFile       = "token.json"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// AppConfig holds process-level configuration shared by the desktop app
// and the CLI.
type AppConfig struct {
	CredentialsFile string       `toml:"credentials_file"`
	TokenFile       string       `toml:"token_file"`
	SettingsFile    string       `toml:"settings_file"`
	TargetTabs      []string     `toml:"target_tabs"`
	PageSize        int64        `toml:"page_size,omitempty"` // folder listing page size, 0 for the default
	AutoOpen        bool         `toml:"auto_open"`
	Log             LogConfig    `toml:"log"`
	Mirror          MirrorConfig `toml:"mirror"`
}

// LogConfig configures process logging
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// MirrorConfig configures the optional S3-compatible copy of exported files.
// The mirror is disabled unless Endpoint and Bucket are both set.
type MirrorConfig struct {
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region,omitempty"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix,omitempty"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
}

// Enabled reports whether the mirror is configured
func (m MirrorConfig) Enabled() bool {
	return strings.TrimSpace(m.Endpoint) != "" && strings.TrimSpace(m.Bucket) != ""
}

// NewAppConfig returns a config populated with defaults
func NewAppConfig() *AppConfig {
	return &AppConfig{
		CredentialsFile: DefaultCredentialsFile,
		TokenFile:       DefaultTokenFile,
		SettingsFile:    DefaultStoreFile,
		TargetTabs:      append([]string(nil), DefaultTargetTabs...),
		AutoOpen:        true,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// ReadAppConfig decodes TOML from r on top of the defaults
func ReadAppConfig(r io.Reader) (*AppConfig, error) {
	cfg := NewAppConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadAppConfig reads path (a missing file is fine), loads a .env file if
// present and applies environment overrides.
func LoadAppConfig(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultAppConfigFile
	}

	cfg := NewAppConfig()
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		cfg, err = ReadAppConfig(f)
		if err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// WriteAppConfig encodes cfg as TOML
func WriteAppConfig(w io.Writer, cfg *AppConfig) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv(EnvCredentialsFile); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		c.TokenFile = v
	}
	if v := os.Getenv(EnvTargetTabs); v != "" {
		c.TargetTabs = splitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvAutoOpen); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AutoOpen = b
		}
	}
	if v := os.Getenv(EnvMirrorEndpoint); v != "" {
		c.Mirror.Endpoint = v
	}
	if v := os.Getenv(EnvMirrorBucket); v != "" {
		c.Mirror.Bucket = v
	}
	if v := os.Getenv(EnvMirrorAccessKey); v != "" {
		c.Mirror.AccessKey = v
	}
	if v := os.Getenv(EnvMirrorSecretKey); v != "" {
		c.Mirror.SecretKey = v
	}
}

// normalize restores defaults for fields a config file blanked out
func (c *AppConfig) normalize() {
	if c.CredentialsFile == "" {
		c.CredentialsFile = DefaultCredentialsFile
	}
	if c.TokenFile == "" {
		c.TokenFile = DefaultTokenFile
	}
	if c.SettingsFile == "" {
		c.SettingsFile = DefaultStoreFile
	}
	c.TargetTabs = uniqueList(c.TargetTabs)
	if len(c.TargetTabs) == 0 {
		c.TargetTabs = append([]string(nil), DefaultTargetTabs...)
	}
	if c.PageSize < 0 {
		c.PageSize = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// uniqueList drops blank and repeated entries, keeping first occurrences
func uniqueList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
