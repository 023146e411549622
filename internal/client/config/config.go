package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/Nigam11/skillhub-front/internal/client/client"
)

const (
	DefaultServerBaseURL  = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvFile        = ".env"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the SkillHub CLI.
//
// Fields:
//   - ServerBaseURL: absolute http(s) URL of the REST backend.
//   - DBPath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel, LogFormat: diagnostics written to stderr.
//   - EnvFile: dotenv file consulted before the process environment.
type Config struct {
	ServerBaseURL  string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	EnvFile        string
}

// DefaultDBPath is $XDG_DATA_HOME/skillhub/state.db.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, "skillhub", "state.db")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = DefaultServerBaseURL
	c.DBPath = DefaultDBPath()
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel
	c.LogFormat = DefaultLogFormat
	c.EnvFile = ""
}

// LoadConfig builds a Config from defaults, then a config file, then the
// dotenv file and environment, then command-line flags. Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if _, err := client.ParseBaseURL(c.ServerBaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: empty db path", ErrInvalidConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidConfig, c.RequestTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
