package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nigam11/skillhub-front/internal/flagx"
)

const (
	EnvServerURL      = "SKILLHUB_SERVER_URL"
	EnvDBPath         = "SKILLHUB_DB_PATH"
	EnvRequestTimeout = "SKILLHUB_REQUEST_TIMEOUT"
	EnvLogLevel       = "SKILLHUB_LOG_LEVEL"
	EnvLogFormat      = "SKILLHUB_LOG_FORMAT"
)

// parseEnv overlays cfg with SKILLHUB_* variables. Values from the dotenv
// file are read first; the real environment wins over them.
//
// The dotenv file is the one named by -e/-env-file, else Config.EnvFile,
// else ./.env if it exists. An explicitly named file must exist.
func parseEnv(cfg *Config, args []string) error {
	path := flagx.EnvFileFlag(args)
	if path == "" {
		path = cfg.EnvFile
	}
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		vars = map[string]string{}
	}
	if explicit {
		cfg.EnvFile = path
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup(EnvServerURL); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	return nil
}
