// Package config loads runtime configuration for the SkillHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config; .yaml/.yml files are
//     YAML, everything else JSON.
//  3. A dotenv file (-e/-env-file, env_file in the config file, or ./.env)
//     and then the process environment, SKILLHUB_* variables only.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the SkillHub backend
//	-d string   path of the local state database
//	-t int      request timeout (seconds)
//	-l string   log level
//	-f string   log format
//
// # File schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	{
//	  "server_base_url": "http://localhost:8080",
//	  "db_path": "/home/me/.local/share/skillhub/state.db",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// LoadConfig validates the result and reports problems as errors wrapping
// ErrInvalidConfig.
package config
