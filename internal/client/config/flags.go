package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Nigam11/skillhub-front/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the SkillHub backend
//	-d string   path of the local state database
//	-t int      request timeout in seconds
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// stages (-c, -e) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("skillhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the SkillHub backend")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local state database")
	timeout := fs.Int("t", int(cfg.RequestTimeout/time.Second), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			explicit = true
		}
	})
	if explicit {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	return nil
}
