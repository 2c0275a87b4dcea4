package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	configpkg "github.com/minhyannv/auction-finder-go/pkg/config"
)

// parseCLIConfig loads config file + .env + env + flags into runtime config,
// later sources winning. Variables already in the environment beat the .env file.
func parseCLIConfig(args []string, getenv func(string) string) (configpkg.Config, error) {
	defaults := configpkg.DefaultConfig()

	fs := flag.NewFlagSet("auction-finder", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional YAML config file")
	envFile := fs.String("env_file", ".env", "Dotenv file to read API_KEY from (set empty to skip)")
	threshold := fs.Float64("threshold", defaults.Threshold, "Minimum name similarity in (0,1] for a listing to be shown")
	timeout := fs.Duration("timeout", defaults.Timeout, "Per-request HTTP timeout (0 disables)")
	rateLimit := fs.Float64("rate", defaults.RateLimit, "Max API requests per second")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose request logging to stderr")
	noColor := fs.Bool("no_color", defaults.NoColor, "Disable coloured notices")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg := defaults
	if strings.TrimSpace(*configPath) != "" {
		loaded, err := configpkg.LoadFile(cfg, *configPath)
		if err != nil {
			return configpkg.Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	dotenv := map[string]string{}
	if strings.TrimSpace(*envFile) != "" {
		m, err := godotenv.Read(*envFile)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, os.ErrNotExist):
			return configpkg.Config{}, fmt.Errorf("read %s: %w", *envFile, err)
		}
	}
	lookup := func(key string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}
	if v := lookup("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := lookup("PLAYERDB_BASE_URL"); v != "" {
		cfg.PlayerDBBaseURL = v
	}
	if v := lookup("HYPIXEL_BASE_URL"); v != "" {
		cfg.HypixelBaseURL = v
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			cfg.Threshold = *threshold
		case "timeout":
			cfg.Timeout = *timeout
		case "rate":
			cfg.RateLimit = *rateLimit
		case "verbose":
			cfg.Verbose = *verbose
		case "no_color":
			cfg.NoColor = *noColor
		}
	})
	return configpkg.Normalize(cfg), nil
}
