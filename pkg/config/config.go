package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/minhyannv/auction-finder-go/pkg/auction"
	"github.com/minhyannv/auction-finder-go/pkg/hypixel"
	"github.com/minhyannv/auction-finder-go/pkg/playerdb"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRate      = 2.0
	DefaultRateBurst = 2
)

// Config holds all runtime configuration for the tool.
type Config struct {
	Threshold float64
	Timeout   time.Duration
	RateLimit float64
	Verbose   bool
	NoColor   bool

	APIKey          string
	PlayerDBBaseURL string
	HypixelBaseURL  string
}

// fileConfig mirrors the optional YAML config file. Pointers tell unset keys apart from zero values.
type fileConfig struct {
	Threshold       *float64 `yaml:"threshold"`
	Timeout         *string  `yaml:"timeout"`
	RateLimit       *float64 `yaml:"rate_limit"`
	Verbose         *bool    `yaml:"verbose"`
	NoColor         *bool    `yaml:"no_color"`
	APIKey          *string  `yaml:"api_key"`
	PlayerDBBaseURL *string  `yaml:"playerdb_base_url"`
	HypixelBaseURL  *string  `yaml:"hypixel_base_url"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Threshold:       auction.DefaultThreshold,
		Timeout:         DefaultTimeout,
		RateLimit:       DefaultRate,
		PlayerDBBaseURL: playerdb.DefaultBaseURL,
		HypixelBaseURL:  hypixel.DefaultBaseURL,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the file keep cfg's values.
func LoadFile(cfg Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Threshold != nil {
		cfg.Threshold = *fc.Threshold
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*fc.Timeout))
		if err != nil {
			return cfg, fmt.Errorf("parse %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.NoColor != nil {
		cfg.NoColor = *fc.NoColor
	}
	if fc.APIKey != nil {
		cfg.APIKey = *fc.APIKey
	}
	if fc.PlayerDBBaseURL != nil {
		cfg.PlayerDBBaseURL = *fc.PlayerDBBaseURL
	}
	if fc.HypixelBaseURL != nil {
		cfg.HypixelBaseURL = *fc.HypixelBaseURL
	}
	return cfg, nil
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.PlayerDBBaseURL = strings.TrimSpace(cfg.PlayerDBBaseURL)
	cfg.HypixelBaseURL = strings.TrimSpace(cfg.HypixelBaseURL)
	if cfg.PlayerDBBaseURL == "" {
		cfg.PlayerDBBaseURL = playerdb.DefaultBaseURL
	}
	if cfg.HypixelBaseURL == "" {
		cfg.HypixelBaseURL = hypixel.DefaultBaseURL
	}

	if cfg.Threshold <= 0 {
		cfg.Threshold = auction.DefaultThreshold
	}
	if cfg.Threshold > 1 {
		cfg.Threshold = 1
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRate
	}
	return cfg
}

// Validate reports configuration that makes the tool unusable.
func Validate(cfg Config) error {
	if cfg.APIKey == "" {
		return errors.New("API_KEY is not set")
	}
	return nil
}
