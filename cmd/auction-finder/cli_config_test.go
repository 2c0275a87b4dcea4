package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseCLIConfigDefaults(t *testing.T) {
	cfg, err := parseCLIConfig([]string{"-env_file="}, envOf(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Threshold != 0.6 {
		t.Fatalf("expected threshold 0.6, got %v", cfg.Threshold)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.APIKey)
	}
}

func TestParseCLIConfigReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("API_KEY=from-dotenv\nHYPIXEL_BASE_URL=http://127.0.0.1:9\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-env_file", path}, envOf(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "from-dotenv" {
		t.Fatalf("expected dotenv api key, got %q", cfg.APIKey)
	}
	if cfg.HypixelBaseURL != "http://127.0.0.1:9" {
		t.Fatalf("unexpected hypixel url %q", cfg.HypixelBaseURL)
	}
}

func TestParseCLIConfigEnvBeatsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-env_file", path}, envOf(map[string]string{"API_KEY": " from-env "}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("expected env api key, got %q", cfg.APIKey)
	}
}

func TestParseCLIConfigMissingDotenvIsFine(t *testing.T) {
	if _, err := parseCLIConfig([]string{"-env_file", filepath.Join(t.TempDir(), "nope.env")}, envOf(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseCLIConfigFlagsBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("threshold: 0.8\ntimeout: 3s\nverbose: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-env_file=", "-config", path, "-threshold", "0.7", "-no_color"}, envOf(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Threshold != 0.7 {
		t.Fatalf("expected flag threshold 0.7, got %v", cfg.Threshold)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("expected file timeout 3s, got %v", cfg.Timeout)
	}
	if !cfg.Verbose || !cfg.NoColor {
		t.Fatalf("expected verbose and no_color, got %+v", cfg)
	}
}

func TestParseCLIConfigRejectsUnknownFlag(t *testing.T) {
	if _, err := parseCLIConfig([]string{"-bogus"}, envOf(nil)); err == nil {
		t.Fatal("expected unknown flag to be rejected")
	}
}
