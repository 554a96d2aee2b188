package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings cratedig needs to reach the Discogs API.
// The session core never reads configuration or environment state; a
// loaded Config is injected into the client at composition time.
type Config struct {
	Token    string
	BaseURL  string
	PerPage  int
	Currency string
}

const (
	defaultConfigPath = "~/.config/cratedig/config.toml"
	defaultPerPage    = 50
	defaultCurrency   = "USD"

	// EnvToken overrides the file-provided token when set.
	EnvToken = "DISCOGS_TOKEN"
)

// Load locates and parses the config file, falling back to defaults
// when missing. The DISCOGS_TOKEN environment variable, when set, wins
// over the token in the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PerPage: defaultPerPage, Currency: defaultCurrency}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Token    string `toml:"token"`
		BaseURL  string `toml:"base_url"`
		PerPage  int    `toml:"per_page"`
		Currency string `toml:"currency"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Token = strings.TrimSpace(raw.Token)
	cfg.BaseURL = strings.TrimSpace(raw.BaseURL)

	if raw.PerPage > 0 && raw.PerPage <= 100 {
		cfg.PerPage = raw.PerPage
	}
	if currency := strings.TrimSpace(raw.Currency); currency != "" {
		cfg.Currency = strings.ToUpper(currency)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		cfg.Token = token
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
