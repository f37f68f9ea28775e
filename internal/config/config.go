// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/triage/internal/catalog"
	"github.com/joho/godotenv"
)

const (
	EnvDB              = "TRIAGE_DB"
	EnvCatalog         = "TRIAGE_CATALOG"
	EnvLogUseCases     = "TRIAGE_LOG_USECASES"
	EnvHTTPAddr        = "TRIAGE_HTTP_ADDR"
	EnvConversationTTL = "TRIAGE_CONVERSATION_TTL"

	// DefaultEnvFile is read from the working directory when present.
	DefaultEnvFile = ".env"
)

type Config struct {
	DBPath string
	// CatalogPath points at a YAML catalog replacing the built-in one.
	CatalogPath     string
	LogUseCases     bool
	HTTPAddr        string
	ConversationTTL time.Duration
}

// DefaultConfig stores the database under home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:          filepath.Join(home, ".triage", "triage.db"),
		HTTPAddr:        ":8080",
		ConversationTTL: 24 * time.Hour,
	}
}

// LoadConfig reads DefaultEnvFile if it exists and then the environment.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(DefaultEnvFile)
}

// LoadConfigFrom seeds the environment from envFile, which may be missing,
// then builds the configuration. Variables already set in the environment
// win over the file. Malformed values are ignored in favour of defaults.
func LoadConfigFrom(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv(EnvConversationTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ConversationTTL = d
		}
	}
	return cfg, nil
}

// Catalog returns the configured catalog: the YAML file at CatalogPath when
// set, the built-in catalog otherwise. Either way it must pass
// catalog.Validate.
func (c Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath != "" {
		return catalog.LoadFile(c.CatalogPath)
	}
	cat := catalog.Default()
	if errs := catalog.Validate(cat); len(errs) > 0 {
		return nil, fmt.Errorf("built-in catalog is inconsistent: %w", errors.Join(errs...))
	}
	return cat, nil
}
