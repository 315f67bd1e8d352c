// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. The --config flag of the careerpath command
//  2. The CONFIG_PATH environment variable
//
// With neither set, configuration is read from the environment alone.
// A .env file in the working directory, if present, is loaded into the
// environment first.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the SQLite file holding the static catalog.
	// ":memory:" keeps it in memory.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	HTTPServer `yaml:"http_server"`
	Session    `yaml:"session"`
	Upload     `yaml:"upload"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`

	// AllowedOrigin is checked against the Origin header of WebSocket
	// upgrades. Empty allows any origin.
	AllowedOrigin string `yaml:"allowed_origin" env:"HTTP_SERVER_ALLOWED_ORIGIN"`
}

// Session configures the in-memory session registry.
type Session struct {
	CookieName    string        `yaml:"cookie_name"    env:"SESSION_COOKIE_NAME"    env-default:"careerpath_session"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"   env:"SESSION_IDLE_TIMEOUT"   env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

// Upload configures syllabus, resume and picture uploads.
type Upload struct {
	MaxBytes int64 `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"10485760"`

	// ExtractDocuments turns on PDF/DOCX text extraction. Off, every file
	// is stored as its raw text.
	ExtractDocuments bool `yaml:"extract_documents" env:"UPLOAD_EXTRACT_DOCUMENTS" env-default:"false"`
}

// ErrConfigNotFound is returned by Load when the config file is missing.
var ErrConfigNotFound = errors.New("config file does not exist")

// Load reads and validates the configuration. path may be empty, in which
// case CONFIG_PATH is consulted and, failing that, only the environment.
func Load(path string) (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: %w: %s", ErrConfigNotFound, path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}
	return &cfg, nil
}

// MustLoad is Load for program startup: it exits the process when the
// configuration cannot be loaded, so a returned *Config is always valid.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
