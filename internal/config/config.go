package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the MindMate service.
// Environment variables are parsed from the MINDMATE_ prefix, e.g.
// MINDMATE_HTTP_PORT, MINDMATE_DB_DRIVER.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"5001"`

	// Storage: postgres, sqlite, or memory
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/mindmate.db"`

	// Generative AI collaborator (Gemini-style REST API)
	GenAIBaseURL string        `envconfig:"GENAI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	GenAIAPIKey  string        `envconfig:"GENAI_API_KEY" default:""`
	GenAIModel   string        `envconfig:"GENAI_MODEL" default:"gemini-2.5-flash"`
	GenAITimeout time.Duration `envconfig:"GENAI_TIMEOUT" default:"15s"`

	// Crisis phrase list override, one phrase per line. Empty means the
	// compiled-in default list.
	CrisisPhrasesPath string `envconfig:"CRISIS_PHRASES_PATH" default:""`

	// Rate limiting for LLM-backed endpoints
	ChatRateLimitPerMinute int `envconfig:"CHAT_RATE_LIMIT_PER_MINUTE" default:"30"`
	ChatRateLimitBurst     int `envconfig:"CHAT_RATE_LIMIT_BURST" default:"5"`

	// Health checking
	HealthCheckInterval time.Duration `envconfig:"HEALTH_CHECK_INTERVAL" default:"15s"`
}

// ResolveDefaults validates the selected driver and derives dependent
// settings.
func (c *Config) ResolveDefaults() error {
	allowedDB := map[string]bool{"postgres": true, "sqlite": true, "memory": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
	}
	if c.ChatRateLimitPerMinute <= 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// New creates a new Config by parsing MINDMATE_-prefixed environment
// variables and validating the result.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MINDMATE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:            EnvTesting,
		HTTPPort:               5001,
		DBDriver:               "memory",
		GenAIBaseURL:           "http://localhost:9999",
		GenAIModel:             "gemini-2.5-flash",
		GenAITimeout:           2 * time.Second,
		ChatRateLimitPerMinute: 600,
		ChatRateLimitBurst:     100,
		HealthCheckInterval:    time.Second,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
