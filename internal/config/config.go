// Package config maps LM_-prefixed environment variables into a typed
// configuration struct shared across the application.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Env      string         `koanf:"env"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Session  SessionConfig  `koanf:"session" validate:"required"`
	Google   GoogleConfig   `koanf:"google"`
}

type ServerConfig struct {
	Port           string `koanf:"port"`
	AllowedOrigins string `koanf:"allowed_origins"`
}

// Origins splits the comma-separated allowed-origins value. Returns nil
// when unset, letting the router fall back to its development defaults.
func (s ServerConfig) Origins() []string {
	var origins []string

	for _, origin := range strings.Split(s.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`

	// Connections older than this many seconds are recycled by the pool.
	ConnMaxLifetime int `koanf:"conn_max_lifetime"`
}

type SessionConfig struct {
	Secret string `koanf:"secret" validate:"required"`
	Domain string `koanf:"domain"`
}

type GoogleConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	RedirectURL  string `koanf:"redirect_url"`
}

const envPrefix = "LM_"

// Load reads every LM_* environment variable into a Config.
// LM_DATABASE_HOST becomes database.host, LM_SESSION_SECRET becomes
// session.secret, and so on; only the first underscore nests.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)

	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}

	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 14400
	}
}
