package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
	Auth   AuthConfig        `yaml:"auth"`
	Share  ShareConfig       `yaml:"share"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Share.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// Duration decodes YAML strings like "24h" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// AuthConfig holds credential hashing and bearer token configuration.
//
// JWTSecret signs issued tokens and must be kept out of version
// control; the shipped config expands it from the environment.
type AuthConfig struct {
	JWTSecret  string   `yaml:"jwt_secret"`
	TokenTTL   Duration `yaml:"token_ttl"`
	BcryptCost int      `yaml:"bcrypt_cost"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.JWTSecret, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.BcryptCost, validation.Min(0), validation.Max(31)),
	); err != nil {
		return err
	}
	if time.Duration(c.TokenTTL) <= 0 {
		return fmt.Errorf("auth: token_ttl must be positive")
	}
	return nil
}

// ShareConfig holds public share link configuration.
type ShareConfig struct {
	TokenLength int `yaml:"token_length"`
}

// Validate validates the share configuration.
func (c *ShareConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TokenLength, validation.Required, validation.Min(4), validation.Max(64)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
// The JWT secret has no default; it must come from config or env.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./brainbox.db",
		},
		Auth: AuthConfig{
			TokenTTL: Duration(24 * time.Hour),
		},
		Share: ShareConfig{
			TokenLength: 10,
		},
	}
}
