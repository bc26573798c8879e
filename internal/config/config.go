// Package config loads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the configuration of the backend.
type Config struct {
	APIURL           string        `envconfig:"API_URL" default:"http://localhost:8080/api" validate:"required,url"`
	Port             int           `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	GinMode          string        `envconfig:"GIN_MODE" default:"release" validate:"oneof=debug release test"`
	LogFormat        string        `envconfig:"LOG_FORMAT" validate:"omitempty,oneof=json human"`
	CORSAllowOrigins string        `envconfig:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool          `envconfig:"ENABLE_PPROF"`
	RateLimitRPS     float64       `envconfig:"RATE_LIMIT_RPS" default:"0" validate:"gte=0"`
	RateLimitBurst   int           `envconfig:"RATE_LIMIT_BURST" default:"20" validate:"gte=1"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	url *url.URL
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report the environment variable, not the struct field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("envconfig")
	})

	return v
}

// LoadDotEnv loads environment variables from a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}

		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", e.Field(), e.Tag()))
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(messages, ", "))
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("config validation failed: API_URL: %w", err)
	}

	// The path is used as router group, it must not end in a slash
	u.Path = strings.TrimRight(u.Path, "/")
	c.url = u

	return nil
}

// URL returns the parsed API_URL.
func (c *Config) URL() *url.URL {
	if c.url == nil {
		u, _ := url.Parse(c.APIURL)
		return u
	}
	return c.url
}

// Debug reports whether gin runs in debug mode.
func (c *Config) Debug() bool {
	return c.GinMode == "debug"
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
//
// If LOG_FORMAT is not set, this defaults to human readable for development.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.Debug()
	}
	return c.LogFormat == "human"
}

// AllowedOrigins returns the CORS origins. Entries may be glob patterns.
func (c *Config) AllowedOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// Address returns the address the HTTP server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
