package config

import (
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config holds everything the service needs to run. Values are resolved in
// three layers: struct defaults, then an optional YAML file named by
// CONFIG_FILE, then APP_-prefixed environment variables.
type Config struct {
	Hostname string `koanf:"-"`

	ServerHost  string `koanf:"server_host" default:"127.0.0.1"`
	ServerPort  int    `koanf:"server_port" default:"8080"`
	FrontendURL string `koanf:"frontend_url" default:"http://localhost:5173"`

	// JWTSecret signs the session tokens this service mints after the user
	// store accepts a login. The default only exists so development works
	// out of the box.
	JWTSecret string `koanf:"jwt_secret" default:"insecure-development-secret" validate:"required"`

	UserStoreURL    string `koanf:"user_store_url" default:"http://localhost:8001" validate:"required,url"`
	ProjectStoreURL string `koanf:"project_store_url" default:"http://localhost:8002" validate:"required,url"`

	StoreTimeoutSeconds int `koanf:"store_timeout_seconds" default:"10" validate:"gt=0"`
	StoreRetryCount     int `koanf:"store_retry_count" default:"3" validate:"gte=0"`
}

// StoreTimeout returns the per-request timeout for remote store calls.
func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

const (
	configFileENV = "CONFIG_FILE"
	envPrefix     = "APP_"
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	if path := os.Getenv(configFileENV); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.Hostname = hostname

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}
