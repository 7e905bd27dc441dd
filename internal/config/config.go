package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	DefaultEndpoint   = "https://www.boredapi.com/api/activity"
	DefaultDBLocation = "activities.db"
)

type Config struct {
	endpoint    string
	dbLocation  string
	httpTimeout time.Duration
	logLevel    string
	logFormat   string
}

type envConfig struct {
	Endpoint    string        `env:"ACTIVITY_API_URL" envDefault:"https://www.boredapi.com/api/activity"`
	DBLocation  string        `env:"ACTIVITY_DB" envDefault:"activities.db"`
	HTTPTimeout time.Duration `env:"ACTIVITY_HTTP_TIMEOUT" envDefault:"0s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text"`
}

// New читает конфигурацию из окружения.
func New() (*Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}
	if raw.HTTPTimeout < 0 {
		return nil, fmt.Errorf("ACTIVITY_HTTP_TIMEOUT не может быть отрицательным: %s", raw.HTTPTimeout)
	}
	return &Config{
		endpoint:    raw.Endpoint,
		dbLocation:  raw.DBLocation,
		httpTimeout: raw.HTTPTimeout,
		logLevel:    raw.LogLevel,
		logFormat:   raw.LogFormat,
	}, nil
}

// Default возвращает конфигурацию без чтения окружения.
func Default() *Config {
	return &Config{
		endpoint:   DefaultEndpoint,
		dbLocation: DefaultDBLocation,
		logLevel:   "warn",
		logFormat:  "text",
	}
}

func (c *Config) Endpoint() string {
	return c.endpoint
}

func (c *Config) DBLocation() string {
	return c.dbLocation
}

// HTTPTimeout 0 означает отсутствие таймаута.
func (c *Config) HTTPTimeout() time.Duration {
	return c.httpTimeout
}

func (c *Config) LogLevel() string {
	return c.logLevel
}

func (c *Config) LogFormat() string {
	return c.logFormat
}

// WithEndpoint возвращает копию с другим адресом API.
func (c *Config) WithEndpoint(endpoint string) *Config {
	cp := *c
	cp.endpoint = endpoint
	return &cp
}

// WithDBLocation возвращает копию с другим расположением базы.
func (c *Config) WithDBLocation(location string) *Config {
	cp := *c
	cp.dbLocation = location
	return &cp
}
