// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port               string  `mapstructure:"PORT"`
	Env                string  `mapstructure:"APP_ENV"`
	FixturesDir        string  `mapstructure:"FIXTURES_DIR"`
	RedisURL           string  `mapstructure:"REDIS_URL"`
	CacheTTLSeconds    int     `mapstructure:"CACHE_TTL_SECONDS"`
	FeatureFlags       string  `mapstructure:"FEATURE_FLAGS"`
	AllowedOrigins     string  `mapstructure:"ALLOWED_ORIGINS"`
	LogLevel           string  `mapstructure:"LOG_LEVEL"`
	TracingEnabled     bool    `mapstructure:"TRACING_ENABLED"`
	TracingExporter    string  `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint       string  `mapstructure:"OTLP_ENDPOINT"`
	TracingSampleRatio float64 `mapstructure:"TRACING_SAMPLE_RATIO"`
	RateLimitPerMinute int     `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

var defaults = map[string]any{
	"PORT":                  "8375",
	"APP_ENV":               "development",
	"FIXTURES_DIR":          "",
	"REDIS_URL":             "",
	"CACHE_TTL_SECONDS":     60,
	"FEATURE_FLAGS":         "",
	"ALLOWED_ORIGINS":       "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173",
	"LOG_LEVEL":             "info",
	"TRACING_ENABLED":       false,
	"TRACING_EXPORTER":      "stdout",
	"OTLP_ENDPOINT":         "localhost:4318",
	"TRACING_SAMPLE_RATIO":  1.0,
	"RATE_LIMIT_PER_MINUTE": 120,
}

// LoadConfig loads application configuration from .env, config.yml, the
// profile file config.<APP_ENV>.yml and the environment, in increasing
// precedence.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables always win over it
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	// The base file is optional
	_ = viper.ReadInConfig()

	env := strings.ToLower(strings.TrimSpace(viper.GetString("APP_ENV")))
	if env != "" && env != "development" && env != "test" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		slog.Info("loaded profile-specific configuration", slog.String("file", "config."+env+".yml"))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Env = env
	if config.Env == "" {
		config.Env = "development"
	}
	config.TracingExporter = strings.ToLower(strings.TrimSpace(config.TracingExporter))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// IsProduction reports whether the config targets a production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate ensures that required configuration values are present and consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.CacheTTLSeconds < 0 {
		return errors.New("CACHE_TTL_SECONDS must not be negative")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		return errors.New("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}
	if c.TracingEnabled {
		switch c.TracingExporter {
		case "stdout":
		case "otlp":
			if c.OTLPEndpoint == "" {
				return errors.New("OTLP_ENDPOINT is required when TRACING_EXPORTER is otlp")
			}
		default:
			return fmt.Errorf("unknown TRACING_EXPORTER %q", c.TracingExporter)
		}
	}

	if c.IsProduction() {
		if c.AllowedOrigins == "*" {
			slog.Warn("ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
		if c.RedisURL == "" {
			slog.Warn("REDIS_URL is empty in production; caching and rate limiting are disabled")
		}
	}

	return nil
}
