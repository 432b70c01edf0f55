package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:               "8080",
		Env:                "development",
		CacheTTLSeconds:    60,
		TracingExporter:    "stdout",
		TracingSampleRatio: 1,
		RateLimitPerMinute: 120,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"negative ttl", func(c *Config) { c.CacheTTLSeconds = -1 }, true},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -5 }, true},
		{"sample ratio above one", func(c *Config) { c.TracingSampleRatio = 1.5 }, true},
		{"unknown exporter ignored when tracing off", func(c *Config) { c.TracingExporter = "zipkin" }, false},
		{"unknown exporter", func(c *Config) { c.TracingEnabled = true; c.TracingExporter = "zipkin" }, true},
		{"otlp without endpoint", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "otlp"
			c.OTLPEndpoint = ""
		}, true},
		{"otlp with endpoint", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "otlp"
			c.OTLPEndpoint = "collector:4318"
		}, false},
		{"production wildcard origins only warns", func(c *Config) {
			c.Env = "production"
			c.AllowedOrigins = "*"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "development")
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8375", c.Port)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, 60, c.CacheTTLSeconds)
	assert.Equal(t, 120, c.RateLimitPerMinute)
	assert.Equal(t, "stdout", c.TracingExporter)
	assert.False(t, c.TracingEnabled)
	assert.Empty(t, c.RedisURL)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("FEATURE_FLAGS", "admin_crud=on")
	t.Setenv("TRACING_EXPORTER", "  OTLP ")
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "test", c.Env)
	assert.Equal(t, 5, c.CacheTTLSeconds)
	assert.Equal(t, "admin_crud=on", c.FeatureFlags)
	assert.Equal(t, "otlp", c.TracingExporter)
}

func TestLoadConfig_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("PORT: \"7000\"\nLOG_LEVEL: debug\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.staging.yml"), []byte("PORT: \"7100\"\n"), 0o600))
	chdir(t, dir)
	t.Setenv("APP_ENV", "staging")
	defer viper.Reset()

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7100", c.Port)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "staging", c.Env)
}

func TestLoadConfig_MissingProfileFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	defer viper.Reset()

	_, err := LoadConfig()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
