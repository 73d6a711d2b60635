package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if prev, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
	}
}

var serverKeys = []string{"PORT", "HOST", "LOG_LEVEL"}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.RateLimit.Global)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL())

	// CORS config
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge())

	// Security config
	assert.True(t, cfg.Security.Enabled)
	assert.Equal(t, "DENY", cfg.Security.FrameOptions)

	// Data config
	assert.Equal(t, 100, cfg.Data.Users)
	assert.Equal(t, 100, cfg.Data.Products)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesDefault(t *testing.T) {
	// With no env vars set, envconfig defaults must agree with Default().
	clearEnv(t, serverKeys...)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t, serverKeys...)
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOrDefaultOnInvalidEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	// Setup environment variables
	envVars := map[string]string{
		"PORT":                     "9000",
		"HOST":                     "127.0.0.1",
		"SHUTDOWN_TIMEOUT_SECONDS": "3",
		"LOG_LEVEL":                "debug",
		"LOG_DEV":                  "true",
		"RATE_LIMIT_RPS":           "500",
		"RATE_LIMIT_BURST":         "1000",
		"RATE_LIMIT_ENABLED":       "false",
		"RATE_LIMIT_STRICT_RPS":    "2",
		"CORS_ALLOW_ORIGINS":       "https://a.example,https://b.example",
		"CORS_ALLOW_CREDENTIALS":   "true",
		"SECURITY_FRAME_OPTIONS":   "SAMEORIGIN",
		"COMPRESSION_ENABLED":      "false",
		"DATA_USERS":               "250",
		"DATA_SEED":                "77",
	}

	// Set environment variables
	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeoutDuration())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2, cfg.RateLimit.StrictRPS)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)

	assert.Equal(t, "SAMEORIGIN", cfg.Security.FrameOptions)
	assert.False(t, cfg.Compression.Enabled)

	assert.Equal(t, 250, cfg.Data.Users)
	assert.Equal(t, 100, cfg.Data.Products)
	assert.Equal(t, uint64(77), cfg.Data.Seed)
}

func TestServerConfig(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		host     string
		wantPort string
		wantHost string
	}{
		{
			name:     "default values",
			wantPort: "8000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom port",
			port:     "9000",
			wantPort: "9000",
			wantHost: "0.0.0.0",
		},
		{
			name:     "custom host",
			host:     "localhost",
			wantPort: "8000",
			wantHost: "localhost",
		},
		{
			name:     "custom port and host",
			port:     "3000",
			host:     "127.0.0.1",
			wantPort: "3000",
			wantHost: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, serverKeys...)
			if tt.port != "" {
				t.Setenv("PORT", tt.port)
			}
			if tt.host != "" {
				t.Setenv("HOST", tt.host)
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantHost, cfg.Server.Host)
		})
	}
}

func TestRateLimitConfig(t *testing.T) {
	tests := []struct {
		name        string
		rps         string
		burst       string
		enabled     string
		wantRPS     int
		wantBurst   int
		wantEnabled bool
	}{
		{
			name:        "default values",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: true,
		},
		{
			name:        "high limits",
			rps:         "1000",
			burst:       "2000",
			wantRPS:     1000,
			wantBurst:   2000,
			wantEnabled: true,
		},
		{
			name:        "disabled",
			enabled:     "false",
			wantRPS:     100,
			wantBurst:   200,
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rps != "" {
				t.Setenv("RATE_LIMIT_RPS", tt.rps)
			}
			if tt.burst != "" {
				t.Setenv("RATE_LIMIT_BURST", tt.burst)
			}
			if tt.enabled != "" {
				t.Setenv("RATE_LIMIT_ENABLED", tt.enabled)
			}

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantRPS, cfg.RateLimit.RequestsPerSecond)
			assert.Equal(t, tt.wantBurst, cfg.RateLimit.Burst)
			assert.Equal(t, tt.wantEnabled, cfg.RateLimit.Enabled)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, wantErr: true},
		{name: "zero rps but disabled", mutate: func(c *Config) {
			c.RateLimit.RequestsPerSecond = 0
			c.RateLimit.Enabled = false
		}},
		{name: "zero strict burst", mutate: func(c *Config) { c.RateLimit.StrictBurst = 0 }, wantErr: true},
		{name: "zero strict rps", mutate: func(c *Config) { c.RateLimit.StrictRPS = 0 }, wantErr: true},
		{name: "zero global burst", mutate: func(c *Config) {
			c.RateLimit.Global = true
			c.RateLimit.GlobalBurst = 0
		}, wantErr: true},
		{name: "zero global burst but global off", mutate: func(c *Config) { c.RateLimit.GlobalBurst = 0 }},
		{name: "negative users", mutate: func(c *Config) { c.Data.Users = -1 }, wantErr: true},
		{name: "compression level", mutate: func(c *Config) { c.Compression.Level = 12 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagelab.yaml")
	content := `
server:
  port: "9100"
rate_limit:
  rps: 5
  burst: 10
cors:
  allow_origins:
    - https://app.example
data:
  users: 20
  seed: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"https://app.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 20, cfg.Data.Users)
	assert.Equal(t, 100, cfg.Data.Products)
	assert.Equal(t, uint64(3), cfg.Data.Seed)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagelab.toml")
	content := `
[server]
port = "9200"

[logging]
level = "warn"

[security]
frame_options = "SAMEORIGIN"
hsts_max_age = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9200", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "SAMEORIGIN", cfg.Security.FrameOptions)
	assert.Equal(t, 0, cfg.Security.HSTSMaxAge)
	assert.Equal(t, "default-src 'self'", cfg.Security.ContentSecurityPolicy)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o600))
	_, err = LoadFile(jsonPath)
	assert.ErrorContains(t, err, "unsupported config format")

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("rate_limit:\n  rps: 0\n"), 0o600))
	_, err = LoadFile(badPath)
	assert.ErrorContains(t, err, "rate limit")
}
