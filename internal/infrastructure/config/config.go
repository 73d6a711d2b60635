package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server" toml:"server"`
	Logging     LogConfig         `yaml:"logging" toml:"logging"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" toml:"rate_limit"`
	CORS        CORSConfig        `yaml:"cors" toml:"cors"`
	Security    SecurityConfig    `yaml:"security" toml:"security"`
	Compression CompressionConfig `yaml:"compression" toml:"compression"`
	Data        DataConfig        `yaml:"data" toml:"data"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8000" yaml:"port" toml:"port"`
	Host            string `envconfig:"HOST" default:"0.0.0.0" yaml:"host" toml:"host"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"rps" toml:"rps"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" yaml:"burst" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"enabled" toml:"enabled"`
	// Global adds a process-wide bucket in front of the per-IP buckets.
	Global      bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false" yaml:"global" toml:"global"`
	GlobalRPS   int  `envconfig:"RATE_LIMIT_GLOBAL_RPS" default:"1000" yaml:"global_rps" toml:"global_rps"`
	GlobalBurst int  `envconfig:"RATE_LIMIT_GLOBAL_BURST" default:"2000" yaml:"global_burst" toml:"global_burst"`
	StrictRPS   int  `envconfig:"RATE_LIMIT_STRICT_RPS" default:"1" yaml:"strict_rps" toml:"strict_rps"`
	StrictBurst int  `envconfig:"RATE_LIMIT_STRICT_BURST" default:"5" yaml:"strict_burst" toml:"strict_burst"`
	IdleSeconds int  `envconfig:"RATE_LIMIT_IDLE_SECONDS" default:"600" yaml:"idle_seconds" toml:"idle_seconds"`
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*" yaml:"allow_origins" toml:"allow_origins"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false" yaml:"allow_credentials" toml:"allow_credentials"`
	MaxAgeSeconds    int      `envconfig:"CORS_MAX_AGE_SECONDS" default:"43200" yaml:"max_age_seconds" toml:"max_age_seconds"`
}

// SecurityConfig holds security header configuration.
type SecurityConfig struct {
	Enabled               bool   `envconfig:"SECURITY_HEADERS_ENABLED" default:"true" yaml:"enabled" toml:"enabled"`
	FrameOptions          string `envconfig:"SECURITY_FRAME_OPTIONS" default:"DENY" yaml:"frame_options" toml:"frame_options"`
	ContentSecurityPolicy string `envconfig:"SECURITY_CSP" default:"default-src 'self'" yaml:"content_security_policy" toml:"content_security_policy"`
	ReferrerPolicy        string `envconfig:"SECURITY_REFERRER_POLICY" default:"no-referrer" yaml:"referrer_policy" toml:"referrer_policy"`
	HSTSMaxAge            int    `envconfig:"SECURITY_HSTS_MAX_AGE" default:"15552000" yaml:"hsts_max_age" toml:"hsts_max_age"`
	HSTSIncludeSubdomains bool   `envconfig:"SECURITY_HSTS_INCLUDE_SUBDOMAINS" default:"true" yaml:"hsts_include_subdomains" toml:"hsts_include_subdomains"`
}

// CompressionConfig holds response compression configuration.
type CompressionConfig struct {
	Enabled bool `envconfig:"COMPRESSION_ENABLED" default:"true" yaml:"enabled" toml:"enabled"`
	Level   int  `envconfig:"COMPRESSION_LEVEL" default:"-1" yaml:"level" toml:"level"`
}

// DataConfig controls mock catalog generation.
type DataConfig struct {
	Users    int    `envconfig:"DATA_USERS" default:"100" yaml:"users" toml:"users"`
	Products int    `envconfig:"DATA_PRODUCTS" default:"100" yaml:"products" toml:"products"`
	Seed     uint64 `envconfig:"DATA_SEED" default:"0" yaml:"seed" toml:"seed"`
}

// ShutdownTimeoutDuration returns the graceful shutdown budget.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// IdleTTL returns how long an idle client keeps its bucket.
func (r RateLimitConfig) IdleTTL() time.Duration {
	return time.Duration(r.IdleSeconds) * time.Second
}

// MaxAge returns the preflight cache duration.
func (c CORSConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeSeconds) * time.Second
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadFile reads a YAML or TOML file over the defaults. Keys missing from
// the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("invalid config: server port is required")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid config: rate limit rps and burst must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.StrictRPS <= 0 || c.RateLimit.StrictBurst <= 0) {
		return fmt.Errorf("invalid config: strict rate limit rps and burst must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.Global && (c.RateLimit.GlobalRPS <= 0 || c.RateLimit.GlobalBurst <= 0) {
		return fmt.Errorf("invalid config: global rate limit rps and burst must be positive")
	}
	if c.Data.Users < 0 || c.Data.Products < 0 {
		return fmt.Errorf("invalid config: catalog sizes must not be negative")
	}
	if c.Compression.Level < -2 || c.Compression.Level > 9 {
		return fmt.Errorf("invalid config: compression level %d out of range", c.Compression.Level)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
			Global:            false,
			GlobalRPS:         1000,
			GlobalBurst:       2000,
			StrictRPS:         1,
			StrictBurst:       5,
			IdleSeconds:       600,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowCredentials: false,
			MaxAgeSeconds:    43200,
		},
		Security: SecurityConfig{
			Enabled:               true,
			FrameOptions:          "DENY",
			ContentSecurityPolicy: "default-src 'self'",
			ReferrerPolicy:        "no-referrer",
			HSTSMaxAge:            15552000,
			HSTSIncludeSubdomains: true,
		},
		Compression: CompressionConfig{
			Enabled: true,
			Level:   -1,
		},
		Data: DataConfig{
			Users:    100,
			Products: 100,
			Seed:     0,
		},
	}
}
