// Package config provides 12-factor configuration management for the server.
//
// Configuration is loaded from environment variables with sensible defaults,
// or from a YAML/TOML file layered over the defaults. CLI flags can override
// either source for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host, shutdown budget)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP, global and strict-route token buckets
//   - CORS: Allowed origins, credentials, preflight cache
//   - Security: Response security headers
//   - Compression: gzip response compression
//   - Data: Mock catalog sizes and seed
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Server.Addr())
//
// Environment Variables:
//   - PORT, HOST, SHUTDOWN_TIMEOUT_SECONDS
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED, RATE_LIMIT_GLOBAL, RATE_LIMIT_STRICT_RPS
//   - CORS_ALLOW_ORIGINS, CORS_ALLOW_CREDENTIALS, CORS_MAX_AGE_SECONDS
//   - SECURITY_HEADERS_ENABLED, SECURITY_FRAME_OPTIONS, SECURITY_CSP, SECURITY_HSTS_MAX_AGE
//   - COMPRESSION_ENABLED, COMPRESSION_LEVEL
//   - DATA_USERS, DATA_PRODUCTS, DATA_SEED
package config
