// Package main is the entry point for the pagelab server.
//
// pagelab serves offset and cursor pagination, search, filtering and sorting
// over an in-memory catalog of mock users and products, behind a middleware
// stack of security headers, CORS, rate limiting and compression.
//
// Configuration:
//   - Environment variables (12-factor), see internal/infrastructure/config
//   - Optional YAML or TOML file via -config
//   - CLI flags (override both)
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Reproducible catalog with a config file
//	./server -config pagelab.yaml -seed 42
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
