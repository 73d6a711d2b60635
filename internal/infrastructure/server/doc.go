// Package server assembles the catalog, query engine, middleware and routes
// into an HTTP server with graceful shutdown.
package server
