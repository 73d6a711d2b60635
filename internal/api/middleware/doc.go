// Package middleware provides the HTTP middleware stack for the pagination service.
//
// Middleware stack includes:
//   - SecurityHeaders: nosniff, frame options, XSS filter, referrer policy, CSP, HSTS
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//   - GlobalRateLimit: One bucket shared by every client
//   - Compress: gzip response bodies
//   - RequestLogger: One zap line per request
//
// Rate Limiting:
//   - Token bucket algorithm (golang.org/x/time/rate)
//   - X-RateLimit-Limit and X-RateLimit-Remaining on every checked response
//   - 429 with Retry-After and {"error":"rate limit exceeded"} when empty
//   - Rejections reported to an optional Recorder
//
// Example Usage:
//
//	router.Use(middleware.SecurityHeaders(middleware.DefaultSecurityConfig()))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(), metrics))
//
//	limited := router.Group("/api/limited")
//	limited.Use(middleware.RateLimit(middleware.StrictRateLimitConfig(), metrics))
package middleware
