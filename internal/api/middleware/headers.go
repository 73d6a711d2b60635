package middleware

// HeaderXRequestID correlates a request with its log line.
const HeaderXRequestID = "X-Request-ID"

// Rate limit headers. Exposed to browsers through CORS.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)

// Security headers.
const (
	HeaderXContentTypeOptions     = "X-Content-Type-Options"
	HeaderXFrameOptions           = "X-Frame-Options"
	HeaderXXSSProtection          = "X-XSS-Protection"
	HeaderReferrerPolicy          = "Referrer-Policy"
	HeaderContentSecurityPolicy   = "Content-Security-Policy"
	HeaderStrictTransportSecurity = "Strict-Transport-Security"
	HeaderXPoweredBy              = "X-Powered-By"
	HeaderContentEncoding         = "Content-Encoding"
	HeaderVary                    = "Vary"
	HeaderAcceptEncoding          = "Accept-Encoding"
	HeaderContentLength           = "Content-Length"
)
