package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Suspicious activity log messages
const (
	SecurityAlertFailedAuth = "Repeated failed authentication from client"
	SecurityAlertHighRate   = "Client over request budget, rejecting"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not configured, authentication disabled"
)

// Request header names
const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderForwardedFor  = "X-Forwarded-For"
)

// securityHeaders is set on every response
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
	"Cache-Control":          "no-store",
}

// PublicPaths bypass API key authentication
var PublicPaths = []string{"/swagger/", "/healthz", "/readyz", "/metrics", "/version", "/events"}

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second

	RateLimitWindow          = 5 * time.Minute
	RateLimitMaxRequests     = 1000
	FailedAuthAlertThreshold = 5
)

// RedactedValue replaces secret header values in debug logs
const RedactedValue = "[REDACTED]"
