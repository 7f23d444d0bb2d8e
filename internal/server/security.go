package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Adventure_Go/internal/logger"
)

// AuthMiddleware validates the API key. An empty key disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	if apiKey == "" {
		slog.Warn(LogMsgAuthDisabled)
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Allow public access to documentation and health check endpoints
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Validate API key for all other endpoints
			providedKey := r.Header.Get(HeaderAPIKey)

			// Use constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"remoteAddr", r.RemoteAddr,
					"path", r.URL.Path,
					"hasKey", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipActivity counts one client's traffic inside the current window
type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector rate limits clients per IP over a fixed window
// and raises a log alert on repeated authentication failures
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	authAlertAt int
	windowStart time.Time
	byIP        map[string]*ipActivity
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		window:      RateLimitWindow,
		maxRequests: RateLimitMaxRequests,
		authAlertAt: FailedAuthAlertThreshold,
		windowStart: time.Now(),
		byIP:        make(map[string]*ipActivity),
		now:         time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.failedAuth++
	if a.failedAuth >= s.authAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.failedAuth)
	}
}

// RecordRequest counts a request and reports whether ip is still under the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.requests++
	if a.requests <= s.maxRequests {
		return true
	}
	// one line per hundred rejections
	if (a.requests-s.maxRequests)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "countInWindow", a.requests, "window", s.window)
	}
	return false
}

// activity returns the counters for ip, starting a fresh window when the
// current one has elapsed. Caller must hold the mutex.
func (s *SuspiciousActivityDetector) activity(ip string) *ipActivity {
	if now := s.now(); now.Sub(s.windowStart) > s.window {
		s.byIP = make(map[string]*ipActivity)
		s.windowStart = now
	}
	a, ok := s.byIP[ip]
	if !ok {
		a = &ipActivity{}
		s.byIP[ip] = a
	}
	return a
}

// snapshot copies the counters for ip
func (s *SuspiciousActivityDetector) snapshot(ip string) ipActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byIP[ip]; ok {
		return *a
	}
	return ipActivity{}
}

// SecurityLoggingMiddleware enforces the per-IP request limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from the request. X-Forwarded-For is
// only honoured when the direct peer matches a trusted proxy, given either
// as an address or a CIDR block; the rightmost hop is the one that proxy saw.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !isTrustedProxy(remoteIP, trustedProxies) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isTrustedProxy(remoteIP string, trustedProxies []string) bool {
	ip := net.ParseIP(remoteIP)
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			return true
		}
		if _, block, err := net.ParseCIDR(proxy); err == nil && ip != nil && block.Contains(ip) {
			return true
		}
	}
	return false
}

// SecurityHeadersMiddleware sets the fixed security headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for k, v := range securityHeaders {
				h.Set(k, v)
			}
			next.ServeHTTP(w, r)
		})
	}
}
