package middleware

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"nocflow/pkg/requestcontext"
)

// ClientMetadata extracts client IP, User-Agent and a human-readable device
// description from the request and adds them to the context. Applied early in
// the chain so audit events carry them.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPFromRequest(r)
		ua := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, ua, describeDevice(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// describeDevice turns a raw User-Agent header into a short "Browser on OS"
// label for audit trails.
func describeDevice(rawUA string) string {
	if rawUA == "" {
		return "unknown"
	}
	parsed := useragent.New(rawUA)
	browser, _ := parsed.Browser()
	os := parsed.OS()
	switch {
	case browser != "" && os != "":
		return browser + " on " + os
	case browser != "":
		return browser
	case os != "":
		return os
	default:
		return "unknown"
	}
}

// clientIPFromRequest extracts the real client IP, handling proxies and load
// balancers.
func clientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
	// the first entry is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" for IPv4 and "[::1]:port" for IPv6.
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}
	return ""
}
