package http

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order for the original client address when
// the service sits behind a proxy or CDN.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// clientIP resolves the client address for rate limiting and audit logs.
// Proxy headers are trusted only when they carry a valid public address;
// anything else falls back to the transport peer.
func clientIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// the first entry is the original client; later hops append
		candidate := strings.TrimSpace(strings.Split(value, ",")[0])
		if ip := net.ParseIP(candidate); ip != nil && isPublicIP(ip) {
			return candidate
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isPublicIP(ip net.IP) bool {
	return !ip.IsPrivate() &&
		!ip.IsLoopback() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast()
}
