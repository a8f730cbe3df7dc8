package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{"ipv4 with port", "203.0.113.7:52114", nil, "203.0.113.7"},
		{"ipv6 with port", "[2001:db8::1]:52114", nil, "2001:db8::1"},
		{"ipv6 loopback", "[::1]:8080", nil, "::1"},
		{"no port", "203.0.113.7", nil, "203.0.113.7"},
		{"forwarded-for single", "10.0.0.1:1234",
			map[string]string{"X-Forwarded-For": "198.51.100.4"}, "198.51.100.4"},
		{"forwarded-for chain takes first", "10.0.0.1:1234",
			map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2"}, "198.51.100.4"},
		{"real-ip fallback", "10.0.0.1:1234",
			map[string]string{"X-Real-IP": "198.51.100.9"}, "198.51.100.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.expected {
				t.Errorf("getClientIP() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
