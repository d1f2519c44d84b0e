package xhttp

import (
	"net/http"
	"testing"
)

func TestGetRequestIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		xForwardedFor string
		remoteAddr    string
		expectedIP    string
	}{
		{
			name:          "x-forwarded-for with IP only",
			xForwardedFor: "203.0.113.195",
			remoteAddr:    "192.0.2.1:1234",
			expectedIP:    "203.0.113.195",
		},
		{
			name:          "x-forwarded-for with IP and port",
			xForwardedFor: "203.0.113.195:8080",
			remoteAddr:    "192.0.2.1:1234",
			expectedIP:    "203.0.113.195",
		},
		{
			name:          "remote addr with IP and port",
			xForwardedFor: "",
			remoteAddr:    "192.0.2.1:1234",
			expectedIP:    "192.0.2.1",
		},
		{
			name:          "IPv6 with port in remote addr",
			xForwardedFor: "",
			remoteAddr:    "[2001:db8::1]:1234",
			expectedIP:    "2001:db8::1",
		},
		{
			name:          "x-forwarded-for takes precedence",
			xForwardedFor: "203.0.113.195",
			remoteAddr:    "192.0.2.1:1234",
			expectedIP:    "203.0.113.195",
		},
		{
			name:          "empty remote addr",
			xForwardedFor: "",
			remoteAddr:    "",
			expectedIP:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://example.com", nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			if tt.xForwardedFor != "" {
				req.Header.Set(XForwardedFor, tt.xForwardedFor)
			}
			req.RemoteAddr = tt.remoteAddr

			if got := GetRequestIP(req); got != tt.expectedIP {
				t.Errorf("GetRequestIP() = %q, want %q", got, tt.expectedIP)
			}
		})
	}
}
