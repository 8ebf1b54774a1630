package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "203.0.113.7:5555", "203.0.113.7"},
		{"remote addr without port", nil, "203.0.113.7", "203.0.113.7"},
		{"cloudflare wins", map[string]string{
			"CF-Connecting-IP": "198.51.100.1",
			"X-Forwarded-For":  "198.51.100.2",
		}, "10.0.0.1:1", "198.51.100.1"},
		{"first valid forwarded entry", map[string]string{
			"X-Forwarded-For": "garbage, 198.51.100.2, 198.51.100.3",
		}, "10.0.0.1:1", "198.51.100.2"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.1:1", "198.51.100.4"},
		{"invalid headers fall through", map[string]string{
			"CF-Connecting-IP": "not-an-ip",
			"X-Real-IP":        "999.1.1.1",
		}, "10.0.0.1:1", "10.0.0.1"},
		{"ipv6 normalized", nil, "[2001:0db8:0000::1]:443", "2001:db8::1"},
		{"nothing valid", nil, "pipe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}
