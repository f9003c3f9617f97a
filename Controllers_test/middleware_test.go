package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalRateLimiterReturns429(t *testing.T) {
	env := newTestEnv(t)

	// The engine-wide budget is 50 requests per second per client; the
	// burst that exhausts it must be refused, not just recorded.
	for i := 0; i < 50; i++ {
		w := env.doJSON(t, "GET", "/ping", nil, "")
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := env.doJSON(t, "GET", "/ping", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, "GET", "/ping", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, w.Header().Get("Permissions-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
