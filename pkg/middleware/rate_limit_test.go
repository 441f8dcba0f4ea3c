package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router := setupTestRouter()
	require.NoError(t, router.SetTrustedProxies(nil))
	router.POST("/user/auth", RateLimitMiddleware(client, limit, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, mr
}

func authAttempt(router *gin.Engine, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/user/auth", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_RejectsAfterLimit(t *testing.T) {
	router, mr := rateLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, authAttempt(router, "192.0.2.1:1000", "").Code)
	assert.Equal(t, http.StatusOK, authAttempt(router, "192.0.2.1:1001", "").Code)

	w := authAttempt(router, "192.0.2.1:1002", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, authAttempt(router, "192.0.2.2:1000", "").Code)

	ttl := mr.TTL("rate_limit:/user/auth:192.0.2.1")
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}

func TestRateLimitMiddleware_IgnoresSpoofedForwardingHeaders(t *testing.T) {
	router, _ := rateLimitedRouter(t, 2)

	codes := []int{
		authAttempt(router, "192.0.2.1:1000", "10.0.0.1").Code,
		authAttempt(router, "192.0.2.1:1000", "10.0.0.2").Code,
		authAttempt(router, "192.0.2.1:1000", "10.0.0.3").Code,
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddleware_WindowExpires(t *testing.T) {
	router, mr := rateLimitedRouter(t, 1)

	assert.Equal(t, http.StatusOK, authAttempt(router, "192.0.2.1:1000", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, authAttempt(router, "192.0.2.1:1000", "").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, authAttempt(router, "192.0.2.1:1000", "").Code)
}

func TestRateLimitMiddleware_RedisDown(t *testing.T) {
	router, mr := rateLimitedRouter(t, 5)
	mr.Close()

	w := authAttempt(router, "192.0.2.1:1000", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit check failed"}`, w.Body.String())
}
