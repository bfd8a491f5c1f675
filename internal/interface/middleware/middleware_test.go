package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/readlog/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestJWTAuth(t *testing.T) {
	jwt, err := helpers.NewJWTManager("mw-secret")
	require.NoError(t, err)
	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", JWTAuth(jwt), func(c *gin.Context) {
		id, ok := CallerID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("bearer "+token).Code)
	})

	for name, header := range map[string]string{"absent": "", "no scheme": token, "basic": "Basic abc", "empty bearer": "Bearer "} {
		t.Run("missing token: "+name, func(t *testing.T) {
			w := do(header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "missing token", decodeMessage(t, w))
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		other, err := helpers.NewJWTManager("other-secret")
		require.NoError(t, err)
		forged, _, err := other.GenerateToken(userID)
		require.NoError(t, err)

		for _, tok := range []string{"garbage", forged} {
			w := do("Bearer " + tok)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "invalid token", decodeMessage(t, w))
		}
	})

	t.Run("expired token", func(t *testing.T) {
		past, err := helpers.NewJWTManager("mw-secret")
		require.NoError(t, err)
		past.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		old, _, err := past.GenerateToken(userID)
		require.NoError(t, err)
		w := do("Bearer " + old)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid token", decodeMessage(t, w))
	})
}

func TestAdminKey(t *testing.T) {
	newRouter := func(key string) *gin.Engine {
		r := gin.New()
		r.GET("/admin", AdminKey(key), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	do := func(r *gin.Engine, key string) int {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if key != "" {
			req.Header.Set(AdminKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	open := newRouter("")
	assert.Equal(t, http.StatusOK, do(open, ""))

	guarded := newRouter("s3cret")
	assert.Equal(t, http.StatusUnauthorized, do(guarded, ""))
	assert.Equal(t, http.StatusUnauthorized, do(guarded, "wrong"))
	assert.Equal(t, http.StatusOK, do(guarded, "s3cret"))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRealIP(t *testing.T) {
	handler := func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) }
	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.10:5555"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		return r
	}

	trusted := gin.New()
	trusted.Use(RealIP(true))
	trusted.GET("/", handler)
	w := httptest.NewRecorder()
	trusted.ServeHTTP(w, req())
	assert.Equal(t, "203.0.113.7", w.Body.String())

	untrusted := gin.New()
	require.NoError(t, untrusted.SetTrustedProxies(nil))
	untrusted.Use(RealIP(false))
	untrusted.GET("/", handler)
	w = httptest.NewRecorder()
	untrusted.ServeHTTP(w, req())
	assert.Equal(t, "192.0.2.10", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/api/user/login", RateLimit(rdb, 2, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/user/login", nil))
		return w
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, do().Code)

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Equal(t, "rate limit exceeded", decodeMessage(t, third))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do().Code)
}

func TestRateLimitBypass(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RealIP(false))
	r.GET("/", RateLimit(rdb, 1, time.Minute, KeyByIP(), AllowPrivateIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	r := gin.New()
	r.GET("/", RateLimit(rdb, 1, time.Minute, KeyByIP(), AllowNone()), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
