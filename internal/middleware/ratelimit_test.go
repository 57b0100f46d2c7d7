package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(rdb, limit, time.Minute, zerolog.Nop())
	r.GET("/api/track", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": 1, "name": "ok"})
	})
	return r, mr
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/track?id=1", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r, _ := setupLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestRateLimiter_WindowExpiryResets(t *testing.T) {
	r, mr := setupLimitedRouter(t, 1)

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, hit(r))
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	r, mr := setupLimitedRouter(t, 1)
	mr.Close()

	// The limiter must never turn a healthy lookup into a failure.
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
}
