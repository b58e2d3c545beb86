package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/atividades", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func requestFrom(router *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/atividades", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := setupRateLimitedRouter(NewRateLimiter(ctx, 3, 15*time.Minute))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.1:5000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "10.0.0.1:5001"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.2:5000"))
}

func TestRateLimiter_SweepForgetsIdleClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 1, time.Minute)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.Equal(t, 1, rl.size())

	rl.sweep(time.Now())
	assert.Equal(t, 1, rl.size())

	rl.sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, rl.size())
	assert.True(t, rl.allow("10.0.0.1"))
}

func TestNewRateLimiter_InvalidSettings(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 0, 0)
	assert.Equal(t, 1, rl.burst)
	assert.Equal(t, time.Minute, rl.window)
}
