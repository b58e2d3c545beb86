package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/atividades", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	router.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware("*"))
	router.PATCH("/atividades", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := preflight(router, "http://qualquer.exemplo")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSMiddleware_ListedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware("http://localhost:3000, https://kard.exemplo"))
	router.PATCH("/atividades", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := preflight(router, "https://kard.exemplo")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://kard.exemplo", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight(router, "https://outro.exemplo")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
