package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kard-tasks/kard/services"
	"kard-tasks/kard/testutils"
	"kard-tasks/kard/utils/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(authService services.AuthServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": userID, "nome": c.GetString(UserNameKey)})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authService := new(testutils.MockAuthService)
	router := setupAuthRouter(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token de acesso requerido.")
	authService.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	authService := new(testutils.MockAuthService)
	router := setupAuthRouter(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingSecret(t *testing.T) {
	authService := new(testutils.MockAuthService)
	authService.On("ValidateToken", "abc").Return(nil, services.ErrMissingSecret)
	router := setupAuthRouter(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro de configuração do servidor.")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authService := new(testutils.MockAuthService)
	authService.On("ValidateToken", "expired").Return(nil, errors.New("token is expired"))
	router := setupAuthRouter(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido ou expirado.")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authService := new(testutils.MockAuthService)
	authService.On("ValidateToken", "good").Return(&token.JWTClaims{UserID: 42, Nome: "Ana"}, nil)
	router := setupAuthRouter(authService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer good")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"nome":"Ana"}`, w.Body.String())
	authService.AssertExpectations(t)
}

func TestAuthMiddleware_WithRealService(t *testing.T) {
	authService := services.NewAuthService("segredo", 1, 4)
	router := setupAuthRouter(authService)

	signed, err := token.GenerateToken(7, "Bia", []byte("segredo"), 0)
	assert.NoError(t, err)

	// zero expiration means the token is already expired
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	forged, err := token.GenerateToken(7, "Bia", []byte("outro"), time.Hour)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCurrentUserID(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c := testutils.GetTestGinContext(w, req)

	_, ok := CurrentUserID(c)
	assert.False(t, ok)

	c.Set(UserIDKey, "42")
	_, ok = CurrentUserID(c)
	assert.False(t, ok)

	c.Set(UserIDKey, int64(42))
	id, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}
