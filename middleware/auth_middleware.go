package middleware

import (
	"errors"
	"log"
	"net/http"

	"kard-tasks/kard/services"
	"kard-tasks/kard/utils/token"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "userID"
	UserNameKey = "nome"
)

// AuthMiddleware requires a valid bearer token and stores the user id and
// name of its claims in the context.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso requerido."})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrMissingSecret) {
				log.Println("JWT_SECRET is not configured, rejecting authenticated request")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro de configuração do servidor."})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token inválido ou expirado."})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserNameKey, claims.Nome)

		c.Next()
	}
}

// CurrentUserID returns the id stored by AuthMiddleware.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
