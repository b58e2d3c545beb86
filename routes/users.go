package routes

import (
	"errors"
	"log"
	"net/http"

	"kard-tasks/kard/database"
	"kard-tasks/kard/services"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(group *gin.RouterGroup, db *database.Database, userService services.UserServiceInterface) {
	users := group.Group("/usuarios")
	{
		users.GET("/me", func(c *gin.Context) { GetCurrentUser(c, db, userService) })
		users.DELETE("/me", func(c *gin.Context) { DeleteCurrentUser(c, db, userService) })
	}
}

func GetCurrentUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	userID, _, ok := requestScope(c, false)
	if !ok {
		return
	}

	user, err := userService.GetUserById(db, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado."})
			return
		}
		log.Printf("Error loading user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuário."})
		return
	}
	c.JSON(http.StatusOK, user.Summary())
}

// DeleteCurrentUser removes the caller's account together with all of
// their activities.
func DeleteCurrentUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	userID, _, ok := requestScope(c, false)
	if !ok {
		return
	}

	if err := userService.DeleteUser(db, userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado."})
			return
		}
		log.Printf("Error deleting user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir conta."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conta excluída."})
}
