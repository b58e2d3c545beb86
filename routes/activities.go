package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"kard-tasks/kard/database"
	"kard-tasks/kard/middleware"
	"kard-tasks/kard/models"
	"kard-tasks/kard/services"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(group *gin.RouterGroup, db *database.Database, activityService services.ActivityServiceInterface) {
	activities := group.Group("/atividades")
	{
		activities.GET("", func(c *gin.Context) { ListActivities(c, db, activityService) })
		activities.POST("", func(c *gin.Context) { CreateActivity(c, db, activityService) })
		activities.GET("/:id", func(c *gin.Context) { GetActivityById(c, db, activityService) })
		activities.PUT("/:id", func(c *gin.Context) { UpdateActivity(c, db, activityService) })
		activities.PATCH("/:id/finalizar", func(c *gin.Context) { ToggleCompletion(c, db, activityService) })
		activities.PATCH("/:id/prioridade", func(c *gin.Context) { ToggleImportance(c, db, activityService) })
		activities.DELETE("/:id", func(c *gin.Context) { DeleteActivity(c, db, activityService) })
	}
}

// requestScope returns the authenticated user id and, when withID is set,
// the numeric :id parameter. It writes the error response itself.
func requestScope(c *gin.Context, withID bool) (userID, id int64, ok bool) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso requerido."})
		return 0, 0, false
	}
	if !withID {
		return userID, 0, true
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido."})
		return 0, 0, false
	}
	return userID, id, true
}

func writeActivityError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título é obrigatório"})
	case errors.Is(err, services.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida. Use AAAA-MM-DD ou DD/MM/AAAA."})
	case errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Atividade não encontrada."})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Conta não encontrada. Faça login novamente."})
	default:
		log.Printf("Activity request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func ListActivities(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, _, ok := requestScope(c, false)
	if !ok {
		return
	}

	activities, err := activityService.ListActivities(db, userID)
	if err != nil {
		writeActivityError(c, err, "Erro ao buscar atividades")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func GetActivityById(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, id, ok := requestScope(c, true)
	if !ok {
		return
	}

	activity, err := activityService.GetActivityById(db, userID, id)
	if err != nil {
		writeActivityError(c, err, "Erro ao buscar atividade")
		return
	}
	c.JSON(http.StatusOK, activity)
}

func CreateActivity(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, _, ok := requestScope(c, false)
	if !ok {
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if !c.IsAborted() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		}
		return
	}

	activity, err := activityService.CreateActivity(db, userID, input)
	if err != nil {
		writeActivityError(c, err, "Erro ao criar")
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, id, ok := requestScope(c, true)
	if !ok {
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if !c.IsAborted() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		}
		return
	}

	activity, err := activityService.UpdateActivity(db, userID, id, input)
	if err != nil {
		writeActivityError(c, err, "Erro ao editar")
		return
	}
	c.JSON(http.StatusOK, activity)
}

func ToggleCompletion(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, id, ok := requestScope(c, true)
	if !ok {
		return
	}

	if err := activityService.ToggleCompletion(db, userID, id); err != nil {
		writeActivityError(c, err, "Erro ao atualizar")
		return
	}
	c.Status(http.StatusOK)
}

func ToggleImportance(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, id, ok := requestScope(c, true)
	if !ok {
		return
	}

	if err := activityService.ToggleImportance(db, userID, id); err != nil {
		writeActivityError(c, err, "Erro ao atualizar")
		return
	}
	c.Status(http.StatusOK)
}

func DeleteActivity(c *gin.Context, db *database.Database, activityService services.ActivityServiceInterface) {
	userID, id, ok := requestScope(c, true)
	if !ok {
		return
	}

	if err := activityService.DeleteActivity(db, userID, id); err != nil {
		writeActivityError(c, err, "Erro ao excluir")
		return
	}
	c.Status(http.StatusOK)
}
