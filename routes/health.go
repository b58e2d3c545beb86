package routes

import (
	"log"
	"net/http"

	"kard-tasks/kard/database"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/health", func(c *gin.Context) { Health(c, db) })
}

func Health(c *gin.Context, db *database.Database) {
	if err := db.Ping(); err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
