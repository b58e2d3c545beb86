package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"kard-tasks/kard/database"
	"kard-tasks/kard/models"
	"kard-tasks/kard/services"

	"github.com/gin-gonic/gin"
)

type loginResponse struct {
	Token   string             `json:"token"`
	Usuario models.UserSummary `json:"usuario"`
}

type registerResponse struct {
	Message string             `json:"message"`
	Usuario models.UserSummary `json:"usuario"`
}

func RegisterAuthRoutes(group *gin.RouterGroup, db *database.Database, userService services.UserServiceInterface, authService services.AuthServiceInterface) {
	auth := group.Group("/auth")
	{
		auth.POST("/registro", func(c *gin.Context) { Register(c, db, userService) })
		auth.POST("/login", func(c *gin.Context) { Login(c, db, authService) })
	}
}

func Register(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// the body limit middleware may already have answered 413
		if !c.IsAborted() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		}
		return
	}

	user, err := userService.Register(db, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios."})
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A senha deve ter no mínimo 6 caracteres."})
		case errors.Is(err, services.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A senha deve ter no máximo 72 bytes."})
		case errors.Is(err, services.ErrEmailInUse):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Este e-mail já está em uso."})
		default:
			log.Printf("Error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao criar conta."})
		}
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Message: "Usuário criado com sucesso!",
		Usuario: user.Summary(),
	})
}

func Login(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// the body limit middleware may already have answered 413
		if !c.IsAborted() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido."})
		}
		return
	}
	if strings.TrimSpace(input.Email) == "" || input.Senha == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail e senha são obrigatórios."})
		return
	}

	tokenString, user, err := authService.Login(db, input.Email, input.Senha)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas."})
		case errors.Is(err, services.ErrMissingSecret):
			log.Println("JWT_SECRET is not configured, login refused")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de configuração do servidor."})
		default:
			log.Printf("Error during login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no login."})
		}
		return
	}

	summary := user.Summary()
	summary.Email = ""
	c.JSON(http.StatusOK, loginResponse{Token: tokenString, Usuario: summary})
}
