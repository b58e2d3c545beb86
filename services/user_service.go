package services

import (
	"errors"
	"log"
	"strings"

	"kard-tasks/kard/broker"
	"kard-tasks/kard/database"
	"kard-tasks/kard/models"

	"gorm.io/gorm"
)

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72
)

type UserServiceInterface interface {
	Register(db *database.Database, input models.RegisterInput) (models.User, error)
	GetUserById(db *database.Database, id int64) (models.User, error)
	DeleteUser(db *database.Database, id int64) error
}

type UserService struct {
	authService AuthServiceInterface
	publisher   broker.Publisher
}

func NewUserService(authService AuthServiceInterface, publisher broker.Publisher) *UserService {
	return &UserService{authService: authService, publisher: publisher}
}

// Register validates the input, hashes the password and stores the user
// under its normalized email.
func (s *UserService) Register(db *database.Database, input models.RegisterInput) (models.User, error) {
	nome := strings.TrimSpace(input.Nome)
	email := models.NormalizeEmail(input.Email)

	if nome == "" || email == "" || input.Senha == "" {
		return models.User{}, ErrMissingFields
	}
	if len([]rune(input.Senha)) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}
	if len(input.Senha) > maxPasswordBytes {
		return models.User{}, ErrPasswordTooLong
	}

	var existing int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return models.User{}, err
	}
	if existing > 0 {
		return models.User{}, ErrEmailInUse
	}

	hash, err := s.authService.HashPassword(input.Senha)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Nome: nome, Email: email, Senha: hash}
	if err := db.DB.Create(&user).Error; err != nil {
		// Another registration may have won the race since the check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailInUse
		}
		return models.User{}, err
	}

	s.publish(broker.UserCreated, "create", user.ID, map[string]interface{}{
		"usuario_id": user.ID,
		"email":      user.Email,
	})

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id int64) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes the user row; the foreign key cascades to every
// activity the user owns.
func (s *UserService) DeleteUser(db *database.Database, id int64) error {
	result := db.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	s.publish(broker.UserDeleted, "delete", id, map[string]interface{}{
		"usuario_id": id,
	})
	return nil
}

func (s *UserService) publish(eventType broker.EventType, operation string, actorID int64, data map[string]interface{}) {
	event, err := models.NewEvent(string(eventType), "usuario", operation, actorID, data)
	if err != nil {
		log.Printf("Failed to build event %s: %v", eventType, err)
		return
	}
	_ = broker.PublishEvent(s.publisher, broker.UserEventsSubject, event)
}
