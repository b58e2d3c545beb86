package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kard-tasks/kard/broker"
	"kard-tasks/kard/database"
	"kard-tasks/kard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityServiceInterface interface {
	ListActivities(db *database.Database, userID int64) ([]models.Activity, error)
	GetActivityById(db *database.Database, userID, id int64) (models.Activity, error)
	CreateActivity(db *database.Database, userID int64, input models.ActivityInput) (models.Activity, error)
	UpdateActivity(db *database.Database, userID, id int64, input models.ActivityInput) (models.Activity, error)
	ToggleCompletion(db *database.Database, userID, id int64) error
	ToggleImportance(db *database.Database, userID, id int64) error
	DeleteActivity(db *database.Database, userID, id int64) error
}

// ActivityService runs one statement per operation, always filtered by the
// owning user id.
type ActivityService struct {
	publisher broker.Publisher
	location  *time.Location
	now       func() time.Time
}

func NewActivityService(publisher broker.Publisher, location *time.Location) *ActivityService {
	if location == nil {
		location = time.UTC
	}
	return &ActivityService{
		publisher: publisher,
		location:  location,
		now:       time.Now,
	}
}

func (s *ActivityService) localNow() time.Time {
	return s.now().In(s.location)
}

func (s *ActivityService) ListActivities(db *database.Database, userID int64) ([]models.Activity, error) {
	activities := []models.Activity{}
	result := db.DB.
		Where("usuario_id = ?", userID).
		Order("importante DESC").
		Order("id DESC").
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}
	return activities, nil
}

func (s *ActivityService) GetActivityById(db *database.Database, userID, id int64) (models.Activity, error) {
	var activity models.Activity
	if err := db.DB.Where("id = ? AND usuario_id = ?", id, userID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Activity{}, ErrActivityNotFound
		}
		return models.Activity{}, err
	}
	return activity, nil
}

func (s *ActivityService) CreateActivity(db *database.Database, userID int64, input models.ActivityInput) (models.Activity, error) {
	normalized, err := s.normalize(input)
	if err != nil {
		return models.Activity{}, err
	}

	activity := models.Activity{
		UsuarioID:  userID,
		Titulo:     normalized.Titulo,
		Descricao:  normalized.Descricao,
		Categoria:  normalized.Categoria,
		Data:       normalized.Data,
		Importante: false,
		Finalizada: false,
	}
	if normalized.Nota != "" {
		activity.Descricao = models.AppendLogEntry(activity.Descricao, normalized.Nota, s.localNow())
	}

	if err := db.DB.Clauses(clause.Returning{}).Create(&activity).Error; err != nil {
		// The token outlived the account it was issued for.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.Activity{}, ErrUserNotFound
		}
		return models.Activity{}, err
	}

	s.publish(broker.ActivityCreated, "create", userID, map[string]interface{}{
		"atividade_id": activity.ID,
		"titulo":       activity.Titulo,
		"categoria":    activity.Categoria,
	})

	return activity, nil
}

// UpdateActivity replaces title, category, date and description of the
// activity. A row owned by someone else is reported as ErrActivityNotFound.
func (s *ActivityService) UpdateActivity(db *database.Database, userID, id int64, input models.ActivityInput) (models.Activity, error) {
	normalized, err := s.normalize(input)
	if err != nil {
		return models.Activity{}, err
	}

	descricao := normalized.Descricao
	if normalized.Nota != "" {
		descricao = models.AppendLogEntry(descricao, normalized.Nota, s.localNow())
	}

	var activity models.Activity
	result := db.DB.Model(&activity).
		Clauses(clause.Returning{}).
		Where("id = ? AND usuario_id = ?", id, userID).
		Updates(map[string]interface{}{
			"titulo":    normalized.Titulo,
			"categoria": normalized.Categoria,
			"data":      normalized.Data,
			"descricao": descricao,
		})
	if result.Error != nil {
		return models.Activity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Activity{}, ErrActivityNotFound
	}

	s.publish(broker.ActivityUpdated, "update", userID, map[string]interface{}{
		"atividade_id": activity.ID,
		"titulo":       activity.Titulo,
	})

	return activity, nil
}

// ToggleCompletion flips finalizada. It succeeds without effect when the
// activity does not exist or belongs to another user.
func (s *ActivityService) ToggleCompletion(db *database.Database, userID, id int64) error {
	return s.toggle(db, userID, id, "finalizada", broker.ActivityCompletionToggle)
}

// ToggleImportance flips importante, with the same no-op semantics as
// ToggleCompletion.
func (s *ActivityService) ToggleImportance(db *database.Database, userID, id int64) error {
	return s.toggle(db, userID, id, "importante", broker.ActivityPriorityToggle)
}

func (s *ActivityService) toggle(db *database.Database, userID, id int64, column string, eventType broker.EventType) error {
	result := db.DB.Model(&models.Activity{}).
		Where("id = ? AND usuario_id = ?", id, userID).
		Update(column, gorm.Expr(fmt.Sprintf("NOT %s", column)))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		s.publish(eventType, "update", userID, map[string]interface{}{
			"atividade_id": id,
			"campo":        column,
		})
	}
	return nil
}

// DeleteActivity removes the activity; missing or foreign rows are ignored.
func (s *ActivityService) DeleteActivity(db *database.Database, userID, id int64) error {
	result := db.DB.Where("id = ? AND usuario_id = ?", id, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		s.publish(broker.ActivityDeleted, "delete", userID, map[string]interface{}{
			"atividade_id": id,
		})
	}
	return nil
}

func (s *ActivityService) normalize(input models.ActivityInput) (models.ActivityInput, error) {
	if strings.TrimSpace(input.Titulo) == "" {
		return models.ActivityInput{}, ErrTitleRequired
	}
	normalized, err := input.Normalize(s.localNow())
	if err != nil {
		return models.ActivityInput{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return normalized, nil
}

func (s *ActivityService) publish(eventType broker.EventType, operation string, actorID int64, data map[string]interface{}) {
	event, err := models.NewEvent(string(eventType), "atividade", operation, actorID, data)
	if err != nil {
		log.Printf("Failed to build event %s: %v", eventType, err)
		return
	}
	_ = broker.PublishEvent(s.publisher, broker.ActivityEventsSubject, event)
}
