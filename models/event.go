package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope published to the broker after a successful change.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Event     string          `json:"event"`
	Version   int             `json:"version"`
	Entity    string          `json:"entity"`
	Operation string          `json:"operation"`
	ActorID   string          `json:"actor_id"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func NewEvent(event, entity, operation string, actorID int64, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Event:     event,
		Version:   1,
		Entity:    entity,
		Operation: operation,
		ActorID:   strconv.FormatInt(actorID, 10),
		Timestamp: time.Now().UTC(),
		Data:      dataBytes,
	}, nil
}
