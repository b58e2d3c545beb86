package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent("atividade.criada", "atividade", "create", 42, map[string]interface{}{
		"atividade_id": 7,
		"titulo":       "Estudar",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "atividade.criada", event.Event)
	assert.Equal(t, 1, event.Version)
	assert.Equal(t, "atividade", event.Entity)
	assert.Equal(t, "create", event.Operation)
	assert.Equal(t, "42", event.ActorID)
	assert.False(t, event.Timestamp.IsZero())

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, "Estudar", data["titulo"])
	assert.Equal(t, float64(7), data["atividade_id"])
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("atividade.criada", "atividade", "create", 1, map[string]interface{}{
		"bad": make(chan int),
	})
	assert.Error(t, err)
}
