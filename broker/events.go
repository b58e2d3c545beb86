package broker

type EventType string

const (
	// Event types in format: <entity>.<action>
	UserCreated EventType = "usuario.criado"
	UserDeleted EventType = "usuario.removido"

	ActivityCreated          EventType = "atividade.criada"
	ActivityUpdated          EventType = "atividade.atualizada"
	ActivityCompletionToggle EventType = "atividade.finalizacao_alternada"
	ActivityPriorityToggle   EventType = "atividade.prioridade_alternada"
	ActivityDeleted          EventType = "atividade.removida"
)
