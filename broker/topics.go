package broker

const (
	UserEventsSubject     = "kard.usuarios"
	ActivityEventsSubject = "kard.atividades"
)
