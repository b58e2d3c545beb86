package testutils

import (
	"encoding/json"
	"sync"

	"kard-tasks/kard/models"
)

// RecordingPublisher keeps every published event in memory.
type RecordingPublisher struct {
	mu       sync.Mutex
	Subjects []string
	Events   []models.Event
	Err      error
}

func (p *RecordingPublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return err
	}
	p.Subjects = append(p.Subjects, subject)
	p.Events = append(p.Events, event)
	return nil
}

func (p *RecordingPublisher) Close() {}

// EventNames lists the event types in publication order.
func (p *RecordingPublisher) EventNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		names = append(names, e.Event)
	}
	return names
}
