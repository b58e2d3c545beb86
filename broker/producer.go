package broker

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"kard-tasks/kard/models"

	"github.com/nats-io/nats.go"
)

// Publisher delivers encoded events to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
	Close()
}

// NATSPublisher publishes events over a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("kard"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	log.Printf("NATS publisher connected to %s", conn.ConnectedUrl())
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}

func (p *NATSPublisher) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		log.Printf("Failed to drain NATS connection: %v", err)
		p.conn.Close()
	}
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(subject string, data []byte) error {
	log.Printf("Event on %s: %s", subject, data)
	return nil
}

func (LogPublisher) Close() {}

// NewPublisher connects to NATS when url is set and falls back to a
// LogPublisher otherwise or when the connection fails.
func NewPublisher(url string) Publisher {
	if url == "" {
		log.Println("NATS_URL not set, events will only be logged")
		return LogPublisher{}
	}
	p, err := NewNATSPublisher(url)
	if err != nil {
		log.Printf("Warning: %v", err)
		log.Println("The application will continue, events will only be logged")
		return LogPublisher{}
	}
	return p
}

// PublishEvent encodes and publishes an event. Failures are logged and
// returned but never roll back the change that produced the event.
func PublishEvent(p Publisher, subject string, event *models.Event) error {
	if p == nil || event == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode event %s: %v", event.Event, err)
		return err
	}
	if err := p.Publish(subject, payload); err != nil {
		log.Printf("Failed to publish event %s to %s: %v", event.Event, subject, err)
		return err
	}
	return nil
}
