package notify

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Vaibhav01-bit/WordWave/metrics"
)

// DefaultSubject is the NATS subject store events are published on.
const DefaultSubject = "wordwave.events"

// NATSNotifier publishes store events to NATS so other services can react
// to article lifecycle changes.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
}

// eventMessage is the wire structure published to NATS.
type eventMessage struct {
	Event     Event     `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// NewNATSNotifier connects to the given NATS URL.
func NewNATSNotifier(url, subject string) (*NATSNotifier, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	if subject == "" {
		subject = DefaultSubject
	}

	return &NATSNotifier{conn: nc, subject: subject}, nil
}

// Close closes the NATS connection.
func (n *NATSNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

// Notify publishes the event. Publish failures are logged and dropped; event
// delivery is best-effort and never fails a store mutation.
func (n *NATSNotifier) Notify(event Event) {
	message := eventMessage{
		Event:     event,
		Timestamp: time.Now(),
		Source:    "wordwave-service",
		Version:   "1.0",
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[ERROR] Failed to encode event for NATS: %v", err)
		metrics.NatsMessagesPublished.WithLabelValues(n.subject, "error").Inc()
		return
	}

	if err := n.conn.Publish(n.subject, data); err != nil {
		log.Printf("[ERROR] Failed to publish event to NATS: %v", err)
		metrics.NatsMessagesPublished.WithLabelValues(n.subject, "error").Inc()
		return
	}

	metrics.NatsMessagesPublished.WithLabelValues(n.subject, "ok").Inc()
}
