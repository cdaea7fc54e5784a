// Package notify fans out user-facing store events (the equivalent of UI
// toasts) to whatever sinks are configured.
package notify

import "log"

// Event severities.
const (
	SeverityInfo  = "info"
	SeverityError = "error"
)

// Event describes a state change worth surfacing to users.
type Event struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// Notifier receives store events. Implementations must not block the caller
// for long; the store emits events synchronously inside mutations.
type Notifier interface {
	Notify(event Event)
}

// LogNotifier writes events to the process log. Always available.
type LogNotifier struct{}

func (LogNotifier) Notify(event Event) {
	switch event.Severity {
	case SeverityError:
		log.Printf("[ERROR] %s: %s", event.Title, event.Message)
	default:
		log.Printf("[INFO] %s: %s", event.Title, event.Message)
	}
}

// MultiNotifier delivers each event to every wrapped notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(event Event) {
	for _, n := range m {
		n.Notify(event)
	}
}
