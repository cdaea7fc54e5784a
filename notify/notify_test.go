package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingNotifier struct {
	events []Event
}

func (c *countingNotifier) Notify(event Event) {
	c.events = append(c.events, event)
}

func TestMultiNotifierDeliversToAll(t *testing.T) {
	first := &countingNotifier{}
	second := &countingNotifier{}
	multi := MultiNotifier{first, second}

	event := Event{Severity: SeverityInfo, Title: "Article Published", Message: "ok"}
	multi.Notify(event)

	assert.Equal(t, []Event{event}, first.events)
	assert.Equal(t, []Event{event}, second.events)
}

func TestLogNotifierDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogNotifier{}.Notify(Event{Severity: SeverityError, Title: "Error", Message: "boom"})
		LogNotifier{}.Notify(Event{Severity: SeverityInfo, Title: "Info", Message: "fine"})
	})
}
