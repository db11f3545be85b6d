package events

// EventType enumerates domain events.
type EventType string

const (
	EventUserCreated            EventType = "user.created"
	EventPasswordResetRequested EventType = "password_reset.requested"
)

// Event is the payload delivered to subscribers.
type Event struct {
	Type    EventType
	UserID  string
	Email   string
	Payload map[string]any
}
