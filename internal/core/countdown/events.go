package countdown

import "time"

// State represents the controller lifecycle stage.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// MessageType identifies a message sent from the scheduler to the rendering goroutine.
type MessageType int

const (
	MessageTick MessageType = iota + 1
	MessageComplete
)

// Message carries one scheduler firing across to the rendering goroutine.
type Message struct {
	Type      MessageType
	Remaining int
}

// EventType defines the type of controller event.
type EventType string

const (
	EventTick     EventType = "tick"
	EventComplete EventType = "complete"
)

// Event represents a countdown update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining int
	Progress  int
	Text      string
	At        time.Time
}
