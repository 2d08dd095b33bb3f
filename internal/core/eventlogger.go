package core

// EventLogger receives one event per successful TaskStore mutation.
// Defining it here avoids importing the observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}
