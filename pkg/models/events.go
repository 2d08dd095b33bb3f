package models

// Event types recorded for each successful mutation. The metrics calculator
// counts events by these names.
const (
	EventTaskAdded    = "task.added"
	EventTaskRemoved  = "task.removed"
	EventThemeToggled = "theme.toggled"
)
