package models

// MaxTaskLength is the maximum number of characters a task's text may hold
// after surrounding whitespace is trimmed.
const MaxTaskLength = 200

// Storage keys under which the app state is persisted.
const (
	TasksKey = "tasks"
	ThemeKey = "theme"
)

// Task is a single to-do entry. Tasks are never edited, only added and removed.
type Task struct {
	ID   int64  `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// AppState is the full persisted state of a to-do list session.
type AppState struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
	Theme Theme  `json:"theme" yaml:"theme"`
}
