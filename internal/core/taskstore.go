package core

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/valter-silva-au/todo/pkg/models"
)

// TaskService is the set of operations presentation layers drive.
type TaskService interface {
	AddTask(rawText string) (models.Task, error)
	RemoveTask(id int64) (bool, error)
	ToggleTheme() (models.Theme, error)
	Tasks() []models.Task
	Theme() models.Theme
}

var _ TaskService = (*TaskStore)(nil)

// TaskStore owns the to-do list state. Every mutation is written through to
// the KeyValueStore before it becomes visible in memory, so the stored copy
// always matches the most recently completed operation.
type TaskStore struct {
	mu     sync.Mutex
	kv     KeyValueStore
	ids    TaskIDGenerator
	events EventLogger
	logger *log.Logger

	tasks []models.Task
	theme models.Theme
}

// TaskStoreOption configures optional TaskStore collaborators.
type TaskStoreOption func(*TaskStore)

// WithEventLogger records every successful mutation to el.
func WithEventLogger(el EventLogger) TaskStoreOption {
	return func(s *TaskStore) { s.events = el }
}

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(l *log.Logger) TaskStoreOption {
	return func(s *TaskStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewTaskStore creates a TaskStore with default state (no tasks, light
// theme). Call Load to read persisted state. A nil ids uses a clock-based
// generator.
func NewTaskStore(kv KeyValueStore, ids TaskIDGenerator, opts ...TaskStoreOption) *TaskStore {
	if ids == nil {
		ids = NewClockIDGenerator(nil)
	}
	s := &TaskStore{
		kv:     kv,
		ids:    ids,
		logger: log.New(io.Discard),
		tasks:  []models.Task{},
		theme:  models.DefaultTheme,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory state with what is persisted. It never fails:
// a missing or unreadable task list becomes empty, and a missing or unknown
// theme becomes light.
func (s *TaskStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = s.loadTasks()
	s.theme = s.loadTheme()

	var maxID int64
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	s.ids.Seed(maxID)
	s.logger.Debug("loaded state", "tasks", len(s.tasks), "theme", s.theme)
}

func (s *TaskStore) loadTasks() []models.Task {
	raw, ok, err := s.kv.Get(models.TasksKey)
	if err != nil {
		s.logger.Warn("reading stored tasks, starting empty", "err", err)
		return []models.Task{}
	}
	if !ok || raw == "" {
		return []models.Task{}
	}

	var stored []models.Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("stored tasks are not valid, starting empty", "err", err)
		return []models.Task{}
	}

	tasks := make([]models.Task, 0, len(stored))
	seen := make(map[int64]bool, len(stored))
	for _, t := range stored {
		text, err := NormalizeTaskText(t.Text)
		if err != nil {
			s.logger.Warn("dropping stored task", "id", t.ID, "reason", err)
			continue
		}
		if seen[t.ID] {
			s.logger.Warn("dropping stored task with duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		tasks = append(tasks, models.Task{ID: t.ID, Text: text})
	}
	return tasks
}

func (s *TaskStore) loadTheme() models.Theme {
	raw, ok, err := s.kv.Get(models.ThemeKey)
	if err != nil {
		s.logger.Warn("reading stored theme, using default", "err", err)
		return models.DefaultTheme
	}
	if !ok {
		return models.DefaultTheme
	}
	theme, valid := models.ParseTheme(raw)
	if !valid {
		s.logger.Warn("unknown stored theme, using default", "theme", raw)
	}
	return theme
}

// AddTask validates rawText and appends a new task holding the trimmed text.
// Rejected input returns ErrTaskEmpty or ErrTaskTooLong and leaves the state
// unchanged.
func (s *TaskStore) AddTask(rawText string) (models.Task, error) {
	text, err := NormalizeTaskText(rawText)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{ID: s.ids.NextID(), Text: text}
	next := make([]models.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)

	if err := s.saveTasks(next); err != nil {
		return models.Task{}, fmt.Errorf("adding task: %w", err)
	}
	s.tasks = next

	s.logEvent(models.EventTaskAdded, map[string]any{"id": task.ID, "chars": utf8.RuneCountInString(task.Text)})
	return task, nil
}

// RemoveTask drops every task whose id matches. An unknown id is not an
// error; removed reports whether anything was dropped. The task list is
// persisted either way.
func (s *TaskStore) RemoveTask(id int64) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}

	if err := s.saveTasks(next); err != nil {
		return false, fmt.Errorf("removing task %d: %w", id, err)
	}
	removed = len(next) != len(s.tasks)
	s.tasks = next

	if removed {
		s.logEvent(models.EventTaskRemoved, map[string]any{"id": id})
	}
	return removed, nil
}

// ToggleTheme flips between light and dark, persists the result, and
// returns the new theme.
func (s *TaskStore) ToggleTheme() (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Toggle()
	if err := s.kv.Set(models.ThemeKey, string(next)); err != nil {
		return s.theme, fmt.Errorf("saving theme: %w", err)
	}
	prev := s.theme
	s.theme = next

	s.logEvent(models.EventThemeToggled, map[string]any{"from": string(prev), "to": string(next)})
	return next, nil
}

// Tasks returns a copy of the tasks in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Theme returns the current theme.
func (s *TaskStore) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// State returns a snapshot of the full state.
func (s *TaskStore) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return models.AppState{Tasks: tasks, Theme: s.theme}
}

// saveTasks writes the whole task list as a JSON array. Caller holds s.mu.
func (s *TaskStore) saveTasks(tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshalling tasks: %w", err)
	}
	if err := s.kv.Set(models.TasksKey, string(data)); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

func (s *TaskStore) logEvent(eventType string, data map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.LogEvent(eventType, data); err != nil {
		s.logger.Warn("writing event", "type", eventType, "err", err)
	}
}
