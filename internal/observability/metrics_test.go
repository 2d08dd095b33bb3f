package observability

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/todo/pkg/models"
)

func TestMetricsCalculator_Calculate(t *testing.T) {
	log, _ := newTestEventLog(t)

	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Time: base.Add(-2 * time.Hour), Type: models.EventTaskAdded},
		{Time: base, Type: models.EventTaskAdded, Data: map[string]any{"id": 1}},
		{Time: base.Add(time.Hour), Type: models.EventTaskAdded, Data: map[string]any{"id": 2}},
		{Time: base.Add(2 * time.Hour), Type: models.EventTaskRemoved, Data: map[string]any{"id": 1}},
		{Time: base.Add(3 * time.Hour), Type: models.EventThemeToggled, Data: map[string]any{"from": "light", "to": "dark"}},
		{Time: base.Add(4 * time.Hour), Type: models.EventThemeToggled, Data: map[string]any{"from": "dark", "to": "light"}},
		{Time: base.Add(5 * time.Hour), Type: models.EventThemeToggled, Data: map[string]any{"from": "light", "to": "dark"}},
	}
	for _, e := range events {
		if err := log.Write(e); err != nil {
			t.Fatalf("writing event: %v", err)
		}
	}

	m, err := NewMetricsCalculator(log).Calculate(base.Add(-time.Hour))
	if err != nil {
		t.Fatalf("calculating metrics: %v", err)
	}

	if m.TasksAdded != 2 {
		t.Errorf("expected 2 tasks added, got %d", m.TasksAdded)
	}
	if m.TasksRemoved != 1 {
		t.Errorf("expected 1 task removed, got %d", m.TasksRemoved)
	}
	if m.ThemeToggles != 3 {
		t.Errorf("expected 3 toggles, got %d", m.ThemeToggles)
	}
	if m.ThemeChanges["dark"] != 2 || m.ThemeChanges["light"] != 1 {
		t.Errorf("unexpected theme changes: %v", m.ThemeChanges)
	}
	if m.EventCount != 6 {
		t.Errorf("expected 6 events in window, got %d", m.EventCount)
	}
	if m.OldestEvent == nil || !m.OldestEvent.Equal(base) {
		t.Errorf("expected oldest %v, got %v", base, m.OldestEvent)
	}
	if m.NewestEvent == nil || !m.NewestEvent.Equal(base.Add(5*time.Hour)) {
		t.Errorf("expected newest %v, got %v", base.Add(5*time.Hour), m.NewestEvent)
	}
}

func TestMetricsCalculator_Empty(t *testing.T) {
	log, _ := newTestEventLog(t)

	m, err := NewMetricsCalculator(log).Calculate(time.Time{})
	if err != nil {
		t.Fatalf("calculating metrics: %v", err)
	}
	if m.EventCount != 0 || m.OldestEvent != nil || m.NewestEvent != nil {
		t.Errorf("expected empty metrics, got %+v", m)
	}
	if m.ThemeChanges == nil {
		t.Error("expected ThemeChanges to be initialized")
	}
}

type failingEventLog struct{}

func (failingEventLog) Write(Event) error                 { return nil }
func (failingEventLog) Read(EventFilter) ([]Event, error) { return nil, errors.New("boom") }
func (failingEventLog) Close() error                      { return nil }

func TestMetricsCalculator_ReadError(t *testing.T) {
	if _, err := NewMetricsCalculator(failingEventLog{}).Calculate(time.Now()); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  string
		want   time.Time
		errMsg string
	}{
		{name: "empty defaults to 7d", input: "", want: now.AddDate(0, 0, -7)},
		{name: "whitespace defaults to 7d", input: "  ", want: now.AddDate(0, 0, -7)},
		{name: "30d", input: "30d", want: now.AddDate(0, 0, -30)},
		{name: "24h", input: "24h", want: now.Add(-24 * time.Hour)},
		{name: "0h", input: "0h", want: now},
		{name: "bad suffix", input: "2w", errMsg: "unsupported duration format"},
		{name: "bad days", input: "xd", errMsg: "invalid day duration"},
		{name: "bad hours", input: "yh", errMsg: "invalid hour duration"},
		{name: "negative", input: "-5d", errMsg: "invalid day duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSince(tt.input, now)
			if tt.errMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
					t.Fatalf("expected error containing %q, got %v", tt.errMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
