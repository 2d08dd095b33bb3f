package observability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valter-silva-au/todo/pkg/models"
)

// Metrics summarizes list activity over a time window.
type Metrics struct {
	TasksAdded   int            `json:"tasks_added"`
	TasksRemoved int            `json:"tasks_removed"`
	ThemeToggles int            `json:"theme_toggles"`
	ThemeChanges map[string]int `json:"theme_changes"`
	EventCount   int            `json:"event_count"`
	OldestEvent  *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent  *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator reading from eventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate aggregates every event at or after since. ThemeChanges counts
// toggles by the theme switched to.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{ThemeChanges: make(map[string]int)}
	m.EventCount = len(events)

	for i, event := range events {
		t := event.Time
		if i == 0 {
			m.OldestEvent = &t
		}
		m.NewestEvent = &t

		switch event.Type {
		case models.EventTaskAdded:
			m.TasksAdded++
		case models.EventTaskRemoved:
			m.TasksRemoved++
		case models.EventThemeToggled:
			m.ThemeToggles++
			if to, ok := event.Data["to"].(string); ok {
				m.ThemeChanges[to]++
			}
		}
	}
	return m, nil
}

// ParseSince turns a window such as "7d", "30d" or "24h" into the point in
// time that many days or hours before now. An empty string means 7 days.
func ParseSince(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days < 0 {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil || hours < 0 {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}
