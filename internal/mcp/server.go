// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the to-do list as MCP tools for AI assistants.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/todo/internal/core"
	"github.com/valter-silva-au/todo/internal/observability"
	"github.com/valter-silva-au/todo/pkg/models"
)

// Server wraps the task service and exposes it as MCP tools.
type Server struct {
	server      *gomcp.Server
	svc         core.TaskService
	metricsCalc observability.MetricsCalculator
}

// NewServer creates a new MCP server backed by svc. metricsCalc may be nil
// if the event log is disabled.
func NewServer(svc core.TaskService, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		svc:         svc,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "todo", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type listTasksInput struct{}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
	Theme string       `json:"theme"`
}

type addTaskInput struct {
	Text string `json:"text" jsonschema:"the task text; surrounding whitespace is trimmed and the result must be 1 to 200 characters"`
}

type addTaskOutput struct {
	Task    taskOutput `json:"task"`
	Message string     `json:"message"`
}

type removeTaskInput struct {
	ID int64 `json:"id" jsonschema:"the id of the task to remove, as returned by list_tasks or add_task"`
}

type removeTaskOutput struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

type themeInput struct{}

type themeOutput struct {
	Theme   string `json:"theme"`
	Message string `json:"message,omitempty"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	TasksAdded   int            `json:"tasks_added"`
	TasksRemoved int            `json:"tasks_removed"`
	ThemeToggles int            `json:"theme_toggles"`
	ThemeChanges map[string]int `json:"theme_changes"`
	EventCount   int            `json:"event_count"`
	OldestEvent  string         `json:"oldest_event,omitempty"`
	NewestEvent  string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks in the order they were added, with the current theme.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the end of the list. Returns the new task with its id.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Remove the task with the given id. Removing an unknown id is not an error.",
	}, s.handleRemoveTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_theme",
		Description: "Get the current display theme (light or dark).",
	}, s.handleGetTheme)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "toggle_theme",
		Description: "Switch between the light and dark theme. Returns the new theme.",
	}, s.handleToggleTheme)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get activity metrics from the event log: tasks added and removed, and theme toggles.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	tasks := s.svc.Tasks()

	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
		Theme: string(s.svc.Theme()),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}

	return nil, out, nil
}

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, addTaskOutput, error) {
	task, err := s.svc.AddTask(input.Text)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			return errorResult(verr.Message), addTaskOutput{}, nil
		}
		return errorResult(fmt.Sprintf("adding task: %s", err)), addTaskOutput{}, nil
	}

	out := addTaskOutput{
		Task:    taskToOutput(task),
		Message: fmt.Sprintf("added task %d", task.ID),
	}
	return nil, out, nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, input removeTaskInput) (*gomcp.CallToolResult, removeTaskOutput, error) {
	removed, err := s.svc.RemoveTask(input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("removing task %d: %s", input.ID, err)), removeTaskOutput{}, nil
	}

	out := removeTaskOutput{Removed: removed}
	if removed {
		out.Message = fmt.Sprintf("removed task %d", input.ID)
	} else {
		out.Message = fmt.Sprintf("no task with id %d", input.ID)
	}
	return nil, out, nil
}

func (s *Server) handleGetTheme(_ context.Context, _ *gomcp.CallToolRequest, _ themeInput) (*gomcp.CallToolResult, themeOutput, error) {
	return nil, themeOutput{Theme: string(s.svc.Theme())}, nil
}

func (s *Server) handleToggleTheme(_ context.Context, _ *gomcp.CallToolRequest, _ themeInput) (*gomcp.CallToolResult, themeOutput, error) {
	theme, err := s.svc.ToggleTheme()
	if err != nil {
		return errorResult(fmt.Sprintf("toggling theme: %s", err)), themeOutput{}, nil
	}

	out := themeOutput{
		Theme:   string(theme),
		Message: fmt.Sprintf("switched to %s theme", theme),
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (the event log may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceTime, err := observability.ParseSince(input.Since, time.Now().UTC())
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		TasksAdded:   metrics.TasksAdded,
		TasksRemoved: metrics.TasksRemoved,
		ThemeToggles: metrics.ThemeToggles,
		ThemeChanges: metrics.ThemeChanges,
		EventCount:   metrics.EventCount,
	}
	if out.ThemeChanges == nil {
		out.ThemeChanges = make(map[string]int)
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{ID: t.ID, Text: t.Text}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{ThemeChanges: make(map[string]int)}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
