package cli

import (
	"fmt"

	"github.com/valter-silva-au/todo/internal/core"
	"github.com/valter-silva-au/todo/internal/observability"
)

// Services, set during app initialization in app.go.
var (
	TaskSvc     core.TaskService
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)

// ShowIDs mirrors the ui.show_ids config value.
var ShowIDs bool

func requireTaskSvc() (core.TaskService, error) {
	if TaskSvc == nil {
		return nil, fmt.Errorf("task store not initialized")
	}
	return TaskSvc, nil
}
