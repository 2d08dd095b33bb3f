// Package internal provides the App struct that wires the to-do list
// components together and initializes the CLI layer.
package internal

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/valter-silva-au/todo/internal/cli"
	"github.com/valter-silva-au/todo/internal/core"
	"github.com/valter-silva-au/todo/internal/observability"
	"github.com/valter-silva-au/todo/internal/storage"
	"github.com/valter-silva-au/todo/pkg/models"
)

// EventLogFileName is the JSONL event log written to the base directory.
const EventLogFileName = ".todo_events.jsonl"

// App holds all service dependencies of the to-do list.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.GlobalConfig
	Logger    *log.Logger

	// Storage layer
	Store storage.FileStore

	// Core services
	IDGen core.TaskIDGenerator
	Tasks *core.TaskStore

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components. basePath is the directory holding
// .todoconfig, the storage file, and the event log.
func NewApp(basePath string) (*App, error) {
	return newApp(basePath, os.Stderr)
}

func newApp(basePath string, logOut io.Writer) (*App, error) {
	app := &App{BasePath: basePath}
	app.Logger = log.NewWithOptions(logOut, log.Options{
		Prefix: "todo",
		Level:  log.WarnLevel,
	})

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err == nil {
		err = app.ConfigMgr.ValidateConfig(globalCfg)
	}
	if err != nil {
		app.Logger.Warn("ignoring configuration, using defaults", "err", err)
		globalCfg = core.DefaultGlobalConfig()
	}
	app.Config = globalCfg

	if level, err := log.ParseLevel(globalCfg.LogLevel); err == nil {
		app.Logger.SetLevel(level)
	}

	// --- Storage layer ---
	storePath := globalCfg.StorageFile
	if !filepath.IsAbs(storePath) {
		storePath = filepath.Join(basePath, storePath)
	}
	app.Store = storage.NewFileStore(storePath)
	if err := app.Store.Load(); err != nil {
		// The next save replaces the unreadable file.
		app.Logger.Warn("storage file unreadable, starting empty", "path", storePath, "err", err)
	}

	// --- Observability ---
	if globalCfg.EventsEnabled {
		app.EventLog, app.MetricsCalc = openEventLog(basePath, app.Logger)
	}

	// --- Core services ---
	app.IDGen = core.NewIDGenerator(globalCfg.IDStrategy)
	opts := []core.TaskStoreOption{core.WithLogger(app.Logger)}
	if app.EventLog != nil {
		opts = append(opts, core.WithEventLogger(&eventLogAdapter{log: app.EventLog}))
	}
	app.Tasks = core.NewTaskStore(app.Store, app.IDGen, opts...)
	app.Tasks.Load()

	// --- Wire CLI package-level variables ---
	cli.TaskSvc = app.Tasks
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc
	cli.ShowIDs = globalCfg.ShowIDs

	return app, nil
}

// openEventLog opens the event log in basePath. Failure is non-fatal: the
// list works without events, so nil values are returned.
func openEventLog(basePath string, logger *log.Logger) (observability.EventLog, observability.MetricsCalculator) {
	if err := os.MkdirAll(basePath, 0o750); err != nil {
		logger.Warn("event log disabled", "err", err)
		return nil, nil
	}
	eventLog, err := observability.NewJSONLEventLog(filepath.Join(basePath, EventLogFileName))
	if err != nil {
		logger.Warn("event log disabled", "err", err)
		return nil, nil
	}
	return eventLog, observability.NewMetricsCalculator(eventLog)
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the data directory. TODO_HOME wins; otherwise
// the nearest directory at or above cwd holding .todoconfig; otherwise
// ~/.todo.
func ResolveBasePath() string {
	if home := os.Getenv("TODO_HOME"); home != "" {
		return home
	}

	if dir, err := os.Getwd(); err == nil {
		// Walk up to find a directory containing .todoconfig.
		for {
			if _, err := os.Stat(filepath.Join(dir, core.ConfigFileName)); err == nil {
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".todo")
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
