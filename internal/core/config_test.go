package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/todo/pkg/models"
)

// --- Helper ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// --- LoadGlobalConfig tests ---

func TestLoadGlobalConfig_Defaults_WhenNoFile(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigurationManager(dir)

	cfg, err := cm.LoadGlobalConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StorageFile != "localstore.yaml" {
		t.Errorf("StorageFile = %q, want %q", cfg.StorageFile, "localstore.yaml")
	}
	if cfg.IDStrategy != models.IDStrategyClock {
		t.Errorf("IDStrategy = %q, want %q", cfg.IDStrategy, models.IDStrategyClock)
	}
	if !cfg.EventsEnabled {
		t.Error("EventsEnabled = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.ShowIDs {
		t.Error("ShowIDs = true, want false")
	}
}

func TestLoadGlobalConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".todoconfig", `storage:
  file: state/tasks.yaml
ids:
  strategy: sequential
events:
  enabled: false
log:
  level: DEBUG
ui:
  show_ids: true
`)

	cfg, err := NewConfigurationManager(dir).LoadGlobalConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StorageFile != "state/tasks.yaml" {
		t.Errorf("StorageFile = %q", cfg.StorageFile)
	}
	if cfg.IDStrategy != models.IDStrategySequential {
		t.Errorf("IDStrategy = %q", cfg.IDStrategy)
	}
	if cfg.EventsEnabled {
		t.Error("EventsEnabled = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want lower-cased debug", cfg.LogLevel)
	}
	if !cfg.ShowIDs {
		t.Error("ShowIDs = false, want true")
	}
}

func TestLoadGlobalConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".todoconfig", "ui:\n  show_ids: true\n")

	cfg, err := NewConfigurationManager(dir).LoadGlobalConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorageFile != "localstore.yaml" || cfg.IDStrategy != models.IDStrategyClock {
		t.Errorf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadGlobalConfig_FlatKeysAreIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".todoconfig", "storage_file: flat.yaml\nid_strategy: sequential\nshow_ids: true\n")

	cfg, err := NewConfigurationManager(dir).LoadGlobalConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultGlobalConfig()
	if *cfg != *want {
		t.Errorf("expected only nested keys to be read, got %+v", cfg)
	}
}

func TestLoadGlobalConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODO_LOG_LEVEL", "error")

	cfg, err := NewConfigurationManager(dir).LoadGlobalConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".todoconfig", "storage: [unclosed\n")

	_, err := NewConfigurationManager(dir).LoadGlobalConfig()
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), ".todoconfig") {
		t.Errorf("expected error to name the file, got %v", err)
	}
}

// --- ValidateConfig tests ---

func TestValidateConfig(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	tests := []struct {
		name    string
		mutate  func(*models.GlobalConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*models.GlobalConfig) {}},
		{name: "sequential", mutate: func(c *models.GlobalConfig) { c.IDStrategy = models.IDStrategySequential }},
		{name: "empty storage file", mutate: func(c *models.GlobalConfig) { c.StorageFile = "  " }, wantErr: "storage.file"},
		{name: "bad strategy", mutate: func(c *models.GlobalConfig) { c.IDStrategy = "uuid" }, wantErr: "ids.strategy"},
		{name: "bad log level", mutate: func(c *models.GlobalConfig) { c.LogLevel = "loud" }, wantErr: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGlobalConfig()
			tt.mutate(cfg)
			err := cm.ValidateConfig(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := cm.ValidateConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNewIDGenerator(t *testing.T) {
	if _, ok := NewIDGenerator(models.IDStrategySequential).(*sequentialIDGenerator); !ok {
		t.Error("expected sequential generator")
	}
	if _, ok := NewIDGenerator(models.IDStrategyClock).(*clockIDGenerator); !ok {
		t.Error("expected clock generator")
	}
}
