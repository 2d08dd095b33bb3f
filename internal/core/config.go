// Package core contains the business logic of the to-do list: the TaskStore
// and its validation rules, task id generation, and configuration loading.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/todo/pkg/models"
)

// ConfigFileName is the name of the YAML config file in the base directory.
const ConfigFileName = ".todoconfig"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ConfigurationManager defines the interface for loading and validating
// configuration from the .todoconfig file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading YAML configuration files.
type viperConfigManager struct {
	// basePath is the root directory where .todoconfig resides.
	basePath string
}

// NewConfigurationManager creates a new ConfigurationManager that reads
// configuration files relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultGlobalConfig returns a GlobalConfig populated with the defaults used
// when no .todoconfig exists.
func DefaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		StorageFile:   "localstore.yaml",
		IDStrategy:    models.IDStrategyClock,
		EventsEnabled: true,
		LogLevel:      "warn",
		ShowIDs:       false,
	}
}

// LoadGlobalConfig reads .todoconfig from the base path using Viper.
// If the file does not exist, defaults are returned. Environment variables
// prefixed with TODO_ (e.g. TODO_LOG_LEVEL) override file values.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)
	v.SetEnvPrefix("todo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.file", cfg.StorageFile)
	v.SetDefault("ids.strategy", string(cfg.IDStrategy))
	v.SetDefault("events.enabled", cfg.EventsEnabled)
	v.SetDefault("log.level", cfg.LogLevel)
	v.SetDefault("ui.show_ids", cfg.ShowIDs)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
		}
	}

	cfg.StorageFile = v.GetString("storage.file")
	cfg.IDStrategy = models.IDStrategy(strings.ToLower(v.GetString("ids.strategy")))
	cfg.EventsEnabled = v.GetBool("events.enabled")
	cfg.LogLevel = strings.ToLower(v.GetString("log.level"))
	cfg.ShowIDs = v.GetBool("ui.show_ids")

	return cfg, nil
}

// ValidateConfig checks the configuration for invalid values and returns a
// clear error message identifying the problem.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}
	if strings.TrimSpace(cfg.StorageFile) == "" {
		return fmt.Errorf("storage.file must not be empty")
	}
	switch cfg.IDStrategy {
	case models.IDStrategyClock, models.IDStrategySequential:
	default:
		return fmt.Errorf("ids.strategy %q is invalid: must be %q or %q",
			cfg.IDStrategy, models.IDStrategyClock, models.IDStrategySequential)
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("log.level %q is invalid: must be one of debug, info, warn, error", cfg.LogLevel)
	}
	return nil
}

// NewIDGenerator returns the TaskIDGenerator selected by strategy.
func NewIDGenerator(strategy models.IDStrategy) TaskIDGenerator {
	if strategy == models.IDStrategySequential {
		return NewSequentialIDGenerator(1)
	}
	return NewClockIDGenerator(nil)
}
