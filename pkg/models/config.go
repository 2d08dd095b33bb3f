package models

// IDStrategy selects how new task ids are produced.
type IDStrategy string

const (
	// IDStrategyClock issues millisecond timestamps, bumped to stay strictly increasing.
	IDStrategyClock IDStrategy = "clock"
	// IDStrategySequential issues 1, 2, 3, ... continuing after the largest stored id.
	IDStrategySequential IDStrategy = "sequential"
)

// GlobalConfig holds settings read from .todoconfig via Viper. Each field
// is read from the nested key named in its comment.
type GlobalConfig struct {
	StorageFile   string     // storage.file
	IDStrategy    IDStrategy // ids.strategy
	EventsEnabled bool       // events.enabled
	LogLevel      string     // log.level
	ShowIDs       bool       // ui.show_ids
}
