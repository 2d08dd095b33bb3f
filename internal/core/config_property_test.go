package core

import (
	"fmt"
	"testing"

	"github.com/valter-silva-au/todo/pkg/models"
	"pgregory.net/rapid"
)

// Property: Config File Round-Trip
// For any valid set of values written to .todoconfig, LoadGlobalConfig
// returns exactly those values and ValidateConfig accepts them.
func TestConfigFileRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		storageFile := rapid.StringMatching(`[a-z]{1,12}\.yaml`).Draw(rt, "storageFile")
		strategy := rapid.SampledFrom([]models.IDStrategy{models.IDStrategyClock, models.IDStrategySequential}).Draw(rt, "strategy")
		events := rapid.Bool().Draw(rt, "events")
		level := rapid.SampledFrom([]string{"debug", "info", "warn", "error"}).Draw(rt, "level")
		showIDs := rapid.Bool().Draw(rt, "showIDs")

		dir := t.TempDir()
		content := fmt.Sprintf("storage:\n  file: %s\nids:\n  strategy: %s\nevents:\n  enabled: %t\nlog:\n  level: %s\nui:\n  show_ids: %t\n",
			storageFile, strategy, events, level, showIDs)
		writeFile(t, dir, ".todoconfig", content)

		cm := NewConfigurationManager(dir)
		cfg, err := cm.LoadGlobalConfig()
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		want := models.GlobalConfig{
			StorageFile:   storageFile,
			IDStrategy:    strategy,
			EventsEnabled: events,
			LogLevel:      level,
			ShowIDs:       showIDs,
		}
		if *cfg != want {
			rt.Fatalf("expected %+v, got %+v", want, *cfg)
		}
		if err := cm.ValidateConfig(cfg); err != nil {
			rt.Fatalf("valid config rejected: %v", err)
		}
	})
}
