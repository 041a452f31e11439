package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is one named parameter bundle. Delay bounds are plain
// millisecond integers so presets stay readable. Zero-valued fields are
// treated as unset and leave the flag-provided value in place.
type Scenario struct {
	Capacity        int `yaml:"capacity"`
	Groups          int `yaml:"groups"`
	DevicesPerGroup int `yaml:"devices_per_group"`
	GenDelayMinMS   int `yaml:"gen_delay_min_ms"`
	GenDelayMaxMS   int `yaml:"gen_delay_max_ms"`
	WorkDelayMinMS  int `yaml:"work_delay_min_ms"`
	WorkDelayMaxMS  int `yaml:"work_delay_max_ms"`
}

// ApplyScenario reads the preset file and overlays the named scenario
// onto cfg. An unknown scenario name is an error; a missing or
// malformed file is too.
func ApplyScenario(cfg *sim.Config, path string, name string) error {
	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario config: %w", err)
	}

	// Parse YAML
	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parsing scenario config: %w", err)
	}

	preset, ok := sc.Scenarios[name]
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", name, path)
	}
	logrus.Infof("Using preset scenario %v", name)

	if preset.Capacity != 0 {
		cfg.Capacity = preset.Capacity
	}
	if preset.Groups != 0 {
		cfg.NumGroups = preset.Groups
	}
	if preset.DevicesPerGroup != 0 {
		cfg.DevicesPerGroup = preset.DevicesPerGroup
	}
	if preset.GenDelayMinMS != 0 {
		cfg.GenDelay.Min = time.Duration(preset.GenDelayMinMS) * time.Millisecond
	}
	if preset.GenDelayMaxMS != 0 {
		cfg.GenDelay.Max = time.Duration(preset.GenDelayMaxMS) * time.Millisecond
	}
	if preset.WorkDelayMinMS != 0 {
		cfg.WorkDelay.Min = time.Duration(preset.WorkDelayMinMS) * time.Millisecond
	}
	if preset.WorkDelayMaxMS != 0 {
		cfg.WorkDelay.Max = time.Duration(preset.WorkDelayMaxMS) * time.Millisecond
	}
	return nil
}
