package sim

import (
	"fmt"
	"time"
)

// Reference delay defaults.
const (
	DefaultGenDelayMin  = 500 * time.Millisecond
	DefaultGenDelayMax  = 1500 * time.Millisecond
	DefaultWorkDelayMin = 2 * time.Second
	DefaultWorkDelayMax = 4 * time.Second
)

// Config groups the facility parameters. All fields are fixed at
// startup; the facility never re-reads them.
type Config struct {
	Capacity        int        // global bound on queued requests across all groups (must be > 0)
	NumGroups       int        // number of group partitions (must be > 0)
	DevicesPerGroup int        // workers bound to each group (must be > 0)
	GenDelay        DelayRange // sleep between generated requests
	WorkDelay       DelayRange // simulated processing time per consumed request
	Seed            int64      // master seed for PartitionedRNG
}

// Validate rejects parameter combinations the core is allowed to assume
// away. The core itself has no recoverable errors; this is the boundary
// where configuration mistakes surface.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("config: capacity must be positive, got %d", c.Capacity)
	}
	if c.NumGroups <= 0 {
		return fmt.Errorf("config: groups must be positive, got %d", c.NumGroups)
	}
	if c.DevicesPerGroup <= 0 {
		return fmt.Errorf("config: devices-per-group must be positive, got %d", c.DevicesPerGroup)
	}
	for _, dr := range []struct {
		name  string
		delay DelayRange
	}{
		{"gen-delay", c.GenDelay},
		{"work-delay", c.WorkDelay},
	} {
		if dr.delay.Min < 0 {
			return fmt.Errorf("config: %s min must not be negative, got %v", dr.name, dr.delay.Min)
		}
		if dr.delay.Max < dr.delay.Min {
			return fmt.Errorf("config: %s max %v is below min %v", dr.name, dr.delay.Max, dr.delay.Min)
		}
	}
	return nil
}

// NumDevices returns the total worker count (groups × devices per group).
func (c Config) NumDevices() int {
	return c.NumGroups * c.DevicesPerGroup
}
