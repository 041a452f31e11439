package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
)

func TestRunCmd_FlagDefaults_FormValidConfig(t *testing.T) {
	// GIVEN the registered flag defaults
	flags := runCmd.Flags()
	for _, name := range []string{
		"capacity", "groups", "devices-per-group", "seed", "log",
		"gen-delay-min", "gen-delay-max", "work-delay-min", "work-delay-max",
		"duration", "scenario", "scenario-config",
	} {
		require.NotNil(t, flags.Lookup(name), "flag %s not registered", name)
	}

	capacity, err := flags.GetInt("capacity")
	require.NoError(t, err)
	groups, err := flags.GetInt("groups")
	require.NoError(t, err)
	devices, err := flags.GetInt("devices-per-group")
	require.NoError(t, err)
	genMin, err := flags.GetDuration("gen-delay-min")
	require.NoError(t, err)
	genMax, err := flags.GetDuration("gen-delay-max")
	require.NoError(t, err)
	workMin, err := flags.GetDuration("work-delay-min")
	require.NoError(t, err)
	workMax, err := flags.GetDuration("work-delay-max")
	require.NoError(t, err)

	// THEN they assemble into a config the core accepts
	cfg := sim.Config{
		Capacity:        capacity,
		NumGroups:       groups,
		DevicesPerGroup: devices,
		GenDelay:        sim.DelayRange{Min: genMin, Max: genMax},
		WorkDelay:       sim.DelayRange{Min: workMin, Max: workMax},
	}
	assert.NoError(t, cfg.Validate())

	// AND the delay defaults match the reference system
	assert.Equal(t, sim.DefaultGenDelayMin, genMin)
	assert.Equal(t, sim.DefaultGenDelayMax, genMax)
	assert.Equal(t, sim.DefaultWorkDelayMin, workMin)
	assert.Equal(t, sim.DefaultWorkDelayMax, workMax)
}
