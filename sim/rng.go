package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible facility run.
// Two runs with the same SimulationKey and identical configuration draw
// identical request streams and delay sequences per subsystem (actual
// interleaving still depends on goroutine scheduling).
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemGenerator is the RNG subsystem for request generation
	// (group and type draws plus the generator's own delays).
	// Uses the master seed directly.
	SubsystemGenerator = "generator"
)

// SubsystemDevice returns the subsystem name for device N, giving every
// worker an isolated delay stream.
func SubsystemDevice(id int) string {
	return fmt.Sprintf("device_%d", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem.
//
// Derivation formula:
//   - For SubsystemGenerator: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. The facility derives all subsystem
// RNGs on the bootstrap goroutine before starting any loop; afterwards
// each *rand.Rand belongs to exactly one goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemGenerator {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === DelayRange ===

// DelayRange bounds a uniform random delay, inclusive on both ends.
// The reference defaults are 500ms–1500ms between generated requests
// and 2s–4s of simulated processing per consumed request.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Sample draws a uniform delay in [Min, Max] from the given RNG.
func (d DelayRange) Sample(rng *rand.Rand) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(rng.Int63n(int64(d.Max-d.Min)+1))
}
