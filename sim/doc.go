// Package sim provides the core of the bounded work-distribution
// facility: one generator feeding a capacity-limited, group-partitioned
// priority store consumed by per-group worker pools.
//
// # Reading Guide
//
// Start with these three files to understand the coordination kernel:
//   - store.go: the bounded multi-group store (global capacity, one
//     max-heap per group; heap.go holds the heap itself)
//   - monitor.go: the single lock + broadcast condition that serializes
//     every store access and carries the shutdown flag
//   - simulator.go: the Facility, which wires monitor, generator, and
//     workers together and joins them on shutdown
//
// # Architecture
//
// All shared mutable state (the store and the shutdown flag) lives
// behind the Monitor, which exposes only atomic predicate-checked
// operations: TryInsert blocks while the store is full, TryConsume
// blocks while the caller's group is empty, and both return ok=false
// once shutdown is requested. Every mutation broadcasts so that each
// waiter re-checks its own predicate (standard monitor pattern; wasted
// wake-ups are harmless).
//
// Simulated delays always sleep outside the lock. Determinism of the
// request stream and delay draws comes from PartitionedRNG (rng.go),
// which derives an isolated seeded RNG per subsystem.
//
// # Extension points
//
//   - Sink (sink.go): injectable observer of state transitions; LogSink
//     reports through logrus, CaptureSink records for tests.
//   - Config (config.go): all startup parameters with validation.
package sim
