// Implements the Generator, the single producer of the facility.

package sim

import (
	"math/rand"
	"time"
)

// Generator produces random requests into the monitor until shutdown.
// Its loop walks Waiting → Inserting → Sleeping and back: TryInsert
// blocks while the store is full, the sleep happens outside any lock,
// and a shutdown observed while waiting exits the loop without
// inserting. Cancellation is lazy — a shutdown raised mid-sleep takes
// effect at the next TryInsert.
type Generator struct {
	monitor *Monitor
	metrics *Metrics
	sink    Sink
	rng     *rand.Rand
	delay   DelayRange

	numGroups int
}

// NewGenerator creates a generator drawing groups, types, and delays
// from the given RNG. The RNG must be dedicated to this generator.
func NewGenerator(monitor *Monitor, metrics *Metrics, sink Sink, rng *rand.Rand, delay DelayRange, numGroups int) *Generator {
	return &Generator{
		monitor:   monitor,
		metrics:   metrics,
		sink:      sink,
		rng:       rng,
		delay:     delay,
		numGroups: numGroups,
	}
}

// Run loops until the monitor reports shutdown. Blocking happens only
// inside TryInsert; the inter-request delay never holds the lock.
func (g *Generator) Run() {
	for {
		req := Request{
			GroupID: g.rng.Intn(g.numGroups),
			Type:    MinRequestType + g.rng.Intn(MaxRequestType-MinRequestType+1),
		}

		queued, ok := g.monitor.TryInsert(req)
		if !ok {
			g.sink.GeneratorStopped()
			return
		}

		g.metrics.RecordProduced()
		g.sink.RequestQueued(req, queued)
		time.Sleep(g.delay.Sample(g.rng))
	}
}
