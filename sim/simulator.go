// sim/simulator.go
package sim

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Facility is the top-level object: it owns the monitor-wrapped store,
// the metrics, one generator, and one worker per device, and runs them
// as goroutines until shutdown.
type Facility struct {
	Config  Config
	Metrics *Metrics

	monitor *Monitor
	sink    Sink
	rng     *PartitionedRNG
	workers []*Worker
	gen     *Generator
}

// NewFacility builds a facility from a validated config. All subsystem
// RNGs are derived here, on the caller's goroutine, so each loop owns
// its *rand.Rand outright. The sink must not be nil.
func NewFacility(cfg Config, sink Sink) *Facility {
	f := &Facility{
		Config:  cfg,
		Metrics: NewMetrics(cfg.NumGroups),
		monitor: NewMonitor(NewStore(cfg.Capacity, cfg.NumGroups)),
		sink:    sink,
		rng:     NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
	}

	for group := 0; group < cfg.NumGroups; group++ {
		for slot := 0; slot < cfg.DevicesPerGroup; slot++ {
			dev := Device{GroupID: group, ID: group*cfg.DevicesPerGroup + slot}
			f.workers = append(f.workers, NewWorker(
				dev, f.monitor, f.Metrics, f.sink,
				f.rng.ForSubsystem(SubsystemDevice(dev.ID)), cfg.WorkDelay,
			))
		}
	}
	f.gen = NewGenerator(
		f.monitor, f.Metrics, f.sink,
		f.rng.ForSubsystem(SubsystemGenerator), cfg.GenDelay, cfg.NumGroups,
	)
	return f
}

// Monitor exposes the facility's monitor for inspection (queue sizes,
// shutdown state) and for requesting shutdown directly.
func (f *Facility) Monitor() *Monitor {
	return f.monitor
}

// Shutdown requests facility shutdown. Idempotent; every blocked loop
// wakes, observes the flag, and exits without further store mutation.
func (f *Facility) Shutdown() {
	f.monitor.RequestShutdown()
}

// Run starts the generator and all workers and blocks until every loop
// has returned. Cancelling ctx requests shutdown; Run returning means
// all goroutines are joined and the store is quiescent.
func (f *Facility) Run(ctx context.Context) {
	logrus.Infof("starting facility: capacity=%d groups=%d devices=%d seed=%d",
		f.Config.Capacity, f.Config.NumGroups, f.Config.NumDevices(), f.Config.Seed)

	var wg sync.WaitGroup
	for _, w := range f.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Run()
		}(w)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.gen.Run()
	}()

	// Relay ctx cancellation into the monitor; joined stops the relay
	// if shutdown was requested through the monitor directly.
	joined := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			f.monitor.RequestShutdown()
		case <-joined:
		}
	}()

	wg.Wait()
	close(joined)
	logrus.Info("facility shut down: all threads joined")
}
