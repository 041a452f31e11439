// Implements the Worker, one consumer loop per device.

package sim

import (
	"math/rand"
	"time"
)

// Worker consumes the highest-priority requests of its device's group
// until shutdown. Its loop walks Waiting → Processing → Sleeping and
// back: TryConsume blocks while the group is empty, the simulated
// processing delay elapses outside any lock, and a shutdown observed
// while waiting exits the loop without popping — even if the group has
// work available.
type Worker struct {
	device  Device
	monitor *Monitor
	metrics *Metrics
	sink    Sink
	rng     *rand.Rand
	delay   DelayRange
}

// NewWorker creates a worker bound to one device. The RNG must be
// dedicated to this worker.
func NewWorker(device Device, monitor *Monitor, metrics *Metrics, sink Sink, rng *rand.Rand, delay DelayRange) *Worker {
	return &Worker{
		device:  device,
		monitor: monitor,
		metrics: metrics,
		sink:    sink,
		rng:     rng,
		delay:   delay,
	}
}

// Device returns the worker's fixed identity.
func (w *Worker) Device() Device {
	return w.device
}

// Run loops until the monitor reports shutdown. The lock is held only
// for the pop inside TryConsume, never across the processing delay.
func (w *Worker) Run() {
	for {
		req, queued, ok := w.monitor.TryConsume(w.device.GroupID)
		if !ok {
			w.sink.WorkerStopped(w.device)
			return
		}

		w.metrics.RecordConsumed(req.GroupID)
		delay := w.delay.Sample(w.rng)
		w.sink.RequestProcessing(w.device, req, queued, delay)
		time.Sleep(delay)
	}
}
