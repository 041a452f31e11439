// Defines the Sink, the injectable observer for facility state
// transitions. The core's contract is one notification per transition
// with its salient fields; formatting is the sink's business.

package sim

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Sink receives one callback per observable state transition. Sinks are
// called from the generator and worker goroutines concurrently and must
// be safe for that; they are never called with the monitor's lock held.
type Sink interface {
	// RequestQueued reports a request accepted into the store and the
	// resulting total queue size.
	RequestQueued(req Request, queued int)
	// RequestProcessing reports a request popped by a device, the
	// remaining total queue size, and the simulated processing delay
	// about to elapse.
	RequestProcessing(dev Device, req Request, queued int, delay time.Duration)
	// GeneratorStopped reports the generator loop exiting on shutdown.
	GeneratorStopped()
	// WorkerStopped reports one device's loop exiting on shutdown.
	WorkerStopped(dev Device)
}

// LogSink reports transitions through logrus, the console reporter of
// the reference system.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) RequestQueued(req Request, queued int) {
	logrus.Infof("generator queued request (group %d, type %d), queue size: %d",
		req.GroupID+1, req.Type, queued)
}

func (s *LogSink) RequestProcessing(dev Device, req Request, queued int, delay time.Duration) {
	logrus.Infof("device %d (group %d) is processing request (type %d) from group %d, awakening after %v, queue size: %d",
		dev.ID+1, dev.GroupID+1, req.Type, req.GroupID+1, delay, queued)
}

func (s *LogSink) GeneratorStopped() {
	logrus.Info("generator thread is terminating")
}

func (s *LogSink) WorkerStopped(dev Device) {
	logrus.Infof("device %d thread is terminating", dev.ID+1)
}

// QueuedEvent and ProcessingEvent are CaptureSink records.
type QueuedEvent struct {
	Req    Request
	Queued int
}

type ProcessingEvent struct {
	Dev    Device
	Req    Request
	Queued int
	Delay  time.Duration
}

// CaptureSink records every transition for inspection in tests.
type CaptureSink struct {
	mu         sync.Mutex
	queued     []QueuedEvent
	processing []ProcessingEvent
	genStops   int
	workerStop []Device
}

func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

func (s *CaptureSink) RequestQueued(req Request, queued int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, QueuedEvent{Req: req, Queued: queued})
}

func (s *CaptureSink) RequestProcessing(dev Device, req Request, queued int, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = append(s.processing, ProcessingEvent{Dev: dev, Req: req, Queued: queued, Delay: delay})
}

func (s *CaptureSink) GeneratorStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genStops++
}

func (s *CaptureSink) WorkerStopped(dev Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workerStop = append(s.workerStop, dev)
}

// Queued returns a copy of the recorded queued transitions.
func (s *CaptureSink) Queued() []QueuedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]QueuedEvent, len(s.queued))
	copy(out, s.queued)
	return out
}

// Processing returns a copy of the recorded processing transitions.
func (s *CaptureSink) Processing() []ProcessingEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ProcessingEvent, len(s.processing))
	copy(out, s.processing)
	return out
}

// GeneratorStops returns how many times the generator reported exit.
func (s *CaptureSink) GeneratorStops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.genStops
}

// WorkerStops returns a copy of the devices that reported exit.
func (s *CaptureSink) WorkerStops() []Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Device, len(s.workerStop))
	copy(out, s.workerStop)
	return out
}
