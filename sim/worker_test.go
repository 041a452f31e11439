package sim

import (
	"math/rand"
	"testing"
	"time"
)

// fastDelay keeps test loops tight without special-casing the code
// under test.
var fastDelay = DelayRange{Min: 0, Max: time.Millisecond}

func TestWorker_DrainsGroupInPriorityOrder(t *testing.T) {
	// GIVEN group 0 pre-filled with types 1, 3, 2 and a single worker
	m := NewMonitor(NewStore(10, 1))
	for _, typ := range []int{1, 3, 2} {
		if _, ok := m.TryInsert(Request{GroupID: 0, Type: typ}); !ok {
			t.Fatalf("insert of type %d failed", typ)
		}
	}
	metrics := NewMetrics(1)
	sink := NewCaptureSink()
	w := NewWorker(Device{GroupID: 0, ID: 0}, m, metrics, sink, rand.New(rand.NewSource(1)), fastDelay)

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	// WHEN the worker drains the group and shutdown lands
	waitFor(t, func() bool { return metrics.Consumed() == 3 })
	m.RequestShutdown()
	recv(t, done, "worker to exit")

	// THEN the processing notifications are in descending type order
	events := sink.Processing()
	if len(events) != 3 {
		t.Fatalf("processing events: got %d, want 3", len(events))
	}
	want := []int{3, 2, 1}
	for i, ev := range events {
		if ev.Req.Type != want[i] {
			t.Errorf("event %d: got type %d, want %d", i, ev.Req.Type, want[i])
		}
		if ev.Dev.ID != 0 || ev.Req.GroupID != 0 {
			t.Errorf("event %d: wrong identity %v / %v", i, ev.Dev, ev.Req)
		}
	}

	// AND exactly one stop notification is emitted
	if stops := sink.WorkerStops(); len(stops) != 1 || stops[0].ID != 0 {
		t.Errorf("worker stops: got %v, want one stop for device 0", stops)
	}
}

func TestWorker_ShutdownWhileWaiting_ExitsWithoutConsuming(t *testing.T) {
	// GIVEN a worker blocked on an empty group
	m := NewMonitor(NewStore(10, 1))
	metrics := NewMetrics(1)
	sink := NewCaptureSink()
	w := NewWorker(Device{GroupID: 0, ID: 0}, m, metrics, sink, rand.New(rand.NewSource(1)), fastDelay)

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	// WHEN shutdown is requested
	time.Sleep(20 * time.Millisecond)
	m.RequestShutdown()

	// THEN the worker exits having consumed nothing
	recv(t, done, "worker to exit")
	if metrics.Consumed() != 0 {
		t.Errorf("consumed: got %d, want 0", metrics.Consumed())
	}
	if len(sink.Processing()) != 0 {
		t.Errorf("processing events: got %d, want 0", len(sink.Processing()))
	}
}

// waitFor polls cond until it holds or the timeout elapses.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}
