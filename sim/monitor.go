// Implements the Monitor, the single synchronization point of the
// facility. One mutex and one broadcast condition serialize every store
// access for the generator and all workers.

package sim

import "sync"

// Monitor wraps the Store and the shutdown flag behind atomic,
// predicate-checked operations. Callers never see the lock or the
// condition: they call TryInsert/TryConsume and either get their
// mutation or learn that the facility is shutting down.
//
// Two wait predicates multiplex on the one condition:
//   - producers wait while the store is full and shutdown is not set
//   - a group's consumers wait while that group is empty and shutdown
//     is not set
//
// Every mutation broadcasts to ALL waiters rather than signaling a
// targeted one: any single mutation can flip a fullness predicate for
// the producer or an emptiness predicate for one group's consumers, and
// every waiter re-checks its own predicate after waking, so spurious
// wake-ups are harmless. Targeted per-group signaling would waste fewer
// wake-ups at high group counts but is not needed for correctness.
//
// Shutdown is level-triggered: once set it stays set, every wait loop
// tests it alongside its data predicate, and it wins over available
// data — a woken waiter re-checks shutdown before touching the store.
type Monitor struct {
	mu       sync.Mutex
	wake     *sync.Cond
	store    *Store
	shutdown bool
}

// NewMonitor wraps the store in a fresh monitor. The monitor takes
// ownership: no other code may touch the store afterwards.
func NewMonitor(store *Store) *Monitor {
	m := &Monitor{store: store}
	m.wake = sync.NewCond(&m.mu)
	return m
}

// TryInsert blocks until the store has room or shutdown is requested.
// On shutdown it returns ok=false without mutating. Otherwise the
// request is pushed, all waiters are woken, and the new total queue
// size is returned.
func (m *Monitor) TryInsert(req Request) (queued int, ok bool) {
	m.mu.Lock()
	for m.store.IsFull() && !m.shutdown {
		m.wake.Wait()
	}
	if m.shutdown {
		m.mu.Unlock()
		return 0, false
	}
	m.store.Push(req)
	queued = m.store.Len()
	m.mu.Unlock()
	m.wake.Broadcast()
	return queued, true
}

// TryConsume blocks until the given group has a request or shutdown is
// requested. Shutdown wins even when the group is non-empty: a woken
// consumer exits without popping. Otherwise the group's maximum-priority
// request is popped, all waiters are woken, and the new total queue size
// is returned alongside it.
func (m *Monitor) TryConsume(groupID int) (req Request, queued int, ok bool) {
	m.mu.Lock()
	for m.store.IsEmpty(groupID) && !m.shutdown {
		m.wake.Wait()
	}
	if m.shutdown {
		m.mu.Unlock()
		return Request{}, 0, false
	}
	req = m.store.Pop(groupID)
	queued = m.store.Len()
	m.mu.Unlock()
	m.wake.Broadcast()
	return req, queued, true
}

// RequestShutdown sets the shutdown flag and wakes every waiter.
// Idempotent: repeated calls are no-ops beyond the extra broadcast, and
// it is safe to call concurrently with in-flight operations.
func (m *Monitor) RequestShutdown() {
	m.mu.Lock()
	m.shutdown = true
	m.mu.Unlock()
	m.wake.Broadcast()
}

// ShuttingDown reports whether shutdown has been requested.
func (m *Monitor) ShuttingDown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdown
}

// Len returns the current total number of queued requests.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Len()
}

// GroupLen returns the current number of queued requests in one group.
func (m *Monitor) GroupLen(groupID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.GroupLen(groupID)
}
