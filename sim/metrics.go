// Tracks run-wide counters: requests produced, requests consumed, and
// the per-group consumption breakdown. Aggregated for final reporting.

package sim

import (
	"fmt"
	"sync"
)

// Metrics aggregates statistics about the run for final reporting.
// Safe for concurrent use: the generator and all workers record into it.
type Metrics struct {
	mu              sync.Mutex
	produced        int
	consumed        int
	consumedByGroup []int
}

// NewMetrics creates zeroed metrics for the given number of groups.
func NewMetrics(numGroups int) *Metrics {
	return &Metrics{
		consumedByGroup: make([]int, numGroups),
	}
}

// RecordProduced counts one request accepted into the store.
func (m *Metrics) RecordProduced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.produced++
}

// RecordConsumed counts one request popped for processing.
func (m *Metrics) RecordConsumed(groupID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.consumed++
	m.consumedByGroup[groupID]++
}

// Produced returns the total accepted request count.
func (m *Metrics) Produced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.produced
}

// Consumed returns the total processed request count.
func (m *Metrics) Consumed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.consumed
}

// ConsumedByGroup returns a copy of the per-group processed counts.
func (m *Metrics) ConsumedByGroup() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.consumedByGroup))
	copy(out, m.consumedByGroup)
	return out
}

// Print displays aggregated counters at the end of the run. At a
// quiescent point produced − consumed equals the number still queued.
func (m *Metrics) Print() {
	m.mu.Lock()
	defer m.mu.Unlock()

	fmt.Println("=== Facility Metrics ===")
	fmt.Printf("Requests produced    : %d\n", m.produced)
	fmt.Printf("Requests consumed    : %d\n", m.consumed)
	fmt.Printf("Still queued         : %d\n", m.produced-m.consumed)
	for g, n := range m.consumedByGroup {
		fmt.Printf("Group %d consumed     : %d\n", g+1, n)
	}
}
