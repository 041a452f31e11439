// Implements the Store, which holds all requests waiting to be processed.
// Capacity is a single global bound shared by every group; ordering is
// per-group through one max-heap per group.

package sim

import (
	"fmt"
	"strings"
)

// Store is the bounded multi-group priority store. It models a shared
// pool of queued work feeding independently-scheduled consumer pools:
// fullness is a property of the whole store, emptiness a property of a
// single group.
//
// The Store is NOT self-synchronizing. Every method assumes the caller
// holds the Monitor's lock; synchronization is layered on top in
// monitor.go. Preconditions (not full before Push, group non-empty
// before Pop/Peek) are guaranteed by the Monitor's wait predicates, so a
// violation here is a programming defect and panics.
type Store struct {
	capacity int
	size     int
	groups   []groupHeap
}

// NewStore creates an empty store with the given global capacity and
// number of groups. Both are assumed positive (validated by Config).
func NewStore(capacity, numGroups int) *Store {
	return &Store{
		capacity: capacity,
		groups:   make([]groupHeap, numGroups),
	}
}

// Len returns the total number of queued requests across all groups.
func (s *Store) Len() int {
	return s.size
}

// Capacity returns the fixed global bound.
func (s *Store) Capacity() int {
	return s.capacity
}

// NumGroups returns the number of group partitions.
func (s *Store) NumGroups() int {
	return len(s.groups)
}

// GroupLen returns the number of queued requests in one group.
func (s *Store) GroupLen(groupID int) int {
	return s.groups[groupID].len()
}

// IsFull reports whether the store has reached its global capacity.
func (s *Store) IsFull() bool {
	return s.size == s.capacity
}

// IsEmpty reports whether the given group has no queued requests.
func (s *Store) IsEmpty(groupID int) bool {
	return s.groups[groupID].empty()
}

// Push inserts a request into its group's heap and grows the global
// count. The caller must have checked IsFull under the same lock.
func (s *Store) Push(req Request) {
	if s.IsFull() {
		panic(fmt.Sprintf("Store: push on full store (capacity %d)", s.capacity))
	}
	s.size++
	s.groups[req.GroupID].push(req)
}

// Pop removes and returns the maximum-priority request of the given
// group and shrinks the global count. The caller must have checked
// IsEmpty under the same lock.
func (s *Store) Pop(groupID int) Request {
	if s.IsEmpty(groupID) {
		panic(fmt.Sprintf("Store: pop on empty group %d", groupID))
	}
	s.size--
	return s.groups[groupID].pop()
}

// Peek returns the maximum-priority request of the given group without
// removing it. Requires a non-empty group.
func (s *Store) Peek(groupID int) Request {
	return s.groups[groupID].peek()
}

func (s *Store) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Store{%d/%d", s.size, s.capacity)
	for g := range s.groups {
		fmt.Fprintf(&sb, " g%d:%d", g, s.groups[g].len())
	}
	sb.WriteString("}")
	return sb.String()
}
