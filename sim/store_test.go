package sim

import (
	"math/rand"
	"testing"
)

// checkCapacityInvariant verifies size bookkeeping: the global count
// equals the sum of group lengths and stays within [0, capacity].
func checkCapacityInvariant(t *testing.T, s *Store) {
	t.Helper()
	sum := 0
	for g := 0; g < s.NumGroups(); g++ {
		sum += s.GroupLen(g)
	}
	if s.Len() != sum {
		t.Fatalf("size %d != sum of group lengths %d", s.Len(), sum)
	}
	if s.Len() < 0 || s.Len() > s.Capacity() {
		t.Fatalf("size %d outside [0, %d]", s.Len(), s.Capacity())
	}
}

func TestStore_PushPop_TracksGlobalSize(t *testing.T) {
	// GIVEN a store with two groups and capacity 10
	s := NewStore(10, 2)

	// WHEN pushes land in different groups
	s.Push(Request{GroupID: 0, Type: 1})
	s.Push(Request{GroupID: 1, Type: 3})
	s.Push(Request{GroupID: 0, Type: 2})

	// THEN the global size spans both groups
	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3", s.Len())
	}
	if s.GroupLen(0) != 2 || s.GroupLen(1) != 1 {
		t.Errorf("group lengths: got %d, %d, want 2, 1", s.GroupLen(0), s.GroupLen(1))
	}
	checkCapacityInvariant(t, s)

	// AND popping one group leaves the other untouched
	got := s.Pop(1)
	if got.Type != 3 {
		t.Errorf("Pop(1): got type %d, want 3", got.Type)
	}
	if s.Len() != 2 || s.GroupLen(0) != 2 || s.GroupLen(1) != 0 {
		t.Errorf("after Pop(1): len %d, groups %d/%d", s.Len(), s.GroupLen(0), s.GroupLen(1))
	}
	checkCapacityInvariant(t, s)
}

func TestStore_Pop_YieldsDescendingTypesWithinGroup(t *testing.T) {
	// GIVEN group 0 holding types 1, 3, 2
	s := NewStore(10, 2)
	s.Push(Request{GroupID: 0, Type: 1})
	s.Push(Request{GroupID: 0, Type: 3})
	s.Push(Request{GroupID: 0, Type: 2})

	// WHEN group 0 is popped three times
	got := []int{s.Pop(0).Type, s.Pop(0).Type, s.Pop(0).Type}

	// THEN types come out 3, 2, 1
	want := []int{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop(0)[%d]: got type %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStore_IsFull_AtCapacity(t *testing.T) {
	// GIVEN a store with capacity 2
	s := NewStore(2, 1)
	if s.IsFull() {
		t.Error("empty store reports full")
	}

	// WHEN filled to capacity
	s.Push(Request{GroupID: 0, Type: 1})
	s.Push(Request{GroupID: 0, Type: 1})

	// THEN it reports full, and popping one frees it
	if !s.IsFull() {
		t.Error("store at capacity does not report full")
	}
	s.Pop(0)
	if s.IsFull() {
		t.Error("store below capacity reports full")
	}
}

func TestStore_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a group with one request
	s := NewStore(5, 1)
	s.Push(Request{GroupID: 0, Type: 2})

	// WHEN peeked
	got := s.Peek(0)

	// THEN the request stays queued
	if got.Type != 2 {
		t.Errorf("Peek: got type %d, want 2", got.Type)
	}
	if s.Len() != 1 {
		t.Errorf("Peek removed the request: len %d", s.Len())
	}
}

func TestStore_PushFull_Panics(t *testing.T) {
	s := NewStore(1, 1)
	s.Push(Request{GroupID: 0, Type: 1})
	defer func() {
		if recover() == nil {
			t.Fatal("push on full store did not panic")
		}
	}()
	s.Push(Request{GroupID: 0, Type: 1})
}

func TestStore_PopEmptyGroup_Panics(t *testing.T) {
	s := NewStore(1, 2)
	s.Push(Request{GroupID: 0, Type: 1})
	defer func() {
		if recover() == nil {
			t.Fatal("pop on empty group did not panic")
		}
	}()
	s.Pop(1)
}

func TestStore_RandomizedOps_KeepCapacityInvariant(t *testing.T) {
	// GIVEN randomized pushes and pops within the capacity gate
	rng := rand.New(rand.NewSource(11))
	const capacity, groups = 8, 3
	s := NewStore(capacity, groups)
	pushes, pops := 0, 0

	for step := 0; step < 3000; step++ {
		if !s.IsFull() && rng.Intn(2) == 0 {
			s.Push(Request{
				GroupID: rng.Intn(groups),
				Type:    MinRequestType + rng.Intn(MaxRequestType-MinRequestType+1),
			})
			pushes++
		} else {
			g := rng.Intn(groups)
			if s.IsEmpty(g) {
				continue
			}
			s.Pop(g)
			pops++
		}
		// THEN the capacity invariant holds after every operation
		checkCapacityInvariant(t, s)
	}

	// AND no item is lost or duplicated: pushes − pops == remaining
	if pushes-pops != s.Len() {
		t.Errorf("pushes %d − pops %d = %d, but store holds %d", pushes, pops, pushes-pops, s.Len())
	}
}
