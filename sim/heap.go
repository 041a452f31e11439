// Implements the per-group priority structure: an array-backed binary
// max-heap ordered by request type. One instance exists per group, owned
// exclusively by the Store and never handed out.

package sim

// groupHeap holds one group's queued requests in a single growable slice
// with the usual index arithmetic (children of i at 2i+1, 2i+2). Sift-up
// and sift-down are iterative, so heap maintenance never recurses.
//
// Ordering among equal types is deliberately unspecified: the heap
// property alone is maintained, there is no FIFO guarantee for ties.
type groupHeap struct {
	items []Request
}

func (h *groupHeap) len() int {
	return len(h.items)
}

func (h *groupHeap) empty() bool {
	return len(h.items) == 0
}

// push appends the request and restores the heap property by sifting up.
// Never fails: the caller has already reserved capacity in the store.
func (h *groupHeap) push(r Request) {
	h.items = append(h.items, r)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].Type >= h.items[i].Type {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// pop removes and returns the maximum-priority request. The root is
// replaced by the last element, the slice shrinks, and the replacement
// sifts down until the property is restored or a leaf is reached.
// Popping an empty heap is a defect in the caller's wait protocol.
func (h *groupHeap) pop() Request {
	if len(h.items) == 0 {
		panic("groupHeap: pop on empty heap")
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]

	i := 0
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < len(h.items) && h.items[left].Type > h.items[largest].Type {
			largest = left
		}
		if right < len(h.items) && h.items[right].Type > h.items[largest].Type {
			largest = right
		}
		if largest == i {
			break
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
	return top
}

// peek returns the maximum-priority request without removing it.
func (h *groupHeap) peek() Request {
	if len(h.items) == 0 {
		panic("groupHeap: peek on empty heap")
	}
	return h.items[0]
}
