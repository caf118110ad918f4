package environment

import (
	"golang.org/x/exp/slices"

	"github.com/loop-lang/loop/lang/value"
)

// heapSlot is one cell of the shared heap: either free, or occupied holding
// a runtime value.
type heapSlot struct {
	occupied bool
	value    value.Value
}

// heap is the slot-allocated storage shared by every scope descended from
// one root environment (spec.md §4.4, §5 "Shared resources"). Allocation
// reuses the lowest-indexed free slot so that long-running scopes don't
// grow the backing slice unboundedly as scopes come and go.
type heap struct {
	slots []heapSlot
}

func newHeap() *heap { return &heap{} }

func (h *heap) allocate(v value.Value) int {
	idx := slices.IndexFunc(h.slots, func(s heapSlot) bool { return !s.occupied })
	if idx == -1 {
		h.slots = append(h.slots, heapSlot{occupied: true, value: v})
		return len(h.slots) - 1
	}
	h.slots[idx] = heapSlot{occupied: true, value: v}
	return idx
}

func (h *heap) deallocate(idx int) {
	if idx >= 0 && idx < len(h.slots) {
		h.slots[idx] = heapSlot{}
	}
}

func (h *heap) get(idx int) (value.Value, bool) {
	if idx < 0 || idx >= len(h.slots) || !h.slots[idx].occupied {
		return nil, false
	}
	return h.slots[idx].value, true
}

func (h *heap) set(idx int, v value.Value) bool {
	if idx < 0 || idx >= len(h.slots) || !h.slots[idx].occupied {
		return false
	}
	h.slots[idx].value = v
	return true
}

// snapshot returns every occupied slot, in index order, for #heap
// introspection (spec.md §6).
func (h *heap) snapshot() []value.HeapEntry {
	var out []value.HeapEntry
	for i, s := range h.slots {
		if s.occupied {
			out = append(out, value.HeapEntry{Index: i, Value: s.value})
		}
	}
	return out
}
