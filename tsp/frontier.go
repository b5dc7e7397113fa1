// Package tsp - branch-and-bound frontier (min-priority queue of states).
//
// Ordering: ascending state.key(); on equal keys the deeper state first,
// then insertion order. The order is total, so a search is reproducible
// for a given seed.
//
// sweep removes every entry whose lower bound cannot beat a new incumbent
// in one linear filter followed by heap.Init, instead of removing entries
// one by one.
//
// Complexity: push/pop O(log n); sweep O(n).
package tsp

import "container/heap"

type frontierEntry struct {
	key float64
	seq uint64
	st  *state
}

// entryHeap implements heap.Interface.
type entryHeap []frontierEntry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	a, b := &h[i], &h[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.st.depth != b.st.depth {
		return a.st.depth > b.st.depth
	}

	return a.seq < b.seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(frontierEntry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = frontierEntry{} // drop the state reference for the GC
	*h = old[:n-1]

	return e
}

type frontier struct {
	h   entryHeap
	seq uint64
}

func (f *frontier) len() int { return len(f.h) }

func (f *frontier) push(st *state) {
	f.seq++
	heap.Push(&f.h, frontierEntry{key: st.key(), seq: f.seq, st: st})
}

// pop removes and returns the minimum-key state, or nil when empty.
func (f *frontier) pop() *state {
	if len(f.h) == 0 {
		return nil
	}

	return heap.Pop(&f.h).(frontierEntry).st
}

// sweep drops every state with lowerBound ≥ bound and returns how many were dropped.
func (f *frontier) sweep(bound float64) int {
	kept := f.h[:0]
	var i int
	for i = range f.h {
		if f.h[i].st.lowerBound < bound {
			kept = append(kept, f.h[i])
		}
	}
	removed := len(f.h) - len(kept)
	for i = len(kept); i < len(f.h); i++ {
		f.h[i] = frontierEntry{}
	}
	f.h = kept
	if removed > 0 {
		heap.Init(&f.h)
	}

	return removed
}
