package astar

import "container/heap"

// frontier is the open set: cells discovered but not yet finalized.
// Members are ranked by f-cost, ties broken by insertion sequence.
type frontier interface {
	Len() int
	contains(c Cell) bool
	// push inserts a new member; c must not be present.
	push(c Cell, f float64)
	// update lowers the rank of an existing member in place, keeping its
	// insertion sequence.
	update(c Cell, f float64)
	// popMin removes and returns the member with the smallest (f, seq).
	popMin() Cell
}

func newFrontier(kind FrontierKind, sizeHint int) frontier {
	if kind == FrontierLinear {
		return &linearFrontier{index: make(map[Cell]*frontierItem, sizeHint)}
	}

	return &heapFrontier{
		items: make(itemPQ, 0, sizeHint),
		index: make(map[Cell]*frontierItem, sizeHint),
	}
}

// frontierItem is one open cell with its rank.
type frontierItem struct {
	cell Cell
	f    float64 // g + h
	seq  int     // insertion order; secondary key
	pos  int     // position inside the heap, maintained by Swap
}

// before is the frontier order: smaller f first, then earlier insertion.
func (a *frontierItem) before(b *frontierItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// heapFrontier keeps members in an indexed min-heap so rank updates use
// heap.Fix instead of pushing duplicates.
type heapFrontier struct {
	items itemPQ
	index map[Cell]*frontierItem
	seq   int
}

func (h *heapFrontier) Len() int { return h.items.Len() }

func (h *heapFrontier) contains(c Cell) bool {
	_, ok := h.index[c]
	return ok
}

func (h *heapFrontier) push(c Cell, f float64) {
	it := &frontierItem{cell: c, f: f, seq: h.seq}
	h.seq++
	h.index[c] = it
	heap.Push(&h.items, it)
}

func (h *heapFrontier) update(c Cell, f float64) {
	it := h.index[c]
	it.f = f
	heap.Fix(&h.items, it.pos)
}

func (h *heapFrontier) popMin() Cell {
	it := heap.Pop(&h.items).(*frontierItem)
	delete(h.index, it.cell)

	return it.cell
}

// itemPQ is a min-heap of *frontierItem ordered by (f, seq).
type itemPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by f-cost, then insertion sequence.
func (pq itemPQ) Less(i, j int) bool { return pq[i].before(pq[j]) }

// Swap swaps two elements and keeps their positions current.
func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

// Push adds x onto the heap. Called by heap.Push.
func (pq *itemPQ) Push(x interface{}) {
	it := x.(*frontierItem)
	it.pos = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}

// linearFrontier keeps members in insertion order and scans for the first
// minimum on every extraction.
type linearFrontier struct {
	items []*frontierItem
	index map[Cell]*frontierItem
	seq   int
}

func (l *linearFrontier) Len() int { return len(l.items) }

func (l *linearFrontier) contains(c Cell) bool {
	_, ok := l.index[c]
	return ok
}

func (l *linearFrontier) push(c Cell, f float64) {
	it := &frontierItem{cell: c, f: f, seq: l.seq}
	l.seq++
	l.index[c] = it
	l.items = append(l.items, it)
}

func (l *linearFrontier) update(c Cell, f float64) {
	l.index[c].f = f
}

func (l *linearFrontier) popMin() Cell {
	best := 0
	for i := 1; i < len(l.items); i++ {
		if l.items[i].f < l.items[best].f {
			best = i
		}
	}
	it := l.items[best]
	l.items = append(l.items[:best], l.items[best+1:]...)
	delete(l.index, it.cell)

	return it.cell
}
