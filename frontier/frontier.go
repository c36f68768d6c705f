package frontier

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrEmpty is returned by PopMin and Peek on an empty frontier.
var ErrEmpty = errors.New("frontier: empty")

// Item is one frontier entry.
type Item struct {
	At grid.Coord
	G  int
	H  int
}

// F returns G+H.
func (it Item) F() int {
	return it.G + it.H
}

// Less reports whether it leaves the frontier before other.
func (it Item) Less(other Item) bool {
	if f1, f2 := it.F(), other.F(); f1 != f2 {
		return f1 < f2
	}
	if it.H != other.H {
		return it.H < other.H
	}
	if it.At.Y != other.At.Y {
		return it.At.Y < other.At.Y
	}
	return it.At.X < other.At.X
}

// Frontier is a min-heap of Items keyed by coordinate.
// The zero value is not usable; call New.
type Frontier struct {
	pq    itemPQ
	index map[grid.Coord]*entry
}

// New returns an empty Frontier sized for about capacity coordinates.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{
		pq:    make(itemPQ, 0, capacity),
		index: make(map[grid.Coord]*entry, capacity),
	}
}

// Push inserts at with the given costs. If at is already present, its entry
// is replaced only when the new costs order strictly before the stored ones.
// It reports whether the frontier changed.
func (f *Frontier) Push(at grid.Coord, g, h int) bool {
	it := Item{At: at, G: g, H: h}
	if e, ok := f.index[at]; ok {
		if !it.Less(e.item) {
			return false
		}
		e.item = it
		heap.Fix(&f.pq, e.pos)
		return true
	}
	e := &entry{item: it}
	f.index[at] = e
	heap.Push(&f.pq, e)
	return true
}

// PopMin removes and returns the item with the lowest priority.
// Returns ErrEmpty when no items remain.
func (f *Frontier) PopMin() (Item, error) {
	if len(f.pq) == 0 {
		return Item{}, ErrEmpty
	}
	e := heap.Pop(&f.pq).(*entry)
	delete(f.index, e.item.At)
	return e.item, nil
}

// Peek returns the item PopMin would return, without removing it.
func (f *Frontier) Peek() (Item, error) {
	if len(f.pq) == 0 {
		return Item{}, ErrEmpty
	}
	return f.pq[0].item, nil
}

// Contains reports whether at is currently in the frontier.
func (f *Frontier) Contains(at grid.Coord) bool {
	_, ok := f.index[at]
	return ok
}

// Get returns the frontier entry for at, if present.
func (f *Frontier) Get(at grid.Coord) (Item, bool) {
	e, ok := f.index[at]
	if !ok {
		return Item{}, false
	}
	return e.item, true
}

// IsEmpty reports whether the frontier has no items.
func (f *Frontier) IsEmpty() bool {
	return len(f.pq) == 0
}

// Len returns the number of items in the frontier.
func (f *Frontier) Len() int {
	return len(f.pq)
}

// entry is a heap slot; pos tracks its index for heap.Fix.
type entry struct {
	item Item
	pos  int
}

// itemPQ implements heap.Interface ordered by Item.Less.
type itemPQ []*entry

func (pq itemPQ) Len() int           { return len(pq) }
func (pq itemPQ) Less(i, j int) bool { return pq[i].item.Less(pq[j].item) }
func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

func (pq *itemPQ) Push(x interface{}) {
	e := x.(*entry)
	e.pos = len(*pq)
	*pq = append(*pq, e)
}

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.pos = -1
	*pq = old[:n-1]
	return e
}
