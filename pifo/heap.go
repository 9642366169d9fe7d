package pifo

// entry is one heap slot: a 64-bit ordering key and the scheduled value.
// Variants pack their comparison dimensions into the key so one sift
// implementation serves plain, stable and calendar ordering.
type entry struct {
	key uint64
	val uint32
}

// Heap is a minimum binary heap keyed by rank. Equal ranks pop in an
// unspecified order; StableHeap adds the insertion tie-break.
type Heap struct {
	items []entry
	cap   int
}

// NewHeap returns an empty min-heap. capacity <= 0 makes it unbounded.
func NewHeap(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap{cap: capacity}
}

func (h *Heap) Push(val, rank, _ uint32) error {
	return h.insert(uint64(rank), val)
}

// insert places (key, val) at the end of the backing array and restores
// heap order by sifting up. Shared by every heap-keyed variant.
func (h *Heap) insert(key uint64, val uint32) error {
	if h.cap > 0 && len(h.items) == h.cap {
		return ErrOverflow
	}
	h.items = append(h.items, entry{key: key, val: val})
	h.siftUp(len(h.items) - 1)
	return nil
}

func (h *Heap) Pop() (uint32, error) {
	if len(h.items) == 0 {
		return 0, ErrUnderflow
	}
	v := h.items[0].val
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return v, nil
}

func (h *Heap) Peek() (uint32, error) {
	if len(h.items) == 0 {
		return 0, ErrUnderflow
	}
	return h.items[0].val, nil
}

//go:nosplit
//go:inline
func (h *Heap) Len() int { return len(h.items) }

// siftUp swaps the node at i with its parent while the parent's key is
// strictly greater. Invariant on return: key(parent) <= key(child) along
// the touched path.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.items[p].key <= h.items[i].key {
			break
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

// siftDown swaps the node at i with its smaller child while that child's
// key is strictly smaller, stopping at a leaf or once ordered.
func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		m := l
		if r := l + 1; r < n && h.items[r].key < h.items[l].key {
			m = r
		}
		if h.items[i].key <= h.items[m].key {
			return
		}
		h.items[i], h.items[m] = h.items[m], h.items[i]
		i = m
	}
}
