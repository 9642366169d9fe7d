package pifo

// Fifo is the trivial first-in-first-out leaf. Capacity 0 means unbounded;
// a bounded Fifo mirrors the hardware queue depth and overflows at it.
type Fifo struct {
	buf  []uint32
	head int
	cap  int
}

// NewFifo returns an empty Fifo. capacity <= 0 makes it unbounded.
func NewFifo(capacity int) *Fifo {
	if capacity < 0 {
		capacity = 0
	}
	return &Fifo{cap: capacity}
}

func (f *Fifo) Push(val, _, _ uint32) error {
	if f.cap > 0 && f.Len() == f.cap {
		return ErrOverflow
	}
	f.buf = append(f.buf, val)
	return nil
}

func (f *Fifo) Pop() (uint32, error) {
	if f.head == len(f.buf) {
		return 0, ErrUnderflow
	}
	v := f.buf[f.head]
	f.head++
	// Reclaim the drained prefix once it dominates the backing array.
	if f.head == len(f.buf) {
		f.buf = f.buf[:0]
		f.head = 0
	} else if f.head > 64 && f.head*2 >= len(f.buf) {
		f.buf = append(f.buf[:0], f.buf[f.head:]...)
		f.head = 0
	}
	return v, nil
}

func (f *Fifo) Peek() (uint32, error) {
	if f.head == len(f.buf) {
		return 0, ErrUnderflow
	}
	return f.buf[f.head], nil
}

//go:nosplit
//go:inline
func (f *Fifo) Len() int { return len(f.buf) - f.head }
