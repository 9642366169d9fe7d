package pifo

// StableHeap is a Heap whose rank ties pop in push order. Each instance
// carries its own insertion counter; the ordering key is rank in the upper
// 32 bits and the counter in the lower 32, so plain numeric comparison
// realizes "lower rank first, earlier push breaks ties".
type StableHeap struct {
	Heap
	seq uint32
}

// NewStableHeap returns an empty stable min-heap. capacity <= 0 makes it
// unbounded.
func NewStableHeap(capacity int) *StableHeap {
	s := &StableHeap{}
	s.Heap = *NewHeap(capacity)
	return s
}

func (s *StableHeap) Push(val, rank, _ uint32) error {
	key := uint64(rank)<<32 | uint64(s.seq)
	if err := s.insert(key, val); err != nil {
		return err
	}
	s.seq++
	return nil
}
