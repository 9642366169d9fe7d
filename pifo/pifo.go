package pifo

// Pifo is the binary two-way composite: values at or below the boundary
// route to the low child, the rest to the high child, and a round-robin
// hot pointer alternates which child is served. If the hot child is empty
// the other child is served instead; the silent child earns no retroactive
// credit. Children may be any Queue variant, including other composites.
type Pifo struct {
	kids     [2]Queue
	boundary uint32
	hot      int
	size     int
}

// NewPifo composes two child queues under a routing boundary. The children
// must be distinct instances; each flow slot owns its queue outright.
func NewPifo(low, high Queue, boundary uint32) *Pifo {
	if low == nil || high == nil {
		panic("pifo: nil child queue")
	}
	if low == high {
		panic("pifo: children must be independently owned")
	}
	return &Pifo{kids: [2]Queue{low, high}, boundary: boundary}
}

func (p *Pifo) Push(val, rank, tm uint32) error {
	i := 0
	if val > p.boundary {
		i = 1
	}
	if err := p.kids[i].Push(val, rank, tm); err != nil {
		return err
	}
	p.size++
	return nil
}

func (p *Pifo) Pop() (uint32, error) {
	if p.size == 0 {
		return 0, ErrUnderflow
	}
	idx := p.hot
	if p.kids[idx].Len() == 0 {
		idx ^= 1
	}
	v, err := p.kids[idx].Pop()
	if err != nil {
		return 0, err
	}
	p.hot = idx ^ 1
	p.size--
	return v, nil
}

func (p *Pifo) Peek() (uint32, error) {
	if p.size == 0 {
		return 0, ErrUnderflow
	}
	idx := p.hot
	if p.kids[idx].Len() == 0 {
		idx ^= 1
	}
	return p.kids[idx].Peek()
}

//go:nosplit
//go:inline
func (p *Pifo) Len() int { return p.size }
