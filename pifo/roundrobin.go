package pifo

// RoundRobinQueue is the N-ary generalization of Pifo: N child queues, N
// boundaries, a cyclically advancing hot pointer, and skip-if-empty
// fallback. The scan starts at the hot index and visits children in cyclic
// order until one holds work; a successful pop advances the hot pointer to
// just past the served child, so active flows share service strictly while
// idle flows are skipped without earning credit.
type RoundRobinQueue struct {
	kids   []Queue
	router *BoundaryRouter
	hot    int
	size   int
}

// NewRoundRobin composes n child queues under an ascending boundary table
// of the same length. Children must be distinct instances.
func NewRoundRobin(kids []Queue, bounds []uint32) *RoundRobinQueue {
	if len(kids) == 0 {
		panic("pifo: round-robin needs at least one child")
	}
	if len(kids) != len(bounds) {
		panic("pifo: one boundary per child queue required")
	}
	for i, k := range kids {
		if k == nil {
			panic("pifo: nil child queue")
		}
		for j := i + 1; j < len(kids); j++ {
			if k == kids[j] {
				panic("pifo: children must be independently owned")
			}
		}
	}
	return &RoundRobinQueue{
		kids:   append([]Queue(nil), kids...),
		router: NewBoundaryRouter(bounds),
	}
}

func (q *RoundRobinQueue) Push(val, rank, tm uint32) error {
	i := q.router.Route(val)
	if err := q.kids[i].Push(val, rank, tm); err != nil {
		return err
	}
	q.size++
	return nil
}

func (q *RoundRobinQueue) Pop() (uint32, error) {
	if q.size == 0 {
		return 0, ErrUnderflow
	}
	n := len(q.kids)
	for k := 0; k < n; k++ {
		idx := (q.hot + k) % n
		if q.kids[idx].Len() == 0 {
			continue
		}
		v, err := q.kids[idx].Pop()
		if err != nil {
			return 0, err
		}
		q.hot = (idx + 1) % n
		q.size--
		return v, nil
	}
	return 0, ErrUnderflow
}

func (q *RoundRobinQueue) Peek() (uint32, error) {
	if q.size == 0 {
		return 0, ErrUnderflow
	}
	n := len(q.kids)
	for k := 0; k < n; k++ {
		idx := (q.hot + k) % n
		if q.kids[idx].Len() == 0 {
			continue
		}
		return q.kids[idx].Peek()
	}
	return 0, ErrUnderflow
}

//go:nosplit
//go:inline
func (q *RoundRobinQueue) Len() int { return q.size }
