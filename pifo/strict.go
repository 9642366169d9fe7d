package pifo

// StrictPriorityQueue composes N child queues under a fixed service order
// instead of a rotating hot pointer: pop and peek always scan children in
// the configured order and serve the first nonempty one, so the
// highest-priority active flow monopolizes service.
type StrictPriorityQueue struct {
	kids   []Queue
	router *BoundaryRouter
	order  []int
	size   int
}

// NewStrict composes n child queues under an ascending boundary table and
// a service order that must be a permutation of [0, n).
func NewStrict(kids []Queue, bounds []uint32, order []int) *StrictPriorityQueue {
	if len(kids) == 0 {
		panic("pifo: strict-priority needs at least one child")
	}
	if len(kids) != len(bounds) || len(kids) != len(order) {
		panic("pifo: one boundary and one order slot per child required")
	}
	seen := make([]bool, len(kids))
	for _, o := range order {
		if o < 0 || o >= len(kids) || seen[o] {
			panic("pifo: service order must be a permutation of the flows")
		}
		seen[o] = true
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
	return &StrictPriorityQueue{
		kids:   append([]Queue(nil), kids...),
		router: NewBoundaryRouter(bounds),
		order:  append([]int(nil), order...),
	}
}

func (q *StrictPriorityQueue) Push(val, rank, tm uint32) error {
	i := q.router.Route(val)
	if err := q.kids[i].Push(val, rank, tm); err != nil {
		return err
	}
	q.size++
	return nil
}

func (q *StrictPriorityQueue) Pop() (uint32, error) {
	if q.size == 0 {
		return 0, ErrUnderflow
	}
	for _, idx := range q.order {
		if q.kids[idx].Len() == 0 {
			continue
		}
		v, err := q.kids[idx].Pop()
		if err != nil {
			return 0, err
		}
		q.size--
		return v, nil
	}
	return 0, ErrUnderflow
}

func (q *StrictPriorityQueue) Peek() (uint32, error) {
	if q.size == 0 {
		return 0, ErrUnderflow
	}
	for _, idx := range q.order {
		if q.kids[idx].Len() == 0 {
			continue
		}
		return q.kids[idx].Peek()
	}
	return 0, ErrUnderflow
}

//go:nosplit
//go:inline
func (q *StrictPriorityQueue) Len() int { return q.size }
