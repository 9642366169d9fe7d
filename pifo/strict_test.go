package pifo

import "testing"

func strict3(t *testing.T, order []int) *StrictPriorityQueue {
	t.Helper()
	return NewStrict(
		[]Queue{NewFifo(0), NewFifo(0), NewFifo(0)},
		[]uint32{100, 200, 1<<32 - 1},
		order,
	)
}

// With order [2,0,1], flow 2 drains fully before flow 0 gets service.
func TestStrictOrderDominates(t *testing.T) {
	q := strict3(t, []int{2, 0, 1})
	pushOrFatal(t, q, 10, 0, 0)  // flow 0
	pushOrFatal(t, q, 150, 0, 0) // flow 1
	pushOrFatal(t, q, 300, 0, 0) // flow 2
	pushOrFatal(t, q, 400, 0, 0) // flow 2

	popExpect(t, q, 300)
	popExpect(t, q, 400)
	popExpect(t, q, 10)
	popExpect(t, q, 150)
}

// A higher-priority push preempts lower flows on the very next pop.
func TestStrictPreemptsBetweenPops(t *testing.T) {
	q := strict3(t, []int{0, 1, 2})
	pushOrFatal(t, q, 150, 0, 0)
	popExpect(t, q, 150)
	pushOrFatal(t, q, 300, 0, 0)
	pushOrFatal(t, q, 10, 0, 0)
	popExpect(t, q, 10) // flow 0 outranks flow 2 regardless of push order
	popExpect(t, q, 300)
}

func TestStrictPeekMatchesPop(t *testing.T) {
	q := strict3(t, []int{1, 2, 0})
	pushOrFatal(t, q, 10, 0, 0)
	pushOrFatal(t, q, 150, 0, 0)
	expectPeekIdempotent(t, q)
	peekExpect(t, q, 150)
	popExpect(t, q, 150)
	peekExpect(t, q, 10)
}

func TestStrictUnderflow(t *testing.T) {
	q := strict3(t, []int{0, 1, 2})
	_, err := q.Pop()
	expectError(t, err, ErrUnderflow)
}

func TestStrictRejectsBadOrder(t *testing.T) {
	cases := map[string][]int{
		"too short":    {0, 1},
		"out of range": {0, 1, 3},
		"duplicate":    {0, 1, 1},
		"negative":     {0, -1, 2},
	}
	for name, order := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic: %s", name)
				}
			}()
			strict3(t, order)
		})
	}
}

func TestStrictLengthInvariant(t *testing.T) {
	kids := []Queue{NewFifo(0), NewFifo(0), NewFifo(0)}
	q := NewStrict(kids, []uint32{100, 200, 1<<32 - 1}, []int{2, 1, 0})
	for _, v := range []uint32{10, 150, 300, 20, 160} {
		pushOrFatal(t, q, v, 0, 0)
	}
	for q.Len() > 0 {
		sum := 0
		for _, k := range kids {
			sum += k.Len()
		}
		if q.Len() != sum {
			t.Fatalf("len invariant broken: %d != %d", q.Len(), sum)
		}
		if _, err := q.Pop(); err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
	}
}
