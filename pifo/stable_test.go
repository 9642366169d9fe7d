package pifo

import (
	"math/rand"
	"testing"
)

func TestStableHeapRankOrder(t *testing.T) {
	s := NewStableHeap(0)
	pushOrFatal(t, s, 9, 9, 0)
	pushOrFatal(t, s, 12, 12, 0)
	pushOrFatal(t, s, 6, 6, 0)
	pushOrFatal(t, s, 3, 3, 0)
	popExpect(t, s, 3)
	popExpect(t, s, 6)
}

func TestStableHeapTieBreak(t *testing.T) {
	s := NewStableHeap(0)
	pushOrFatal(t, s, 101, 7, 0)
	pushOrFatal(t, s, 102, 7, 0)
	pushOrFatal(t, s, 103, 7, 0)
	popExpect(t, s, 101)
	popExpect(t, s, 102)
	popExpect(t, s, 103)
}

func TestStableHeapTiesAcrossRanks(t *testing.T) {
	s := NewStableHeap(0)
	pushOrFatal(t, s, 1, 5, 0)
	pushOrFatal(t, s, 2, 3, 0)
	pushOrFatal(t, s, 3, 5, 0)
	pushOrFatal(t, s, 4, 3, 0)
	popExpect(t, s, 2)
	popExpect(t, s, 4)
	popExpect(t, s, 1)
	popExpect(t, s, 3)
}

func TestStableHeapUnderOverflow(t *testing.T) {
	s := NewStableHeap(1)
	_, err := s.Pop()
	expectError(t, err, ErrUnderflow)
	pushOrFatal(t, s, 1, 1, 0)
	err = s.Push(2, 2, 0)
	expectError(t, err, ErrOverflow)
	// A rejected push must not consume a sequence slot observable through
	// ordering: pop, then re-push two equal ranks and check FIFO among ties.
	popExpect(t, s, 1)
	pushOrFatal(t, s, 10, 4, 0)
	popExpect(t, s, 10)
}

// FIFO among equal ranks must hold for any number of ties per rank.
func TestStableHeapTieBreakStress(t *testing.T) {
	const n = 2000
	rng := rand.New(rand.NewSource(42))
	s := NewStableHeap(0)
	// Values encode (rank, arrival) so the expected order is recoverable.
	arrival := make(map[uint32]uint32)
	for i := 0; i < n; i++ {
		rank := uint32(rng.Intn(8))
		val := rank<<16 | arrival[rank]
		arrival[rank]++
		pushOrFatal(t, s, val, rank, 0)
	}
	var prevRank, prevArr uint32
	first := true
	for i := 0; i < n; i++ {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop %d failed: %v", i, err)
		}
		rank, arr := v>>16, v&0xffff
		if !first {
			if rank < prevRank {
				t.Fatalf("rank order violated: %d after %d", rank, prevRank)
			}
			if rank == prevRank && arr != prevArr+1 {
				t.Fatalf("tie-break violated at rank %d: arrival %d after %d", rank, arr, prevArr)
			}
		}
		prevRank, prevArr, first = rank, arr, false
	}
}
