// Package pifo is a software reference model of programmable hierarchical
// packet schedulers. It provides FIFO, rank-ordered heap, stable heap,
// calendar, binary PIFO, N-ary round-robin and N-ary strict-priority queues,
// all behind one Queue interface so that any variant can serve as a flow of
// any composite. The model is deterministic and single-threaded: its answer
// stream is compared word-for-word against a clocked hardware implementation,
// so every dispatch decision here is exact, including underflow and overflow
// behavior.
package pifo

import "errors"

// Sentinel conditions shared by every variant. Both are local and
// recoverable; the command harness decides whether they halt the stream.
var (
	ErrUnderflow = errors.New("pifo: pop or peek on empty queue")
	ErrOverflow  = errors.New("pifo: push on full queue")
)

// Queue is the capability set common to all scheduler variants.
//
// Push takes the routed value plus its rank and time fields; variants that
// do not schedule on rank or time ignore them. Pop and Peek return the next
// scheduled value, where "next" depends on the variant's dispatch policy.
// Len is O(1) for every variant, including composites.
type Queue interface {
	Push(val, rank, tm uint32) error
	Pop() (uint32, error)
	Peek() (uint32, error)
	Len() int
}
