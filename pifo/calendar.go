package pifo

// CalendarQueue schedules on a time field in addition to rank, modeling
// deadline/eligibility-based eviction (PIEO/PCQ-style). Entries whose time
// is within the eligibility horizon always beat entries past it; within
// each class the lowest rank wins and rank ties pop in push order.
//
// The three dimensions pack into one 64-bit key —
//
//	bit 63     late flag (0 = eligible, 1 = past the horizon)
//	bits 62–31 rank
//	bits 30–0  insertion sequence
//
// — so the Heap sift code is reused unchanged and the comparator is a
// strict total order. Once no eligible entry remains, late entries drain
// lowest-rank-first, which is the required fallback.
type CalendarQueue struct {
	Heap
	horizon uint32
	seq     uint32
}

// NewCalendar returns an empty calendar queue with the given eligibility
// horizon. capacity <= 0 makes it unbounded.
func NewCalendar(capacity int, horizon uint32) *CalendarQueue {
	c := &CalendarQueue{horizon: horizon}
	c.Heap = *NewHeap(capacity)
	return c
}

func (c *CalendarQueue) Push(val, rank, tm uint32) error {
	var late uint64
	if tm > c.horizon {
		late = 1
	}
	key := late<<63 | uint64(rank)<<31 | uint64(c.seq&0x7fffffff)
	if err := c.insert(key, val); err != nil {
		return err
	}
	c.seq++
	return nil
}
