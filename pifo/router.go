package pifo

// BoundaryRouter maps a pushed value to a flow index by scanning an
// ascending boundary table: value v belongs to the first flow i with
// v <= bounds[i] (boundaries are inclusive upper bounds). The final
// boundary is expected to be the maximum representable value so routing
// is total; anything above the table clamps to the last flow.
//
// Flow counts are single digits in every deployed hierarchy, so a flat
// scan beats anything with per-lookup indirection.
type BoundaryRouter struct {
	bounds []uint32
}

// NewBoundaryRouter builds a router over an ascending boundary table.
// Misconfiguration is a programming error, not a runtime condition.
func NewBoundaryRouter(bounds []uint32) *BoundaryRouter {
	if len(bounds) == 0 {
		panic("pifo: boundary table must not be empty")
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			panic("pifo: boundary table must be strictly ascending")
		}
	}
	return &BoundaryRouter{bounds: bounds}
}

// Route returns the flow index owning val.
//
//go:nosplit
//go:inline
func (r *BoundaryRouter) Route(val uint32) int {
	for i, b := range r.bounds {
		if val <= b {
			return i
		}
	}
	return len(r.bounds) - 1
}

// Flows returns the number of flows the table routes into.
//
//go:nosplit
//go:inline
func (r *BoundaryRouter) Flows() int { return len(r.bounds) }
