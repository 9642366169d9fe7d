package pifo

// Scheduling hierarchies are built by composition: Pifo, RoundRobinQueue
// and StrictPriorityQueue take Queue children, children may themselves be
// composites, and recursion terminates at Fifo/Heap leaves. Node is the
// declarative form of such a hierarchy; Build turns it into a live queue
// tree, constructing a fresh child instance per flow slot so no two
// positions ever alias storage.

// NodeKind selects the queue variant a Node builds.
type NodeKind uint8

const (
	KindFifo NodeKind = iota
	KindHeap
	KindStableHeap
	KindCalendar
	KindPifo
	KindRoundRobin
	KindStrict
)

// Node describes one position in a scheduling hierarchy.
//
// Leaves (KindFifo, KindHeap, KindStableHeap, KindCalendar) use Capacity
// and, for calendars, Horizon. Composites use Boundaries plus Children,
// and KindStrict additionally Order. KindPifo takes exactly two children
// and a single boundary.
type Node struct {
	Kind       NodeKind
	Capacity   int
	Horizon    uint32
	Boundaries []uint32
	Order      []int
	Children   []Node
}

// Build materializes the hierarchy rooted at n. Configuration mistakes are
// programming errors and panic, matching the composite constructors.
func Build(n Node) Queue {
	switch n.Kind {
	case KindFifo:
		return NewFifo(n.Capacity)
	case KindHeap:
		return NewHeap(n.Capacity)
	case KindStableHeap:
		return NewStableHeap(n.Capacity)
	case KindCalendar:
		return NewCalendar(n.Capacity, n.Horizon)
	case KindPifo:
		if len(n.Children) != 2 || len(n.Boundaries) != 1 {
			panic("pifo: binary node takes two children and one boundary")
		}
		return NewPifo(Build(n.Children[0]), Build(n.Children[1]), n.Boundaries[0])
	case KindRoundRobin:
		return NewRoundRobin(buildChildren(n.Children), n.Boundaries)
	case KindStrict:
		return NewStrict(buildChildren(n.Children), n.Boundaries, n.Order)
	}
	panic("pifo: unknown node kind")
}

func buildChildren(nodes []Node) []Queue {
	kids := make([]Queue, len(nodes))
	for i, c := range nodes {
		kids[i] = Build(c)
	}
	return kids
}
