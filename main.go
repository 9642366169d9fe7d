// ════════════════════════════════════════════════════════════════════════════════════════════════
// Packet-Scheduling Oracle - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Hierarchical Packet-Scheduler Reference Model
// Component: Main Entry Point & Oracle Orchestration
//
// Description:
//   Single-shot oracle executable: read one stimulus object from stdin,
//   interpret the command stream against the selected queue variant, write
//   the answer object to stdout.
//   Bootstrap → Queue Construction → Command Interpretation → Answer Emission
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/tebeka/atexit"

	"main/constants"
	"main/debug"
	"main/harness"
	"main/pifo"
	"main/protocol"
	"main/runstore"
	"main/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// main runs the complete oracle lifecycle. The process is deterministic and
// finite: one stimulus in, one answer object out. Underflow and overflow are
// absorbed into the answer memory and never change the exit code.
func main() {
	keepGoing := flag.Bool("keepgoing", false, "skip failing commands instead of halting the stream")
	boundsFlag := flag.String("boundaries", "", "comma-separated ascending flow boundaries")
	orderFlag := flag.String("order", "", "comma-separated strict-priority service order")
	horizonFlag := flag.Uint64("horizon", constants.DefaultHorizon, "calendar eligibility horizon")
	recordFlag := flag.String("record", "", "sqlite database to record this run into")
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		panic("usage: oracle [flags] <variant> <max_commands> <capacity> [flows]")
	}
	variant := args[0]
	maxCmds := mustInt(args[1], "max_commands")
	capacity := mustInt(args[2], "capacity")
	flows := constants.DefaultFlows
	if len(args) > 3 {
		flows = mustInt(args[3], "flows")
	}
	if flows < 1 {
		panic("Invalid flows: need at least one flow")
	}

	// PHASE 0: Stimulus loading
	debug.DropMessage("INIT", "Reading stimulus from stdin")
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic("Failed to read stimulus: " + err.Error())
	}
	in, err := protocol.Decode(raw)
	if err != nil {
		panic("Failed to decode stimulus: " + err.Error())
	}
	cmds := in.CommandStream()

	// PHASE 1: Queue construction for the selected variant
	bounds := utils.ParseU32List(*boundsFlag)
	order := parseOrder(*orderFlag)
	q := buildQueue(variant, capacity, flows, bounds, order, uint32(*horizonFlag))
	debug.DropMessage("READY", variant+" oracle, "+utils.Itoa(len(cmds))+" commands")

	// PHASE 2: Command interpretation; the answer memory is sized by the
	// command budget, matching the hardware answer memory depth.
	ans := harness.Operate(q, cmds, maxCmds, maxCmds, *keepGoing)

	// PHASE 3: Answer emission on stdout (stderr carries diagnostics only)
	out, err := protocol.Encode(in, ans)
	if err != nil {
		panic("Failed to encode answers: " + err.Error())
	}
	if _, err := os.Stdout.Write(out); err != nil {
		panic("Failed to write answers: " + err.Error())
	}

	if *recordFlag != "" {
		recordRun(*recordFlag, variant, raw, len(cmds), ans)
	}
	debug.DropMessage("DONE", utils.Utoa(uint64(len(ans)))+" answer words emitted")
	atexit.Exit(0)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// QUEUE CONSTRUCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// buildQueue maps a variant name to a live queue instance. Flow boundaries
// default to an even split of the value range; the tree variant builds the
// reference two-level hierarchy pifo(b1, pifo(b0, fifo, fifo), fifo).
func buildQueue(variant string, capacity, flows int, bounds []uint32, order []int, horizon uint32) pifo.Queue {
	switch variant {
	case "fifo":
		return pifo.NewFifo(capacity)
	case "heap":
		return pifo.NewHeap(capacity)
	case "stableheap":
		return pifo.NewStableHeap(capacity)
	case "calendar":
		return pifo.NewCalendar(capacity, horizon)
	case "pifo":
		if bounds == nil {
			bounds = defaultBounds(2)
		}
		return pifo.NewPifo(pifo.NewFifo(capacity), pifo.NewFifo(capacity), bounds[0])
	case "rr":
		if bounds == nil {
			bounds = defaultBounds(flows)
		}
		return pifo.NewRoundRobin(leafFifos(len(bounds), capacity), bounds)
	case "strict":
		if bounds == nil {
			bounds = defaultBounds(flows)
		}
		if order == nil {
			order = identityOrder(len(bounds))
		}
		return pifo.NewStrict(leafFifos(len(bounds), capacity), bounds, order)
	case "tree":
		inner, outer := uint32(100), uint32(200)
		if len(bounds) >= 2 {
			inner, outer = bounds[0], bounds[1]
		}
		return pifo.NewPifo(
			pifo.NewPifo(pifo.NewFifo(capacity), pifo.NewFifo(capacity), inner),
			pifo.NewFifo(capacity),
			outer,
		)
	}
	panic("Unknown queue variant: " + variant)
}

// leafFifos allocates one independently-owned Fifo per flow slot.
func leafFifos(n, capacity int) []pifo.Queue {
	kids := make([]pifo.Queue, n)
	for i := range kids {
		kids[i] = pifo.NewFifo(capacity)
	}
	return kids
}

// defaultBounds splits the uint32 value range evenly across n flows; the
// final boundary is always the maximum representable value.
func defaultBounds(n int) []uint32 {
	step := (uint64(1) << 32) / uint64(n)
	bounds := make([]uint32, n)
	for i := 0; i < n-1; i++ {
		bounds[i] = uint32(step*uint64(i+1) - 1)
	}
	bounds[n-1] = uint32(constants.MaxBoundary)
	return bounds
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RUN RECORDING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// recordRun persists the finished run and warns when the same stimulus was
// recorded before with different answers (oracle drift between versions).
func recordRun(path, variant string, raw []byte, commands int, ans []uint32) {
	store, err := runstore.Open(path)
	if err != nil {
		debug.DropError("STORE_OPEN", err)
		return
	}
	atexit.Register(func() { store.Close() })

	prev, err := store.ByFingerprint(runstore.Fingerprint(raw))
	if err == nil && !wordsEqual(prev.Answers, ans) {
		debug.DropMessage("DRIFT", "Answers differ from recorded run "+prev.ID)
	}

	run, err := store.Record(variant, raw, commands, ans)
	if err != nil {
		debug.DropError("STORE_RECORD", err)
		return
	}
	debug.DropMessage("RECORDED", run.ID)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ARGUMENT PARSING HELPERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func mustInt(s, name string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		panic("Invalid " + name + ": " + s)
	}
	return v
}

// parseOrder reads the --order list; nil means "identity".
func parseOrder(s string) []int {
	u := utils.ParseU32List(s)
	if u == nil {
		return nil
	}
	order := make([]int, len(u))
	for i, v := range u {
		order[i] = int(v)
	}
	return order
}

func wordsEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
