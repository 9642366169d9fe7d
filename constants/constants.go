// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Oracle-wide tunables and command encoding
//
// Purpose:
//   - Defines the wire encoding of the command stream shared with the
//     hardware side, plus defaults for the oracle CLI.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Command Encoding ─────────────────────────────

// Opcode values match the hardware command memory layout. Every command slot
// carries one opcode plus the same-index entries of the value/rank/time
// memories.
const (
	CmdPop  = 0 // remove and emit the scheduled head
	CmdPeek = 1 // emit the scheduled head without removal
	CmdPush = 2 // insert values[i] (with ranks[i]/times[i] where present)
)

// ───────────────────────────── Queue Defaults ───────────────────────────────

const (
	// DefaultFlows is the flow count used when a multi-flow variant is run
	// without an explicit flow-count argument.
	DefaultFlows = 2

	// MaxBoundary is the largest routable value. The final entry of every
	// boundary table equals it, so flow selection is total over uint32.
	MaxBoundary = 1<<32 - 1

	// DefaultHorizon is the calendar-queue eligibility horizon used when the
	// CLI does not override it.
	DefaultHorizon = 1 << 16
)

// ───────────────────────────── Run Recording ────────────────────────────────

const (
	// RecentRunsCap bounds the in-memory recent-run index kept by the run
	// store. Persisted rows are unbounded.
	RecentRunsCap = 64
)
