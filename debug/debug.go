// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path logging helper (zero-alloc)
//
// Purpose:
//   - Logs infrequent bootstrap and failure paths without heap pressure.
//   - Used only in cold paths: argument validation, stdin decode errors,
//     run-store failures.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Never writes to stdout; the answer JSON owns that stream.
//
// ⚠️ Never invoke in hot loops — use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs error messages with a custom alloc-free print strategy.
// It writes directly to stderr, bypassing any heap allocations.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs debug messages with zero-allocation print strategy.
// Used for bootstrap checkpoints, recording confirmations, and other
// infrequent events.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}
