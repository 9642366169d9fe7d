// Package harness drives a finite command stream against one queue
// instance and materializes the effects into a fixed-size answer memory.
// It is the single policy point for underflow/overflow: depending on the
// keep-going flag a failing command either halts the stream or is skipped.
// Every hardware-validation oracle reuses this unit unmodified.
package harness

import (
	"main/constants"
	"main/pifo"
	"main/protocol"
)

// Operate dispatches up to maxCmds commands against q and returns the
// answer memory, zero-padded to ansCap words.
//
// Pop and Peek append their result to the answer memory; Push has no
// buffer effect. On pifo.ErrUnderflow or pifo.ErrOverflow the stream halts
// unless keepGoing is set, in which case the failing command is skipped.
// A full answer memory also halts the stream: its capacity is fixed at
// configuration time and is never exceeded. Unknown opcodes cannot occur
// in compiler-emitted streams and are skipped.
func Operate(q pifo.Queue, cmds []protocol.Command, maxCmds, ansCap int, keepGoing bool) []uint32 {
	if maxCmds < len(cmds) {
		cmds = cmds[:maxCmds]
	}
	ans := make([]uint32, 0, ansCap)

loop:
	for _, c := range cmds {
		if len(ans) == ansCap {
			break
		}
		var (
			v   uint32
			err error
		)
		switch c.Op {
		case constants.CmdPop:
			v, err = q.Pop()
			if err == nil {
				ans = append(ans, v)
			}
		case constants.CmdPeek:
			v, err = q.Peek()
			if err == nil {
				ans = append(ans, v)
			}
		case constants.CmdPush:
			err = q.Push(c.Value, c.Rank, c.Time)
		default:
			continue
		}
		if err != nil && !keepGoing {
			break loop
		}
	}

	for len(ans) < ansCap {
		ans = append(ans, 0)
	}
	return ans
}
