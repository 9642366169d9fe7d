// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: protocol.go — JSON command-stream codec
//
// Purpose:
//   - Decodes the stimulus object the build pipeline hands every oracle
//     (commands/values plus optional ranks/times memories).
//   - Encodes the answer object the hardware comparison consumes.
//
// Notes:
//   - The scheduling core never sees JSON; it consumes the zipped Command
//     records this package produces.
// ─────────────────────────────────────────────────────────────────────────────

package protocol

import (
	"github.com/sugawarayuuta/sonnet"
)

// MemFormat mirrors the simulator data-file format block. It is echoed
// through untouched; the oracle only interprets the data arrays.
type MemFormat struct {
	IsSigned    bool   `json:"is_signed"`
	NumericType string `json:"numeric_type"`
	Width       int    `json:"width"`
}

// Mem is one named memory of the stimulus: a flat word array plus format.
type Mem struct {
	Data   []uint32  `json:"data"`
	Format MemFormat `json:"format"`
}

// Input is the stimulus object read once from stdin or a file. Ranks and
// times are present only for rank-aware / time-aware oracle variants.
type Input struct {
	Commands Mem  `json:"commands"`
	Values   Mem  `json:"values"`
	Ranks    *Mem `json:"ranks,omitempty"`
	Times    *Mem `json:"times,omitempty"`
}

// Output is the answer object written to stdout: the padded answer memory
// plus an echo of the stimulus arrays for the comparison tooling.
type Output struct {
	AnsMem   []uint32 `json:"ans_mem"`
	Commands []uint32 `json:"commands"`
	Values   []uint32 `json:"values"`
	Ranks    []uint32 `json:"ranks,omitempty"`
	Times    []uint32 `json:"times,omitempty"`
}

// Command is one decoded command slot: the opcode plus the same-index
// entries of the value/rank/time memories (zero where a memory is absent).
type Command struct {
	Op    uint8
	Value uint32
	Rank  uint32
	Time  uint32
}

// Decode parses a stimulus object.
func Decode(raw []byte) (*Input, error) {
	var in Input
	if err := sonnet.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// CommandStream zips the stimulus memories into command records, one per
// slot of the command memory. Short or absent side memories read as zero,
// matching the hardware's uninitialized-word behavior.
func (in *Input) CommandStream() []Command {
	cmds := make([]Command, len(in.Commands.Data))
	for i, op := range in.Commands.Data {
		c := Command{Op: uint8(op), Value: at(in.Values.Data, i)}
		if in.Ranks != nil {
			c.Rank = at(in.Ranks.Data, i)
		}
		if in.Times != nil {
			c.Time = at(in.Times.Data, i)
		}
		cmds[i] = c
	}
	return cmds
}

// Encode builds the answer object for the given stimulus and serializes it
// with a trailing newline.
func Encode(in *Input, ans []uint32) ([]byte, error) {
	out := Output{
		AnsMem:   ans,
		Commands: in.Commands.Data,
		Values:   in.Values.Data,
	}
	if in.Ranks != nil {
		out.Ranks = in.Ranks.Data
	}
	if in.Times != nil {
		out.Times = in.Times.Data
	}
	buf, err := sonnet.Marshal(out)
	if err != nil {
		return nil, err
	}
	return append(buf, '\n'), nil
}

func at(a []uint32, i int) uint32 {
	if i < len(a) {
		return a[i]
	}
	return 0
}
