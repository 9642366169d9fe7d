package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Integer Formatting — For Log Paths Without fmt
///////////////////////////////////////////////////////////////////////////////

// Itoa renders a non-negative int as decimal ASCII. One string allocation,
// no fmt machinery. Negative input gets a leading '-'.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := false
	if n < 0 {
		neg = true
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Utoa renders a uint64 as decimal ASCII. Same contract as Itoa.
//
//go:nosplit
//go:inline
func Utoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Warning Output — Direct Stderr Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr. No locking, no formatting,
// no allocation. Stdout stays reserved for the answer JSON.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}

///////////////////////////////////////////////////////////////////////////////
// List Parsing — CLI Flow Tables Without strings.Split
///////////////////////////////////////////////////////////////////////////////

// ParseU32List parses a comma-separated decimal list ("100,200,4294967295")
// into a uint32 slice. Returns nil on empty input or any malformed field;
// callers treat nil as "flag absent".
func ParseU32List(s string) []uint32 {
	if len(s) == 0 {
		return nil
	}
	out := make([]uint32, 0, 4)
	var v uint64
	seen := false
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if !seen {
				return nil
			}
			out = append(out, uint32(v))
			v, seen = 0, false
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return nil
		}
		v = v*10 + uint64(c-'0')
		if v > 1<<32-1 {
			return nil
		}
		seen = true
	}
	return out
}
