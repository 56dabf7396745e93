// Package flags implements the warts variable-length "link-bit" flag table.
//
// From the warts(5) man page: a set of flags and parameters begins with a
// sequence of bytes that denote which items are included. The most
// significant bit of each byte is the link bit: it determines if the next
// byte in the sequence also carries flags. The low-order 7 bits of each
// byte signal whether the corresponding parameter is present. Flag indices
// are 1-based: bit 0 of byte 0 is flag 1, bit 6 of byte 0 is flag 7, bit 0
// of byte 1 is flag 8, and so on.
package flags

import (
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/sized"
)

// MaxBits is the highest flag index this codec supports. The top 4 bits of
// the 64-bit accumulator are reserved, matching scamper's internal
// constants (see warts(5) and spec Open Question on the 60-bit cap).
const MaxBits = 60

// Flags is a 1-based bitset of optional-parameter presence, decoded from or
// destined for the warts VLQ flag table.
type Flags struct {
	bits uint64
}

var _ sized.WartsSized = Flags{}

// New builds a Flags value directly from a 64-bit bitset, where bit i-1
// represents flag i.
func New(bits uint64) Flags {
	return Flags{bits: bits}
}

// FromIndices builds a Flags value by OR-ing together the bits for each
// 1-based flag index in the given (not necessarily ordered) list.
func FromIndices(indices ...int) Flags {
	var bits uint64
	for _, i := range indices {
		bits |= 1 << uint(i-1)
	}

	return Flags{bits: bits}
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.bits != 0
}

// Get reports whether the 1-based flag i is set. It panics if i < 1,
// matching the original implementation's "flags are one-indexed" assertion.
func (f Flags) Get(i int) bool {
	if i < 1 {
		panic("flags: flag index must be >= 1")
	}

	mask := uint64(1) << uint(i-1)

	return f.bits&mask == mask
}

// Bits returns the raw 64-bit bitset backing these flags.
func (f Flags) Bits() uint64 {
	return f.bits
}

// Set returns a copy of f with the 1-based flag i set (present) or cleared.
func (f Flags) Set(i int, present bool) Flags {
	mask := uint64(1) << uint(i-1)
	if present {
		return Flags{bits: f.bits | mask}
	}

	return Flags{bits: f.bits &^ mask}
}

// WartsSize returns the encoded byte width of f: the minimum number of
// 7-bit groups needed to hold the highest set flag, with a floor of 1 byte.
func (f Flags) WartsSize() int {
	if f.bits == 0 {
		return 1
	}

	n := 0
	for v := f.bits; v != 0; v >>= 7 {
		n++
	}

	return n
}

// Decode reads a flag byte sequence from data, returning the decoded Flags
// and the number of bytes consumed. It fails with ErrTruncatedFlags if the
// input ends before a byte with a clear link bit is seen, and with
// ErrFlagTooLarge if the accumulated value would exceed MaxBits.
func Decode(data []byte) (Flags, int, error) {
	var bits uint64

	tooLarge := false

	for i, b := range data {
		v := uint64(b & 0x7F)
		if v != 0 && (i*7 >= MaxBits || v>>uint(MaxBits-i*7) != 0) {
			tooLarge = true
		}

		bits |= v << uint(i*7)

		if b&0x80 == 0 {
			if tooLarge {
				return Flags{}, 0, errs.ErrFlagTooLarge
			}

			return Flags{bits: bits}, i + 1, nil
		}
	}

	return Flags{}, 0, errs.ErrTruncatedFlags
}

// Encode appends the wire representation of f to dst and returns the
// extended slice. A zero-valued Flags encodes as a single zero byte.
func (f Flags) Encode(dst []byte) []byte {
	if f.bits == 0 {
		return append(dst, 0)
	}

	v := f.bits
	for v != 0 {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}
