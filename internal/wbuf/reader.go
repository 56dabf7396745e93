// Package wbuf provides the low-level, position-tracked byte reader and
// pooled byte writer shared by every record codec in the warts module.
//
// The reader plays the role the teacher's internal/pool.ByteBuffer plays for
// writing: a single small type that every higher-level decoder embeds or
// wraps instead of re-deriving bounds-checked field reads by hand.
package wbuf

import (
	"github.com/dioptra-io/warts-go/encoding"
	"github.com/dioptra-io/warts-go/endian"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/flags"
)

// wire is the byte order used by every warts field; the format is
// big-endian throughout.
var wire = endian.GetBigEndianEngine()

// Reader reads big-endian primitive fields from a byte slice, tracking its
// own read position and failing with errs.ErrTruncatedInput rather than
// panicking when the slice is exhausted.
//
// A Reader does not copy or retain a mutable reference beyond the slice it
// was given; it never mutates the underlying bytes.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read offset into the original slice.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Done reports whether the reader has consumed the entire slice.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return errs.ErrTruncatedInput
	}

	return nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}

	v := r.data[r.pos]
	r.pos++

	return v, nil
}

// U16 reads a big-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}

	v := wire.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

// U32 reads a big-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}

	v := wire.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

// Bytes reads the next n raw bytes. The returned slice aliases the reader's
// backing array and must not be mutated by the caller.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}

	v := r.data[r.pos : r.pos+n]
	r.pos += n

	return v, nil
}

// CString reads a NUL-terminated byte string and returns it without the
// terminator.
func (r *Reader) CString() (string, error) {
	s, next, err := encoding.ReadCString(r.data, r.pos)
	if err != nil {
		return "", err
	}

	r.pos = next

	return s, nil
}

// Flags decodes a flags.Flags value at the current position, matching the
// loop-until-link-bit-clear scheme of the flags package.
func (r *Reader) Flags() (flags.Flags, error) {
	f, n, err := flags.Decode(r.data[r.pos:])
	if err != nil {
		return flags.Flags{}, err
	}

	r.pos += n

	return f, nil
}

// Skip advances the read position by n bytes without interpreting them.
// object.Decode uses it in lenient mode to skip the body of an unknown
// object type by its length field. Record decoders do not call it: bytes
// in a record's optional region beyond the fields a decoder knows are not
// skipped via param_length.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}

	r.pos += n

	return nil
}
