package wbuf

import (
	"github.com/dioptra-io/warts-go/encoding"
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/internal/pool"
)

// Writer appends big-endian primitive fields to a pooled byte buffer,
// mirroring the teacher's internal/pool.ByteBuffer growth strategy instead
// of relying on repeated plain append calls.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter returns a Writer backed by a buffer drawn from the default
// pool. Call Release when done to return the buffer for reuse.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetBlobBuffer()}
}

// Release returns the writer's backing buffer to the pool. The Writer must
// not be used afterward.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutBlobBuffer(w.buf)
		w.buf = nil
	}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// writer's internal buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// U8 appends one byte.
func (w *Writer) U8(v uint8) {
	w.buf.Grow(1)
	w.buf.MustWrite([]byte{v})
}

// U16 appends a big-endian uint16.
func (w *Writer) U16(v uint16) {
	w.buf.Grow(2)
	w.buf.B = wire.AppendUint16(w.buf.B, v)
}

// U32 appends a big-endian uint32.
func (w *Writer) U32(v uint32) {
	w.buf.Grow(4)
	w.buf.B = wire.AppendUint32(w.buf.B, v)
}

// RawBytes appends b verbatim.
func (w *Writer) RawBytes(b []byte) {
	w.buf.Grow(len(b))
	w.buf.MustWrite(b)
}

// CString appends s followed by a NUL terminator. It fails with
// errs.ErrTextTooLong if s exceeds encoding.MaxCStringLength.
func (w *Writer) CString(s string) error {
	w.buf.Grow(len(s) + 1)

	b, err := encoding.AppendCString(w.buf.B, s)
	if err != nil {
		return err
	}

	w.buf.B = b

	return nil
}

// Flags appends the wire encoding of f.
func (w *Writer) Flags(f flags.Flags) {
	w.buf.Grow(f.WartsSize())
	w.buf.B = f.Encode(w.buf.B)
}
