package wbuf

import (
	"testing"

	"github.com/dioptra-io/warts-go/errs"
	"github.com/stretchr/testify/require"
)

func TestReader_Primitives(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x04})

	u8, err := r.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), u8)

	u16, err := r.U16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0203), u16)

	u32, err := r.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00000004), u32)

	require.True(t, r.Done())
	require.Equal(t, 0, r.Remaining())
}

func TestReader_U8_Truncated(t *testing.T) {
	r := NewReader(nil)
	_, err := r.U8()
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReader_U16_Truncated(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.U16()
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReader_U32_Truncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})
	_, err := r.U32()
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReader_Bytes(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB, 0xCC})
	b, err := r.Bytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, b)
	require.Equal(t, 2, r.Pos())
	require.Equal(t, 1, r.Remaining())
}

func TestReader_Bytes_Truncated(t *testing.T) {
	r := NewReader([]byte{0xAA})
	_, err := r.Bytes(2)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReader_CString(t *testing.T) {
	r := NewReader([]byte("host1\x00rest"))
	s, err := r.CString()
	require.NoError(t, err)
	require.Equal(t, "host1", s)
	require.Equal(t, 6, r.Pos())
}

func TestReader_CString_Unterminated(t *testing.T) {
	r := NewReader([]byte("host1"))
	_, err := r.CString()
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestReader_Flags(t *testing.T) {
	r := NewReader([]byte{0xC1, 0x41, 0xFF})
	f, err := r.Flags()
	require.NoError(t, err)
	require.True(t, f.Get(1))
	require.True(t, f.Get(14))
	require.Equal(t, 2, r.Pos())
	require.Equal(t, 1, r.Remaining())
}

func TestReader_Skip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	require.NoError(t, r.Skip(3))
	require.Equal(t, 3, r.Pos())

	u8, err := r.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(4), u8)
}

func TestReader_Skip_Truncated(t *testing.T) {
	r := NewReader([]byte{1})
	require.ErrorIs(t, r.Skip(5), errs.ErrTruncatedInput)
}
