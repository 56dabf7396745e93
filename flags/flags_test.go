package flags

import (
	"testing"

	"github.com/dioptra-io/warts-go/errs"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleZeroByte(t *testing.T) {
	f, n, err := Decode([]byte{0x00})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, f.Any())
}

func TestDecode_SingleByteWithFlags(t *testing.T) {
	// flag 1 (0x01) and flag 7 (0x40) set, link bit clear.
	f, n, err := Decode([]byte{0b0100_0001})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, f.Any())
	require.True(t, f.Get(1))
	require.True(t, f.Get(7))
	require.False(t, f.Get(2))
}

func TestDecode_TwoByteFlagTable(t *testing.T) {
	f, n, err := Decode([]byte{0xC1, 0x41})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.True(t, f.Get(1))
	require.True(t, f.Get(7))
	require.True(t, f.Get(8))
	require.True(t, f.Get(14))
	require.False(t, f.Get(2))
	require.False(t, f.Get(13))

	require.Equal(t, []byte{0xC1, 0x41}, f.Encode(nil))
}

func TestDecode_TruncatedFlags(t *testing.T) {
	_, _, err := Decode([]byte{0xC1, 0xC1})
	require.ErrorIs(t, err, errs.ErrTruncatedFlags)
}

func TestEncode_Zero(t *testing.T) {
	f := New(0)
	require.Equal(t, []byte{0x00}, f.Encode(nil))
	require.Equal(t, 1, f.WartsSize())
}

func TestEncode_MinimalLength(t *testing.T) {
	f := FromIndices(1, 7, 8, 14)
	enc := f.Encode(nil)
	require.Equal(t, 2, len(enc))
	require.Equal(t, f.WartsSize(), len(enc))

	decoded, n, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.Equal(t, f, decoded)
}

func TestRoundtrip_AllValuesUnder60Bits(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 1 << 59, (1 << 60) - 1}
	for _, v := range values {
		f := New(v)
		enc := f.Encode(nil)
		decoded, n, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, f, decoded)
	}
}

func TestDecode_RejectsAbove60Bits(t *testing.T) {
	// 1<<60 requires bit 60, outside the supported range.
	f := New(1 << 60)
	enc := f.Encode(nil)
	_, _, err := Decode(enc)
	require.ErrorIs(t, err, errs.ErrFlagTooLarge)
}

func TestGet_PanicsOnZeroIndex(t *testing.T) {
	f := New(1)
	require.Panics(t, func() { f.Get(0) })
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	b.Push(1, true, 4)
	b.Push(2, false, 4)
	b.Push(3, true, 1)

	got := b.Flags()
	require.True(t, got.Get(1))
	require.False(t, got.Get(2))
	require.True(t, got.Get(3))
	require.Equal(t, 5, b.ParamLength())
}
