package icmpext

import (
	"testing"

	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/stretchr/testify/require"
)

func TestMPLSLabel_PackUnpack(t *testing.T) {
	l := NewMPLSLabel(1234, 5, true, 8)
	require.Equal(t, uint32(1234), l.Label())
	require.Equal(t, uint8(5), l.Experimental())
	require.True(t, l.BottomOfStack())
	require.Equal(t, uint8(8), l.TTL())
}

func TestEncodeDecode_Roundtrip(t *testing.T) {
	ext := New([]MPLSLabel{NewMPLSLabel(16, 0, true, 255)})

	w := wbuf.NewWriter()
	defer w.Release()
	ext.Encode(w)
	require.Equal(t, ext.WartsSize(), w.Len())

	r := wbuf.NewReader(w.Bytes())
	got, err := Decode(r)
	require.NoError(t, err)
	require.Equal(t, ext, got)
	require.True(t, r.Done())
}

func TestDecode_RejectsNonMPLS(t *testing.T) {
	w := wbuf.NewWriter()
	defer w.Release()
	w.U16(0)
	w.U8(2)
	w.U8(1)

	r := wbuf.NewReader(w.Bytes())
	_, err := Decode(r)
	require.ErrorIs(t, err, errs.ErrUnsupportedICMPExtension)
}

func TestDataLength_Empty(t *testing.T) {
	require.Equal(t, uint16(0), New(nil).DataLength())
}
