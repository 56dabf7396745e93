package object

import (
	"testing"

	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/record"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_List_Roundtrip(t *testing.T) {
	l := &record.List{ListID: 1, ListIDHuman: 2, Name: "default"}
	l.Fixup()

	o := &Object{Type: format.ObjectList, List: l}

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, o.Encode(w))

	got, err := Decode(wbuf.NewReader(w.Bytes()), true)
	require.NoError(t, err)
	require.Equal(t, format.ObjectList, got.Type)
	require.NotNil(t, got.List)
	require.Equal(t, l.Name, got.List.Name)
}

func TestDecode_RejectsBadMagic(t *testing.T) {
	raw := []byte{0xFF, 0xFF, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	_, err := Decode(wbuf.NewReader(raw), true)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestDecode_RejectsUnknownType(t *testing.T) {
	raw := []byte{0x12, 0x05, 0x00, 0xEE, 0x00, 0x00, 0x00, 0x00}
	_, err := Decode(wbuf.NewReader(raw), true)
	require.ErrorIs(t, err, errs.ErrUnknownObjectType)
}

func TestDecode_LenientSkipsUnknownType(t *testing.T) {
	// type 0x00EE, 3-byte body that must be skipped whole.
	raw := []byte{0x12, 0x05, 0x00, 0xEE, 0x00, 0x00, 0x00, 0x03, 0xAA, 0xBB, 0xCC}

	r := wbuf.NewReader(raw)
	got, err := Decode(r, false)
	require.NoError(t, err)
	require.Nil(t, got)
	require.True(t, r.Done())
}

func TestDecode_LenientStillFailsOnTruncatedBody(t *testing.T) {
	raw := []byte{0x12, 0x05, 0x00, 0xEE, 0x00, 0x00, 0x00, 0x03, 0xAA}
	_, err := Decode(wbuf.NewReader(raw), false)
	require.Error(t, err)
}

func TestEncodeDecode_CycleDefinition_SharesCycleStartShape(t *testing.T) {
	cd := &record.CycleDefinition{CycleStart: record.CycleStart{CycleID: 1, ListID: 2, CycleIDHuman: 3}}
	cd.Fixup()

	o := &Object{Type: format.ObjectCycleDefinition, CycleDefinition: cd}

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, o.Encode(w))

	got, err := Decode(wbuf.NewReader(w.Bytes()), true)
	require.NoError(t, err)
	require.Equal(t, format.ObjectCycleDefinition, got.Type)
	require.Equal(t, uint32(1), got.CycleDefinition.CycleID)
}
