package stream

import (
	"net/netip"
	"testing"

	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/object"
	"github.com/dioptra-io/warts-go/record"
	"github.com/stretchr/testify/require"
)

func twoListObjects() []*object.Object {
	l1 := &record.List{ListID: 1, ListIDHuman: 1, Name: "a"}
	l2 := &record.List{ListID: 2, ListIDHuman: 2, Name: "b"}

	return []*object.Object{
		{Type: format.ObjectList, List: l1},
		{Type: format.ObjectList, List: l2},
	}
}

func TestDecodeAll_EncodeAll_Roundtrip(t *testing.T) {
	objects := twoListObjects()

	raw, err := EncodeAll(objects)
	require.NoError(t, err)

	got, err := DecodeAll(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].List.Name)
	require.Equal(t, "b", got[1].List.Name)
}

func TestReader_Next_StopsAtExhaustion(t *testing.T) {
	raw, err := EncodeAll(twoListObjects())
	require.NoError(t, err)

	r, err := NewReader(raw)
	require.NoError(t, err)

	o1, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, o1)

	o2, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, o2)

	o3, err := r.Next()
	require.NoError(t, err)
	require.Nil(t, o3)
}

func TestReader_Next_FailsFastAndSticky(t *testing.T) {
	raw := []byte{0xFF, 0xFF, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}

	r, err := NewReader(raw)
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, errs.ErrBadMagic)

	_, err = r.Next()
	require.ErrorIs(t, err, errs.ErrStreamFailed)
}

func TestReader_Strict_AbortsOnUnknownType(t *testing.T) {
	raw, err := EncodeAll(twoListObjects())
	require.NoError(t, err)

	raw = append(raw, 0x12, 0x05, 0x00, 0xEE, 0x00, 0x00, 0x00, 0x03, 0xAA, 0xBB, 0xCC)

	r, err := NewReader(raw)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		o, err := r.Next()
		require.NoError(t, err)
		require.NotNil(t, o)
	}

	_, err = r.Next()
	require.ErrorIs(t, err, errs.ErrUnknownObjectType)
}

func TestReader_Lenient_SkipsUnknownType(t *testing.T) {
	raw, err := EncodeAll(twoListObjects())
	require.NoError(t, err)

	raw = append(raw, 0x12, 0x05, 0x00, 0xEE, 0x00, 0x00, 0x00, 0x03, 0xAA, 0xBB, 0xCC)

	r, err := NewReader(raw, WithStrict(false))
	require.NoError(t, err)

	names := make([]string, 0, 2)
	for {
		o, err := r.Next()
		require.NoError(t, err)
		if o == nil {
			break
		}
		names = append(names, o.List.Name)
	}

	require.Equal(t, []string{"a", "b"}, names)
}

func TestReader_WithDereference(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))

	tr := &record.Traceroute{
		HasSrcAddr: true,
		SrcAddr:    src,
		Hops: []*record.TraceProbe{
			{HasAddr: true, Addr: address.Reference(0)},
		},
	}
	tr.Fixup()

	raw, err := EncodeAll([]*object.Object{{Type: format.ObjectTraceroute, Traceroute: tr}})
	require.NoError(t, err)

	r, err := NewReader(raw, WithDereference(true))
	require.NoError(t, err)

	obj, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, src, obj.Traceroute.Hops[0].Addr)
}
