package dedup

import (
	"net/netip"
	"testing"

	"github.com/dioptra-io/warts-go/address"
	"github.com/stretchr/testify/require"
)

func TestTable_PushAt(t *testing.T) {
	tbl := New()

	a1, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	a2, _ := address.FromIP(netip.MustParseAddr("192.0.2.2"))

	id1 := tbl.Push(a1)
	id2 := tbl.Push(a2)
	require.Equal(t, 0, id1)
	require.Equal(t, 1, id2)
	require.Equal(t, 2, tbl.Len())

	got, ok := tbl.At(0)
	require.True(t, ok)
	require.Equal(t, a1, got)
}

func TestTable_At_OutOfRange(t *testing.T) {
	tbl := New()
	_, ok := tbl.At(0)
	require.False(t, ok)
}

func TestTable_PushDedup(t *testing.T) {
	tbl := New()
	a, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	enc := []byte{0x04, 0x01, 192, 0, 2, 1}

	idx1, isNew1 := tbl.PushDedup(a, enc)
	require.True(t, isNew1)
	require.Equal(t, 0, idx1)

	idx2, isNew2 := tbl.PushDedup(a, enc)
	require.False(t, isNew2)
	require.Equal(t, idx1, idx2)
	require.Equal(t, 1, tbl.Len())
}
