package dereference

import (
	"net/netip"
	"testing"

	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/internal/dedup"
	"github.com/dioptra-io/warts-go/record"
	"github.com/stretchr/testify/require"
)

func TestTraceroute_ResolvesReference(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	dst, _ := address.FromIP(netip.MustParseAddr("192.0.2.2"))

	tr := &record.Traceroute{
		HasSrcAddr: true,
		SrcAddr:    src,
		HasDstAddr: true,
		DstAddr:    dst,
		Hops: []*record.TraceProbe{
			{HasAddr: true, Addr: address.Reference(0)},
		},
	}

	require.NoError(t, Traceroute(tr))
	require.Equal(t, src, tr.Hops[0].Addr)
}

func TestTraceroute_ResolvesAddrID_OneBased(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	hopAddr, _ := address.FromIP(netip.MustParseAddr("198.51.100.9"))

	tr := &record.Traceroute{
		HasSrcAddr: true,
		SrcAddr:    src,
		Hops: []*record.TraceProbe{
			{HasAddr: true, Addr: hopAddr},
			{HasAddrID: true, AddrID: 1}, // 1-based -> table[0] == src
		},
	}

	require.NoError(t, Traceroute(tr))
	require.True(t, tr.Hops[1].HasAddr)
	require.Equal(t, src, tr.Hops[1].Addr)
}

func TestTraceroute_DanglingReference(t *testing.T) {
	tr := &record.Traceroute{
		Hops: []*record.TraceProbe{
			{HasAddr: true, Addr: address.Reference(5)},
		},
	}

	err := Traceroute(tr)
	require.ErrorIs(t, err, errs.ErrDanglingAddressReference)
}

func TestMultipathTraceroute_ResolvesNodeAddrID(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))

	tr := &record.MultipathTraceroute{
		HasSrcAddr: true,
		SrcAddr:    src,
		Nodes: []*record.MultipathTraceNode{
			{HasAddrID: true, AddrID: 1},
		},
	}

	require.NoError(t, MultipathTraceroute(tr))
	require.True(t, tr.Nodes[0].HasAddr)
	require.Equal(t, src, tr.Nodes[0].Addr)
}

func TestTraceroute_Dereference_IsIdempotent(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	dst, _ := address.FromIP(netip.MustParseAddr("192.0.2.2"))
	hop2Addr, _ := address.FromIP(netip.MustParseAddr("198.51.100.9"))

	tr := &record.Traceroute{
		HasSrcAddr:   true,
		SrcAddr:      src,
		HasDstAddr:   true,
		DstAddr:      dst,
		HasSrcAddrID: true,
		SrcAddrID:    1, // 1-based -> table[0] == src, once table is built
		Hops: []*record.TraceProbe{
			{HasAddr: true, Addr: address.Reference(1)}, // 0-based -> table[1] == dst
			{HasAddr: true, Addr: hop2Addr},
			{HasAddrID: true, AddrID: 3}, // 1-based -> table[2] == hop2Addr
		},
	}

	require.NoError(t, Traceroute(tr))

	require.Equal(t, src, tr.SrcAddr)
	require.Equal(t, dst, tr.Hops[0].Addr)
	require.Equal(t, hop2Addr, tr.Hops[1].Addr)
	require.Equal(t, hop2Addr, tr.Hops[2].Addr)
	require.False(t, tr.HasSrcAddrID)
	require.False(t, tr.Hops[2].HasAddrID)

	// A fresh (default) call on an already-dereferenced record must change
	// nothing: every field that was a Reference or an *_addr_id pointer has
	// already been resolved and consumed.
	require.NoError(t, Traceroute(tr))

	require.Equal(t, src, tr.SrcAddr)
	require.Equal(t, dst, tr.DstAddr)
	require.Equal(t, dst, tr.Hops[0].Addr)
	require.Equal(t, hop2Addr, tr.Hops[1].Addr)
	require.Equal(t, hop2Addr, tr.Hops[2].Addr)
	require.False(t, tr.HasSrcAddrID)
	require.False(t, tr.Hops[2].HasAddrID)
}

func TestMultipathTraceroute_Dereference_IsIdempotent(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	nodeAddr, _ := address.FromIP(netip.MustParseAddr("198.51.100.9"))

	tr := &record.MultipathTraceroute{
		HasSrcAddr:   true,
		SrcAddr:      src,
		HasDstAddrID: true,
		DstAddrID:    2, // 1-based -> table[1] == nodeAddr
		Nodes: []*record.MultipathTraceNode{
			{HasAddr: true, Addr: nodeAddr},
		},
	}

	require.NoError(t, MultipathTraceroute(tr))
	require.Equal(t, nodeAddr, tr.DstAddr)
	require.False(t, tr.HasDstAddrID)

	require.NoError(t, MultipathTraceroute(tr))
	require.Equal(t, nodeAddr, tr.DstAddr)
	require.Equal(t, nodeAddr, tr.Nodes[0].Addr)
	require.False(t, tr.HasDstAddrID)
}

func TestTraceroute_WithTable_SharesAcrossCalls(t *testing.T) {
	first, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	second, _ := address.FromIP(netip.MustParseAddr("192.0.2.2"))

	table := dedup.New()

	tr1 := &record.Traceroute{HasSrcAddr: true, SrcAddr: first}
	require.NoError(t, Traceroute(tr1, WithTable(table)))

	tr2 := &record.Traceroute{
		HasSrcAddr: true,
		SrcAddr:    second,
		Hops: []*record.TraceProbe{
			{HasAddrID: true, AddrID: 1}, // 1-based -> table[0] == first, from tr1
		},
	}
	require.NoError(t, Traceroute(tr2, WithTable(table)))
	require.Equal(t, first, tr2.Hops[0].Addr)
	require.Equal(t, 2, table.Len())
}
