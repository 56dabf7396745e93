package record

import (
	"net/netip"
	"testing"

	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/stretchr/testify/require"
)

func TestPing_EncodeDecode_NoReplies(t *testing.T) {
	src, _ := address.FromIP(netip.MustParseAddr("192.0.2.1"))
	dst, _ := address.FromIP(netip.MustParseAddr("192.0.2.2"))

	p := &Ping{
		HasListID:      true,
		ListID:         1,
		HasSrcAddr:     true,
		SrcAddr:        src,
		HasDstAddr:     true,
		DstAddr:        dst,
		HasStopReason:  true,
		StopReason:     format.PingStopCompleted,
		HasPingFlags2:  true,
		PingFlags2:     0x03,
		HasProbeTCPSeq: true,
		ProbeTCPSeq:    123456,
		HasTsPrespec:   true,
	}
	p.Fixup()

	require.True(t, p.Flags.Get(24))

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, p.Encode(w))

	got, err := DecodePing(wbuf.NewReader(w.Bytes()), p.Length)
	require.NoError(t, err)
	require.Equal(t, p.ListID, got.ListID)
	require.Equal(t, p.SrcAddr, got.SrcAddr)
	require.True(t, got.HasTsPrespec)
	require.Equal(t, uint8(0x03), got.PingFlags2)
	require.Equal(t, uint32(123456), got.ProbeTCPSeq)
	require.Len(t, got.Replies, 0)
}

func TestPing_EncodeDecode_WithDataAndReplies(t *testing.T) {
	p := &Ping{
		HasDataLength: true,
		DataLength:    3,
		HasData:       true,
		Data:          []byte{0xAA, 0xBB, 0xCC},
	}

	replyAddr, _ := address.FromIP(netip.MustParseAddr("198.51.100.7"))
	reply := &PingProbe{
		HasAddrID:   true,
		AddrID:      0,
		HasReplyTTL: true,
		ReplyTTL:    55,
		HasAddr:     true,
		Addr:        replyAddr,
		HasRTTUsec:  true,
		RTTUsec:     4200,
	}
	p.Replies = []*PingProbe{reply}
	p.Fixup()

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, p.Encode(w))

	got, err := DecodePing(wbuf.NewReader(w.Bytes()), p.Length)
	require.NoError(t, err)
	require.True(t, got.HasData)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, got.Data)
	require.Len(t, got.Replies, 1)
	require.Equal(t, uint8(55), got.Replies[0].ReplyTTL)
	require.Equal(t, replyAddr, got.Replies[0].Addr)
}

func TestDecodePing_RejectsInvalidStopReason(t *testing.T) {
	p := &Ping{
		HasStopReason: true,
		StopReason:    format.PingStopReason(0xFF),
	}
	p.Fixup()

	w := wbuf.NewWriter()
	defer w.Release()
	require.NoError(t, p.Encode(w))

	_, err := DecodePing(wbuf.NewReader(w.Bytes()), p.Length)
	require.ErrorIs(t, err, errs.ErrInvalidEnumValue)
}
