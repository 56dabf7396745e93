package record

import (
	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/sized"
	"github.com/dioptra-io/warts-go/timeval"
)

// Ping is the 0x0007 record body, grounded on original_source/src/ping.rs.
//
// Two fields there (ping_flags2, tcp_seq) are typed Option<Address> in the
// retrieved source despite their names and neighboring fields (ping_flags1:
// u8, tcp_ack: u32) clearly implying a single byte and a u32 sequence
// number; an Address can't hold either shape on the wire. This port treats
// that as a transcription error and gives them their evident types (uint8,
// uint32) instead of reproducing the mistake.
type Ping struct {
	Length uint32

	Flags       flags.Flags
	ParamLength uint16

	HasListID bool
	ListID    uint32

	HasCycleID bool
	CycleID    uint32

	HasSrcAddrID bool
	SrcAddrID    uint32

	HasDstAddrID bool
	DstAddrID    uint32

	HasStartTime bool
	StartTime    timeval.Timeval

	HasStopReason bool
	StopReason    format.PingStopReason

	HasStopData bool
	StopData    uint8

	HasDataLength bool
	DataLength    uint8
	HasData       bool
	Data          []byte

	HasProbeCount bool
	ProbeCount    uint16

	HasProbeSize bool
	ProbeSize    uint16

	HasProbeWaitSec bool
	ProbeWaitSec    uint8

	HasProbeTTL bool
	ProbeTTL    uint8

	HasReplyCount1 bool
	ReplyCount1    uint16

	HasPingsSent bool
	PingsSent    uint16

	HasPingMethod bool
	PingMethod    uint8

	HasSrcPort bool
	SrcPort    uint16

	HasDstPort bool
	DstPort    uint16

	HasUserID bool
	UserID    uint32

	HasSrcAddr bool
	SrcAddr    address.Address

	HasDstAddr bool
	DstAddr    address.Address

	HasPingFlags1 bool
	PingFlags1    uint8

	HasProbeTos bool
	ProbeTos    uint8

	// HasTsPrespec records flag 24's presence; the field itself always
	// contributes zero wire bytes (the original reads it with count=0).
	HasTsPrespec bool

	HasICMPChecksum bool
	ICMPChecksum    uint16

	HasPseudoPMTU bool
	PseudoPMTU    uint16

	HasProbeTimeout bool
	ProbeTimeout    uint8

	HasProbeWaitUsec bool
	ProbeWaitUsec    uint32

	HasTCPAck bool
	TCPAck    uint32

	HasPingFlags2 bool
	PingFlags2    uint8

	HasProbeTCPSeq bool
	ProbeTCPSeq    uint32

	HasRouterAddr bool
	RouterAddr    address.Address

	Replies []*PingProbe
}

// PingProbe is one probe/reply entry in a Ping's fixed tail.
type PingProbe struct {
	Flags       flags.Flags
	ParamLength uint16

	HasAddrID bool
	AddrID    uint32

	HasReplyFlags bool
	ReplyFlags    uint8

	HasReplyTTL bool
	ReplyTTL    uint8

	HasReplySize bool
	ReplySize    uint16

	HasICMP  bool
	ICMPType uint8
	ICMPCode uint8

	HasRTTUsec bool
	RTTUsec    uint32

	HasProbeID bool
	ProbeID    uint16

	HasReplyIPID bool
	ReplyIPID    uint16

	HasProbeIPID bool
	ProbeIPID    uint16

	HasReplyProto bool
	ReplyProto    uint8

	HasTCPFlags bool
	TCPFlags    uint8

	HasAddr bool
	Addr    address.Address

	HasRR bool
	RR    uint8

	HasTS bool
	TS    uint8

	HasReplyIPID32 bool
	ReplyIPID32    uint32

	HasTx bool
	Tx    timeval.Timeval
}

// Fixup recomputes Flags, ParamLength and Length for p and every reply.
func (p *Ping) Fixup() {
	for _, r := range p.Replies {
		r.Fixup()
	}

	b := flags.NewBuilder()
	b.Push(1, p.HasListID, sized.Uint32)
	b.Push(2, p.HasCycleID, sized.Uint32)
	b.Push(3, p.HasSrcAddrID, sized.Uint32)
	b.Push(4, p.HasDstAddrID, sized.Uint32)
	b.Push(5, p.HasStartTime, p.StartTime.WartsSize())
	b.Push(6, p.HasStopReason, sized.Uint8)
	b.Push(7, p.HasStopData, sized.Uint8)
	b.Push(8, p.HasDataLength, sized.Uint8)
	b.Push(9, p.HasData, len(p.Data))
	b.Push(10, p.HasProbeCount, sized.Uint16)
	b.Push(11, p.HasProbeSize, sized.Uint16)
	b.Push(12, p.HasProbeWaitSec, sized.Uint8)
	b.Push(13, p.HasProbeTTL, sized.Uint8)
	b.Push(14, p.HasReplyCount1, sized.Uint16)
	b.Push(15, p.HasPingsSent, sized.Uint16)
	b.Push(16, p.HasPingMethod, sized.Uint8)
	b.Push(17, p.HasSrcPort, sized.Uint16)
	b.Push(18, p.HasDstPort, sized.Uint16)
	b.Push(19, p.HasUserID, sized.Uint32)
	b.Push(20, p.HasSrcAddr, p.SrcAddr.WartsSize())
	b.Push(21, p.HasDstAddr, p.DstAddr.WartsSize())
	b.Push(22, p.HasPingFlags1, sized.Uint8)
	b.Push(23, p.HasProbeTos, sized.Uint8)
	b.Push(24, p.HasTsPrespec, 0)
	b.Push(25, p.HasICMPChecksum, sized.Uint16)
	b.Push(26, p.HasPseudoPMTU, sized.Uint16)
	b.Push(27, p.HasProbeTimeout, sized.Uint8)
	b.Push(28, p.HasProbeWaitUsec, sized.Uint32)
	b.Push(29, p.HasTCPAck, sized.Uint32)
	b.Push(30, p.HasPingFlags2, sized.Uint8)
	b.Push(31, p.HasProbeTCPSeq, sized.Uint32)
	b.Push(32, p.HasRouterAddr, p.RouterAddr.WartsSize())

	p.Flags = b.Flags()
	p.ParamLength = uint16(b.ParamLength())

	bodySize := p.Flags.WartsSize()
	if p.Flags.Any() {
		bodySize += sized.Uint16 + int(p.ParamLength)
	}

	bodySize += sized.Uint16 // reply_count2
	for _, r := range p.Replies {
		bodySize += r.WartsSize()
	}

	p.Length = uint32(bodySize)
}

// WartsSize returns r's total encoded size, including its flag header.
func (r *PingProbe) WartsSize() int {
	size := r.Flags.WartsSize()
	if r.Flags.Any() {
		size += sized.Uint16 + int(r.ParamLength)
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a single reply.
func (r *PingProbe) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, r.HasAddrID, sized.Uint32)
	b.Push(2, r.HasReplyFlags, sized.Uint8)
	b.Push(3, r.HasReplyTTL, sized.Uint8)
	b.Push(4, r.HasReplySize, sized.Uint16)
	b.Push(5, r.HasICMP, sized.Uint8*2)
	b.Push(6, r.HasRTTUsec, sized.Uint32)
	b.Push(7, r.HasProbeID, sized.Uint16)
	b.Push(8, r.HasReplyIPID, sized.Uint16)
	b.Push(9, r.HasProbeIPID, sized.Uint16)
	b.Push(10, r.HasReplyProto, sized.Uint8)
	b.Push(11, r.HasTCPFlags, sized.Uint8)
	b.Push(12, r.HasAddr, r.Addr.WartsSize())
	b.Push(13, r.HasRR, sized.Uint8)
	b.Push(14, r.HasTS, sized.Uint8)
	b.Push(15, r.HasReplyIPID32, sized.Uint32)
	b.Push(16, r.HasTx, r.Tx.WartsSize())

	r.Flags = b.Flags()
	r.ParamLength = uint16(b.ParamLength())
}

// DecodePing reads a Ping body.
func DecodePing(r *wbuf.Reader, length uint32) (*Ping, error) {
	p := &Ping{Length: length}

	var err error
	if p.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if p.Flags.Any() {
		if p.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if p.Flags.Get(1) {
		if p.ListID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasListID = true
	}
	if p.Flags.Get(2) {
		if p.CycleID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasCycleID = true
	}
	if p.Flags.Get(3) {
		if p.SrcAddrID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasSrcAddrID = true
	}
	if p.Flags.Get(4) {
		if p.DstAddrID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasDstAddrID = true
	}
	if p.Flags.Get(5) {
		if p.StartTime, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		p.HasStartTime = true
	}
	if p.Flags.Get(6) {
		var v uint8
		if v, err = r.U8(); err != nil {
			return nil, err
		}
		p.StopReason = format.PingStopReason(v)
		if !p.StopReason.Valid() {
			return nil, errs.ErrInvalidEnumValue
		}
		p.HasStopReason = true
	}
	if p.Flags.Get(7) {
		if p.StopData, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasStopData = true
	}
	if p.Flags.Get(8) {
		if p.DataLength, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasDataLength = true
	}
	if p.Flags.Get(9) {
		if p.Data, err = r.Bytes(int(p.DataLength)); err != nil {
			return nil, err
		}
		p.Data = append([]byte(nil), p.Data...)
		p.HasData = true
	}
	if p.Flags.Get(10) {
		if p.ProbeCount, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasProbeCount = true
	}
	if p.Flags.Get(11) {
		if p.ProbeSize, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasProbeSize = true
	}
	if p.Flags.Get(12) {
		if p.ProbeWaitSec, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeWaitSec = true
	}
	if p.Flags.Get(13) {
		if p.ProbeTTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeTTL = true
	}
	if p.Flags.Get(14) {
		if p.ReplyCount1, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasReplyCount1 = true
	}
	if p.Flags.Get(15) {
		if p.PingsSent, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasPingsSent = true
	}
	if p.Flags.Get(16) {
		if p.PingMethod, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasPingMethod = true
	}
	if p.Flags.Get(17) {
		if p.SrcPort, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasSrcPort = true
	}
	if p.Flags.Get(18) {
		if p.DstPort, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasDstPort = true
	}
	if p.Flags.Get(19) {
		if p.UserID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasUserID = true
	}
	if p.Flags.Get(20) {
		if p.SrcAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		p.HasSrcAddr = true
	}
	if p.Flags.Get(21) {
		if p.DstAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		p.HasDstAddr = true
	}
	if p.Flags.Get(22) {
		if p.PingFlags1, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasPingFlags1 = true
	}
	if p.Flags.Get(23) {
		if p.ProbeTos, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeTos = true
	}
	if p.Flags.Get(24) {
		p.HasTsPrespec = true
	}
	if p.Flags.Get(25) {
		if p.ICMPChecksum, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasICMPChecksum = true
	}
	if p.Flags.Get(26) {
		if p.PseudoPMTU, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasPseudoPMTU = true
	}
	if p.Flags.Get(27) {
		if p.ProbeTimeout, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeTimeout = true
	}
	if p.Flags.Get(28) {
		if p.ProbeWaitUsec, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasProbeWaitUsec = true
	}
	if p.Flags.Get(29) {
		if p.TCPAck, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasTCPAck = true
	}
	if p.Flags.Get(30) {
		if p.PingFlags2, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasPingFlags2 = true
	}
	if p.Flags.Get(31) {
		if p.ProbeTCPSeq, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasProbeTCPSeq = true
	}
	if p.Flags.Get(32) {
		if p.RouterAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		p.HasRouterAddr = true
	}

	var replyCount uint16
	if replyCount, err = r.U16(); err != nil {
		return nil, err
	}

	p.Replies = make([]*PingProbe, replyCount)
	for i := range p.Replies {
		if p.Replies[i], err = DecodePingProbe(r); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// DecodePingProbe reads one PingProbe entry.
func DecodePingProbe(r *wbuf.Reader) (*PingProbe, error) {
	p := &PingProbe{}

	var err error
	if p.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if p.Flags.Any() {
		if p.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if p.Flags.Get(1) {
		if p.AddrID, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasAddrID = true
	}
	if p.Flags.Get(2) {
		if p.ReplyFlags, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyFlags = true
	}
	if p.Flags.Get(3) {
		if p.ReplyTTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyTTL = true
	}
	if p.Flags.Get(4) {
		if p.ReplySize, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasReplySize = true
	}
	if p.Flags.Get(5) {
		if p.ICMPType, err = r.U8(); err != nil {
			return nil, err
		}
		if p.ICMPCode, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasICMP = true
	}
	if p.Flags.Get(6) {
		if p.RTTUsec, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasRTTUsec = true
	}
	if p.Flags.Get(7) {
		if p.ProbeID, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasProbeID = true
	}
	if p.Flags.Get(8) {
		if p.ReplyIPID, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasReplyIPID = true
	}
	if p.Flags.Get(9) {
		if p.ProbeIPID, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasProbeIPID = true
	}
	if p.Flags.Get(10) {
		if p.ReplyProto, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyProto = true
	}
	if p.Flags.Get(11) {
		if p.TCPFlags, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasTCPFlags = true
	}
	if p.Flags.Get(12) {
		if p.Addr, err = address.Decode(r); err != nil {
			return nil, err
		}
		p.HasAddr = true
	}
	if p.Flags.Get(13) {
		if p.RR, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasRR = true
	}
	if p.Flags.Get(14) {
		if p.TS, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasTS = true
	}
	if p.Flags.Get(15) {
		if p.ReplyIPID32, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasReplyIPID32 = true
	}
	if p.Flags.Get(16) {
		if p.Tx, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		p.HasTx = true
	}

	return p, nil
}

// Encode appends p's body to w. Call Fixup first.
func (p *Ping) Encode(w *wbuf.Writer) error {
	w.Flags(p.Flags)

	if p.Flags.Any() {
		w.U16(p.ParamLength)
	}

	if p.HasListID {
		w.U32(p.ListID)
	}
	if p.HasCycleID {
		w.U32(p.CycleID)
	}
	if p.HasSrcAddrID {
		w.U32(p.SrcAddrID)
	}
	if p.HasDstAddrID {
		w.U32(p.DstAddrID)
	}
	if p.HasStartTime {
		p.StartTime.Encode(w)
	}
	if p.HasStopReason {
		w.U8(uint8(p.StopReason))
	}
	if p.HasStopData {
		w.U8(p.StopData)
	}
	if p.HasDataLength {
		w.U8(p.DataLength)
	}
	if p.HasData {
		w.RawBytes(p.Data)
	}
	if p.HasProbeCount {
		w.U16(p.ProbeCount)
	}
	if p.HasProbeSize {
		w.U16(p.ProbeSize)
	}
	if p.HasProbeWaitSec {
		w.U8(p.ProbeWaitSec)
	}
	if p.HasProbeTTL {
		w.U8(p.ProbeTTL)
	}
	if p.HasReplyCount1 {
		w.U16(p.ReplyCount1)
	}
	if p.HasPingsSent {
		w.U16(p.PingsSent)
	}
	if p.HasPingMethod {
		w.U8(p.PingMethod)
	}
	if p.HasSrcPort {
		w.U16(p.SrcPort)
	}
	if p.HasDstPort {
		w.U16(p.DstPort)
	}
	if p.HasUserID {
		w.U32(p.UserID)
	}
	if p.HasSrcAddr {
		p.SrcAddr.Encode(w)
	}
	if p.HasDstAddr {
		p.DstAddr.Encode(w)
	}
	if p.HasPingFlags1 {
		w.U8(p.PingFlags1)
	}
	if p.HasProbeTos {
		w.U8(p.ProbeTos)
	}
	if p.HasICMPChecksum {
		w.U16(p.ICMPChecksum)
	}
	if p.HasPseudoPMTU {
		w.U16(p.PseudoPMTU)
	}
	if p.HasProbeTimeout {
		w.U8(p.ProbeTimeout)
	}
	if p.HasProbeWaitUsec {
		w.U32(p.ProbeWaitUsec)
	}
	if p.HasTCPAck {
		w.U32(p.TCPAck)
	}
	if p.HasPingFlags2 {
		w.U8(p.PingFlags2)
	}
	if p.HasProbeTCPSeq {
		w.U32(p.ProbeTCPSeq)
	}
	if p.HasRouterAddr {
		p.RouterAddr.Encode(w)
	}

	w.U16(uint16(len(p.Replies)))
	for _, r := range p.Replies {
		r.Encode(w)
	}

	return nil
}

// Encode appends r's body to w. Call Fixup first.
func (r *PingProbe) Encode(w *wbuf.Writer) {
	w.Flags(r.Flags)

	if r.Flags.Any() {
		w.U16(r.ParamLength)
	}

	if r.HasAddrID {
		w.U32(r.AddrID)
	}
	if r.HasReplyFlags {
		w.U8(r.ReplyFlags)
	}
	if r.HasReplyTTL {
		w.U8(r.ReplyTTL)
	}
	if r.HasReplySize {
		w.U16(r.ReplySize)
	}
	if r.HasICMP {
		w.U8(r.ICMPType)
		w.U8(r.ICMPCode)
	}
	if r.HasRTTUsec {
		w.U32(r.RTTUsec)
	}
	if r.HasProbeID {
		w.U16(r.ProbeID)
	}
	if r.HasReplyIPID {
		w.U16(r.ReplyIPID)
	}
	if r.HasProbeIPID {
		w.U16(r.ProbeIPID)
	}
	if r.HasReplyProto {
		w.U8(r.ReplyProto)
	}
	if r.HasTCPFlags {
		w.U8(r.TCPFlags)
	}
	if r.HasAddr {
		r.Addr.Encode(w)
	}
	if r.HasRR {
		w.U8(r.RR)
	}
	if r.HasTS {
		w.U8(r.TS)
	}
	if r.HasReplyIPID32 {
		w.U32(r.ReplyIPID32)
	}
	if r.HasTx {
		r.Tx.Encode(w)
	}
}
