package record

import (
	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/icmpext"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/sized"
	"github.com/dioptra-io/warts-go/timeval"
)

// Traceroute is the 0x0006 record body: the flag-to-field catalogue of
// spec.md §6.1 (the original's top-level struct was not recovered from
// source, so this shape follows the spec's explicit field table directly).
type Traceroute struct {
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
	StopReason    format.TraceStopReason

	HasStopData bool
	StopData    uint8

	HasTraceFlags bool
	TraceFlags    flags.Flags

	HasAttempts bool
	Attempts    uint8

	HasHopLimit bool
	HopLimit    uint8

	HasTraceType bool
	TraceType    format.TraceType

	HasProbeSize bool
	ProbeSize    uint16

	HasSrcPort bool
	SrcPort    uint16

	HasDstPort bool
	DstPort    uint16

	HasFirstTTL bool
	FirstTTL    uint8

	HasIPTos bool
	IPTos    uint8

	HasTimeoutSec bool
	TimeoutSec    uint8

	HasAllowedLoops bool
	AllowedLoops    uint8

	HasHopsProbed bool
	HopsProbed    uint16

	HasGapLimit bool
	GapLimit    uint8

	HasGapLimitAction bool
	GapLimitAction    uint8

	HasLoopAction bool
	LoopAction    uint8

	HasProbesSent bool
	ProbesSent    uint16

	HasIntervalCsec bool
	IntervalCsec    uint8

	HasConfidenceLevel bool
	ConfidenceLevel    uint8

	HasSrcAddr bool
	SrcAddr    address.Address

	HasDstAddr bool
	DstAddr    address.Address

	HasUserID bool
	UserID    uint32

	HasIPOffset bool
	IPOffset    uint16

	HasRouterAddr bool
	RouterAddr    address.Address

	Hops []*TraceProbe
	EOF  uint16
}

// TraceProbe is one hop record in a Traceroute's fixed tail.
type TraceProbe struct {
	Flags       flags.Flags
	ParamLength uint16

	HasAddrID bool
	AddrID    uint32

	HasProbeTTL bool
	ProbeTTL    uint8

	HasReplyTTL bool
	ReplyTTL    uint8

	HasHopFlags bool
	HopFlags    uint8

	HasProbeID bool
	ProbeID    uint8

	HasRTTUsec bool
	RTTUsec    uint32

	HasICMP  bool
	ICMPType uint8
	ICMPCode uint8

	HasProbeSize bool
	ProbeSize    uint16

	HasReplySize bool
	ReplySize    uint16

	HasReplyIPID bool
	ReplyIPID    uint16

	HasReplyIPTos bool
	ReplyIPTos    uint8

	HasNextHopMTU bool
	NextHopMTU    uint16

	HasQuotedLength bool
	QuotedLength    uint16

	HasQuotedTTL bool
	QuotedTTL    uint8

	HasReplyTCPFlags bool
	ReplyTCPFlags    uint8

	HasQuotedTos bool
	QuotedTos    uint8

	HasICMPExtensions bool
	ICMPExtension     icmpext.ICMPExtension

	HasAddr bool
	Addr    address.Address

	HasTx bool
	Tx    timeval.Timeval
}

// RTTMillis returns the probe's round-trip time in milliseconds, mirroring
// the original's rtt_ms().
func (p *TraceProbe) RTTMillis() (float64, bool) {
	if !p.HasRTTUsec {
		return 0, false
	}

	return float64(p.RTTUsec) / 1000.0, true
}

// Fixup recomputes Flags, ParamLength and Length for t and every hop.
// It fixes up every hop first, so a single call on t covers the whole
// tree, and calling it again is harmless.
func (t *Traceroute) Fixup() {
	for _, h := range t.Hops {
		h.Fixup()
	}

	b := flags.NewBuilder()
	b.Push(1, t.HasListID, sized.Uint32)
	b.Push(2, t.HasCycleID, sized.Uint32)
	b.Push(3, t.HasSrcAddrID, sized.Uint32)
	b.Push(4, t.HasDstAddrID, sized.Uint32)
	b.Push(5, t.HasStartTime, t.StartTime.WartsSize())
	b.Push(6, t.HasStopReason, sized.Uint8)
	b.Push(7, t.HasStopData, sized.Uint8)
	b.Push(8, t.HasTraceFlags, t.TraceFlags.WartsSize())
	b.Push(9, t.HasAttempts, sized.Uint8)
	b.Push(10, t.HasHopLimit, sized.Uint8)
	b.Push(11, t.HasTraceType, sized.Uint8)
	b.Push(12, t.HasProbeSize, sized.Uint16)
	b.Push(13, t.HasSrcPort, sized.Uint16)
	b.Push(14, t.HasDstPort, sized.Uint16)
	b.Push(15, t.HasFirstTTL, sized.Uint8)
	b.Push(16, t.HasIPTos, sized.Uint8)
	b.Push(17, t.HasTimeoutSec, sized.Uint8)
	b.Push(18, t.HasAllowedLoops, sized.Uint8)
	b.Push(19, t.HasHopsProbed, sized.Uint16)
	b.Push(20, t.HasGapLimit, sized.Uint8)
	b.Push(21, t.HasGapLimitAction, sized.Uint8)
	b.Push(22, t.HasLoopAction, sized.Uint8)
	b.Push(23, t.HasProbesSent, sized.Uint16)
	b.Push(24, t.HasIntervalCsec, sized.Uint8)
	b.Push(25, t.HasConfidenceLevel, sized.Uint8)
	b.Push(26, t.HasSrcAddr, t.SrcAddr.WartsSize())
	b.Push(27, t.HasDstAddr, t.DstAddr.WartsSize())
	b.Push(28, t.HasUserID, sized.Uint32)
	b.Push(29, t.HasIPOffset, sized.Uint16)
	b.Push(30, t.HasRouterAddr, t.RouterAddr.WartsSize())

	t.Flags = b.Flags()
	t.ParamLength = uint16(b.ParamLength())

	bodySize := t.Flags.WartsSize()
	if t.Flags.Any() {
		bodySize += sized.Uint16 + int(t.ParamLength)
	}

	bodySize += sized.Uint16 // hop_count
	for _, h := range t.Hops {
		bodySize += h.WartsSize()
	}
	bodySize += sized.Uint16 // eof

	t.EOF = 0
	t.Length = uint32(bodySize)
}

// WartsSize returns p's total encoded size, including its flag header.
func (p *TraceProbe) WartsSize() int {
	size := p.Flags.WartsSize()
	if p.Flags.Any() {
		size += sized.Uint16 + int(p.ParamLength)
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a single hop.
func (p *TraceProbe) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, p.HasAddrID, sized.Uint32)
	b.Push(2, p.HasProbeTTL, sized.Uint8)
	b.Push(3, p.HasReplyTTL, sized.Uint8)
	b.Push(4, p.HasHopFlags, sized.Uint8)
	b.Push(5, p.HasProbeID, sized.Uint8)
	b.Push(6, p.HasRTTUsec, sized.Uint32)
	b.Push(7, p.HasICMP, sized.Uint8*2)
	b.Push(8, p.HasProbeSize, sized.Uint16)
	b.Push(9, p.HasReplySize, sized.Uint16)
	b.Push(10, p.HasReplyIPID, sized.Uint16)
	b.Push(11, p.HasReplyIPTos, sized.Uint8)
	b.Push(12, p.HasNextHopMTU, sized.Uint16)
	b.Push(13, p.HasQuotedLength, sized.Uint16)
	b.Push(14, p.HasQuotedTTL, sized.Uint8)
	b.Push(15, p.HasReplyTCPFlags, sized.Uint8)
	b.Push(16, p.HasQuotedTos, sized.Uint8)
	b.Push(17, p.HasICMPExtensions, sized.Uint16+p.icmpExtensionsWidth())
	b.Push(18, p.HasAddr, p.Addr.WartsSize())
	b.Push(19, p.HasTx, p.Tx.WartsSize())

	p.Flags = b.Flags()
	p.ParamLength = uint16(b.ParamLength())
}

func (p *TraceProbe) icmpExtensionsWidth() int {
	if !p.HasICMPExtensions || p.ICMPExtension.DataLength() == 0 {
		return 0
	}

	return p.ICMPExtension.WartsSize()
}

// DecodeTraceroute reads a Traceroute body.
func DecodeTraceroute(r *wbuf.Reader, length uint32) (*Traceroute, error) {
	t := &Traceroute{Length: length}

	var err error
	if t.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if t.Flags.Any() {
		if t.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if t.Flags.Get(1) {
		if t.ListID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasListID = true
	}
	if t.Flags.Get(2) {
		if t.CycleID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasCycleID = true
	}
	if t.Flags.Get(3) {
		if t.SrcAddrID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasSrcAddrID = true
	}
	if t.Flags.Get(4) {
		if t.DstAddrID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasDstAddrID = true
	}
	if t.Flags.Get(5) {
		if t.StartTime, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		t.HasStartTime = true
	}
	if t.Flags.Get(6) {
		var v uint8
		if v, err = r.U8(); err != nil {
			return nil, err
		}
		t.StopReason = format.TraceStopReason(v)
		if !t.StopReason.Valid() {
			return nil, errs.ErrInvalidEnumValue
		}
		t.HasStopReason = true
	}
	if t.Flags.Get(7) {
		if t.StopData, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasStopData = true
	}
	if t.Flags.Get(8) {
		if t.TraceFlags, err = r.Flags(); err != nil {
			return nil, err
		}
		t.HasTraceFlags = true
	}
	if t.Flags.Get(9) {
		if t.Attempts, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasAttempts = true
	}
	if t.Flags.Get(10) {
		if t.HopLimit, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasHopLimit = true
	}
	if t.Flags.Get(11) {
		var v uint8
		if v, err = r.U8(); err != nil {
			return nil, err
		}
		t.TraceType = format.TraceType(v)
		if !t.TraceType.Valid() {
			return nil, errs.ErrInvalidEnumValue
		}
		t.HasTraceType = true
	}
	if t.Flags.Get(12) {
		if t.ProbeSize, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasProbeSize = true
	}
	if t.Flags.Get(13) {
		if t.SrcPort, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasSrcPort = true
	}
	if t.Flags.Get(14) {
		if t.DstPort, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasDstPort = true
	}
	if t.Flags.Get(15) {
		if t.FirstTTL, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasFirstTTL = true
	}
	if t.Flags.Get(16) {
		if t.IPTos, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasIPTos = true
	}
	if t.Flags.Get(17) {
		if t.TimeoutSec, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasTimeoutSec = true
	}
	if t.Flags.Get(18) {
		if t.AllowedLoops, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasAllowedLoops = true
	}
	if t.Flags.Get(19) {
		if t.HopsProbed, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasHopsProbed = true
	}
	if t.Flags.Get(20) {
		if t.GapLimit, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasGapLimit = true
	}
	if t.Flags.Get(21) {
		if t.GapLimitAction, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasGapLimitAction = true
	}
	if t.Flags.Get(22) {
		if t.LoopAction, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasLoopAction = true
	}
	if t.Flags.Get(23) {
		if t.ProbesSent, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasProbesSent = true
	}
	if t.Flags.Get(24) {
		if t.IntervalCsec, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasIntervalCsec = true
	}
	if t.Flags.Get(25) {
		if t.ConfidenceLevel, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasConfidenceLevel = true
	}
	if t.Flags.Get(26) {
		if t.SrcAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasSrcAddr = true
	}
	if t.Flags.Get(27) {
		if t.DstAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasDstAddr = true
	}
	if t.Flags.Get(28) {
		if t.UserID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasUserID = true
	}
	if t.Flags.Get(29) {
		if t.IPOffset, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasIPOffset = true
	}
	if t.Flags.Get(30) {
		if t.RouterAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasRouterAddr = true
	}

	var hopCount uint16
	if hopCount, err = r.U16(); err != nil {
		return nil, err
	}

	t.Hops = make([]*TraceProbe, hopCount)
	for i := range t.Hops {
		if t.Hops[i], err = DecodeTraceProbe(r); err != nil {
			return nil, err
		}
	}

	if t.EOF, err = r.U16(); err != nil {
		return nil, err
	}
	if t.EOF != 0 {
		return nil, errs.ErrBadTerminator
	}

	return t, nil
}

// DecodeTraceProbe reads one TraceProbe hop.
func DecodeTraceProbe(r *wbuf.Reader) (*TraceProbe, error) {
	p := &TraceProbe{}

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
		if p.ProbeTTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeTTL = true
	}
	if p.Flags.Get(3) {
		if p.ReplyTTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyTTL = true
	}
	if p.Flags.Get(4) {
		if p.HopFlags, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasHopFlags = true
	}
	if p.Flags.Get(5) {
		if p.ProbeID, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasProbeID = true
	}
	if p.Flags.Get(6) {
		if p.RTTUsec, err = r.U32(); err != nil {
			return nil, err
		}
		p.HasRTTUsec = true
	}
	if p.Flags.Get(7) {
		if p.ICMPType, err = r.U8(); err != nil {
			return nil, err
		}
		if p.ICMPCode, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasICMP = true
	}
	if p.Flags.Get(8) {
		if p.ProbeSize, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasProbeSize = true
	}
	if p.Flags.Get(9) {
		if p.ReplySize, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasReplySize = true
	}
	if p.Flags.Get(10) {
		if p.ReplyIPID, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasReplyIPID = true
	}
	if p.Flags.Get(11) {
		if p.ReplyIPTos, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyIPTos = true
	}
	if p.Flags.Get(12) {
		if p.NextHopMTU, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasNextHopMTU = true
	}
	if p.Flags.Get(13) {
		if p.QuotedLength, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasQuotedLength = true
	}
	if p.Flags.Get(14) {
		if p.QuotedTTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasQuotedTTL = true
	}
	if p.Flags.Get(15) {
		if p.ReplyTCPFlags, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasReplyTCPFlags = true
	}
	if p.Flags.Get(16) {
		if p.QuotedTos, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasQuotedTos = true
	}
	if p.Flags.Get(17) {
		var extLen uint16
		if extLen, err = r.U16(); err != nil {
			return nil, err
		}
		if extLen > 0 {
			if p.ICMPExtension, err = icmpext.Decode(r); err != nil {
				return nil, err
			}
		}
		p.HasICMPExtensions = true
	}
	if p.Flags.Get(18) {
		if p.Addr, err = address.Decode(r); err != nil {
			return nil, err
		}
		p.HasAddr = true
	}
	if p.Flags.Get(19) {
		if p.Tx, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		p.HasTx = true
	}

	return p, nil
}

// Encode appends t's body to w. Call Fixup first.
func (t *Traceroute) Encode(w *wbuf.Writer) error {
	w.Flags(t.Flags)

	if t.Flags.Any() {
		w.U16(t.ParamLength)
	}

	if t.HasListID {
		w.U32(t.ListID)
	}
	if t.HasCycleID {
		w.U32(t.CycleID)
	}
	if t.HasSrcAddrID {
		w.U32(t.SrcAddrID)
	}
	if t.HasDstAddrID {
		w.U32(t.DstAddrID)
	}
	if t.HasStartTime {
		t.StartTime.Encode(w)
	}
	if t.HasStopReason {
		w.U8(uint8(t.StopReason))
	}
	if t.HasStopData {
		w.U8(t.StopData)
	}
	if t.HasTraceFlags {
		w.Flags(t.TraceFlags)
	}
	if t.HasAttempts {
		w.U8(t.Attempts)
	}
	if t.HasHopLimit {
		w.U8(t.HopLimit)
	}
	if t.HasTraceType {
		w.U8(uint8(t.TraceType))
	}
	if t.HasProbeSize {
		w.U16(t.ProbeSize)
	}
	if t.HasSrcPort {
		w.U16(t.SrcPort)
	}
	if t.HasDstPort {
		w.U16(t.DstPort)
	}
	if t.HasFirstTTL {
		w.U8(t.FirstTTL)
	}
	if t.HasIPTos {
		w.U8(t.IPTos)
	}
	if t.HasTimeoutSec {
		w.U8(t.TimeoutSec)
	}
	if t.HasAllowedLoops {
		w.U8(t.AllowedLoops)
	}
	if t.HasHopsProbed {
		w.U16(t.HopsProbed)
	}
	if t.HasGapLimit {
		w.U8(t.GapLimit)
	}
	if t.HasGapLimitAction {
		w.U8(t.GapLimitAction)
	}
	if t.HasLoopAction {
		w.U8(t.LoopAction)
	}
	if t.HasProbesSent {
		w.U16(t.ProbesSent)
	}
	if t.HasIntervalCsec {
		w.U8(t.IntervalCsec)
	}
	if t.HasConfidenceLevel {
		w.U8(t.ConfidenceLevel)
	}
	if t.HasSrcAddr {
		t.SrcAddr.Encode(w)
	}
	if t.HasDstAddr {
		t.DstAddr.Encode(w)
	}
	if t.HasUserID {
		w.U32(t.UserID)
	}
	if t.HasIPOffset {
		w.U16(t.IPOffset)
	}
	if t.HasRouterAddr {
		t.RouterAddr.Encode(w)
	}

	w.U16(uint16(len(t.Hops)))
	for _, h := range t.Hops {
		h.Encode(w)
	}

	w.U16(t.EOF)

	return nil
}

// Encode appends p's body to w. Call Fixup first.
func (p *TraceProbe) Encode(w *wbuf.Writer) {
	w.Flags(p.Flags)

	if p.Flags.Any() {
		w.U16(p.ParamLength)
	}

	if p.HasAddrID {
		w.U32(p.AddrID)
	}
	if p.HasProbeTTL {
		w.U8(p.ProbeTTL)
	}
	if p.HasReplyTTL {
		w.U8(p.ReplyTTL)
	}
	if p.HasHopFlags {
		w.U8(p.HopFlags)
	}
	if p.HasProbeID {
		w.U8(p.ProbeID)
	}
	if p.HasRTTUsec {
		w.U32(p.RTTUsec)
	}
	if p.HasICMP {
		w.U8(p.ICMPType)
		w.U8(p.ICMPCode)
	}
	if p.HasProbeSize {
		w.U16(p.ProbeSize)
	}
	if p.HasReplySize {
		w.U16(p.ReplySize)
	}
	if p.HasReplyIPID {
		w.U16(p.ReplyIPID)
	}
	if p.HasReplyIPTos {
		w.U8(p.ReplyIPTos)
	}
	if p.HasNextHopMTU {
		w.U16(p.NextHopMTU)
	}
	if p.HasQuotedLength {
		w.U16(p.QuotedLength)
	}
	if p.HasQuotedTTL {
		w.U8(p.QuotedTTL)
	}
	if p.HasReplyTCPFlags {
		w.U8(p.ReplyTCPFlags)
	}
	if p.HasQuotedTos {
		w.U8(p.QuotedTos)
	}
	if p.HasICMPExtensions {
		w.U16(p.ICMPExtension.DataLength())
		if p.ICMPExtension.DataLength() > 0 {
			p.ICMPExtension.Encode(w)
		}
	}
	if p.HasAddr {
		p.Addr.Encode(w)
	}
	if p.HasTx {
		p.Tx.Encode(w)
	}
}
