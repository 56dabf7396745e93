package record

import (
	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/icmpext"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/sized"
	"github.com/dioptra-io/warts-go/timeval"
)

// MultipathTraceroute is the 0x0008 record body: an MDA (multipath
// detection algorithm) traceroute, grounded on
// original_source/src/tracelb.rs.
type MultipathTraceroute struct {
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

	HasSrcPort bool
	SrcPort    uint16

	HasDstPort bool
	DstPort    uint16

	HasProbeSize bool
	ProbeSize    uint16

	HasType bool
	Type    uint8

	HasFirstHop bool
	FirstHop    uint8

	HasWaitTimeout bool
	WaitTimeout    uint8

	HasWaitProbe bool
	WaitProbe    uint8

	HasAttempts bool
	Attempts    uint8

	HasConfidence bool
	Confidence    uint8

	HasIPTos bool
	IPTos    uint8

	HasNodeCount bool
	NodeCount    uint16

	HasLinkCount bool
	LinkCount    uint16

	HasProbeCount bool
	ProbeCount    uint32

	HasProbeCountMax bool
	ProbeCountMax    uint32

	HasGapLimit bool
	GapLimit    uint8

	HasSrcAddr bool
	SrcAddr    address.Address

	HasDstAddr bool
	DstAddr    address.Address

	HasUserID bool
	UserID    uint32

	HasFlags2 bool
	Flags2    uint8

	HasRouterAddr bool
	RouterAddr    address.Address

	Nodes []*MultipathTraceNode
	Links []*MultipathTraceLink
}

// MultipathTraceNode is a node discovered by a multipath traceroute.
type MultipathTraceNode struct {
	Flags       flags.Flags
	ParamLength uint16

	HasAddrID bool
	AddrID    uint32

	HasNodeFlags bool
	NodeFlags    uint8

	HasLinkCount bool
	LinkCount    uint16

	HasQuotedTTL bool
	QuotedTTL    uint8

	HasAddr bool
	Addr    address.Address

	HasName bool
	Name    string
}

// MultipathTraceLink is an edge between two nodes, carrying the probe sets
// that discovered it.
type MultipathTraceLink struct {
	Flags       flags.Flags
	ParamLength uint16

	HasFrom bool
	From    uint16

	HasTo bool
	To    uint16

	HasProbeSetCount bool
	ProbeSetCount    uint8

	ProbeSets []*MultipathTraceProbeSet
}

// MultipathTraceProbeSet groups the probes sent along one link.
type MultipathTraceProbeSet struct {
	Flags       flags.Flags
	ParamLength uint16

	HasProbeCount bool
	ProbeCount    uint16

	Probes []*MultipathTraceProbe
}

// MultipathTraceProbe is a single probe sent as part of a probe set.
type MultipathTraceProbe struct {
	Flags       flags.Flags
	ParamLength uint16

	HasTx bool
	Tx    timeval.Timeval

	HasFlowID bool
	FlowID    uint16

	HasTTL bool
	TTL    uint8

	HasAttempts bool
	Attempts    uint8

	HasRepliesCount bool
	RepliesCount    uint16

	Replies []*MultipathTraceReply
}

// MultipathTraceReply is a reply received for a MultipathTraceProbe.
type MultipathTraceReply struct {
	Flags       flags.Flags
	ParamLength uint16

	HasRx bool
	Rx    timeval.Timeval

	HasIPID bool
	IPID    uint16

	HasTTL bool
	TTL    uint8

	HasReplyFlags bool
	ReplyFlags    uint8

	HasICMP  bool
	ICMPType uint8
	ICMPCode uint8

	HasTCPFlags bool
	TCPFlags    uint8

	HasICMPExtensions bool
	ICMPExtension     icmpext.ICMPExtension

	HasQuotedTTL bool
	QuotedTTL    uint8

	HasQuotedTos bool
	QuotedTos    uint8

	HasAddrID bool
	AddrID    uint32

	HasAddr bool
	Addr    address.Address
}

// Fixup recomputes Flags, ParamLength and Length for t and its entire
// node/link/probe-set/probe/reply tree, bottom-up.
func (t *MultipathTraceroute) Fixup() {
	for _, n := range t.Nodes {
		n.Fixup()
	}
	for _, l := range t.Links {
		l.Fixup()
	}

	t.HasNodeCount = true
	t.NodeCount = uint16(len(t.Nodes))
	t.HasLinkCount = true
	t.LinkCount = uint16(len(t.Links))

	b := flags.NewBuilder()
	b.Push(1, t.HasListID, sized.Uint32)
	b.Push(2, t.HasCycleID, sized.Uint32)
	b.Push(3, t.HasSrcAddrID, sized.Uint32)
	b.Push(4, t.HasDstAddrID, sized.Uint32)
	b.Push(5, t.HasStartTime, t.StartTime.WartsSize())
	b.Push(6, t.HasSrcPort, sized.Uint16)
	b.Push(7, t.HasDstPort, sized.Uint16)
	b.Push(8, t.HasProbeSize, sized.Uint16)
	b.Push(9, t.HasType, sized.Uint8)
	b.Push(10, t.HasFirstHop, sized.Uint8)
	b.Push(11, t.HasWaitTimeout, sized.Uint8)
	b.Push(12, t.HasWaitProbe, sized.Uint8)
	b.Push(13, t.HasAttempts, sized.Uint8)
	b.Push(14, t.HasConfidence, sized.Uint8)
	b.Push(15, t.HasIPTos, sized.Uint8)
	b.Push(16, t.HasNodeCount, sized.Uint16)
	b.Push(17, t.HasLinkCount, sized.Uint16)
	b.Push(18, t.HasProbeCount, sized.Uint32)
	b.Push(19, t.HasProbeCountMax, sized.Uint32)
	b.Push(20, t.HasGapLimit, sized.Uint8)
	b.Push(21, t.HasSrcAddr, t.SrcAddr.WartsSize())
	b.Push(22, t.HasDstAddr, t.DstAddr.WartsSize())
	b.Push(23, t.HasUserID, sized.Uint32)
	b.Push(24, t.HasFlags2, sized.Uint8)
	b.Push(25, t.HasRouterAddr, t.RouterAddr.WartsSize())

	t.Flags = b.Flags()
	t.ParamLength = uint16(b.ParamLength())

	bodySize := t.Flags.WartsSize()
	if t.Flags.Any() {
		bodySize += sized.Uint16 + int(t.ParamLength)
	}

	for _, n := range t.Nodes {
		bodySize += n.WartsSize()
	}
	for _, l := range t.Links {
		bodySize += l.WartsSize()
	}

	t.Length = uint32(bodySize)
}

// WartsSize returns n's total encoded size, including its flag header.
func (n *MultipathTraceNode) WartsSize() int {
	size := n.Flags.WartsSize()
	if n.Flags.Any() {
		size += sized.Uint16 + int(n.ParamLength)
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a single node.
func (n *MultipathTraceNode) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, n.HasAddrID, sized.Uint32)
	b.Push(2, n.HasNodeFlags, sized.Uint8)
	b.Push(3, n.HasLinkCount, sized.Uint16)
	b.Push(4, n.HasQuotedTTL, sized.Uint8)
	b.Push(5, n.HasAddr, n.Addr.WartsSize())
	b.Push(6, n.HasName, sized.CString(n.Name))

	n.Flags = b.Flags()
	n.ParamLength = uint16(b.ParamLength())
}

// WartsSize returns l's total encoded size, including its flag header and
// its nested probe sets.
func (l *MultipathTraceLink) WartsSize() int {
	size := l.Flags.WartsSize()
	if l.Flags.Any() {
		size += sized.Uint16 + int(l.ParamLength)
	}

	for _, s := range l.ProbeSets {
		size += s.WartsSize()
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a link and fixes up its probe
// sets.
func (l *MultipathTraceLink) Fixup() {
	for _, s := range l.ProbeSets {
		s.Fixup()
	}

	l.HasProbeSetCount = true
	l.ProbeSetCount = uint8(len(l.ProbeSets))

	b := flags.NewBuilder()
	b.Push(1, l.HasFrom, sized.Uint16)
	b.Push(2, l.HasTo, sized.Uint16)
	b.Push(3, l.HasProbeSetCount, sized.Uint8)

	l.Flags = b.Flags()
	l.ParamLength = uint16(b.ParamLength())
}

// WartsSize returns s's total encoded size, including its nested probes.
func (s *MultipathTraceProbeSet) WartsSize() int {
	size := s.Flags.WartsSize()
	if s.Flags.Any() {
		size += sized.Uint16 + int(s.ParamLength)
	}

	for _, p := range s.Probes {
		size += p.WartsSize()
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a probe set and fixes up its
// probes.
func (s *MultipathTraceProbeSet) Fixup() {
	for _, p := range s.Probes {
		p.Fixup()
	}

	s.HasProbeCount = true
	s.ProbeCount = uint16(len(s.Probes))

	b := flags.NewBuilder()
	b.Push(1, s.HasProbeCount, sized.Uint16)

	s.Flags = b.Flags()
	s.ParamLength = uint16(b.ParamLength())
}

// WartsSize returns p's total encoded size, including its nested replies.
func (p *MultipathTraceProbe) WartsSize() int {
	size := p.Flags.WartsSize()
	if p.Flags.Any() {
		size += sized.Uint16 + int(p.ParamLength)
	}

	for _, r := range p.Replies {
		size += r.WartsSize()
	}

	return size
}

// Fixup recomputes Flags and ParamLength for a probe and fixes up its
// replies.
func (p *MultipathTraceProbe) Fixup() {
	for _, r := range p.Replies {
		r.Fixup()
	}

	p.HasRepliesCount = true
	p.RepliesCount = uint16(len(p.Replies))

	b := flags.NewBuilder()
	b.Push(1, p.HasTx, p.Tx.WartsSize())
	b.Push(2, p.HasFlowID, sized.Uint16)
	b.Push(3, p.HasTTL, sized.Uint8)
	b.Push(4, p.HasAttempts, sized.Uint8)
	b.Push(5, p.HasRepliesCount, sized.Uint16)

	p.Flags = b.Flags()
	p.ParamLength = uint16(b.ParamLength())
}

// WartsSize returns r's total encoded size, including its flag header.
func (r *MultipathTraceReply) WartsSize() int {
	size := r.Flags.WartsSize()
	if r.Flags.Any() {
		size += sized.Uint16 + int(r.ParamLength)
	}

	return size
}

func (r *MultipathTraceReply) icmpExtensionsWidth() int {
	if !r.HasICMPExtensions || r.ICMPExtension.DataLength() == 0 {
		return 0
	}

	return r.ICMPExtension.WartsSize()
}

// Fixup recomputes Flags and ParamLength for a single reply.
func (r *MultipathTraceReply) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, r.HasRx, r.Rx.WartsSize())
	b.Push(2, r.HasIPID, sized.Uint16)
	b.Push(3, r.HasTTL, sized.Uint8)
	b.Push(4, r.HasReplyFlags, sized.Uint8)
	b.Push(5, r.HasICMP, sized.Uint8*2)
	b.Push(6, r.HasTCPFlags, sized.Uint8)
	b.Push(7, r.HasICMPExtensions, sized.Uint16+r.icmpExtensionsWidth())
	b.Push(8, r.HasQuotedTTL, sized.Uint8)
	b.Push(9, r.HasQuotedTos, sized.Uint8)
	b.Push(10, r.HasAddrID, sized.Uint32)
	b.Push(11, r.HasAddr, r.Addr.WartsSize())

	r.Flags = b.Flags()
	r.ParamLength = uint16(b.ParamLength())
}

// DecodeMultipathTraceroute reads a MultipathTraceroute body.
func DecodeMultipathTraceroute(r *wbuf.Reader, length uint32) (*MultipathTraceroute, error) {
	t := &MultipathTraceroute{Length: length}

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
		if t.SrcPort, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasSrcPort = true
	}
	if t.Flags.Get(7) {
		if t.DstPort, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasDstPort = true
	}
	if t.Flags.Get(8) {
		if t.ProbeSize, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasProbeSize = true
	}
	if t.Flags.Get(9) {
		if t.Type, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasType = true
	}
	if t.Flags.Get(10) {
		if t.FirstHop, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasFirstHop = true
	}
	if t.Flags.Get(11) {
		if t.WaitTimeout, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasWaitTimeout = true
	}
	if t.Flags.Get(12) {
		if t.WaitProbe, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasWaitProbe = true
	}
	if t.Flags.Get(13) {
		if t.Attempts, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasAttempts = true
	}
	if t.Flags.Get(14) {
		if t.Confidence, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasConfidence = true
	}
	if t.Flags.Get(15) {
		if t.IPTos, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasIPTos = true
	}
	if t.Flags.Get(16) {
		if t.NodeCount, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasNodeCount = true
	}
	if t.Flags.Get(17) {
		if t.LinkCount, err = r.U16(); err != nil {
			return nil, err
		}
		t.HasLinkCount = true
	}
	if t.Flags.Get(18) {
		if t.ProbeCount, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasProbeCount = true
	}
	if t.Flags.Get(19) {
		if t.ProbeCountMax, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasProbeCountMax = true
	}
	if t.Flags.Get(20) {
		if t.GapLimit, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasGapLimit = true
	}
	if t.Flags.Get(21) {
		if t.SrcAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasSrcAddr = true
	}
	if t.Flags.Get(22) {
		if t.DstAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasDstAddr = true
	}
	if t.Flags.Get(23) {
		if t.UserID, err = r.U32(); err != nil {
			return nil, err
		}
		t.HasUserID = true
	}
	if t.Flags.Get(24) {
		if t.Flags2, err = r.U8(); err != nil {
			return nil, err
		}
		t.HasFlags2 = true
	}
	if t.Flags.Get(25) {
		if t.RouterAddr, err = address.Decode(r); err != nil {
			return nil, err
		}
		t.HasRouterAddr = true
	}

	t.Nodes = make([]*MultipathTraceNode, t.NodeCount)
	for i := range t.Nodes {
		if t.Nodes[i], err = DecodeMultipathTraceNode(r); err != nil {
			return nil, err
		}
	}

	t.Links = make([]*MultipathTraceLink, t.LinkCount)
	for i := range t.Links {
		if t.Links[i], err = DecodeMultipathTraceLink(r); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// DecodeMultipathTraceNode reads one node.
func DecodeMultipathTraceNode(r *wbuf.Reader) (*MultipathTraceNode, error) {
	n := &MultipathTraceNode{}

	var err error
	if n.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if n.Flags.Any() {
		if n.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if n.Flags.Get(1) {
		if n.AddrID, err = r.U32(); err != nil {
			return nil, err
		}
		n.HasAddrID = true
	}
	if n.Flags.Get(2) {
		if n.NodeFlags, err = r.U8(); err != nil {
			return nil, err
		}
		n.HasNodeFlags = true
	}
	if n.Flags.Get(3) {
		if n.LinkCount, err = r.U16(); err != nil {
			return nil, err
		}
		n.HasLinkCount = true
	}
	if n.Flags.Get(4) {
		if n.QuotedTTL, err = r.U8(); err != nil {
			return nil, err
		}
		n.HasQuotedTTL = true
	}
	if n.Flags.Get(5) {
		if n.Addr, err = address.Decode(r); err != nil {
			return nil, err
		}
		n.HasAddr = true
	}
	if n.Flags.Get(6) {
		if n.Name, err = r.CString(); err != nil {
			return nil, err
		}
		n.HasName = true
	}

	return n, nil
}

// DecodeMultipathTraceLink reads one link and its nested probe sets.
func DecodeMultipathTraceLink(r *wbuf.Reader) (*MultipathTraceLink, error) {
	l := &MultipathTraceLink{}

	var err error
	if l.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if l.Flags.Any() {
		if l.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if l.Flags.Get(1) {
		if l.From, err = r.U16(); err != nil {
			return nil, err
		}
		l.HasFrom = true
	}
	if l.Flags.Get(2) {
		if l.To, err = r.U16(); err != nil {
			return nil, err
		}
		l.HasTo = true
	}
	if l.Flags.Get(3) {
		if l.ProbeSetCount, err = r.U8(); err != nil {
			return nil, err
		}
		l.HasProbeSetCount = true
	}

	l.ProbeSets = make([]*MultipathTraceProbeSet, l.ProbeSetCount)
	for i := range l.ProbeSets {
		if l.ProbeSets[i], err = DecodeMultipathTraceProbeSet(r); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// DecodeMultipathTraceProbeSet reads one probe set and its nested probes.
func DecodeMultipathTraceProbeSet(r *wbuf.Reader) (*MultipathTraceProbeSet, error) {
	s := &MultipathTraceProbeSet{}

	var err error
	if s.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if s.Flags.Any() {
		if s.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if s.Flags.Get(1) {
		if s.ProbeCount, err = r.U16(); err != nil {
			return nil, err
		}
		s.HasProbeCount = true
	}

	s.Probes = make([]*MultipathTraceProbe, s.ProbeCount)
	for i := range s.Probes {
		if s.Probes[i], err = DecodeMultipathTraceProbe(r); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// DecodeMultipathTraceProbe reads one probe and its nested replies.
func DecodeMultipathTraceProbe(r *wbuf.Reader) (*MultipathTraceProbe, error) {
	p := &MultipathTraceProbe{}

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
		if p.Tx, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		p.HasTx = true
	}
	if p.Flags.Get(2) {
		if p.FlowID, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasFlowID = true
	}
	if p.Flags.Get(3) {
		if p.TTL, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasTTL = true
	}
	if p.Flags.Get(4) {
		if p.Attempts, err = r.U8(); err != nil {
			return nil, err
		}
		p.HasAttempts = true
	}
	if p.Flags.Get(5) {
		if p.RepliesCount, err = r.U16(); err != nil {
			return nil, err
		}
		p.HasRepliesCount = true
	}

	p.Replies = make([]*MultipathTraceReply, p.RepliesCount)
	for i := range p.Replies {
		if p.Replies[i], err = DecodeMultipathTraceReply(r); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// DecodeMultipathTraceReply reads one reply.
func DecodeMultipathTraceReply(r *wbuf.Reader) (*MultipathTraceReply, error) {
	rep := &MultipathTraceReply{}

	var err error
	if rep.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if rep.Flags.Any() {
		if rep.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if rep.Flags.Get(1) {
		if rep.Rx, err = timeval.Decode(r); err != nil {
			return nil, err
		}
		rep.HasRx = true
	}
	if rep.Flags.Get(2) {
		if rep.IPID, err = r.U16(); err != nil {
			return nil, err
		}
		rep.HasIPID = true
	}
	if rep.Flags.Get(3) {
		if rep.TTL, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasTTL = true
	}
	if rep.Flags.Get(4) {
		if rep.ReplyFlags, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasReplyFlags = true
	}
	if rep.Flags.Get(5) {
		if rep.ICMPType, err = r.U8(); err != nil {
			return nil, err
		}
		if rep.ICMPCode, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasICMP = true
	}
	if rep.Flags.Get(6) {
		if rep.TCPFlags, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasTCPFlags = true
	}
	if rep.Flags.Get(7) {
		var extLen uint16
		if extLen, err = r.U16(); err != nil {
			return nil, err
		}
		if extLen > 0 {
			if rep.ICMPExtension, err = icmpext.Decode(r); err != nil {
				return nil, err
			}
		}
		rep.HasICMPExtensions = true
	}
	if rep.Flags.Get(8) {
		if rep.QuotedTTL, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasQuotedTTL = true
	}
	if rep.Flags.Get(9) {
		if rep.QuotedTos, err = r.U8(); err != nil {
			return nil, err
		}
		rep.HasQuotedTos = true
	}
	if rep.Flags.Get(10) {
		if rep.AddrID, err = r.U32(); err != nil {
			return nil, err
		}
		rep.HasAddrID = true
	}
	if rep.Flags.Get(11) {
		if rep.Addr, err = address.Decode(r); err != nil {
			return nil, err
		}
		rep.HasAddr = true
	}

	return rep, nil
}

// Encode appends t's body to w. Call Fixup first.
func (t *MultipathTraceroute) Encode(w *wbuf.Writer) error {
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
	if t.HasSrcPort {
		w.U16(t.SrcPort)
	}
	if t.HasDstPort {
		w.U16(t.DstPort)
	}
	if t.HasProbeSize {
		w.U16(t.ProbeSize)
	}
	if t.HasType {
		w.U8(t.Type)
	}
	if t.HasFirstHop {
		w.U8(t.FirstHop)
	}
	if t.HasWaitTimeout {
		w.U8(t.WaitTimeout)
	}
	if t.HasWaitProbe {
		w.U8(t.WaitProbe)
	}
	if t.HasAttempts {
		w.U8(t.Attempts)
	}
	if t.HasConfidence {
		w.U8(t.Confidence)
	}
	if t.HasIPTos {
		w.U8(t.IPTos)
	}
	if t.HasNodeCount {
		w.U16(t.NodeCount)
	}
	if t.HasLinkCount {
		w.U16(t.LinkCount)
	}
	if t.HasProbeCount {
		w.U32(t.ProbeCount)
	}
	if t.HasProbeCountMax {
		w.U32(t.ProbeCountMax)
	}
	if t.HasGapLimit {
		w.U8(t.GapLimit)
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
	if t.HasFlags2 {
		w.U8(t.Flags2)
	}
	if t.HasRouterAddr {
		t.RouterAddr.Encode(w)
	}

	for _, n := range t.Nodes {
		if err := n.Encode(w); err != nil {
			return err
		}
	}
	for _, l := range t.Links {
		if err := l.Encode(w); err != nil {
			return err
		}
	}

	return nil
}

// Encode appends n's body to w. Call Fixup first.
func (n *MultipathTraceNode) Encode(w *wbuf.Writer) error {
	w.Flags(n.Flags)

	if n.Flags.Any() {
		w.U16(n.ParamLength)
	}

	if n.HasAddrID {
		w.U32(n.AddrID)
	}
	if n.HasNodeFlags {
		w.U8(n.NodeFlags)
	}
	if n.HasLinkCount {
		w.U16(n.LinkCount)
	}
	if n.HasQuotedTTL {
		w.U8(n.QuotedTTL)
	}
	if n.HasAddr {
		n.Addr.Encode(w)
	}
	if n.HasName {
		if err := w.CString(n.Name); err != nil {
			return err
		}
	}

	return nil
}

// Encode appends l's body (and its nested probe sets) to w. Call Fixup
// first.
func (l *MultipathTraceLink) Encode(w *wbuf.Writer) error {
	w.Flags(l.Flags)

	if l.Flags.Any() {
		w.U16(l.ParamLength)
	}

	if l.HasFrom {
		w.U16(l.From)
	}
	if l.HasTo {
		w.U16(l.To)
	}
	if l.HasProbeSetCount {
		w.U8(l.ProbeSetCount)
	}

	for _, s := range l.ProbeSets {
		s.Encode(w)
	}

	return nil
}

// Encode appends s's body (and its nested probes) to w. Call Fixup first.
func (s *MultipathTraceProbeSet) Encode(w *wbuf.Writer) {
	w.Flags(s.Flags)

	if s.Flags.Any() {
		w.U16(s.ParamLength)
	}

	if s.HasProbeCount {
		w.U16(s.ProbeCount)
	}

	for _, p := range s.Probes {
		p.Encode(w)
	}
}

// Encode appends p's body (and its nested replies) to w. Call Fixup first.
func (p *MultipathTraceProbe) Encode(w *wbuf.Writer) {
	w.Flags(p.Flags)

	if p.Flags.Any() {
		w.U16(p.ParamLength)
	}

	if p.HasTx {
		p.Tx.Encode(w)
	}
	if p.HasFlowID {
		w.U16(p.FlowID)
	}
	if p.HasTTL {
		w.U8(p.TTL)
	}
	if p.HasAttempts {
		w.U8(p.Attempts)
	}
	if p.HasRepliesCount {
		w.U16(p.RepliesCount)
	}

	for _, r := range p.Replies {
		r.Encode(w)
	}
}

// Encode appends r's body to w. Call Fixup first.
func (r *MultipathTraceReply) Encode(w *wbuf.Writer) {
	w.Flags(r.Flags)

	if r.Flags.Any() {
		w.U16(r.ParamLength)
	}

	if r.HasRx {
		r.Rx.Encode(w)
	}
	if r.HasIPID {
		w.U16(r.IPID)
	}
	if r.HasTTL {
		w.U8(r.TTL)
	}
	if r.HasReplyFlags {
		w.U8(r.ReplyFlags)
	}
	if r.HasICMP {
		w.U8(r.ICMPType)
		w.U8(r.ICMPCode)
	}
	if r.HasTCPFlags {
		w.U8(r.TCPFlags)
	}
	if r.HasICMPExtensions {
		w.U16(r.ICMPExtension.DataLength())
		if r.ICMPExtension.DataLength() > 0 {
			r.ICMPExtension.Encode(w)
		}
	}
	if r.HasQuotedTTL {
		w.U8(r.QuotedTTL)
	}
	if r.HasQuotedTos {
		w.U8(r.QuotedTos)
	}
	if r.HasAddrID {
		w.U32(r.AddrID)
	}
	if r.HasAddr {
		r.Addr.Encode(w)
	}
}
