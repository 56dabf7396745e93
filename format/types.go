// Package format holds the small, wire-fixed enumerations used across the
// warts codec: the object type tag, the traceroute/ping type and stop-reason
// codes, and the address family tag carried inline by Address.
package format

// ObjectType is the 16-bit type code following the warts object magic.
type ObjectType uint16

const (
	ObjectList                ObjectType = 0x0001
	ObjectCycleStart          ObjectType = 0x0002
	ObjectCycleDefinition     ObjectType = 0x0003
	ObjectCycleStop           ObjectType = 0x0004
	ObjectAddressDeprecated   ObjectType = 0x0005
	ObjectTraceroute          ObjectType = 0x0006
	ObjectPing                ObjectType = 0x0007
	ObjectMultipathTraceroute ObjectType = 0x0008
)

func (t ObjectType) String() string {
	switch t {
	case ObjectList:
		return "List"
	case ObjectCycleStart:
		return "CycleStart"
	case ObjectCycleDefinition:
		return "CycleDefinition"
	case ObjectCycleStop:
		return "CycleStop"
	case ObjectAddressDeprecated:
		return "AddressDeprecated"
	case ObjectTraceroute:
		return "Traceroute"
	case ObjectPing:
		return "Ping"
	case ObjectMultipathTraceroute:
		return "MultipathTraceroute"
	default:
		return "Unknown"
	}
}

// TraceType identifies the probe method used by a traceroute.
type TraceType uint8

const (
	TraceICMPEcho      TraceType = 0x01
	TraceUDP           TraceType = 0x02
	TraceTCP           TraceType = 0x03
	TraceICMPEchoParis TraceType = 0x04
	TraceUDPParis      TraceType = 0x05
	TraceTCPAck        TraceType = 0x06
)

func (t TraceType) String() string {
	switch t {
	case TraceICMPEcho:
		return "ICMPEcho"
	case TraceUDP:
		return "UDP"
	case TraceTCP:
		return "TCP"
	case TraceICMPEchoParis:
		return "ICMPEchoParis"
	case TraceUDPParis:
		return "UDPParis"
	case TraceTCPAck:
		return "TCPAck"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the defined TraceType values.
func (t TraceType) Valid() bool {
	return t >= TraceICMPEcho && t <= TraceTCPAck
}

// TraceStopReason explains why a traceroute command terminated.
type TraceStopReason uint8

const (
	TraceStopNone      TraceStopReason = 0x00
	TraceStopCompleted TraceStopReason = 0x01
	TraceStopUnreach   TraceStopReason = 0x02
	TraceStopICMP      TraceStopReason = 0x03
	TraceStopLoop      TraceStopReason = 0x04
	TraceStopGapLimit  TraceStopReason = 0x05
	TraceStopError     TraceStopReason = 0x06
	TraceStopHopLimit  TraceStopReason = 0x07
	TraceStopGSS       TraceStopReason = 0x08
	TraceStopHalted    TraceStopReason = 0x09
)

func (r TraceStopReason) String() string {
	switch r {
	case TraceStopNone:
		return "None"
	case TraceStopCompleted:
		return "Completed"
	case TraceStopUnreach:
		return "Unreach"
	case TraceStopICMP:
		return "ICMP"
	case TraceStopLoop:
		return "Loop"
	case TraceStopGapLimit:
		return "GapLimit"
	case TraceStopError:
		return "Error"
	case TraceStopHopLimit:
		return "HopLimit"
	case TraceStopGSS:
		return "GSS"
	case TraceStopHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the defined TraceStopReason values.
func (r TraceStopReason) Valid() bool {
	return r <= TraceStopHalted
}

// PingStopReason explains why a ping command terminated.
type PingStopReason uint8

const (
	PingStopNone      PingStopReason = 0x00
	PingStopCompleted PingStopReason = 0x01
	PingStopError     PingStopReason = 0x02
	PingStopHalted    PingStopReason = 0x03
)

func (r PingStopReason) String() string {
	switch r {
	case PingStopNone:
		return "None"
	case PingStopCompleted:
		return "Completed"
	case PingStopError:
		return "Error"
	case PingStopHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the defined PingStopReason values.
func (r PingStopReason) Valid() bool {
	return r <= PingStopHalted
}

// AddressFamily is the small family code carried inline by an Address,
// alongside the wire length tag that doubles as the type discriminator.
type AddressFamily uint8

const (
	FamilyIPv4     AddressFamily = 1
	FamilyIPv6     AddressFamily = 2
	FamilyEthernet AddressFamily = 3
	FamilyFireWire AddressFamily = 4
)

func (f AddressFamily) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	case FamilyEthernet:
		return "Ethernet"
	case FamilyFireWire:
		return "FireWire"
	default:
		return "Unknown"
	}
}

// CompressionType selects the codec package archive uses to compress an
// already-encoded object stream. This has no wire representation of its
// own — it's a caller-side choice for in-memory caching, not part of the
// warts format.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
