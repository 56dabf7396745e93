// Package address implements the warts Address tagged variant: a network
// address that is either carried inline (IPv4, IPv6, Ethernet, FireWire) or
// referenced by index into a per-record seen-address table.
//
// The wire length tag doubles as the discriminator, so the variant never
// carries a separate enum byte the way format.ObjectType does.
package address

import (
	"net/netip"

	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
)

// Kind discriminates the Address variant.
type Kind uint8

const (
	KindReference Kind = iota
	KindIPv4
	KindIPv6
	KindEthernet
	KindFireWire
)

// Wire length tags. The tag is the byte count of the variant's address
// payload (0 for a Reference, which carries a u32 table index instead).
const (
	tagReference = 0
	tagIPv4      = 4
	tagEthernet  = 6
	tagFireWire  = 8
	tagIPv6      = 16
)

// Address is the tagged union described above. Exactly the fields relevant
// to Kind are meaningful; Ref is valid only for KindReference, Family/Bytes
// for the rest.
type Address struct {
	Kind   Kind
	Ref    uint32              // table index, KindReference only
	Family format.AddressFamily // sub_id carried inline, non-Reference only
	Bytes  []byte              // raw address bytes, length per Kind
}

// Reference builds a reference into the per-record seen-address table.
func Reference(id uint32) Address {
	return Address{Kind: KindReference, Ref: id}
}

// FromIP builds an IPv4 or IPv6 Address from a netip.Addr. ok is false if ip
// is neither a valid IPv4 nor IPv6 address (e.g. the zero value).
func FromIP(ip netip.Addr) (a Address, ok bool) {
	switch {
	case ip.Is4():
		b := ip.As4()
		return Address{Kind: KindIPv4, Family: format.FamilyIPv4, Bytes: b[:]}, true
	case ip.Is6():
		b := ip.As16()
		return Address{Kind: KindIPv6, Family: format.FamilyIPv6, Bytes: b[:]}, true
	default:
		return Address{}, false
	}
}

// FromEthernet builds an Address from a 6-byte MAC.
func FromEthernet(mac [6]byte) Address {
	return Address{Kind: KindEthernet, Family: format.FamilyEthernet, Bytes: mac[:]}
}

// FromFireWire builds an Address from an 8-byte FireWire GUID.
func FromFireWire(guid [8]byte) Address {
	return Address{Kind: KindFireWire, Family: format.FamilyFireWire, Bytes: guid[:]}
}

// IPAddr returns the netip.Addr carried by an IPv4 or IPv6 Address. ok is
// false for any other Kind, mirroring the original implementation's refusal
// to convert a Reference, Ethernet, or FireWire address to an IP.
func (a Address) IPAddr() (ip netip.Addr, ok bool) {
	switch a.Kind {
	case KindIPv4:
		return netip.AddrFrom4([4]byte(a.Bytes)), true
	case KindIPv6:
		return netip.AddrFrom16([16]byte(a.Bytes)), true
	default:
		return netip.Addr{}, false
	}
}

// WartsSize returns the address's encoded length, including its one-byte
// length tag.
func (a Address) WartsSize() int {
	switch a.Kind {
	case KindReference:
		return 1 + 4
	case KindIPv4:
		return 1 + 1 + tagIPv4
	case KindIPv6:
		return 1 + 1 + tagIPv6
	case KindEthernet:
		return 1 + 1 + tagEthernet
	case KindFireWire:
		return 1 + 1 + tagFireWire
	default:
		return 0
	}
}

// Decode reads an Address from r.
func Decode(r *wbuf.Reader) (Address, error) {
	tag, err := r.U8()
	if err != nil {
		return Address{}, err
	}

	if tag == tagReference {
		id, err := r.U32()
		if err != nil {
			return Address{}, err
		}

		return Reference(id), nil
	}

	sub, err := r.U8()
	if err != nil {
		return Address{}, err
	}

	var kind Kind

	switch tag {
	case tagIPv4:
		kind = KindIPv4
	case tagIPv6:
		kind = KindIPv6
	case tagEthernet:
		kind = KindEthernet
	case tagFireWire:
		kind = KindFireWire
	default:
		return Address{}, errs.ErrUnknownAddressLength
	}

	b, err := r.Bytes(int(tag))
	if err != nil {
		return Address{}, err
	}

	cp := make([]byte, len(b))
	copy(cp, b)

	return Address{Kind: kind, Family: format.AddressFamily(sub), Bytes: cp}, nil
}

// Encode appends the wire form of a to w.
func (a Address) Encode(w *wbuf.Writer) {
	switch a.Kind {
	case KindReference:
		w.U8(tagReference)
		w.U32(a.Ref)
	case KindIPv4:
		w.U8(tagIPv4)
		w.U8(uint8(a.Family))
		w.RawBytes(a.Bytes)
	case KindIPv6:
		w.U8(tagIPv6)
		w.U8(uint8(a.Family))
		w.RawBytes(a.Bytes)
	case KindEthernet:
		w.U8(tagEthernet)
		w.U8(uint8(a.Family))
		w.RawBytes(a.Bytes)
	case KindFireWire:
		w.U8(tagFireWire)
		w.U8(uint8(a.Family))
		w.RawBytes(a.Bytes)
	}
}
