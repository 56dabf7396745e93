package address

import (
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
)

// Deprecated is the body of the 0x0005 AddressDeprecated top-level record,
// the file-level address table predating the Reference-based in-band
// scheme. It is decoded and re-encoded unchanged but, per the dereference
// pass, never consulted by it.
type Deprecated struct {
	Length uint32
	IDMod  uint8
	Tag    format.AddressFamily
	Bytes  []byte
}

func depPayloadLen(tag format.AddressFamily) (int, error) {
	switch tag {
	case format.FamilyIPv4:
		return 4, nil
	case format.FamilyIPv6:
		return 16, nil
	case format.FamilyEthernet:
		return 6, nil
	case format.FamilyFireWire:
		return 8, nil
	default:
		return 0, errs.ErrUnknownAddressLength
	}
}

// ToAddress converts a deprecated record into the in-band Address form it
// would take under the current scheme.
func (d Deprecated) ToAddress() Address {
	var kind Kind

	switch d.Tag {
	case format.FamilyIPv4:
		kind = KindIPv4
	case format.FamilyIPv6:
		kind = KindIPv6
	case format.FamilyEthernet:
		kind = KindEthernet
	case format.FamilyFireWire:
		kind = KindFireWire
	}

	return Address{Kind: kind, Family: d.Tag, Bytes: d.Bytes}
}

// DecodeDeprecated reads an AddressDeprecated body from r. The caller has
// already consumed the record's length:u32 prefix and passes it in.
func DecodeDeprecated(r *wbuf.Reader, length uint32) (Deprecated, error) {
	idMod, err := r.U8()
	if err != nil {
		return Deprecated{}, err
	}

	tagByte, err := r.U8()
	if err != nil {
		return Deprecated{}, err
	}

	tag := format.AddressFamily(tagByte)

	n, err := depPayloadLen(tag)
	if err != nil {
		return Deprecated{}, err
	}

	b, err := r.Bytes(n)
	if err != nil {
		return Deprecated{}, err
	}

	cp := make([]byte, len(b))
	copy(cp, b)

	return Deprecated{Length: length, IDMod: idMod, Tag: tag, Bytes: cp}, nil
}

// Encode appends the body (everything after the record length prefix) to w.
func (d Deprecated) Encode(w *wbuf.Writer) {
	w.U8(d.IDMod)
	w.U8(uint8(d.Tag))
	w.RawBytes(d.Bytes)
}

// BodySize returns the encoded size of everything after the length prefix.
func (d Deprecated) BodySize() int {
	return 1 + 1 + len(d.Bytes)
}
