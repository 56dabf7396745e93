// Package icmpext implements the ICMPExtension entity embedded in
// traceroute hop replies, carrying an MPLS label stack. The original
// implementation leaves MPLS label internals opaque (a raw u32) rather than
// systematically unpacking the label/exp/bos/ttl sub-fields on every decode;
// this package follows suit but exposes bit accessors over the raw value.
package icmpext

import (
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/internal/wbuf"
)

const (
	mplsClass = 1
	mplsType  = 1
)

// MPLSLabel is one entry of an MPLS label stack, stored as its raw u32 wire
// value rather than eagerly unpacked into label/exp/bos/ttl.
type MPLSLabel struct {
	Data uint32
}

// NewMPLSLabel packs the given sub-fields into a label.
func NewMPLSLabel(label uint32, exp uint8, bottomOfStack bool, ttl uint8) MPLSLabel {
	v := (label & 0xFFFFF) << 12
	v |= uint32(exp&0x7) << 9
	if bottomOfStack {
		v |= 1 << 8
	}
	v |= uint32(ttl)

	return MPLSLabel{Data: v}
}

// Label returns the 20-bit label value.
func (m MPLSLabel) Label() uint32 { return m.Data >> 12 }

// Experimental returns the 3-bit traffic-class field.
func (m MPLSLabel) Experimental() uint8 { return uint8((m.Data >> 9) & 0x7) }

// BottomOfStack reports whether this is the last label in the stack.
func (m MPLSLabel) BottomOfStack() bool { return (m.Data>>8)&0x1 != 0 }

// TTL returns the label's time-to-live field.
func (m MPLSLabel) TTL() uint8 { return uint8(m.Data) }

// ICMPExtension carries a stack of MPLS labels reported by an ICMP quoted
// response. Only ext_class/ext_type == (1, 1) (MPLS) is currently accepted.
type ICMPExtension struct {
	Labels []MPLSLabel
}

// New builds an ICMPExtension from labels.
func New(labels []MPLSLabel) ICMPExtension {
	return ICMPExtension{Labels: labels}
}

// DataLength returns the wire data_length field: 4 bytes per label.
func (e ICMPExtension) DataLength() uint16 {
	return uint16(len(e.Labels) * 4)
}

// WartsSize returns the encoded size, including the data_length/class/type
// header.
func (e ICMPExtension) WartsSize() int {
	return 2 + 1 + 1 + len(e.Labels)*4
}

// Decode reads an ICMPExtension from r.
func Decode(r *wbuf.Reader) (ICMPExtension, error) {
	dataLength, err := r.U16()
	if err != nil {
		return ICMPExtension{}, err
	}

	class, err := r.U8()
	if err != nil {
		return ICMPExtension{}, err
	}

	typ, err := r.U8()
	if err != nil {
		return ICMPExtension{}, err
	}

	if class != mplsClass || typ != mplsType {
		return ICMPExtension{}, errs.ErrUnsupportedICMPExtension
	}

	n := int(dataLength / 4)
	labels := make([]MPLSLabel, n)

	for i := 0; i < n; i++ {
		v, err := r.U32()
		if err != nil {
			return ICMPExtension{}, err
		}

		labels[i] = MPLSLabel{Data: v}
	}

	return ICMPExtension{Labels: labels}, nil
}

// Encode appends e's wire form to w.
func (e ICMPExtension) Encode(w *wbuf.Writer) {
	w.U16(e.DataLength())
	w.U8(mplsClass)
	w.U8(mplsType)

	for _, l := range e.Labels {
		w.U32(l.Data)
	}
}
