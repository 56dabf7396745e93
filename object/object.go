// Package object implements the warts(5) object framing that wraps every
// record: the 0x1205 magic, a 16-bit type code, and a 32-bit length, with
// the type code dispatching to one of the eight record bodies (seven in
// package record, plus address.Deprecated for AddressDeprecated).
//
// Grounded on original_source/src/object.rs's Object enum and its
// all_from_bytes driver; AddressDeprecated (0x0005) is included here even
// though that enum omits it, since the type code is reserved on the wire
// and a reader must be able to skip or decode it.
package object

import (
	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/record"
)

// Magic is the two-byte sequence that begins every warts object.
const Magic = 0x1205

// Object is a decoded warts object: its type code plus exactly one
// populated body field.
type Object struct {
	Type format.ObjectType

	List                *record.List
	CycleStart          *record.CycleStart
	CycleDefinition     *record.CycleDefinition
	CycleStop           *record.CycleStop
	AddressDeprecated   *address.Deprecated
	Traceroute          *record.Traceroute
	Ping                *record.Ping
	MultipathTraceroute *record.MultipathTraceroute
}

// Decode reads one framed object: magic, type, length, then the body
// dispatched by type. It returns errs.ErrBadMagic if the magic bytes don't
// match.
//
// When strict is true, a type code outside the eight known record types
// fails with errs.ErrUnknownObjectType. When strict is false, the unknown
// body is skipped using the already-read length field and Decode returns
// (nil, nil); the caller (stream.Reader.Next) is expected to treat that as
// "no object this call, read another" rather than end-of-stream.
func Decode(r *wbuf.Reader, strict bool) (*Object, error) {
	magic, err := r.U16()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, errs.ErrBadMagic
	}

	typeCode, err := r.U16()
	if err != nil {
		return nil, err
	}

	length, err := r.U32()
	if err != nil {
		return nil, err
	}

	o := &Object{Type: format.ObjectType(typeCode)}

	switch o.Type {
	case format.ObjectList:
		o.List, err = record.DecodeList(r, length)
	case format.ObjectCycleStart:
		o.CycleStart, err = record.DecodeCycleStart(r, length)
	case format.ObjectCycleDefinition:
		var c *record.CycleStart
		c, err = record.DecodeCycleStart(r, length)
		if err == nil {
			o.CycleDefinition = &record.CycleDefinition{CycleStart: *c}
		}
	case format.ObjectCycleStop:
		o.CycleStop, err = record.DecodeCycleStop(r, length)
	case format.ObjectAddressDeprecated:
		var dep address.Deprecated
		dep, err = address.DecodeDeprecated(r, length)
		o.AddressDeprecated = &dep
	case format.ObjectTraceroute:
		o.Traceroute, err = record.DecodeTraceroute(r, length)
	case format.ObjectPing:
		o.Ping, err = record.DecodePing(r, length)
	case format.ObjectMultipathTraceroute:
		o.MultipathTraceroute, err = record.DecodeMultipathTraceroute(r, length)
	default:
		if strict {
			return nil, errs.ErrUnknownObjectType
		}
		if err := r.Skip(int(length)); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return o, nil
}

// Encode appends o's framed form (magic, type, length, body) to w. Each
// body's Fixup method must have already been called so its Length field is
// current.
func (o *Object) Encode(w *wbuf.Writer) error {
	w.U16(Magic)
	w.U16(uint16(o.Type))

	switch o.Type {
	case format.ObjectList:
		w.U32(o.List.Length)
		return o.List.Encode(w)
	case format.ObjectCycleStart:
		w.U32(o.CycleStart.Length)
		return o.CycleStart.Encode(w)
	case format.ObjectCycleDefinition:
		w.U32(o.CycleDefinition.Length)
		return o.CycleDefinition.Encode(w)
	case format.ObjectCycleStop:
		w.U32(o.CycleStop.Length)
		o.CycleStop.Encode(w)
		return nil
	case format.ObjectAddressDeprecated:
		w.U32(uint32(o.AddressDeprecated.BodySize()))
		o.AddressDeprecated.Encode(w)
		return nil
	case format.ObjectTraceroute:
		w.U32(o.Traceroute.Length)
		return o.Traceroute.Encode(w)
	case format.ObjectPing:
		w.U32(o.Ping.Length)
		return o.Ping.Encode(w)
	case format.ObjectMultipathTraceroute:
		w.U32(o.MultipathTraceroute.Length)
		return o.MultipathTraceroute.Encode(w)
	default:
		return errs.ErrUnknownObjectType
	}
}

// Fixup recomputes the length/flags bookkeeping of o's populated body, if
// that body type supports it (AddressDeprecated has no flags to fix up).
func (o *Object) Fixup() {
	switch o.Type {
	case format.ObjectList:
		o.List.Fixup()
	case format.ObjectCycleStart:
		o.CycleStart.Fixup()
	case format.ObjectCycleDefinition:
		o.CycleDefinition.Fixup()
	case format.ObjectCycleStop:
		o.CycleStop.Fixup()
	case format.ObjectTraceroute:
		o.Traceroute.Fixup()
	case format.ObjectPing:
		o.Ping.Fixup()
	case format.ObjectMultipathTraceroute:
		o.MultipathTraceroute.Fixup()
	}
}
