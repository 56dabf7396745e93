// Package warts provides a decoder and encoder for scamper's warts binary
// trace format: the framed object stream that scamper (and the tools built
// around it) emits for traceroute, ping, and multipath-traceroute
// measurements.
//
// # Core Features
//
//   - Magic-prefixed, length-framed object stream (list/cycle/traceroute/
//     ping/multipath-traceroute records)
//   - A 7-bit variable-length flag scheme shared by every record body
//   - Address deduplication via a reference table, with an explicit
//     dereference pass to resolve it back to concrete addresses
//   - Optional in-memory stream compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Decoding every object in a warts file already read into memory:
//
//	import "github.com/dioptra-io/warts-go"
//
//	objects, err := warts.DecodeAll(data, warts.WithDereference(true))
//	for _, obj := range objects {
//	    if obj.Type == format.ObjectTraceroute {
//	        fmt.Println(obj.Traceroute.DstAddr)
//	    }
//	}
//
// Encoding a traceroute back to wire bytes:
//
//	raw, err := warts.EncodeAll([]*object.Object{
//	    {Type: format.ObjectTraceroute, Traceroute: tr},
//	})
//
// # Package Structure
//
// This package is a thin, convenience-oriented wrapper around stream,
// object, and dereference. For incremental decoding of a large file
// (rather than all objects at once), use stream.NewReader directly; for
// resolving references across multiple records sharing one address table,
// use dereference.WithTable.
package warts

import (
	"github.com/dioptra-io/warts-go/dereference"
	"github.com/dioptra-io/warts-go/object"
	"github.com/dioptra-io/warts-go/stream"
)

// Object is a single decoded warts record, tagged by Type.
type Object = object.Object

// DecodeOption configures DecodeAll/NewReader.
type DecodeOption = stream.DecodeOption

// EncodeOption configures EncodeAll.
type EncodeOption = stream.EncodeOption

// Reader iterates over the framed objects in a byte buffer.
type Reader = stream.Reader

// WithStrict controls whether an unknown object type aborts decoding
// (true, the default).
func WithStrict(strict bool) DecodeOption {
	return stream.WithStrict(strict)
}

// WithDereference resolves every Traceroute and MultipathTraceroute
// object's address references as it is decoded.
func WithDereference(enabled bool) DecodeOption {
	return stream.WithDereference(enabled)
}

// NewReader returns a Reader over data, configured by opts.
func NewReader(data []byte, opts ...DecodeOption) (*Reader, error) {
	return stream.NewReader(data, opts...)
}

// DecodeAll decodes every object in data, in wire order, stopping at the
// first error.
func DecodeAll(data []byte, opts ...DecodeOption) ([]*Object, error) {
	return stream.DecodeAll(data, opts...)
}

// EncodeAll fixes up and encodes every object in objects, in order.
func EncodeAll(objects []*Object, opts ...EncodeOption) ([]byte, error) {
	return stream.EncodeAll(objects, opts...)
}

// DereferenceTraceroute resolves tr's address references and *_addr_id
// fields in place. DecodeAll/NewReader with WithDereference(true) call this
// automatically; use it directly when decoding without that option, or when
// re-resolving a record built or modified by hand.
func DereferenceTraceroute(tr *object.Object, opts ...dereference.Option) error {
	return dereference.Traceroute(tr.Traceroute, opts...)
}

// DereferenceMultipathTraceroute resolves mt's address references and
// *_addr_id fields in place, analogously to DereferenceTraceroute.
func DereferenceMultipathTraceroute(mt *object.Object, opts ...dereference.Option) error {
	return dereference.MultipathTraceroute(mt.MultipathTraceroute, opts...)
}
