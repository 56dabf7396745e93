// Package stream implements the fail-fast single-pass iterator over a
// contiguous buffer of framed warts objects (spec §4.7), plus
// DecodeAll/EncodeAll convenience wrappers.
//
// Grounded on original_source/src/object.rs's Object::all_from_bytes,
// reshaped into Go's idiomatic pull-iterator form (a Next method returning
// (*object.Object, error)) instead of eagerly materializing a Vec; the
// all-at-once behavior survives as DecodeAll, built on top of the
// iterator.
package stream

import (
	"github.com/dioptra-io/warts-go/dereference"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/internal/options"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/object"
)

// config holds the resolved state of every DecodeOption.
type config struct {
	strict        bool
	maxFlagBits   int
	dereference   bool
}

func defaultConfig() *config {
	return &config{
		strict:      true,
		maxFlagBits: 60,
		dereference: false,
	}
}

// DecodeOption configures a Reader's decoding behavior.
type DecodeOption = options.Option[*config]

// WithStrict controls whether an unknown object type aborts the stream
// (true, the default) or is skipped via Skip (false). Corresponds to
// spec §4.3's lenient-vs-strict framing decision.
func WithStrict(strict bool) DecodeOption {
	return options.NoError(func(c *config) { c.strict = strict })
}

// WithMaxFlagBits records n in the Reader's configuration (default 60).
// The value is not applied: every decode checks flag tables against
// flags.MaxBits regardless of this option.
func WithMaxFlagBits(n int) DecodeOption {
	return options.NoError(func(c *config) { c.maxFlagBits = n })
}

// WithDereference runs the dereference pass (spec §4.5) automatically on
// every Traceroute and MultipathTraceroute object as it is decoded.
func WithDereference(enabled bool) DecodeOption {
	return options.NoError(func(c *config) { c.dereference = enabled })
}

// Reader iterates over the framed objects in a byte buffer, one at a time,
// stopping at the first decode error (spec §4.7: fail-fast, no resync).
type Reader struct {
	r      *wbuf.Reader
	cfg    *config
	failed bool
}

// NewReader returns a Reader over data, configured by opts.
func NewReader(data []byte, opts ...DecodeOption) (*Reader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Reader{r: wbuf.NewReader(data), cfg: cfg}, nil
}

// Next decodes and returns the next object. It returns (nil, nil) once the
// buffer is exhausted. After the first error, every later call returns
// errs.ErrStreamFailed — the stream does not attempt to resync past
// corrupted input.
func (s *Reader) Next() (*object.Object, error) {
	for {
		if s.failed {
			return nil, errs.ErrStreamFailed
		}

		if s.r.Done() {
			return nil, nil
		}

		obj, err := object.Decode(s.r, s.cfg.strict)
		if err != nil {
			s.failed = true
			return nil, err
		}

		if obj == nil {
			// Lenient mode skipped an unknown object type; read the next one.
			continue
		}

		if s.cfg.dereference {
			if err := dereferenceObject(obj); err != nil {
				s.failed = true
				return nil, err
			}
		}

		return obj, nil
	}
}

func dereferenceObject(obj *object.Object) error {
	switch obj.Type {
	case format.ObjectTraceroute:
		return dereference.Traceroute(obj.Traceroute)
	case format.ObjectMultipathTraceroute:
		return dereference.MultipathTraceroute(obj.MultipathTraceroute)
	default:
		return nil
	}
}

// DecodeAll decodes every object in data and returns them in wire order,
// stopping and returning the first error encountered (spec §4.7).
func DecodeAll(data []byte, opts ...DecodeOption) ([]*object.Object, error) {
	r, err := NewReader(data, opts...)
	if err != nil {
		return nil, err
	}

	var objects []*object.Object
	for {
		obj, err := r.Next()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return objects, nil
		}

		objects = append(objects, obj)
	}
}

// EncodeOption configures EncodeAll's encoding behavior. There are
// currently no encode-side options; the type exists so the signature can
// grow without breaking callers, mirroring DecodeOption.
type EncodeOption = options.Option[*encodeConfig]

type encodeConfig struct{}

// EncodeAll fixes up and appends every object in objects, in order, to a
// single byte slice.
func EncodeAll(objects []*object.Object, _ ...EncodeOption) ([]byte, error) {
	w := wbuf.NewWriter()
	defer w.Release()

	for _, obj := range objects {
		obj.Fixup()

		if err := obj.Encode(w); err != nil {
			return nil, err
		}
	}

	return append([]byte(nil), w.Bytes()...), nil
}
