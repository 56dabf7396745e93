// Package sized defines the WartsSized interface used throughout the codec
// to compute the serialized byte width of a value before it is written.
//
// This is what the fixup pass (record.Fixup methods) relies on to recompute
// param_length and length headers without a separate encode-then-measure
// pass.
package sized

// WartsSized reports the number of bytes a value occupies once serialized
// onto the warts wire format.
type WartsSized interface {
	WartsSize() int
}

// Uint8 is the serialized width of a u8 field.
const Uint8 = 1

// Uint16 is the serialized width of a u16 field.
const Uint16 = 2

// Uint32 is the serialized width of a u32 field.
const Uint32 = 4

// CString returns the serialized width of a NUL-terminated string: its byte
// length plus one for the terminator.
func CString(s string) int {
	return len(s) + 1
}

// Of returns the serialized width of v if v is present (non-nil) and
// implements WartsSized, or 0 otherwise. It mirrors the original
// implementation's `impl<T: WartsSized> WartsSized for Option<T>`, where an
// absent optional field contributes zero bytes.
func Of(v WartsSized) int {
	if v == nil {
		return 0
	}

	return v.WartsSize()
}
