package flags

// Builder accumulates the two pieces of bookkeeping the fixup pass needs
// while it walks a record's optional fields in ascending flag order: which
// flag bits to set, and the running total of serialized optional-parameter
// bytes (param_length).
//
// This replaces the original implementation's push_flag! macro, which did
// the same two things inline at each field; Go has no macros, so the same
// "if present: set bit, add width" step is expressed as a method call.
type Builder struct {
	bits        uint64
	paramLength int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Push records flag i as present with the given serialized width if present
// is true; if present is false it contributes nothing. Call this once per
// optional field, in ascending flag order, during fixup.
func (b *Builder) Push(i int, present bool, width int) {
	if !present {
		return
	}

	b.bits |= 1 << uint(i-1)
	b.paramLength += width
}

// Flags returns the accumulated Flags value.
func (b *Builder) Flags() Flags {
	return Flags{bits: b.bits}
}

// ParamLength returns the accumulated total width of present optional
// fields, i.e. what a record's param_length field should be set to.
func (b *Builder) ParamLength() int {
	return b.paramLength
}
