// Package errs holds the sentinel errors returned by the warts codec.
//
// Callers should compare against these with errors.Is. The codec packages
// return them unwrapped; a caller that adds context (as cmd/wartsdump does
// with fmt.Errorf("%s: %w", path, err)) keeps them matchable that way.
package errs

import "errors"

var (
	// ErrBadMagic is returned when an object does not begin with the warts
	// magic bytes 0x12 0x05.
	ErrBadMagic = errors.New("warts: bad magic")

	// ErrUnknownObjectType is returned when an object's type code is not one
	// of the values in the warts object table.
	ErrUnknownObjectType = errors.New("warts: unknown object type")

	// ErrTruncatedInput is returned when the underlying buffer is exhausted
	// mid-field.
	ErrTruncatedInput = errors.New("warts: truncated input")

	// ErrTruncatedFlags is returned when a flag byte sequence does not
	// terminate (every byte has the link bit set) before the input ends.
	ErrTruncatedFlags = errors.New("warts: truncated flags")

	// ErrFlagTooLarge is returned when a flag sequence would require more
	// than the supported 60-bit range to represent.
	ErrFlagTooLarge = errors.New("warts: flag value exceeds 60-bit range")

	// ErrFlagIndexInvalid describes a 1-based flag index that is not a
	// positive integer. No function in this module returns it: flags.Get
	// panics on such an index instead.
	ErrFlagIndexInvalid = errors.New("warts: flag index must be >= 1")

	// ErrUnknownAddressLength is returned when an address length tag byte is
	// not one of {0, 4, 6, 8, 16}.
	ErrUnknownAddressLength = errors.New("warts: unknown address length tag")

	// ErrInvalidEnumValue is returned when an enum discriminant byte is
	// outside the range defined for that enum.
	ErrInvalidEnumValue = errors.New("warts: invalid enum value")

	// ErrBadTerminator is returned when a traceroute's eof field is nonzero.
	ErrBadTerminator = errors.New("warts: non-zero record terminator")

	// ErrDanglingAddressReference is returned when dereferencing an
	// Address.Reference or an *_addr_id field whose id is out of range for
	// the seen-address table.
	ErrDanglingAddressReference = errors.New("warts: dangling address reference")

	// ErrUnsupportedICMPExtension is returned when an ICMP extension's
	// class/type pair is not (1, 1) — the only MPLS label-stack extension
	// this codec understands.
	ErrUnsupportedICMPExtension = errors.New("warts: unsupported ICMP extension class/type")

	// ErrTextTooLong is returned when a cstring payload exceeds the codec's
	// sanity limit for a single field.
	ErrTextTooLong = errors.New("warts: text field too long")

	// ErrStreamFailed is returned by a stream reader's Next after it has
	// already failed once; the iterator does not attempt to resync past
	// corrupted input, so every subsequent call re-reports the failure.
	ErrStreamFailed = errors.New("warts: stream already failed")
)
