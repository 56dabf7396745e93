// Package encoding implements the single string codec warts uses: a
// NUL-terminated byte sequence whose serialized width is strlen+1.
//
// It is adapted from the teacher's VarStringEncoder (a uint8 length-prefix
// string codec guarding against oversized fields): the sanity length cap
// survives, but the length prefix is replaced by a terminator byte since
// that is what the wire format actually uses.
package encoding

import "github.com/dioptra-io/warts-go/errs"

// MaxCStringLength bounds a single cstring field, guarding against a
// corrupt or adversarial stream claiming an unbounded run before a NUL.
const MaxCStringLength = 1 << 16

// AppendCString appends s followed by a NUL terminator to dst, returning
// the extended slice.
func AppendCString(dst []byte, s string) ([]byte, error) {
	if len(s) > MaxCStringLength {
		return dst, errs.ErrTextTooLong
	}

	dst = append(dst, s...)
	dst = append(dst, 0)

	return dst, nil
}

// ReadCString scans data starting at pos for a NUL terminator and returns
// the string preceding it along with the position just past the
// terminator.
func ReadCString(data []byte, pos int) (s string, next int, err error) {
	limit := len(data)
	if limit-pos > MaxCStringLength {
		limit = pos + MaxCStringLength
	}

	for i := pos; i < limit; i++ {
		if data[i] == 0 {
			return string(data[pos:i]), i + 1, nil
		}
	}

	if limit < len(data) {
		return "", 0, errs.ErrTextTooLong
	}

	return "", 0, errs.ErrTruncatedInput
}
