// Package cursor implements the bytewise reader and writer primitives that
// the rest of the wire codec is built on: bounds-checked integer and name
// decoding over an immutable buffer, and a growable encoder.
package cursor

import (
	"errors"
	"fmt"
)

// ErrTruncated means a read requested more octets than remain in the buffer.
var ErrTruncated = errors.New("truncated")

// ErrMalformed means a structural rule of the wire format was violated:
// a reserved label type, a label longer than 63 octets, a name longer than
// 255 octets, a compression pointer cycle, or an RDLENGTH mismatch.
var ErrMalformed = errors.New("malformed")

// ErrInvalidUTF8 means a field documented as UTF-8 failed strict decoding.
// It is recoverable for NSID and EDE (the raw bytes are retained by the
// caller) and is never returned from the core reader primitives themselves.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

func truncatedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTruncated}, args...)...)
}

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)
}
