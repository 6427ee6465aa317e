package cursor

import "net"

// maxJumps bounds the number of compression-pointer hops a single name
// decode may follow. RFC 1035 §4.1.4 does not itself guard against pointer
// cycles; this bound (plus the backward-offset check in ReadName)
// is what rejects them.
const maxJumps = 128

// maxNameLength is the wire-encoded limit from RFC 1035 §3.1: label length
// octets, label bytes, and the terminating zero together must not exceed
// 255 octets.
const maxNameLength = 255

// Reader is a stateful cursor over an immutable byte buffer. It never
// mutates the underlying bytes; the cursor position is its only mutable
// state, and a Reader is meant to be used by a single goroutine for the
// lifetime of one inbound datagram.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader borrowing buf for the duration of the decode.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Index returns the current cursor position.
func (r *Reader) Index() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread octets.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Advance raises the cursor by n octets, failing if that would overrun the
// buffer.
func (r *Reader) Advance(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return truncatedf("cannot advance %d octets from index %d (len %d)", n, r.pos, len(r.buf))
	}
	r.pos += n
	return nil
}

// seek moves the cursor to an absolute position without bounds-checking
// against the read size that follows. Nothing in the package calls it:
// ReadName follows compression pointers on a local position instead.
func (r *Reader) seek(pos int) { r.pos = pos }

// ReadUint8 reads and advances past a single octet.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.buf) {
		return 0, truncatedf("need 1 byte at index %d, have %d remaining", r.pos, r.Remaining())
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadUint16 reads a big-endian uint16 and advances 2 octets.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, truncatedf("need 2 bytes at index %d, have %d remaining", r.pos, r.Remaining())
	}
	v := uint16(r.buf[r.pos])<<8 | uint16(r.buf[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadUint32 reads a big-endian uint32 and advances 4 octets.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, truncatedf("need 4 bytes at index %d, have %d remaining", r.pos, r.Remaining())
	}
	v := uint32(r.buf[r.pos])<<24 | uint32(r.buf[r.pos+1])<<16 | uint32(r.buf[r.pos+2])<<8 | uint32(r.buf[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadBytes borrows n octets from the current position and advances past
// them. The returned slice is a copy; callers may retain it beyond the
// Reader's lifetime.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.PeekBytes(n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return b, nil
}

// PeekBytes borrows n octets from the current position without advancing.
func (r *Reader) PeekBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, truncatedf("need %d bytes at index %d, have %d remaining", n, r.pos, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	return out, nil
}

// BytesAt borrows length octets at an absolute offset without touching the
// cursor. Used to recover the raw RDATA region of a record whose decoder
// failed partway through.
func (r *Reader) BytesAt(start, length int) ([]byte, error) {
	if start < 0 || length < 0 || start+length > len(r.buf) {
		return nil, truncatedf("range [%d:%d) out of bounds (len %d)", start, start+length, len(r.buf))
	}
	out := make([]byte, length)
	copy(out, r.buf[start:start+length])
	return out, nil
}

// ReadIPv4 reads 4 octets as an IPv4 address.
func (r *Reader) ReadIPv4() (net.IP, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return net.IP(b), nil
}

// ReadIPv6 reads 16 octets as an IPv6 address.
func (r *Reader) ReadIPv6() (net.IP, error) {
	b, err := r.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return net.IP(b), nil
}

// ReadString reads exactly n octets and returns them unescaped, as
// ASCII/UTF-8 bytes (used for fields whose length comes from RDLENGTH
// arithmetic rather than a length-prefix octet, e.g. URI target).
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CharacterString is a length-prefixed DNS string: the raw bytes plus the
// escaped presentation form (RFC 1035 §5.1 convention).
type CharacterString struct {
	Raw     []byte
	Escaped string
}

// ReadCharacterString reads one length octet L followed by L octets,
// producing both the raw bytes and the escaped presentation form.
func (r *Reader) ReadCharacterString() (CharacterString, error) {
	l, err := r.ReadUint8()
	if err != nil {
		return CharacterString{}, err
	}
	raw, err := r.ReadBytes(int(l))
	if err != nil {
		return CharacterString{}, err
	}
	return CharacterString{Raw: raw, Escaped: EscapeString(raw)}, nil
}

// Sanitize asserts that the cursor sits at expectedIndex after a record's
// RDATA decoder has returned. If lenient is true and the cursor fell short
// of expectedIndex (the tolerance the OPT decoder needs for unrecognized
// sub-options), the cursor is force-advanced; any other mismatch is always
// a Malformed error regardless of lenient.
func (r *Reader) Sanitize(expectedIndex int, lenient bool) error {
	if r.pos == expectedIndex {
		return nil
	}
	if lenient && r.pos < expectedIndex {
		r.pos = expectedIndex
		return nil
	}
	return malformedf("RDLENGTH mismatch: cursor at %d, expected %d", r.pos, expectedIndex)
}

// ForceAdvanceTo moves the cursor to pos regardless of intervening reads;
// used by lenient record decoding to resynchronize after rejecting a
// malformed record.
func (r *Reader) ForceAdvanceTo(pos int) {
	r.pos = pos
}
