package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// Header is the fixed 10-octet preamble that follows every record's NAME:
// TYPE, CLASS, TTL, and RDLENGTH. For OPT records CLASS and TTL carry the
// UDP payload size and the extended RCODE/version/Z flags respectively
// (RFC 6891 §6.1); those overloads are preserved here, not reinterpreted,
// and exposed as named accessors on Record (UDPPayloadSize, ExtendedRcode,
// Version, DNSSECOk).
type Header struct {
	Name     cursor.Name
	Type     Type
	Class    uint16
	TTL      uint32
	RDLength uint16
}

// RData is the per-variant resource record payload. Each concrete type
// (AData, NameData, SOAData, ... UnknownData) implements it; callers
// discriminate the concrete variant with a type switch on Record.Data.
type RData interface {
	// Type returns the record type this payload decodes/encodes as.
	Type() Type
	// String renders the RDATA portion only, for use inside Record.String.
	String() string
	// Encode writes the wire-format RDATA (not including the preamble) to w.
	Encode(w *cursor.Writer) error
}

// Record is a fully decoded resource record: the common preamble plus its
// typed RDATA.
type Record struct {
	Header Header
	Data   RData
}

// String renders a human-readable zone-file-style line combining name,
// TTL, class, type, and the RDATA's own presentation.
func (r Record) String() string {
	return fmt.Sprintf("%s\t%d\tCLASS%d\t%s\t%s", r.Header.Name, r.Header.TTL, r.Header.Class, r.Header.Type, r.Data)
}

// Encode writes the record's preamble and RDATA to w, backpatching
// RDLENGTH once the RDATA size is known.
func (r Record) Encode(w *cursor.Writer) error {
	if err := w.WriteName(r.Header.Name); err != nil {
		return err
	}
	w.WriteUint16(uint16(r.Header.Type))
	w.WriteUint16(r.Header.Class)
	w.WriteUint32(r.Header.TTL)
	lenOffset := w.ReserveUint16()
	before := w.Len()
	if err := r.Data.Encode(w); err != nil {
		return err
	}
	w.PatchUint16(lenOffset, uint16(w.Len()-before)) // #nosec G115 -- RDATA length bounded by buffer size
	return nil
}
